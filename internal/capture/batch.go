package capture

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"drip/internal/shared/compression/hpack"
	"drip/internal/shared/recovery"
)

// SessionResult is one Session's outcome from DecodeSessions: the entries
// recovered from every block in order, or the error that stopped decoding
// (wrapping the block's *hpack.DecoderError, or describing a recovered
// panic).
type SessionResult struct {
	SessionID string
	Entries   []hpack.Entry
	Err       error
}

// DecodeSessions replays every Session through its own fresh Decoder,
// concurrently, bounded by workers. Each session gets an independent
// dynamic table, matching the one-decoder-per-connection rule the live
// decoder is held to — concurrency here is purely a batch-tooling
// convenience above that contract, not a change to it.
//
// When recoverer is non-nil, a panic while decoding one session is
// contained by it and surfaces as an error on that session's result; it
// does not abort the rest of the batch. With a nil recoverer a panic is
// not recovered.
func DecodeSessions(ctx context.Context, sessions []*Session, workers int, logger *zap.Logger, recoverer *recovery.Recoverer) []SessionResult {
	if workers <= 0 {
		workers = 1
	}

	results := make([]SessionResult, len(sessions))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, s := range sessions {
		i, s := i, s
		g.Go(func() error {
			results[i] = decodeOneSession(s, logger, recoverer)
			return nil
		})
	}
	// Every g.Go call above returns nil unconditionally; failures are
	// captured per-session in results, not propagated through the group.
	_ = g.Wait()

	return results
}

func decodeOneSession(s *Session, logger *zap.Logger, recoverer *recovery.Recoverer) (result SessionResult) {
	result.SessionID = s.ID

	if recoverer != nil {
		defer recoverer.RecoverWithCallback("capture.decodeOneSession:"+s.ID, func(p interface{}) {
			result.Err = fmt.Errorf("capture: session %s: panic: %v", s.ID, p)
		})
	}

	d := hpack.New(s.InitialMaxDynamicTableSize)
	var entries []hpack.Entry
	for blockIdx, block := range s.Blocks {
		err := d.Decode(block, func(e hpack.Entry) {
			entries = append(entries, e)
		})
		if err != nil {
			if logger != nil {
				logger.Warn("session decode failed",
					zap.String("session_id", s.ID),
					zap.Int("block", blockIdx),
					zap.Error(err),
				)
			}
			result.Err = fmt.Errorf("capture: session %s: block %d: %w", s.ID, blockIdx, err)
			return result
		}
	}

	result.Entries = entries
	return result
}
