package capture

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"drip/internal/shared/recovery"
)

func TestDecodeSessionsRunsEachIndependently(t *testing.T) {
	sessions := []*Session{
		{
			ID:                         "s1",
			InitialMaxDynamicTableSize: 4096,
			Blocks:                     [][]byte{{0x82, 0x86, 0x84}},
		},
		{
			ID:                         "s2",
			InitialMaxDynamicTableSize: 4096,
			Blocks: [][]byte{
				{0x40, 0x0a, 'c', 'u', 's', 't', 'o', 'm', '-', 'k', 'e', 'y', 0x0d,
					'c', 'u', 's', 't', 'o', 'm', '-', 'h', 'e', 'a', 'd', 'e', 'r'},
			},
		},
	}

	logger := zap.NewNop()
	recoverer := recovery.NewRecoverer(logger, nil)

	results := DecodeSessions(context.Background(), sessions, 2, logger, recoverer)
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	for _, r := range results {
		if r.Err != nil {
			t.Errorf("session %s: unexpected error: %v", r.SessionID, r.Err)
		}
	}
	if len(results[0].Entries) != 3 {
		t.Errorf("s1: got %d entries, want 3", len(results[0].Entries))
	}
	if len(results[1].Entries) != 1 {
		t.Errorf("s2: got %d entries, want 1", len(results[1].Entries))
	}
}

func TestDecodeSessionsSurfacesPerSessionError(t *testing.T) {
	sessions := []*Session{
		{ID: "bad", InitialMaxDynamicTableSize: 4096, Blocks: [][]byte{{0x80}}}, // index 0, invalid
		{ID: "good", InitialMaxDynamicTableSize: 4096, Blocks: [][]byte{{0x82}}},
	}

	logger := zap.NewNop()
	recoverer := recovery.NewRecoverer(logger, nil)

	results := DecodeSessions(context.Background(), sessions, 4, logger, recoverer)

	var bad, good *SessionResult
	for i := range results {
		switch results[i].SessionID {
		case "bad":
			bad = &results[i]
		case "good":
			good = &results[i]
		}
	}

	if bad == nil || bad.Err == nil {
		t.Fatalf("expected bad session to fail, got %+v", bad)
	}
	if good == nil || good.Err != nil {
		t.Fatalf("expected good session to succeed, got %+v", good)
	}
}

func TestDecodeSessionsDefaultsWorkersToOne(t *testing.T) {
	sessions := []*Session{{ID: "only", InitialMaxDynamicTableSize: 4096, Blocks: [][]byte{{0x82}}}}
	results := DecodeSessions(context.Background(), sessions, 0, nil, nil)
	if len(results) != 1 || results[0].Err != nil {
		t.Fatalf("got %+v", results)
	}
}
