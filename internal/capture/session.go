// Package capture stores and replays recorded HPACK traffic: a Session is
// the ordered list of header blocks seen on one connection, along with the
// dynamic table size it started from, so it can be fed back through a fresh
// Decoder for regression testing or benchmarking.
package capture

import (
	"errors"

	json "github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"
)

// Session is one recorded connection's worth of HPACK header blocks, in
// the order they were decoded originally.
type Session struct {
	ID                         string   `json:"id" msgpack:"id"`
	InitialMaxDynamicTableSize int      `json:"initial_max_dynamic_table_size" msgpack:"initial_max_dynamic_table_size"`
	Blocks                     [][]byte `json:"blocks" msgpack:"blocks"`
}

// Encode serializes a Session with msgpack, the compact on-disk format for
// captured sessions.
func Encode(s *Session) ([]byte, error) {
	return msgpack.Marshal(s)
}

// Decode deserializes a Session, auto-detecting the wire format: JSON
// payloads (hand-edited fixtures, typically) start with '{'; anything else
// is treated as msgpack.
func Decode(data []byte) (*Session, error) {
	if len(data) == 0 {
		return nil, errors.New("capture: empty session data")
	}

	var s Session
	if data[0] == '{' {
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, err
		}
	} else {
		if err := msgpack.Unmarshal(data, &s); err != nil {
			return nil, err
		}
	}
	return &s, nil
}
