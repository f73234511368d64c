package capture

import "testing"

func TestEncodeDecodeRoundTrip(t *testing.T) {
	s := &Session{
		ID:                         "sess-1",
		InitialMaxDynamicTableSize: 4096,
		Blocks:                     [][]byte{{0x82, 0x86, 0x84}, {0xbe}},
	}

	data, err := Encode(s)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.ID != s.ID || got.InitialMaxDynamicTableSize != s.InitialMaxDynamicTableSize {
		t.Fatalf("got %+v, want %+v", got, s)
	}
	if len(got.Blocks) != len(s.Blocks) {
		t.Fatalf("got %d blocks, want %d", len(got.Blocks), len(s.Blocks))
	}
}

func TestDecodeJSONFallback(t *testing.T) {
	data := []byte(`{"id":"sess-json","initial_max_dynamic_table_size":2048,"blocks":[]}`)
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.ID != "sess-json" || got.InitialMaxDynamicTableSize != 2048 {
		t.Fatalf("got %+v", got)
	}
}

func TestDecodeEmptyFails(t *testing.T) {
	if _, err := Decode(nil); err == nil {
		t.Fatal("expected error decoding empty data")
	}
}
