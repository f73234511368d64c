package hpack

import "testing"

func TestStaticGetKnownEntries(t *testing.T) {
	tests := []struct {
		index int
		kind  Kind
		name  string
		value string
	}{
		{1, KindAuthority, "", ""},
		{2, KindMethod, "", "GET"},
		{3, KindMethod, "", "POST"},
		{4, KindPath, "", "/"},
		{8, KindStatus, "", "200"},
		{15, KindHeader, "accept-charset", ""},
		{16, KindHeader, "accept-encoding", "gzip, deflate"},
		{61, KindHeader, "www-authenticate", ""},
	}

	for _, tt := range tests {
		e, ok := staticGet(tt.index)
		if !ok {
			t.Fatalf("index %d: not found", tt.index)
		}
		if e.Kind != tt.kind || e.Name != tt.name || e.Value != tt.value {
			t.Errorf("index %d: got %+v, want {%v %q %q}", tt.index, e, tt.kind, tt.name, tt.value)
		}
	}
}

func TestStaticGetOutOfRange(t *testing.T) {
	for _, idx := range []int{0, -1, 62, 1000} {
		if _, ok := staticGet(idx); ok {
			t.Errorf("index %d: expected not found", idx)
		}
	}
}

func TestStaticTableSizeConstant(t *testing.T) {
	if StaticTableSize != 61 {
		t.Fatalf("StaticTableSize = %d, want 61", StaticTableSize)
	}
	if len(staticTable) != StaticTableSize+1 {
		t.Fatalf("len(staticTable) = %d, want %d", len(staticTable), StaticTableSize+1)
	}
}
