package hpack

// StaticTableSize is the number of entries in the RFC 7541 Appendix A static
// table. Indices 1..StaticTableSize address it directly; indices above that
// fall through to the dynamic table.
const StaticTableSize = 61

// staticTable is 1-indexed; index 0 is unused padding so staticTable[i]
// matches the wire index directly.
var staticTable = [StaticTableSize + 1]Entry{
	{},
	{Kind: KindAuthority},
	{Kind: KindMethod, Value: "GET"},
	{Kind: KindMethod, Value: "POST"},
	{Kind: KindPath, Value: "/"},
	{Kind: KindPath, Value: "/index.html"},
	{Kind: KindScheme, Value: "http"},
	{Kind: KindScheme, Value: "https"},
	{Kind: KindStatus, Value: "200"},
	{Kind: KindStatus, Value: "204"},
	{Kind: KindStatus, Value: "206"},
	{Kind: KindStatus, Value: "304"},
	{Kind: KindStatus, Value: "400"},
	{Kind: KindStatus, Value: "404"},
	{Kind: KindStatus, Value: "500"},
	{Kind: KindHeader, Name: "accept-charset"},
	{Kind: KindHeader, Name: "accept-encoding", Value: "gzip, deflate"},
	{Kind: KindHeader, Name: "accept-language"},
	{Kind: KindHeader, Name: "accept-ranges"},
	{Kind: KindHeader, Name: "accept"},
	{Kind: KindHeader, Name: "access-control-allow-origin"},
	{Kind: KindHeader, Name: "age"},
	{Kind: KindHeader, Name: "allow"},
	{Kind: KindHeader, Name: "authorization"},
	{Kind: KindHeader, Name: "cache-control"},
	{Kind: KindHeader, Name: "content-disposition"},
	{Kind: KindHeader, Name: "content-encoding"},
	{Kind: KindHeader, Name: "content-language"},
	{Kind: KindHeader, Name: "content-length"},
	{Kind: KindHeader, Name: "content-location"},
	{Kind: KindHeader, Name: "content-range"},
	{Kind: KindHeader, Name: "content-type"},
	{Kind: KindHeader, Name: "cookie"},
	{Kind: KindHeader, Name: "date"},
	{Kind: KindHeader, Name: "etag"},
	{Kind: KindHeader, Name: "expect"},
	{Kind: KindHeader, Name: "expires"},
	{Kind: KindHeader, Name: "from"},
	{Kind: KindHeader, Name: "host"},
	{Kind: KindHeader, Name: "if-match"},
	{Kind: KindHeader, Name: "if-modified-since"},
	{Kind: KindHeader, Name: "if-none-match"},
	{Kind: KindHeader, Name: "if-range"},
	{Kind: KindHeader, Name: "if-unmodified-since"},
	{Kind: KindHeader, Name: "last-modified"},
	{Kind: KindHeader, Name: "link"},
	{Kind: KindHeader, Name: "location"},
	{Kind: KindHeader, Name: "max-forwards"},
	{Kind: KindHeader, Name: "proxy-authenticate"},
	{Kind: KindHeader, Name: "proxy-authorization"},
	{Kind: KindHeader, Name: "range"},
	{Kind: KindHeader, Name: "referer"},
	{Kind: KindHeader, Name: "refresh"},
	{Kind: KindHeader, Name: "retry-after"},
	{Kind: KindHeader, Name: "server"},
	{Kind: KindHeader, Name: "set-cookie"},
	{Kind: KindHeader, Name: "strict-transport-security"},
	{Kind: KindHeader, Name: "transfer-encoding"},
	{Kind: KindHeader, Name: "user-agent"},
	{Kind: KindHeader, Name: "vary"},
	{Kind: KindHeader, Name: "via"},
	{Kind: KindHeader, Name: "www-authenticate"},
}

// staticGet looks up a 1-based static table index. k must already be known
// to be in [1, StaticTableSize]; callers route through lookup, not this
// directly, except in tests.
func staticGet(k int) (Entry, bool) {
	if k < 1 || k > StaticTableSize {
		return Entry{}, false
	}
	return staticTable[k], true
}
