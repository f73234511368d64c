package hpack

// ErrorKind identifies the class of decode failure, independent of any wrapped
// cause. Callers that need to react differently to, say, a corrupt table
// index versus a truncated buffer should switch on Kind rather than parse
// Error strings.
type ErrorKind uint8

const (
	InvalidRepresentation ErrorKind = iota
	InvalidIntegerPrefix
	InvalidTableIndex
	InvalidHuffmanCode
	InvalidUtf8
	InvalidStatusCode
	InvalidPseudoheader
	InvalidMaxDynamicSize
	IntegerUnderflow
	IntegerOverflow
	StringUnderflow
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidRepresentation:
		return "invalid representation"
	case InvalidIntegerPrefix:
		return "invalid integer prefix"
	case InvalidTableIndex:
		return "invalid table index"
	case InvalidHuffmanCode:
		return "invalid huffman code"
	case InvalidUtf8:
		return "invalid utf-8"
	case InvalidStatusCode:
		return "invalid status code"
	case InvalidPseudoheader:
		return "invalid pseudo-header"
	case InvalidMaxDynamicSize:
		return "invalid max dynamic table size"
	case IntegerUnderflow:
		return "integer underflow"
	case IntegerOverflow:
		return "integer overflow"
	case StringUnderflow:
		return "string underflow"
	default:
		return "unknown hpack error"
	}
}

// DecoderError reports why Decode stopped. Kind is always set; Err carries
// an optional underlying cause (a truncated Huffman code, an out-of-range
// length) for diagnostics.
type DecoderError struct {
	Kind ErrorKind
	Err  error
}

func newError(kind ErrorKind, err error) *DecoderError {
	return &DecoderError{Kind: kind, Err: err}
}

func (e *DecoderError) Error() string {
	if e.Err != nil {
		return "hpack: " + e.Kind.String() + ": " + e.Err.Error()
	}
	return "hpack: " + e.Kind.String()
}

func (e *DecoderError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a *DecoderError with the same Kind, so
// callers can do errors.Is(err, &hpack.DecoderError{Kind: hpack.InvalidTableIndex}).
func (e *DecoderError) Is(target error) bool {
	t, ok := target.(*DecoderError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}
