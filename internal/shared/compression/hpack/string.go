package hpack

import (
	"fmt"
	"unicode/utf8"

	"drip/internal/shared/compression/huffman"
)

// decodeString decodes an RFC 7541 §5.2 string literal: a 1-bit Huffman
// flag, a 7-bit-prefixed length, then that many raw bytes. maxLen bounds the
// claimed length before any bytes are read, so a corrupt or hostile length
// field can't be used to justify an oversized allocation downstream.
func decodeString(c *cursor, maxLen int) ([]byte, error) {
	b, ok := c.peek()
	if !ok {
		return nil, newError(StringUnderflow, nil)
	}
	isHuffman := b&0x80 != 0

	length, err := decodeInteger(c, 7)
	if err != nil {
		return nil, err
	}
	if length > maxLen {
		return nil, newError(StringUnderflow, fmt.Errorf("length %d exceeds maximum %d", length, maxLen))
	}

	raw, ok := c.take(length)
	if !ok {
		return nil, newError(StringUnderflow, nil)
	}

	if !isHuffman {
		return raw, nil
	}

	decoded, err := huffman.Decode(raw)
	if err != nil {
		return nil, newError(InvalidHuffmanCode, err)
	}
	return decoded, nil
}

// validateName decodes a literal header name as UTF-8, the minimum check
// this layer applies before handing the name off to an HTTP-semantic
// collaborator that may impose stricter token rules.
func validateName(raw []byte) (string, error) {
	if !utf8.Valid(raw) {
		return "", newError(InvalidUtf8, nil)
	}
	return string(raw), nil
}
