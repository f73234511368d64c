// Package hpack decodes HPACK (RFC 7541) header blocks: the representation
// framing, the static and dynamic tables, and the integer/string primitives
// they're built from. It does not encode, does not span multiple blocks
// into one logical stream, and does not police HTTP-layer semantics beyond
// the checks named in the error kinds below — those are a caller's concern.
package hpack

// Decoder holds the state RFC 7541 requires to survive across header
// blocks on the same connection: the dynamic table and the ceiling on the
// next size update the peer may request. A Decoder is not safe for
// concurrent use; each connection (or, for offline replay, each captured
// session) owns one.
type Decoder struct {
	table           *dynamicTable
	pendingMax      *int
	maxStringLength int
}

// New returns a Decoder with the given initial dynamic table size and the
// default string-length guard. Most callers that don't need Config's extra
// knob should use this directly.
func New(initialMaxSize int) *Decoder {
	return &Decoder{
		table:           newDynamicTable(initialMaxSize),
		maxStringLength: DefaultMaxStringLength,
	}
}

// NewWithConfig returns a Decoder built from cfg, after validating it.
func NewWithConfig(cfg Config) (*Decoder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Decoder{
		table:           newDynamicTable(cfg.InitialMaxDynamicTableSize),
		maxStringLength: cfg.MaxStringLength,
	}, nil
}

// QueueSizeUpdate records the new ceiling a peer is now permitted to
// request via a dynamic-table-size-update representation, mirroring a
// locally advertised SETTINGS_HEADER_TABLE_SIZE. Calling it more than once
// before the next accepted update retains the minimum of all values queued
// so far: the ceiling can only ever tighten between accepted updates.
func (d *Decoder) QueueSizeUpdate(max int) {
	if d.pendingMax == nil || max < *d.pendingMax {
		m := max
		d.pendingMax = &m
	}
}

// DynamicTableSize reports the dynamic table's current total entry size,
// in octets.
func (d *Decoder) DynamicTableSize() int {
	return d.table.size
}

// lookup resolves a 1-based index in the merged static/dynamic index
// space: 1..StaticTableSize addresses the static table directly, anything
// above falls through to the dynamic table.
func (d *Decoder) lookup(k int) (Entry, bool) {
	if k <= 0 {
		return Entry{}, false
	}
	if k <= StaticTableSize {
		return staticGet(k)
	}
	return d.table.get(k - StaticTableSize)
}

// Decode parses a single HPACK header block, invoking sink once per decoded
// header field in wire order. It stops and returns the first error
// encountered; sink is never called again after that.
func (d *Decoder) Decode(block []byte, sink func(Entry)) error {
	c := newCursor(block)
	canResize := true
	updateApplied := false

	for !c.done() {
		b, _ := c.peek()

		switch {
		case b&0x80 != 0: // Indexed Header Field: 1xxxxxxx
			canResize = false
			e, err := d.decodeIndexed(c)
			if err != nil {
				return err
			}
			sink(e)

		case b&0xc0 == 0x40: // Literal Header Field with Incremental Indexing: 01xxxxxx
			canResize = false
			e, err := d.decodeLiteral(c, 6, true)
			if err != nil {
				return err
			}
			sink(e)

		case b&0xf0 == 0x00: // Literal Header Field without Indexing: 0000xxxx
			canResize = false
			e, err := d.decodeLiteral(c, 4, false)
			if err != nil {
				return err
			}
			sink(e)

		case b&0xf0 == 0x10: // Literal Header Field Never Indexed: 0001xxxx
			canResize = false
			e, err := d.decodeLiteral(c, 4, false)
			if err != nil {
				return err
			}
			sink(e)

		case b&0xe0 == 0x20: // Dynamic Table Size Update: 001xxxxx
			if !canResize {
				return newError(InvalidMaxDynamicSize, nil)
			}
			if err := d.applySizeUpdate(c); err != nil {
				return err
			}
			updateApplied = true

		default:
			return newError(InvalidRepresentation, nil)
		}
	}

	// A size update accepted anywhere in this block satisfies the ceiling
	// for every update it covered; the next block starts fresh and isn't
	// required to carry one unless QueueSizeUpdate is called again.
	if updateApplied {
		d.pendingMax = nil
	}
	return nil
}

// DecodeAll is a convenience wrapper around Decode that collects the
// decoded entries into a slice instead of streaming them through a sink.
func (d *Decoder) DecodeAll(block []byte) ([]Entry, error) {
	var out []Entry
	err := d.Decode(block, func(e Entry) {
		out = append(out, e)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (d *Decoder) decodeIndexed(c *cursor) (Entry, error) {
	idx, err := decodeInteger(c, 7)
	if err != nil {
		return Entry{}, err
	}
	if idx == 0 {
		return Entry{}, newError(InvalidTableIndex, nil)
	}
	e, ok := d.lookup(idx)
	if !ok {
		return Entry{}, newError(InvalidTableIndex, nil)
	}
	return e, nil
}

// decodeLiteral decodes a literal representation (with or without
// indexing, and never-indexed, which share the same wire shape and differ
// only in whether insert is true). prefixBits is 6 for the with-indexing
// form and 4 for the other two.
func (d *Decoder) decodeLiteral(c *cursor, prefixBits uint8, insert bool) (Entry, error) {
	idx, err := decodeInteger(c, prefixBits)
	if err != nil {
		return Entry{}, err
	}

	var key Key
	if idx == 0 {
		nameBytes, err := decodeString(c, d.maxStringLength)
		if err != nil {
			return Entry{}, err
		}
		name, err := validateName(nameBytes)
		if err != nil {
			return Entry{}, err
		}
		key = Key{Kind: KindHeader, Name: name}
	} else {
		e, ok := d.lookup(idx)
		if !ok {
			return Entry{}, newError(InvalidTableIndex, nil)
		}
		key = e.Key()
	}

	valueBytes, err := decodeString(c, d.maxStringLength)
	if err != nil {
		return Entry{}, err
	}

	entry, err := key.IntoEntry(valueBytes)
	if err != nil {
		return Entry{}, err
	}

	if insert {
		d.table.insert(entry)
	}
	return entry, nil
}

func (d *Decoder) applySizeUpdate(c *cursor) error {
	newMax, err := decodeInteger(c, 5)
	if err != nil {
		return err
	}
	if d.pendingMax == nil || newMax > *d.pendingMax {
		return newError(InvalidMaxDynamicSize, nil)
	}
	d.table.setMaxSize(newMax)
	return nil
}
