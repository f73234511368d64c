package hpack

// dynamicTable is the FIFO RFC 7541 §2.3.2 dynamic table. entries[0] is
// always the most recently inserted entry; new entries are pushed to the
// front and eviction always removes from the back — a push-front/pop-back
// FIFO, matching a VecDeque's front/back semantics.
type dynamicTable struct {
	entries []Entry
	size    int
	maxSize int
}

func newDynamicTable(maxSize int) *dynamicTable {
	return &dynamicTable{maxSize: maxSize}
}

// insert adds e to the table, evicting from the back until it fits. An
// entry larger than maxSize on its own empties the table instead (RFC 7541
// §4.4): it is never stored, but its predecessors don't survive either.
func (dt *dynamicTable) insert(e Entry) {
	s := e.Size()
	if s > dt.maxSize {
		dt.clear()
		return
	}
	for dt.size+s > dt.maxSize {
		dt.evictOldest()
	}
	dt.entries = append([]Entry{e}, dt.entries...)
	dt.size += s
}

func (dt *dynamicTable) evictOldest() {
	if len(dt.entries) == 0 {
		return
	}
	last := len(dt.entries) - 1
	dt.size -= dt.entries[last].Size()
	dt.entries = dt.entries[:last]
}

func (dt *dynamicTable) clear() {
	dt.entries = nil
	dt.size = 0
}

// setMaxSize changes the table's capacity, evicting from the back as needed
// to bring size back within the new bound. Shrinking to 0 empties the
// table entirely.
func (dt *dynamicTable) setMaxSize(m int) {
	dt.maxSize = m
	for dt.size > dt.maxSize {
		dt.evictOldest()
	}
}

// get returns the i-th newest dynamic entry, 1-based (i.e. i=1 is the most
// recent insertion), matching the dynamic portion of the merged index space
// once the static table's 61 slots are subtracted out by the caller.
func (dt *dynamicTable) get(i int) (Entry, bool) {
	if i < 1 || i > len(dt.entries) {
		return Entry{}, false
	}
	return dt.entries[i-1], true
}

func (dt *dynamicTable) len() int {
	return len(dt.entries)
}
