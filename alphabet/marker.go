package alphabet

// Marker is a reusable membership table over symbols [0, size).
// It lets a worker run many FilterShared-style intersections against
// the same universe without allocating a frequency table each time.
// A Marker is not safe for concurrent use; give each goroutine its own.
type Marker[T Symbol] struct {
	marks []bool
}

// NewMarker allocates a Marker for symbols below size.
func NewMarker[T Symbol](size int) *Marker[T] {
	return &Marker[T]{marks: make([]bool, size)}
}

// Mark flags every symbol of seq. Symbols >= size are ignored.
func (m *Marker[T]) Mark(seq []T) {
	for _, v := range seq {
		if uint64(v) < uint64(len(m.marks)) {
			m.marks[int(v)] = true
		}
	}
}

// Unmark clears the flags set by Mark(seq), leaving the Marker reusable
// in O(len(seq)) instead of O(size).
func (m *Marker[T]) Unmark(seq []T) {
	for _, v := range seq {
		if uint64(v) < uint64(len(m.marks)) {
			m.marks[int(v)] = false
		}
	}
}

// Has reports whether v is currently marked.
func (m *Marker[T]) Has(v T) bool {
	return uint64(v) < uint64(len(m.marks)) && m.marks[int(v)]
}

// Filter appends to dst the elements of seq that are marked and returns
// the extended slice. With other marked beforehand this equals
// FilterShared(seq, other).
func (m *Marker[T]) Filter(dst, seq []T) []T {
	for _, v := range seq {
		if m.Has(v) {
			dst = append(dst, v)
		}
	}

	return dst
}
