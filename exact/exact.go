package exact

import "fmt"

// Engine holds the LCS of one (source, target) pair. All work happens in
// New; the engine is read-only afterwards and safe for concurrent readers.
type Engine[T comparable] struct {
	source, target []T
	mode           MemoryMode

	table []uint16 // FullMatrix only: (n+1)*(m+1) cells, row-major
	cols  int      // m+1

	length int
	seq    []T // Linear only: reconstructed subsequence
}

// New computes the LCS of source and target.
// Implementation:
//   - Stage 1: resolve options and reject inputs longer than MaxLength.
//   - Stage 2: fill the table (FullMatrix) or run Hirschberg (Linear).
//
// Errors:
//   - ErrCapacityExceeded, wrapped with both lengths.
//
// Complexity: O(n·m) time; memory per MemoryMode.
func New[T comparable](source, target []T, opts ...Option) (*Engine[T], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n, m := len(source), len(target)
	if n > o.MaxLength || m > o.MaxLength {
		return nil, fmt.Errorf("New: lengths %d and %d, limit %d: %w", n, m, o.MaxLength, ErrCapacityExceeded)
	}

	e := &Engine[T]{source: source, target: target, mode: o.MemoryMode, cols: m + 1}
	if o.MemoryMode == Linear {
		e.seq = hirschberg(source, target)
		e.length = len(e.seq)

		return e, nil
	}

	e.table = fill(source, target)
	e.length = int(e.table[n*e.cols+m])

	return e, nil
}

// fill builds the full table in one allocation.
func fill[T comparable](a, b []T) []uint16 {
	n, m := len(a), len(b)
	w := m + 1
	table := make([]uint16, (n+1)*w)
	for x := 1; x <= n; x++ {
		up := table[(x-1)*w : x*w]
		row := table[x*w : (x+1)*w]
		sx := a[x-1]
		for y := 1; y <= m; y++ {
			if sx == b[y-1] {
				row[y] = up[y-1] + 1
			} else {
				row[y] = max(up[y], row[y-1])
			}
		}
	}

	return table
}

// Len returns the LCS length.
func (e *Engine[T]) Len() int { return e.length }

// IsEmpty reports whether the LCS is empty.
func (e *Engine[T]) IsEmpty() bool { return e.length == 0 }

// MemoryMode returns the mode the engine was built with.
func (e *Engine[T]) MemoryMode() MemoryMode { return e.mode }

// Subsequence returns one longest common subsequence as a fresh slice.
// In FullMatrix mode it is the backtrace described in the package doc.
// Complexity: O(n+m) FullMatrix, O(k) Linear.
func (e *Engine[T]) Subsequence() []T {
	if e.mode == Linear {
		out := make([]T, len(e.seq))
		copy(out, e.seq)

		return out
	}

	out := make([]T, e.length)
	k := e.length
	x, y := len(e.source), len(e.target)
	for x > 0 && y > 0 {
		switch {
		case e.source[x-1] == e.target[y-1]:
			k--
			out[k] = e.source[x-1]
			x--
			y--
		case e.at(x-1, y) > e.at(x, y-1):
			x--
		default:
			y--
		}
	}

	return out
}

// Table returns a row-major copy of the DP table with len(target)+1
// columns. ok is false in Linear mode.
func (e *Engine[T]) Table() (cells []uint16, ok bool) {
	if e.table == nil {
		return nil, false
	}
	cells = make([]uint16, len(e.table))
	copy(cells, e.table)

	return cells, true
}

func (e *Engine[T]) at(x, y int) uint16 {
	return e.table[x*e.cols+y]
}
