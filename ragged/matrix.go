package ragged

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// ErrCorruptOffsets indicates that the offsets index violates the CSR invariants.
var ErrCorruptOffsets = errors.New("ragged: corrupt offsets index")

// Matrix stores rows of T contiguously. The zero value is not ready for use;
// create matrices with New, WithCapacity or FromRows.
type Matrix[T any] struct {
	items   []T   // all rows, back to back
	offsets []int // len == rows+1, offsets[0] == 0
}

// New returns an empty matrix.
// Complexity: O(1).
func New[T any]() *Matrix[T] {
	return &Matrix[T]{offsets: []int{0}}
}

// WithCapacity returns an empty matrix with room for rows rows holding
// items elements in total.
// Complexity: O(rows + items) allocation.
func WithCapacity[T any](rows, items int) *Matrix[T] {
	offsets := make([]int, 1, rows+1)

	return &Matrix[T]{items: make([]T, 0, items), offsets: offsets}
}

// FromRows builds a matrix holding a copy of every row, pre-sized exactly.
// Complexity: O(total items).
func FromRows[T any](rows [][]T) *Matrix[T] {
	var total int
	for _, r := range rows {
		total += len(r)
	}
	m := WithCapacity[T](len(rows), total)
	for _, r := range rows {
		m.Push(r)
	}

	return m
}

// Len returns the number of rows.
func (m *Matrix[T]) Len() int {
	return len(m.offsets) - 1
}

// IsEmpty reports whether the matrix holds no rows.
func (m *Matrix[T]) IsEmpty() bool {
	return m.Len() == 0
}

// Items returns the total number of stored elements across all rows.
func (m *Matrix[T]) Items() int {
	return len(m.items)
}

// Push appends a copy of row as a new last row.
// Complexity: O(len(row)) amortized.
func (m *Matrix[T]) Push(row []T) {
	m.items = append(m.items, row...)
	m.offsets = append(m.offsets, len(m.items))
}

// Pop removes the last row and returns an owned copy of its contents.
// Popping an empty matrix returns an empty row.
// Complexity: O(len(row)).
func (m *Matrix[T]) Pop() []T {
	if m.IsEmpty() {
		return []T{}
	}
	m.offsets = m.offsets[:len(m.offsets)-1]
	start := m.offsets[len(m.offsets)-1]
	row := make([]T, len(m.items)-start)
	copy(row, m.items[start:])
	clear(m.items[start:]) // release references held by popped elements
	m.items = m.items[:start]

	return row
}

// Row returns row i as a view into the backing buffer.
// Panics if i is out of range.
// Complexity: O(1).
func (m *Matrix[T]) Row(i int) []T {
	m.mustRow(i)

	return m.items[m.offsets[i]:m.offsets[i+1]:m.offsets[i+1]]
}

// Get is the checked variant of Row.
func (m *Matrix[T]) Get(i int) ([]T, bool) {
	if i < 0 || i >= m.Len() {
		return nil, false
	}

	return m.Row(i), true
}

// Span returns rows [i, j) as one contiguous view.
// Panics unless 0 <= i <= j <= Len().
// Complexity: O(1).
func (m *Matrix[T]) Span(i, j int) []T {
	if i < 0 || j < i || j > m.Len() {
		panic(fmt.Sprintf("ragged: span [%d,%d) out of range [0,%d]", i, j, m.Len()))
	}

	return m.items[m.offsets[i]:m.offsets[j]:m.offsets[j]]
}

// SpanClosed returns rows [i, j] as one contiguous view.
// Panics unless 0 <= i <= j < Len().
func (m *Matrix[T]) SpanClosed(i, j int) []T {
	m.mustRow(j)

	return m.Span(i, j+1)
}

// SpanFrom returns rows [i, Len()) as one contiguous view.
// i == Len() is allowed and yields an empty view.
// Panics if i is outside [0, Len()].
func (m *Matrix[T]) SpanFrom(i int) []T {
	return m.Span(i, m.Len())
}

// All iterates rows in order as (index, view) pairs.
func (m *Matrix[T]) All() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for i := 0; i < m.Len(); i++ {
			if !yield(i, m.Row(i)) {
				return
			}
		}
	}
}

// Reset drops all rows but keeps the allocated capacity.
func (m *Matrix[T]) Reset() {
	clear(m.items)
	m.items = m.items[:0]
	m.offsets = m.offsets[:1]
}

// Validate checks the offsets invariants.
// Complexity: O(rows).
func (m *Matrix[T]) Validate() error {
	if len(m.offsets) == 0 || m.offsets[0] != 0 {
		return fmt.Errorf("Validate: offsets[0]: %w", ErrCorruptOffsets)
	}
	for i := 1; i < len(m.offsets); i++ {
		if m.offsets[i] < m.offsets[i-1] {
			return fmt.Errorf("Validate: offsets[%d] < offsets[%d]: %w", i, i-1, ErrCorruptOffsets)
		}
	}
	if last := m.offsets[len(m.offsets)-1]; last != len(m.items) {
		return fmt.Errorf("Validate: last offset %d != %d items: %w", last, len(m.items), ErrCorruptOffsets)
	}

	return nil
}

// String renders the matrix one row per line, for debugging.
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	for i, row := range m.All() {
		fmt.Fprintf(&sb, "%d: %v\n", i, row)
	}

	return sb.String()
}

func (m *Matrix[T]) mustRow(i int) {
	if i < 0 || i >= m.Len() {
		panic(fmt.Sprintf("ragged: row %d out of range [0,%d)", i, m.Len()))
	}
}
