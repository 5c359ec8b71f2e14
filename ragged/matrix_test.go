package ragged_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lcskit/ragged"
)

// TestMatrix_Push verifies row storage and retrieval.
func TestMatrix_Push(t *testing.T) {
	m := ragged.New[int]()
	m.Push([]int{1, 2, 3})
	m.Push([]int{4, 5, 6})

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []int{1, 2, 3}, m.Row(0))
	assert.Equal(t, []int{4, 5, 6}, m.Row(1))
	assert.Equal(t, 6, m.Items())
	require.NoError(t, m.Validate())
}

// TestMatrix_PushCopies ensures the caller's slice is not aliased.
func TestMatrix_PushCopies(t *testing.T) {
	m := ragged.New[int]()
	row := []int{7, 8}
	m.Push(row)
	row[0] = 99
	assert.Equal(t, []int{7, 8}, m.Row(0))
}

// TestMatrix_Pop checks that popping returns the last row and shrinks the matrix.
func TestMatrix_Pop(t *testing.T) {
	m := ragged.New[int]()
	m.Push([]int{1, 2, 3})
	m.Push([]int{4, 5, 6})

	assert.Equal(t, []int{4, 5, 6}, m.Pop())
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, []int{1, 2, 3}, m.Row(0))
	require.NoError(t, m.Validate())
}

// TestMatrix_PopEmpty returns an empty row instead of failing.
func TestMatrix_PopEmpty(t *testing.T) {
	m := ragged.New[string]()
	row := m.Pop()
	assert.NotNil(t, row)
	assert.Empty(t, row)
	assert.True(t, m.IsEmpty())
}

// TestMatrix_RoundTrip pushes k rows and pops them back in reverse order.
func TestMatrix_RoundTrip(t *testing.T) {
	rows := [][]int{{1}, {}, {2, 3, 4}, {5, 6}, {}, {7}}
	m := ragged.New[int]()
	for _, r := range rows {
		m.Push(r)
	}
	require.Equal(t, len(rows), m.Len())

	for i := len(rows) - 1; i >= 0; i-- {
		got := m.Pop()
		assert.Equal(t, len(rows[i]), len(got), "row %d", i)
		if len(rows[i]) > 0 {
			assert.Equal(t, rows[i], got, "row %d", i)
		}
		require.NoError(t, m.Validate())
	}
	assert.True(t, m.IsEmpty())
	assert.Equal(t, 0, m.Items())
}

// TestMatrix_PopOwnership ensures a popped row survives later pushes.
func TestMatrix_PopOwnership(t *testing.T) {
	m := ragged.New[int]()
	m.Push([]int{1, 2})
	popped := m.Pop()
	m.Push([]int{9, 9})
	assert.Equal(t, []int{1, 2}, popped)
}

// TestMatrix_Spans covers half-open, closed and open-ended ranges.
func TestMatrix_Spans(t *testing.T) {
	m := ragged.FromRows([][]int{{1, 2, 3}, {4, 5, 6}, {}, {7}})

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, m.Span(0, 2))
	assert.Equal(t, []int{4, 5, 6, 7}, m.SpanClosed(1, 3))
	assert.Equal(t, []int{7}, m.SpanFrom(2))
	assert.Empty(t, m.SpanFrom(m.Len()), "SpanFrom(Len) is an empty view")
	assert.Empty(t, m.Span(1, 1))
}

// TestMatrix_SpanIsView verifies that spans do not copy.
func TestMatrix_SpanIsView(t *testing.T) {
	m := ragged.FromRows([][]int{{1}, {2}})
	v := m.Span(0, 2)
	v[1] = 42
	assert.Equal(t, []int{42}, m.Row(1))
}

// TestMatrix_RowCapacityIsolated ensures appending to a row view cannot clobber the next row.
func TestMatrix_RowCapacityIsolated(t *testing.T) {
	m := ragged.FromRows([][]int{{1}, {2}})
	r := m.Row(0)
	_ = append(r, 100)
	assert.Equal(t, []int{2}, m.Row(1))
}

// TestMatrix_OutOfRangePanics treats bad indexes as programmer errors.
func TestMatrix_OutOfRangePanics(t *testing.T) {
	m := ragged.FromRows([][]int{{1}, {2}})

	assert.Panics(t, func() { m.Row(2) })
	assert.Panics(t, func() { m.Row(-1) })
	assert.Panics(t, func() { m.Span(1, 3) })
	assert.Panics(t, func() { m.Span(2, 1) })
	assert.Panics(t, func() { m.SpanClosed(0, 2) })
	assert.Panics(t, func() { m.SpanFrom(3) })

	_, ok := m.Get(2)
	assert.False(t, ok)
	row, ok := m.Get(1)
	assert.True(t, ok)
	assert.Equal(t, []int{2}, row)
}

// TestMatrix_All iterates rows in order and supports early exit.
func TestMatrix_All(t *testing.T) {
	m := ragged.FromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	var got [][]int
	for _, row := range m.All() {
		got = append(got, row)
	}
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}}, got)

	var seen int
	for range m.All() {
		seen++
		break
	}
	assert.Equal(t, 1, seen)
}

// TestMatrix_FromRowsEqual checks structural equality of independently built matrices.
func TestMatrix_FromRowsEqual(t *testing.T) {
	a := ragged.FromRows([][]int{{0}, {1, 2}, {}, {3}})
	b := ragged.New[int]()
	b.Push([]int{0})
	b.Push([]int{1, 2})
	b.Push(nil)
	b.Push([]int{3})
	assert.Equal(t, a.String(), b.String())
	assert.Equal(t, a.Span(0, a.Len()), b.Span(0, b.Len()))
}

// TestMatrix_Reset keeps the matrix usable.
func TestMatrix_Reset(t *testing.T) {
	m := ragged.FromRows([][]int{{1}, {2, 3}})
	m.Reset()
	assert.True(t, m.IsEmpty())
	m.Push([]int{4})
	assert.Equal(t, []int{4}, m.Row(0))
	require.NoError(t, m.Validate())
}

// TestMatrix_ValidateCorrupt detects broken offsets.
func TestMatrix_ValidateCorrupt(t *testing.T) {
	m := ragged.FromRows([][]int{{1, 2}, {3}})
	ragged.CorruptOffsetsForTest(m, 1, 4)
	assert.ErrorIs(t, m.Validate(), ragged.ErrCorruptOffsets)

	m = ragged.FromRows([][]int{{1, 2}, {3}})
	ragged.CorruptOffsetsForTest(m, 2, 2)
	assert.ErrorIs(t, m.Validate(), ragged.ErrCorruptOffsets)

	m = ragged.FromRows([][]int{{1}})
	ragged.CorruptOffsetsForTest(m, 0, 1)
	assert.ErrorIs(t, m.Validate(), ragged.ErrCorruptOffsets)
}
