package alphabet_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lcskit/alphabet"
)

// TestCounts_Basic checks one-pass counting and max+1 table sizing.
func TestCounts_Basic(t *testing.T) {
	lut := alphabet.Counts([]uint8{0, 1, 1, 1, 2, 3, 4, 4, 4})
	require.Len(t, lut, 5, "table sized to max symbol + 1")
	assert.Equal(t, alphabet.Frequencies[uint8]{1, 3, 1, 1, 3}, lut)

	lut = alphabet.Counts([]uint8{3, 0, 1, 2, 1, 2})
	assert.Equal(t, alphabet.Frequencies[uint8]{1, 2, 2, 1}, lut)
}

// TestCounts_Empty verifies that an empty sequence yields an empty table.
func TestCounts_Empty(t *testing.T) {
	assert.Empty(t, alphabet.Counts([]uint8{}))
	assert.Equal(t, 0, alphabet.Size[uint16]())
	assert.Equal(t, 0, alphabet.Counts([]uint8(nil)).Count(7), "out-of-table symbol counts as zero")
}

// TestCountsN_Aligned checks explicit sizing and that oversized symbols are skipped.
func TestCountsN_Aligned(t *testing.T) {
	lut := alphabet.CountsN([]uint32{1, 1, 9}, 4)
	assert.Equal(t, alphabet.Frequencies[uint32]{0, 2, 0, 0}, lut)
}

// TestSize_Generic covers wide unsigned element types.
func TestSize_Generic(t *testing.T) {
	assert.Equal(t, 1001, alphabet.Size([]uint64{5, 1000, 3}))
	assert.Equal(t, 8, alphabet.Size([]uint{1}, []uint{7, 2}))
}

// TestCheckSize rejects symbols that would require an oversized table.
func TestCheckSize(t *testing.T) {
	require.NoError(t, alphabet.CheckSize([]uint64{0, 255, alphabet.MaxTableSize - 1}))
	err := alphabet.CheckSize([]uint64{1}, []uint64{2, alphabet.MaxTableSize})
	assert.ErrorIs(t, err, alphabet.ErrAlphabetTooLarge)
}

// TestPositions verifies ordered lists with exact pre-sizing.
func TestPositions(t *testing.T) {
	lut := alphabet.Positions([]uint8{0, 0, 0, 1, 1, 1, 2, 2, 2, 3, 3})
	require.Len(t, lut, 4)
	assert.Equal(t, []int{0, 1, 2}, lut.Of(0))
	assert.Equal(t, []int{3, 4, 5}, lut.Of(1))
	assert.Equal(t, []int{6, 7, 8}, lut.Of(2))
	assert.Equal(t, []int{9, 10}, lut.Of(3))
	assert.Nil(t, lut.Of(4))
	for v := range lut {
		assert.Equal(t, len(lut[v]), cap(lut[v]), "list %d must not over-allocate", v)
	}
}

// TestPositionIndex_Next checks first-occurrence-at-or-after look-ups.
func TestPositionIndex_Next(t *testing.T) {
	lut := alphabet.Positions([]uint8{1, 0, 1, 1, 0})

	pos, ok := lut.Next(1, 0)
	assert.True(t, ok)
	assert.Equal(t, 0, pos)

	pos, ok = lut.Next(1, 1)
	assert.True(t, ok)
	assert.Equal(t, 2, pos)

	pos, ok = lut.Next(0, 2)
	assert.True(t, ok)
	assert.Equal(t, 4, pos)

	_, ok = lut.Next(0, 5)
	assert.False(t, ok)
	_, ok = lut.Next(9, 0)
	assert.False(t, ok, "unknown symbol")
}

// TestFilterShared keeps order and duplicates of the first argument.
func TestFilterShared(t *testing.T) {
	assert.Equal(t, []uint8{1, 2, 3}, alphabet.FilterShared([]uint8{1, 2, 3}, []uint8{3, 0, 1, 0, 2}))
	assert.Equal(t,
		[]uint8{1, 6, 9, 7, 2, 6, 2, 2, 3, 3, 8, 9, 8},
		alphabet.FilterShared(
			[]uint8{1, 6, 9, 7, 2, 6, 2, 4, 2, 3, 3, 8, 9, 4, 8},
			[]uint8{8, 5, 1, 0, 2, 9, 8, 3, 7, 5, 6, 8, 3, 6, 3},
		))
	assert.Empty(t, alphabet.FilterShared([]uint8{}, []uint8{1}))
	assert.Empty(t, alphabet.FilterShared([]uint8{1}, nil))
}

// TestSharedBound sums per-symbol minima.
func TestSharedBound(t *testing.T) {
	a := alphabet.Counts([]uint8{0, 0, 1, 2, 2, 2})
	b := alphabet.Counts([]uint8{2, 0, 3, 3})
	assert.Equal(t, 2, alphabet.SharedBound(a, b))
	assert.Equal(t, 0, alphabet.SharedBound(a, nil))
}

// TestFrequencies_Decrement models a private decaying view.
func TestFrequencies_Decrement(t *testing.T) {
	base := alphabet.Counts([]uint8{1, 1, 2})
	view := base.Clone()

	assert.Equal(t, 1, view.Decrement(1))
	assert.Equal(t, 0, view.Decrement(1))
	assert.Equal(t, 0, view.Decrement(1), "never negative")
	assert.Equal(t, 0, view.Decrement(42), "out-of-table symbol is a no-op")
	assert.Equal(t, 1, view.Total())

	assert.Equal(t, 3, base.Total(), "clone must not alias the original")
}

// TestRemoveFirstMatching checks swap-remove semantics.
func TestRemoveFirstMatching(t *testing.T) {
	set := []int{1, 2, 3, 4, 5}
	set = alphabet.RemoveAllMatching(set, []int{1, 3, 5})
	assert.Equal(t, []int{4, 2}, set, "swap-remove breaks order deterministically")

	set = []int{1, 2}
	assert.Equal(t, []int{1, 2}, alphabet.RemoveFirstMatching(set, 9), "absent value leaves set untouched")
	assert.Empty(t, alphabet.RemoveFirstMatching([]int{}, 1))
}

// TestMarker_Filter must agree with FilterShared and be reusable.
func TestMarker_Filter(t *testing.T) {
	seq := []uint32{4, 1, 7, 1, 3}
	other := []uint32{1, 3, 9}

	m := alphabet.NewMarker[uint32](10)
	m.Mark(other)
	assert.Equal(t, alphabet.FilterShared(seq, other), m.Filter(nil, seq))
	m.Unmark(other)

	for v := uint32(0); v < 12; v++ {
		assert.False(t, m.Has(v), "marker must be clean after Unmark")
	}
}

// TestSize_Overflow panics instead of wrapping the table size to zero.
func TestSize_Overflow(t *testing.T) {
	huge := []uint64{3, math.MaxUint64}
	assert.Panics(t, func() { alphabet.Size(huge) })
	assert.Panics(t, func() { alphabet.Positions(huge) })
	assert.Panics(t, func() { alphabet.Counts(huge) })
	assert.ErrorIs(t, alphabet.CheckSize(huge), alphabet.ErrAlphabetTooLarge)
}

// TestPair_Before requires both indexes to increase.
func TestPair_Before(t *testing.T) {
	p := alphabet.Pair{Source: 1, Target: 1}
	assert.True(t, p.Before(alphabet.Pair{Source: 2, Target: 3}))
	assert.False(t, p.Before(alphabet.Pair{Source: 2, Target: 1}))
	assert.False(t, p.Before(alphabet.Pair{Source: 1, Target: 2}))
	assert.False(t, p.Before(p))
}
