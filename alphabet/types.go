package alphabet

import (
	"errors"
	"sort"
)

// MaxTableSize is the largest table (max symbol + 1) CheckSize accepts.
const MaxTableSize = 1 << 24

// ErrAlphabetTooLarge indicates that a sequence holds a symbol whose value
// would require a look-up table larger than MaxTableSize.
var ErrAlphabetTooLarge = errors.New("alphabet: symbol value exceeds table limit")

// Symbol is the element constraint for bounded-alphabet sequences.
// Any unsigned integer kind is accepted; its value is used directly as a
// table index.
type Symbol interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Frequencies maps a symbol value to its number of occurrences.
// Index i holds the count of symbol i; values beyond the table count as 0.
type Frequencies[T Symbol] []int

// Count returns the occurrences of v, or 0 when v lies outside the table.
// Complexity: O(1).
func (f Frequencies[T]) Count(v T) int {
	if uint64(v) >= uint64(len(f)) {
		return 0
	}

	return f[int(v)]
}

// Decrement consumes one occurrence of v and returns the remaining count.
// Counts never drop below zero.
// Complexity: O(1).
func (f Frequencies[T]) Decrement(v T) int {
	if uint64(v) >= uint64(len(f)) {
		return 0
	}
	i := int(v)
	if f[i] > 0 {
		f[i]--
	}

	return f[i]
}

// Total returns the sum of all counts.
// Complexity: O(σ).
func (f Frequencies[T]) Total() int {
	var sum int
	for _, c := range f {
		sum += c
	}

	return sum
}

// Clone returns an independent copy, suitable as a private decaying view.
func (f Frequencies[T]) Clone() Frequencies[T] {
	if f == nil {
		return nil
	}
	out := make(Frequencies[T], len(f))
	copy(out, f)

	return out
}

// PositionIndex maps a symbol value to the ascending list of indexes at
// which it occurs.
type PositionIndex[T Symbol] [][]int

// Of returns the positions of v (nil when v never occurs).
// Complexity: O(1).
func (p PositionIndex[T]) Of(v T) []int {
	if uint64(v) >= uint64(len(p)) {
		return nil
	}

	return p[int(v)]
}

// Next returns the first position of v that is >= from.
// Complexity: O(log k) where k is the number of occurrences of v.
func (p PositionIndex[T]) Next(v T, from int) (int, bool) {
	list := p.Of(v)
	i := sort.SearchInts(list, from)
	if i == len(list) {
		return 0, false
	}

	return list[i], true
}
