package alphabet

import (
	"fmt"
	"math"
)

const panicSizeOverflow = "alphabet: Size: largest symbol + 1 overflows int"

// Size returns the table size needed to index every symbol of seqs:
// the largest value plus one, or 0 when all inputs are empty.
// Panics if that size does not fit an int. The table builders below
// allocate Size slots, so callers holding untrusted symbols run CheckSize
// first.
// Complexity: O(total length).
func Size[T Symbol](seqs ...[]T) int {
	var (
		maxValue uint64
		seen     bool
	)
	for _, seq := range seqs {
		for _, v := range seq {
			if !seen || uint64(v) > maxValue {
				maxValue = uint64(v)
				seen = true
			}
		}
	}
	if !seen {
		return 0
	}
	if maxValue >= math.MaxInt {
		panic(panicSizeOverflow)
	}

	return int(maxValue) + 1
}

// CheckSize verifies that the symbols of seqs fit a table of at most
// MaxTableSize entries.
// Complexity: O(total length).
func CheckSize[T Symbol](seqs ...[]T) error {
	for _, seq := range seqs {
		for i, v := range seq {
			if uint64(v) >= MaxTableSize {
				return fmt.Errorf("symbol %d at index %d: %w", uint64(v), i, ErrAlphabetTooLarge)
			}
		}
	}

	return nil
}

// Counts builds the frequency table of seq, sized to its largest symbol.
// Precondition: symbols are bounded, see CheckSize.
// Complexity: O(n + σ).
func Counts[T Symbol](seq []T) Frequencies[T] {
	return CountsN(seq, Size(seq))
}

// CountsN builds the frequency table of seq with exactly size slots.
// Symbols >= size are not counted. Use it to align the tables of two
// sequences on a shared size.
// Complexity: O(n + size).
func CountsN[T Symbol](seq []T, size int) Frequencies[T] {
	lut := make(Frequencies[T], size)
	for _, v := range seq {
		if uint64(v) < uint64(size) {
			lut[int(v)]++
		}
	}

	return lut
}

// Positions builds the position index of seq. Every list is allocated
// with the exact capacity given by Counts.
// Precondition: symbols are bounded, see CheckSize.
// Complexity: O(n + σ).
func Positions[T Symbol](seq []T) PositionIndex[T] {
	counts := Counts(seq)
	lut := make(PositionIndex[T], len(counts))
	for v, c := range counts {
		if c > 0 {
			lut[v] = make([]int, 0, c)
		}
	}
	for i, v := range seq {
		lut[int(v)] = append(lut[int(v)], i)
	}

	return lut
}

// FilterShared keeps the elements of seq whose value occurs at least once
// in other. Order and duplicates of seq are preserved.
// Complexity: O(len(seq) + len(other) + σ(other)).
func FilterShared[T Symbol](seq, other []T) []T {
	if len(seq) == 0 || len(other) == 0 {
		return []T{}
	}
	otherCounts := Counts(other)
	out := make([]T, 0, len(seq))
	for _, v := range seq {
		if otherCounts.Count(v) != 0 {
			out = append(out, v)
		}
	}

	return out
}

// SharedBound returns Σ min(a[v], b[v]) over all symbols: no common
// subsequence of the two counted sequences can be longer.
// Complexity: O(min(σa, σb)).
func SharedBound[T Symbol](a, b Frequencies[T]) int {
	n := min(len(a), len(b))
	var bound int
	for v := 0; v < n; v++ {
		bound += min(a[v], b[v])
	}

	return bound
}

// RemoveFirstMatching removes the first element equal to v by swapping the
// last element into its slot. The order of set is not preserved.
// It returns the shortened slice (set itself when v is absent).
// Complexity: O(k) search, O(1) removal.
func RemoveFirstMatching[T comparable](set []T, v T) []T {
	for i := range set {
		if set[i] == v {
			last := len(set) - 1
			set[i] = set[last]

			return set[:last]
		}
	}

	return set
}

// RemoveAllMatching applies RemoveFirstMatching once per element of values.
func RemoveAllMatching[T comparable](set []T, values []T) []T {
	for _, v := range values {
		set = RemoveFirstMatching(set, v)
	}

	return set
}
