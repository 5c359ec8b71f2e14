package pairs

import (
	"github.com/katalvlaran/lcskit/alphabet"
	"github.com/katalvlaran/lcskit/ragged"
)

// CountPairs returns the number of candidate pairs Enumerate would produce:
// Σ count_source(v)·count_target(v).
// Symbols must pass alphabet.CheckSize; New checks them before calling it.
// Complexity: O(n + m + σ).
func CountPairs[T alphabet.Symbol](source, target []T) uint64 {
	size := alphabet.Size(source, target)
	sc := alphabet.CountsN(source, size)
	tc := alphabet.CountsN(target, size)

	var total uint64
	for v := range sc {
		total += uint64(sc[v]) * uint64(tc[v])
	}

	return total
}

// Enumerate lists every candidate pair in ID order: grouped by symbol value
// ascending, source index outer loop, target index inner loop.
// Complexity: O(n + m + σ + P).
func Enumerate[T alphabet.Symbol](source, target []T) []Pair {
	sp := alphabet.Positions(source)
	tp := alphabet.Positions(target)

	var total int
	for v := 0; v < min(len(sp), len(tp)); v++ {
		total += len(sp[v]) * len(tp[v])
	}

	out := make([]Pair, 0, total)
	for v := 0; v < min(len(sp), len(tp)); v++ {
		for _, si := range sp[v] {
			for _, ti := range tp[v] {
				out = append(out, Pair{Source: si, Target: ti})
			}
		}
	}

	return out
}

// IndexLookup builds the look-up whose row k lists, in ascending order, the
// IDs i with indexes[i] == k. It has max(indexes)+1 rows (zero for empty
// input); rows for absent values are empty.
// Complexity: O(len(indexes) + max).
func IndexLookup[K alphabet.Symbol](indexes []K) *ragged.Matrix[ID] {
	counts := alphabet.Counts(indexes)
	starts := make([]int, len(counts)+1)
	for k, c := range counts {
		starts[k+1] = starts[k] + c
	}

	flat := make([]ID, len(indexes))
	cursor := make([]int, len(counts))
	copy(cursor, starts)
	for id, k := range indexes {
		flat[cursor[k]] = ID(id)
		cursor[k]++
	}

	m := ragged.WithCapacity[ID](len(counts), len(indexes))
	for k := range counts {
		m.Push(flat[starts[k]:starts[k+1]])
	}

	return m
}

// sourceIndexes and targetIndexes project the pairs onto one coordinate.
func sourceIndexes(pairs []Pair) []uint32 {
	out := make([]uint32, len(pairs))
	for i, p := range pairs {
		out[i] = uint32(p.Source)
	}

	return out
}

func targetIndexes(pairs []Pair) []uint32 {
	out := make([]uint32, len(pairs))
	for i, p := range pairs {
		out[i] = uint32(p.Target)
	}

	return out
}
