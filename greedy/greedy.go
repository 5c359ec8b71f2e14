package greedy

import (
	"fmt"

	"github.com/katalvlaran/lcskit/alphabet"
)

// Engine holds the greedy subsequence of one (source, target) input.
type Engine[T alphabet.Symbol] struct {
	seq     []T
	matches []alphabet.Pair
}

// New runs the greedy loop eagerly.
// The engine keeps decaying frequency tables of both remaining suffixes and
// stops once they share no symbol.
//
// Errors:
//   - alphabet.ErrAlphabetTooLarge for oversized symbols.
func New[T alphabet.Symbol](source, target []T) (*Engine[T], error) {
	if err := alphabet.CheckSize(source, target); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	size := alphabet.Size(source, target)
	sc := alphabet.CountsN(source, size)
	tc := alphabet.CountsN(target, size)
	tp := alphabet.Positions(target)

	e := &Engine[T]{seq: []T{}, matches: []alphabet.Pair{}}
	var si, ti int // cursors into source and target
	for alphabet.SharedBound(sc, tc) > 0 {
		so, to, ok := closest(source[si:], tp, ti)
		if !ok {
			break
		}
		for _, v := range source[si : si+so+1] {
			sc.Decrement(v)
		}
		for _, v := range target[ti : ti+to+1] {
			tc.Decrement(v)
		}
		e.matches = append(e.matches, alphabet.Pair{Source: si + so, Target: ti + to})
		e.seq = append(e.seq, source[si+so])
		si += so + 1
		ti += to + 1
	}

	return e, nil
}

// closest returns the offsets (so, to) of the pair with the smallest sum,
// relative to source and to target[from:], ties going to the later so.
func closest[T alphabet.Symbol](source []T, tp alphabet.PositionIndex[T], from int) (so, to int, ok bool) {
	for off, v := range source {
		if ok && off > so+to {
			break
		}
		pos, found := tp.Next(v, from)
		if !found {
			continue
		}
		if d := pos - from; !ok || off+d <= so+to {
			so, to, ok = off, d, true
		}
	}

	return so, to, ok
}

// Len returns the length of the greedy subsequence.
func (e *Engine[T]) Len() int { return len(e.seq) }

// IsEmpty reports whether no match was committed.
func (e *Engine[T]) IsEmpty() bool { return len(e.seq) == 0 }

// Subsequence returns a copy of the greedy subsequence.
func (e *Engine[T]) Subsequence() []T {
	out := make([]T, len(e.seq))
	copy(out, e.seq)

	return out
}

// Pairs returns the committed matches as absolute indexes, in order.
func (e *Engine[T]) Pairs() []alphabet.Pair {
	out := make([]alphabet.Pair, len(e.matches))
	copy(out, e.matches)

	return out
}
