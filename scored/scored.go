package scored

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lcskit/alphabet"
)

// Engine holds the count-score subsequence of one (source, target) input.
type Engine[T alphabet.Symbol] struct {
	seq     []T
	matches []alphabet.Pair
}

// PrefixScore scores a prefix of length n whose symbol counts sum to sum.
// It returns +Inf for sum == 0.
func PrefixScore(n, sum int) float64 {
	if sum == 0 {
		return math.Inf(1)
	}
	damage := math.Round(float64(n) / float64(sum) * 100)

	return damage / 100 * float64(n)
}

// New runs the count-score loop eagerly.
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
	prefix := make([]int, len(target)) // prefix[k] = Σ tc over target[ti : ti+k+1]

	e := &Engine[T]{seq: []T{}, matches: []alphabet.Pair{}}
	var si, ti int
	for alphabet.SharedBound(sc, tc) > 0 {
		rest := target[ti:]
		run := 0
		for k, v := range rest {
			run += tc.Count(v)
			prefix[k] = run
		}

		var (
			so, to int
			found  bool
			best   = math.Inf(1)
			srcSum int
		)
		for off, v := range source[si:] {
			srcSum += sc.Count(v)
			pos, ok := tp.Next(v, ti)
			if !ok {
				continue
			}
			d := pos - ti
			score := PrefixScore(off+1, srcSum) + PrefixScore(d+1, prefix[d])
			if score < best {
				so, to, best, found = off, d, score, true
			}
		}
		if !found {
			break
		}

		for _, v := range source[si : si+so+1] {
			sc.Decrement(v)
		}
		for _, v := range rest[:to+1] {
			tc.Decrement(v)
		}
		e.matches = append(e.matches, alphabet.Pair{Source: si + so, Target: ti + to})
		e.seq = append(e.seq, source[si+so])
		si += so + 1
		ti += to + 1
	}

	return e, nil
}

// Len returns the length of the subsequence.
func (e *Engine[T]) Len() int { return len(e.seq) }

// IsEmpty reports whether no match was committed.
func (e *Engine[T]) IsEmpty() bool { return len(e.seq) == 0 }

// Subsequence returns a copy of the subsequence.
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
