package chain

import (
	"fmt"

	"github.com/katalvlaran/lcskit/alphabet"
)

// Engine holds the tie-search subsequence of one (source, target) input.
type Engine[T alphabet.Symbol] struct {
	seq     []T
	matches []alphabet.Pair
	stats   Stats
}

// solved is the memo entry of a finished state.
type solved struct {
	length int
	pick   alphabet.Pair
	ok     bool
}

// searcher carries the read-only inputs and the memo of one search.
type searcher[T alphabet.Symbol] struct {
	source, target []T
	tp             alphabet.PositionIndex[T]
	cols           int

	size       int
	sufS, sufT []int // suffix counts, row i = counts of seq[i:]; nil when too large

	opts  Options
	memo  map[int]solved
	stats Stats
}

// New runs the tie search eagerly.
// Implementation:
//   - Stage 1: validate the alphabet, index target positions, build the
//     suffix count tables when pruning is on and they fit.
//   - Stage 2: depth-first search over tie states on an explicit stack.
//   - Stage 3: follow the memoized picks from (0, 0).
//
// Errors:
//   - alphabet.ErrAlphabetTooLarge for oversized symbols.
//   - ErrSearchBudgetExceeded when more than Options.MaxStates are needed.
func New[T alphabet.Symbol](source, target []T, opts ...Option) (*Engine[T], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := alphabet.CheckSize(source, target); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	s := &searcher[T]{
		source: source,
		target: target,
		tp:     alphabet.Positions(target),
		cols:   len(target) + 1,
		size:   alphabet.Size(source, target),
		opts:   o,
		memo:   make(map[int]solved),
	}
	if o.Pruning && (len(source)+len(target)+2)*s.size <= boundTableCells {
		s.sufS = suffixCounts(source, s.size)
		s.sufT = suffixCounts(target, s.size)
	}
	if err := s.run(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	e := &Engine[T]{seq: []T{}, matches: []alphabet.Pair{}, stats: s.stats}
	for i, j := 0, 0; ; {
		r := s.memo[s.key(i, j)]
		if !r.ok {
			break
		}
		e.matches = append(e.matches, r.pick)
		e.seq = append(e.seq, source[r.pick.Source])
		i, j = r.pick.Source+1, r.pick.Target+1
	}

	return e, nil
}

func (s *searcher[T]) key(i, j int) int { return i*s.cols + j }

// run solves state (0, 0) and everything it depends on.
func (s *searcher[T]) run() error {
	stack := newFrameStack()
	if err := s.push(stack, 0, 0); err != nil {
		return err
	}
	for {
		top, ok := stack.Peek()
		if !ok {
			return nil
		}

		if top.next == len(top.ties) {
			stack.Pop()
			r := solved{length: top.best}
			if top.pick >= 0 {
				r.pick, r.ok = top.ties[top.pick], true
			}
			s.memo[top.key] = r
			continue
		}

		p := top.ties[top.next]
		ci, cj := p.Source+1, p.Target+1
		if r, hit := s.memo[s.key(ci, cj)]; hit {
			s.stats.MemoHits++
			// later ties win on equal length
			if 1+r.length >= top.best {
				top.best, top.pick = 1+r.length, top.next
			}
			top.next++
			continue
		}
		if s.opts.Pruning && 1+s.bound(ci, cj) < top.best {
			s.stats.Pruned++
			top.next++
			continue
		}
		// solve the child first; this tie is revisited through the memo
		if err := s.push(stack, ci, cj); err != nil {
			return err
		}
	}
}

func (s *searcher[T]) push(stack *frameStack, i, j int) error {
	if s.stats.States >= s.opts.MaxStates {
		return fmt.Errorf("search: %d states: %w", s.stats.States, ErrSearchBudgetExceeded)
	}
	s.stats.States++
	stack.Push(&frame{key: s.key(i, j), ties: s.ties(i, j), pick: -1})
	s.stats.MaxDepth = max(s.stats.MaxDepth, stack.Size())

	return nil
}

// ties returns every pick of state (i, j) sharing the minimum offset sum,
// in source order.
func (s *searcher[T]) ties(i, j int) []alphabet.Pair {
	var (
		out    []alphabet.Pair
		minSum = -1
	)
	for off, v := range s.source[i:] {
		if minSum >= 0 && off > minSum {
			break
		}
		pos, found := s.tp.Next(v, j)
		if !found {
			continue
		}
		sum := off + pos - j
		switch {
		case minSum < 0 || sum < minSum:
			minSum = sum
			out = append(out[:0], alphabet.Pair{Source: i + off, Target: pos})
		case sum == minSum:
			out = append(out, alphabet.Pair{Source: i + off, Target: pos})
		}
	}

	return out
}

// bound is an upper bound on the LCS of source[i:] and target[j:].
func (s *searcher[T]) bound(i, j int) int {
	if s.sufS == nil {
		return min(len(s.source)-i, len(s.target)-j)
	}
	a := alphabet.Frequencies[T](s.sufS[i*s.size : (i+1)*s.size])
	b := alphabet.Frequencies[T](s.sufT[j*s.size : (j+1)*s.size])

	return alphabet.SharedBound(a, b)
}

// suffixCounts returns (len(seq)+1) rows of size counts; row i counts seq[i:].
func suffixCounts[T alphabet.Symbol](seq []T, size int) []int {
	table := make([]int, (len(seq)+1)*size)
	for i := len(seq) - 1; i >= 0; i-- {
		row := table[i*size : (i+1)*size]
		copy(row, table[(i+1)*size:(i+2)*size])
		row[int(seq[i])]++
	}

	return table
}

// Len returns the length of the selected chain.
func (e *Engine[T]) Len() int { return len(e.seq) }

// IsEmpty reports whether the chain is empty.
func (e *Engine[T]) IsEmpty() bool { return len(e.seq) == 0 }

// Subsequence returns a copy of the selected chain's symbols.
func (e *Engine[T]) Subsequence() []T {
	out := make([]T, len(e.seq))
	copy(out, e.seq)

	return out
}

// Pairs returns the selected matches as absolute indexes, in order.
func (e *Engine[T]) Pairs() []alphabet.Pair {
	out := make([]alphabet.Pair, len(e.matches))
	copy(out, e.matches)

	return out
}

// Stats returns the search counters.
func (e *Engine[T]) Stats() Stats { return e.stats }
