package pairs

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lcskit/alphabet"
	"github.com/katalvlaran/lcskit/ragged"
)

// Engine holds the candidate pairs of one (source, target) input, their
// look-ups, the unblocking DAG and the selected chain. It is read-only
// after New; matrices returned by accessors must not be modified.
type Engine[T alphabet.Symbol] struct {
	source, target []T

	pairs       []Pair
	sourceIndex *ragged.Matrix[ID]
	targetIndex *ragged.Matrix[ID]
	unblocking  *ragged.Matrix[ID]

	selection Selection
	chain     []Pair
}

// New enumerates candidate pairs and builds every structure eagerly.
// Implementation:
//   - Stage 1: validate the alphabet and count pairs; reject before enumerating.
//   - Stage 2: enumerate pairs and build SourceIndex / TargetIndex.
//   - Stage 3: build the unblocking matrix in parallel.
//   - Stage 4: select the chain per Options.Selection.
//
// Errors:
//   - alphabet.ErrAlphabetTooLarge for oversized symbols.
//   - ErrCapacityExceeded when the pair count exceeds Options.MaxPairs or
//     an index does not fit an ID.
//   - the context error when Options.Context is done during stage 3.
func New[T alphabet.Symbol](source, target []T, opts ...Option) (*Engine[T], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := alphabet.CheckSize(source, target); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	if uint64(len(source)) > math.MaxUint32 || uint64(len(target)) > math.MaxUint32 {
		return nil, fmt.Errorf("New: lengths %d and %d exceed ID width: %w", len(source), len(target), ErrCapacityExceeded)
	}
	if total := CountPairs(source, target); total > uint64(o.MaxPairs) {
		return nil, fmt.Errorf("New: %d candidate pairs, limit %d: %w", total, o.MaxPairs, ErrCapacityExceeded)
	}

	e := &Engine[T]{source: source, target: target, selection: o.Selection}
	e.pairs = Enumerate(source, target)
	e.sourceIndex = IndexLookup(sourceIndexes(e.pairs))
	e.targetIndex = IndexLookup(targetIndexes(e.pairs))

	var err error
	e.unblocking, err = Unblocking(o.Context, e.pairs, e.sourceIndex, e.targetIndex, o.Workers)
	if err != nil {
		return nil, fmt.Errorf("New: unblocking: %w", err)
	}

	switch o.Selection {
	case LongestPath:
		e.chain = longestPath(e.pairs, e.sourceIndex, e.unblocking)
	case Patience:
		e.chain = patience(e.pairs, e.sourceIndex)
	}

	return e, nil
}

// Pairs returns a copy of the candidate pairs in ID order.
func (e *Engine[T]) Pairs() []Pair {
	out := make([]Pair, len(e.pairs))
	copy(out, e.pairs)

	return out
}

// Pair returns the pair with the given ID. Panics if id is out of range.
func (e *Engine[T]) Pair(id ID) Pair { return e.pairs[id] }

// Count returns the number of candidate pairs.
func (e *Engine[T]) Count() int { return len(e.pairs) }

// SourceIndex returns the look-up from source index to pair IDs.
func (e *Engine[T]) SourceIndex() *ragged.Matrix[ID] { return e.sourceIndex }

// TargetIndex returns the look-up from target index to pair IDs.
func (e *Engine[T]) TargetIndex() *ragged.Matrix[ID] { return e.targetIndex }

// Unblocking returns the DAG: row p lists the pairs that may follow p.
func (e *Engine[T]) Unblocking() *ragged.Matrix[ID] { return e.unblocking }

// Selection returns the strategy the engine was built with.
func (e *Engine[T]) Selection() Selection { return e.selection }

// Chain returns a copy of the selected chain, ordered by ascending indexes.
// Errors:
//   - ErrChainSelectionNotImplemented under NoSelection.
func (e *Engine[T]) Chain() ([]Pair, error) {
	if e.selection == NoSelection {
		return nil, fmt.Errorf("Chain: %w", ErrChainSelectionNotImplemented)
	}
	out := make([]Pair, len(e.chain))
	copy(out, e.chain)

	return out, nil
}

// Len returns the length of the selected chain (0 under NoSelection).
func (e *Engine[T]) Len() int { return len(e.chain) }

// IsEmpty reports whether the selected chain is empty.
func (e *Engine[T]) IsEmpty() bool { return len(e.chain) == 0 }

// Subsequence returns the symbols of the selected chain.
func (e *Engine[T]) Subsequence() []T {
	out := make([]T, len(e.chain))
	for i, p := range e.chain {
		out[i] = e.source[p.Source]
	}

	return out
}
