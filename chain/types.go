package chain

import "errors"

// ErrSearchBudgetExceeded indicates that the search needed more states than
// Options.MaxStates.
var ErrSearchBudgetExceeded = errors.New("chain: search state budget exceeded")

const (
	// DefaultMaxStates caps the number of solved states.
	DefaultMaxStates = 1 << 20

	// DefaultPruning enables bound pruning.
	DefaultPruning = true

	// boundTableCells caps the suffix count tables used for pruning.
	boundTableCells = 1 << 22
)

const panicMaxStatesInvalid = "chain: WithMaxStates: n must be >= 1"

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options holds the effective configuration of an Engine.
type Options struct {
	MaxStates int  // DefaultMaxStates
	Pruning   bool // DefaultPruning
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		MaxStates: DefaultMaxStates,
		Pruning:   DefaultPruning,
	}
}

// WithMaxStates sets the state budget.
func WithMaxStates(n int) Option {
	if n < 1 {
		panic(panicMaxStatesInvalid)
	}

	return func(o *Options) { o.MaxStates = n }
}

// WithoutPruning explores every tie.
func WithoutPruning() Option {
	return func(o *Options) { o.Pruning = false }
}

// Stats reports the work done by a search.
type Stats struct {
	States   int // states solved
	Pruned   int // tie branches skipped by the bound
	MemoHits int // tie branches answered from the memo
	MaxDepth int // deepest work stack
}
