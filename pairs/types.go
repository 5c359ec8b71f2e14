package pairs

import (
	"context"
	"errors"
	"math"
	"runtime"

	"github.com/katalvlaran/lcskit/alphabet"
)

var (
	// ErrCapacityExceeded indicates more candidate pairs than Options.MaxPairs.
	ErrCapacityExceeded = errors.New("pairs: candidate pair count exceeds capacity")

	// ErrChainSelectionNotImplemented is returned by Chain when the engine was
	// built with NoSelection.
	ErrChainSelectionNotImplemented = errors.New("pairs: chain selection not implemented for this engine")
)

// ID identifies a candidate pair by its enumeration index.
type ID uint32

// Pair is one candidate match: source[Source] == target[Target].
type Pair = alphabet.Pair

// Selection chooses how the final chain is picked.
type Selection int

const (
	// LongestPath runs a longest-path DP over the unblocking DAG.
	LongestPath Selection = iota

	// Patience runs a longest-increasing-subsequence pass over target indexes.
	Patience

	// NoSelection builds the DAG only.
	NoSelection
)

// String returns the selection name.
func (s Selection) String() string {
	switch s {
	case LongestPath:
		return "longest-path"
	case Patience:
		return "patience"
	case NoSelection:
		return "none"
	default:
		return "unknown"
	}
}

const (
	// DefaultMaxPairs bounds the number of candidate pairs.
	DefaultMaxPairs = 4096

	// DefaultSelection picks the chain by longest path.
	DefaultSelection = LongestPath
)

const (
	panicMaxPairsInvalid  = "pairs: WithMaxPairs: n must be in [1, MaxUint32]"
	panicWorkersInvalid   = "pairs: WithWorkers: n must be >= 1"
	panicSelectionInvalid = "pairs: WithSelection: unknown selection"
	panicContextNil       = "pairs: WithContext: nil context"
)

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options holds the effective configuration of an Engine.
type Options struct {
	MaxPairs  int             // DefaultMaxPairs
	Workers   int             // runtime.GOMAXPROCS(0)
	Selection Selection       // DefaultSelection
	Context   context.Context // cancels the unblocking build
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		MaxPairs:  DefaultMaxPairs,
		Workers:   runtime.GOMAXPROCS(0),
		Selection: DefaultSelection,
		Context:   context.Background(),
	}
}

// WithMaxPairs sets the candidate pair limit.
func WithMaxPairs(n int) Option {
	if n < 1 || uint64(n) > math.MaxUint32 {
		panic(panicMaxPairsInvalid)
	}

	return func(o *Options) { o.MaxPairs = n }
}

// WithWorkers sets the number of goroutines building unblocking rows.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.Workers = n }
}

// WithSelection sets the chain selection strategy.
func WithSelection(s Selection) Option {
	if s != LongestPath && s != Patience && s != NoSelection {
		panic(panicSelectionInvalid)
	}

	return func(o *Options) { o.Selection = s }
}

// WithContext makes the unblocking build stop when ctx is done.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic(panicContextNil)
	}

	return func(o *Options) { o.Context = ctx }
}
