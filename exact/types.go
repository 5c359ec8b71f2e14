package exact

import (
	"errors"
	"math"
)

// ErrCapacityExceeded indicates that an input is longer than the configured
// maximum length; the engine refuses it before allocating anything.
var ErrCapacityExceeded = errors.New("exact: sequence length exceeds capacity")

const (
	// CounterCapacity is the largest LCS length a table cell can hold.
	CounterCapacity = math.MaxUint16

	// DefaultMaxLength is the default per-sequence length limit.
	DefaultMaxLength = 2000

	// DefaultMemoryMode keeps the whole table.
	DefaultMemoryMode = FullMatrix
)

const (
	panicMaxLengthInvalid  = "exact: WithMaxLength: n must be in [1, CounterCapacity]"
	panicMemoryModeInvalid = "exact: WithMemoryMode: unknown mode"
)

// MemoryMode controls how the engine stores its DP table.
//
//   - FullMatrix: keep the entire (n+1)x(m+1) table. Backtrace reproduces
//     the documented tie-break, Table() is available. Memory: O(n·m).
//
//   - Linear: keep two rows only and reconstruct the subsequence with
//     Hirschberg's divide and conquer. The result is a valid LCS of the
//     same length, possibly a different one. Memory: O(min(n, m)).
type MemoryMode int

const (
	// FullMatrix stores all rows.
	FullMatrix MemoryMode = iota

	// Linear stores two rows and reconstructs by divide and conquer.
	Linear
)

// String returns the mode name.
func (m MemoryMode) String() string {
	switch m {
	case FullMatrix:
		return "full-matrix"
	case Linear:
		return "linear"
	default:
		return "unknown"
	}
}

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options holds the effective configuration of an Engine.
type Options struct {
	MaxLength  int        // per-sequence limit; DefaultMaxLength
	MemoryMode MemoryMode // DefaultMemoryMode
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		MaxLength:  DefaultMaxLength,
		MemoryMode: DefaultMemoryMode,
	}
}

// WithMaxLength sets the per-sequence length limit.
// Panics unless 1 <= n <= CounterCapacity.
func WithMaxLength(n int) Option {
	if n < 1 || n > CounterCapacity {
		panic(panicMaxLengthInvalid)
	}

	return func(o *Options) { o.MaxLength = n }
}

// WithMemoryMode selects the table storage strategy.
// Panics on an unknown mode.
func WithMemoryMode(mode MemoryMode) Option {
	if mode != FullMatrix && mode != Linear {
		panic(panicMemoryModeInvalid)
	}

	return func(o *Options) { o.MemoryMode = mode }
}

// WithLinearMemory is shorthand for WithMemoryMode(Linear).
func WithLinearMemory() Option {
	return WithMemoryMode(Linear)
}
