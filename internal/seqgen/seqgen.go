// Package seqgen produces deterministic random symbol sequences for property
// tests, benchmarks and the lcscompare tool.
//
// Determinism: the same seed yields identical sequences on every platform.
// A Generator wraps a *rand.Rand and is NOT safe for concurrent use; call
// Derive to hand independent streams to workers.
package seqgen

import (
	"math/rand"

	"github.com/katalvlaran/lcskit/alphabet"
)

// DefaultSeed is used when callers pass seed == 0.
const DefaultSeed int64 = 1

const panicAlphabetInvalid = "seqgen: alphabet must be >= 1"

// Generator draws sequences from a seeded stream.
type Generator struct {
	rng *rand.Rand
}

// New returns a Generator. seed == 0 selects DefaultSeed.
func New(seed int64) *Generator {
	if seed == 0 {
		seed = DefaultSeed
	}

	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// DeriveSeed mixes a parent seed and a stream identifier (SplitMix64 finalizer).
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// Derive returns an independent Generator for stream. It consumes one value
// from g so repeated calls with the same stream still differ.
func (g *Generator) Derive(stream uint64) *Generator {
	return New(DeriveSeed(g.rng.Int63(), stream))
}

// Intn returns a value in [0, n).
func (g *Generator) Intn(n int) int {
	return g.rng.Intn(n)
}

// Fill overwrites dst with symbols drawn uniformly from [0, size).
// Panics if size < 1.
func Fill[T alphabet.Symbol](g *Generator, dst []T, size int) {
	if size < 1 {
		panic(panicAlphabetInvalid)
	}
	for i := range dst {
		dst[i] = T(g.rng.Intn(size))
	}
}

// Sequence returns n symbols drawn uniformly from [0, size).
func Sequence[T alphabet.Symbol](g *Generator, n, size int) []T {
	seq := make([]T, n)
	Fill(g, seq, size)

	return seq
}

// Pair returns two independent sequences of length n over [0, size).
func Pair[T alphabet.Symbol](g *Generator, n, size int) (source, target []T) {
	return Sequence[T](g, n, size), Sequence[T](g, n, size)
}

// Mutate returns a copy of seq where each element is replaced with
// probability rate by a fresh symbol from [0, size). Related inputs like
// these exercise long common subsequences.
func Mutate[T alphabet.Symbol](g *Generator, seq []T, size int, rate float64) []T {
	if size < 1 {
		panic(panicAlphabetInvalid)
	}
	out := make([]T, len(seq))
	copy(out, seq)
	for i := range out {
		if g.rng.Float64() < rate {
			out[i] = T(g.rng.Intn(size))
		}
	}

	return out
}
