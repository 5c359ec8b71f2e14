package lcs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedAlgorithm indicates an unknown algorithm value or name.
var ErrUnsupportedAlgorithm = errors.New("lcs: unsupported algorithm")

// Engine is the capability shared by every LCS engine.
type Engine[T comparable] interface {
	// Len returns the length of the computed subsequence.
	Len() int
	// Subsequence returns the computed common subsequence as a fresh slice.
	Subsequence() []T
	// IsEmpty reports whether Len() == 0.
	IsEmpty() bool
}

// Algorithm selects an engine.
type Algorithm int

const (
	Exact         Algorithm = iota // full dynamic programming
	GreedyOffset                   // closest pair, committed
	ChainSearch                    // all closest ties, searched
	CandidatePair                  // candidate pair DAG
	CountScore                     // count-weighted prefixes
)

var algorithmNames = [...]string{
	Exact:         "exact",
	GreedyOffset:  "greedy",
	ChainSearch:   "chain",
	CandidatePair: "pairs",
	CountScore:    "scored",
}

// String returns the short name used by AlgorithmFromName.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return "unknown"
	}

	return algorithmNames[a]
}

// AlgorithmFromName parses a short name, case-insensitively.
func AlgorithmFromName(name string) (Algorithm, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for a, s := range algorithmNames {
		if s == n {
			return Algorithm(a), nil
		}
	}

	return 0, fmt.Errorf("AlgorithmFromName: %q: %w", name, ErrUnsupportedAlgorithm)
}

// Algorithms lists every algorithm, oracle first.
func Algorithms() []Algorithm {
	return []Algorithm{Exact, GreedyOffset, ChainSearch, CandidatePair, CountScore}
}

// Heuristics lists every algorithm except the oracle.
func Heuristics() []Algorithm {
	return Algorithms()[1:]
}

// Result is the outcome of one algorithm inside a Report.
type Result struct {
	Algorithm  Algorithm
	Length     int
	Divergence int   // oracle length minus Length
	Valid      bool  // Subsequence is common to both inputs and Len long
	Err        error // construction error; other fields are zero
}

// Report compares algorithms against the oracle on one input.
type Report struct {
	Exact   int
	Results []Result
}

// Divergent returns the results that fell short of the oracle.
func (r Report) Divergent() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Err == nil && res.Divergence > 0 {
			out = append(out, res)
		}
	}

	return out
}
