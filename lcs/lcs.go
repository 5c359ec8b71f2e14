package lcs

import (
	"fmt"

	"github.com/katalvlaran/lcskit/alphabet"
	"github.com/katalvlaran/lcskit/chain"
	"github.com/katalvlaran/lcskit/exact"
	"github.com/katalvlaran/lcskit/greedy"
	"github.com/katalvlaran/lcskit/pairs"
	"github.com/katalvlaran/lcskit/scored"
)

// New builds the engine selected by algo. Options not meant for that
// engine are ignored.
//
// Errors:
//   - ErrUnsupportedAlgorithm for an unknown algo.
//   - any construction error of the selected engine.
func New[T alphabet.Symbol](algo Algorithm, source, target []T, opts ...Option) (Engine[T], error) {
	return build(algo, source, target, resolve(opts))
}

func build[T alphabet.Symbol](algo Algorithm, source, target []T, o Options) (Engine[T], error) {
	switch algo {
	case Exact:
		e, err := exact.New(source, target, o.Exact...)
		if err != nil {
			return nil, fmt.Errorf("New %s: %w", algo, err)
		}
		return e, nil
	case GreedyOffset:
		e, err := greedy.New(source, target)
		if err != nil {
			return nil, fmt.Errorf("New %s: %w", algo, err)
		}
		return e, nil
	case ChainSearch:
		e, err := chain.New(source, target, o.Chain...)
		if err != nil {
			return nil, fmt.Errorf("New %s: %w", algo, err)
		}
		return e, nil
	case CandidatePair:
		e, err := pairs.New(source, target, o.Pairs...)
		if err != nil {
			return nil, fmt.Errorf("New %s: %w", algo, err)
		}
		return e, nil
	case CountScore:
		e, err := scored.New(source, target)
		if err != nil {
			return nil, fmt.Errorf("New %s: %w", algo, err)
		}
		return e, nil
	default:
		return nil, fmt.Errorf("New: %d: %w", int(algo), ErrUnsupportedAlgorithm)
	}
}

// Compare runs the oracle and each of algos on the same input with default
// options.
// A construction failure of one algorithm is recorded in its Result and
// does not stop the others.
//
// Errors:
//   - the oracle's construction error.
//   - ErrUnsupportedAlgorithm for an unknown entry of algos.
func Compare[T alphabet.Symbol](source, target []T, algos ...Algorithm) (Report, error) {
	return CompareWith(source, target, algos)
}

// CompareWith is Compare with engine options, e.g. a larger pair limit.
func CompareWith[T alphabet.Symbol](source, target []T, algos []Algorithm, opts ...Option) (Report, error) {
	o := resolve(opts)
	oracle, err := exact.New(source, target, o.Exact...)
	if err != nil {
		return Report{}, fmt.Errorf("Compare: oracle: %w", err)
	}

	report := Report{Exact: oracle.Len(), Results: make([]Result, 0, len(algos))}
	for _, algo := range algos {
		if algo.String() == "unknown" {
			return Report{}, fmt.Errorf("Compare: %d: %w", int(algo), ErrUnsupportedAlgorithm)
		}
		res := Result{Algorithm: algo}
		e, err := build(algo, source, target, o)
		if err != nil {
			res.Err = err
			report.Results = append(report.Results, res)
			continue
		}
		sub := e.Subsequence()
		res.Length = e.Len()
		res.Divergence = report.Exact - res.Length
		res.Valid = len(sub) == res.Length && IsCommonSubsequence(sub, source, target)
		report.Results = append(report.Results, res)
	}

	return report, nil
}

var (
	_ Engine[uint8] = (*exact.Engine[uint8])(nil)
	_ Engine[uint8] = (*greedy.Engine[uint8])(nil)
	_ Engine[uint8] = (*chain.Engine[uint8])(nil)
	_ Engine[uint8] = (*pairs.Engine[uint8])(nil)
	_ Engine[uint8] = (*scored.Engine[uint8])(nil)
)
