package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/lcskit/lcs"
)

// Stat accumulates the results of one algorithm across trials.
type Stat struct {
	Algorithm     lcs.Algorithm
	Trials        int
	Failed        int
	Invalid       int
	Divergent     int
	DivergenceSum int
	MaxDivergence int
	LengthSum     int
	ExactSum      int
}

// MeanDivergence averages over successful trials.
func (s Stat) MeanDivergence() float64 {
	ok := s.Trials - s.Failed
	if ok == 0 {
		return 0
	}
	return float64(s.DivergenceSum) / float64(ok)
}

// Ratio is the total heuristic length over the total exact length.
func (s Stat) Ratio() float64 {
	if s.ExactSum == 0 {
		return 1
	}
	return float64(s.LengthSum) / float64(s.ExactSum)
}

// Tally aggregates reports per algorithm, in first-seen order.
type Tally struct {
	stats []Stat
	index map[lcs.Algorithm]int
}

// NewTally returns an empty tally for algos; duplicates are folded.
func NewTally(algos []lcs.Algorithm) *Tally {
	t := &Tally{index: make(map[lcs.Algorithm]int, len(algos))}
	for _, a := range algos {
		if _, ok := t.index[a]; ok {
			continue
		}
		t.index[a] = len(t.stats)
		t.stats = append(t.stats, Stat{Algorithm: a})
	}
	return t
}

// Add folds one report in. Results for algorithms outside the tally are
// ignored.
func (t *Tally) Add(r lcs.Report) {
	for _, res := range r.Results {
		i, ok := t.index[res.Algorithm]
		if !ok {
			continue
		}
		s := &t.stats[i]
		s.Trials++
		if res.Err != nil {
			s.Failed++
			continue
		}
		if !res.Valid {
			s.Invalid++
		}
		if res.Divergence > 0 {
			s.Divergent++
		}
		s.DivergenceSum += res.Divergence
		s.MaxDivergence = max(s.MaxDivergence, res.Divergence)
		s.LengthSum += res.Length
		s.ExactSum += r.Exact
	}
}

// Stats returns a copy of the per-algorithm aggregates.
func (t *Tally) Stats() []Stat {
	out := make([]Stat, len(t.stats))
	copy(out, t.stats)
	return out
}

// Render writes one aligned row per algorithm.
func (t *Tally) Render(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tTRIALS\tFAILED\tINVALID\tDIVERGENT\tMEAN\tMAX\tRATIO")
	for _, s := range t.stats {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%.3f\t%d\t%.3f\n",
			s.Algorithm, s.Trials, s.Failed, s.Invalid, s.Divergent,
			s.MeanDivergence(), s.MaxDivergence, s.Ratio())
	}
	return tw.Flush()
}
