package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lcskit/exact"
	"github.com/katalvlaran/lcskit/lcs"
)

// Diff prints the length and the subsequence found by one algorithm.
type Diff struct {
	Algorithm string `short:"a" default:"exact" help:"Algorithm to run: ${algorithms}"`
	Linear    bool   `help:"Use linear memory for the exact algorithm"`
	Source    string `arg:"" help:"Source string"`
	Target    string `arg:"" help:"Target string"`
}

// Run builds the selected engine over the two strings.
func (c *Diff) Run(g *Globals) error {
	algo, err := lcs.AlgorithmFromName(c.Algorithm)
	if err != nil {
		return err
	}
	src, tgt := []rune(c.Source), []rune(c.Target)
	if algo == lcs.Exact {
		opts := []exact.Option{exact.WithMaxLength(exact.CounterCapacity)}
		if c.Linear {
			opts = append(opts, exact.WithLinearMemory())
		}
		e, err := exact.New(src, tgt, opts...)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "%d\t%s\n", e.Len(), string(e.Subsequence()))
		return nil
	}

	// heuristics index tables by symbol value
	e, err := lcs.New(algo, toSymbols(src), toSymbols(tgt))
	if err != nil {
		return err
	}
	logrus.Debugf("%s: %d of %d/%d runes", algo, e.Len(), len(src), len(tgt))
	fmt.Fprintf(os.Stdout, "%d\t%s\n", e.Len(), string(fromSymbols(e.Subsequence())))
	return nil
}

func toSymbols(rs []rune) []uint32 {
	out := make([]uint32, len(rs))
	for i, r := range rs {
		out[i] = uint32(r)
	}
	return out
}

func fromSymbols(vs []uint32) []rune {
	out := make([]rune, len(vs))
	for i, v := range vs {
		out[i] = rune(v)
	}
	return out
}
