package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lcskit/internal/seqgen"
	"github.com/katalvlaran/lcskit/lcs"
	"github.com/katalvlaran/lcskit/pairs"
)

// Run compares the selected heuristics with the exact oracle on random
// input pairs and prints one summary row per heuristic.
type Run struct {
	Trials     int      `help:"Number of random input pairs (default 100)"`
	Length     int      `help:"Length of each sequence (default 64)"`
	Alphabet   int      `help:"Number of distinct symbols (default 4)"`
	Seed       int64    `help:"Random seed, 0 selects the default stream"`
	Related    float64  `help:"Draw targets by mutating the source at this rate; 0 draws them independently"`
	Algorithms []string `sep:"," help:"Heuristics to compare: ${algorithms}"`
	MaxPairs   int      `name:"max-pairs" help:"Candidate pair limit of the pairs engine (default 4096)"`
	NoProgress bool     `name:"no-progress" help:"Disable the progress bar"`
}

func (c *Run) config(g *Globals) (Config, error) {
	cfg, err := LoadConfig(g.Config)
	if err != nil {
		return cfg, err
	}
	flags := Config{
		Trials:     c.Trials,
		Length:     c.Length,
		Alphabet:   c.Alphabet,
		Seed:       c.Seed,
		Related:    c.Related,
		Algorithms: c.Algorithms,
		MaxPairs:   c.MaxPairs,
	}
	if c.NoProgress {
		off := false
		flags.Progress = &off
	}
	cfg = cfg.Merge(flags)
	return cfg, cfg.Validate()
}

// Run executes the trials.
func (c *Run) Run(g *Globals) error {
	cfg, err := c.config(g)
	if err != nil {
		return err
	}
	algos, err := cfg.ParseAlgorithms()
	if err != nil {
		return err
	}
	logrus.Debugf("trials=%d length=%d alphabet=%d seed=%d related=%g max_pairs=%d algorithms=%s",
		cfg.Trials, cfg.Length, cfg.Alphabet, cfg.Seed, cfg.Related, cfg.MaxPairs, algorithmList(algos))
	opts := []lcs.Option{lcs.WithPairsOptions(pairs.WithMaxPairs(cfg.MaxPairs))}

	tally := NewTally(algos)
	seen := NewDigestSet()
	failed := make(failures)
	bar := newProgress(cfg.Trials, cfg.ShowProgress() && isTerminal(os.Stderr.Fd()))
	gen := seqgen.New(cfg.Seed)
	for i := 0; i < cfg.Trials; i++ {
		src, tgt := draw(gen, cfg)
		report, err := lcs.CompareWith(src, tgt, algos, opts...)
		if err != nil {
			bar.Abort()
			return fmt.Errorf("trial %d: %w", i, err)
		}
		tally.Add(report)
		for _, res := range report.Results {
			if res.Err != nil {
				failed.log(i, res)
			}
			if res.Err == nil && !res.Valid {
				logrus.Errorf("trial %d: %s returned an invalid subsequence", i, res.Algorithm)
			}
		}
		if divergent := report.Divergent(); len(divergent) > 0 {
			if digest, fresh := seen.Add(src, tgt); fresh {
				logrus.Debugf("trial %d: input %s diverges on %d algorithm(s), exact %d", i, digest, len(divergent), report.Exact)
			}
		}
		bar.Increment()
	}
	bar.Wait()

	for _, a := range algos {
		if n := failed[a]; n > 1 {
			logrus.Warnf("%s failed on %d of %d trials", a, n, cfg.Trials)
		}
	}
	logrus.Debugf("%d distinct divergent inputs", seen.Len())
	return tally.Render(os.Stdout)
}

// failures counts construction errors per algorithm. Only the first one of
// each algorithm is a warning; a limit that is too small fails every trial.
type failures map[lcs.Algorithm]int

func (f failures) log(trial int, res lcs.Result) {
	f[res.Algorithm]++
	if f[res.Algorithm] == 1 {
		logrus.Warnf("trial %d: %s: %v (further failures are logged at debug level)", trial, res.Algorithm, res.Err)
		return
	}
	logrus.Debugf("trial %d: %s: %v", trial, res.Algorithm, res.Err)
}

func draw(gen *seqgen.Generator, cfg Config) (src, tgt []uint8) {
	src = seqgen.Sequence[uint8](gen, cfg.Length, cfg.Alphabet)
	if cfg.Related > 0 {
		return src, seqgen.Mutate(gen, src, cfg.Alphabet, cfg.Related)
	}
	return src, seqgen.Sequence[uint8](gen, cfg.Length, cfg.Alphabet)
}
