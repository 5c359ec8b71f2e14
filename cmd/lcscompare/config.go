package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/lcskit/exact"
	"github.com/katalvlaran/lcskit/lcs"
	"github.com/katalvlaran/lcskit/pairs"
)

// ErrInvalidConfig reports a setting outside its accepted range.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the settings of one run. Zero fields of a higher layer
// never override a lower one: defaults < file < flags.
type Config struct {
	Trials     int      `toml:"trials"`
	Length     int      `toml:"length"`
	Alphabet   int      `toml:"alphabet"`
	Seed       int64    `toml:"seed"`
	Related    float64  `toml:"related"`
	Algorithms []string `toml:"algorithms"`
	MaxPairs   int      `toml:"max_pairs"`
	Progress   *bool    `toml:"progress"`
}

// DefaultConfig returns the settings used when neither a file nor a flag
// sets a field.
func DefaultConfig() Config {
	return Config{
		Trials:     100,
		Length:     64,
		Alphabet:   4,
		Algorithms: []string{"greedy", "chain", "pairs", "scored"},
		MaxPairs:   pairs.DefaultMaxPairs,
	}
}

// LoadConfig decodes path over the defaults. An empty path returns the
// defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if len(path) == 0 {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		return cfg, err
	}
	var file Config
	md, err := toml.DecodeFile(path, &file)
	if err != nil {
		return cfg, fmt.Errorf("decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("decode %s: unknown key %q: %w", path, undecoded[0].String(), ErrInvalidConfig)
	}
	return cfg.Merge(file), nil
}

// Merge returns c with every non-zero field of o applied on top.
func (c Config) Merge(o Config) Config {
	if o.Trials != 0 {
		c.Trials = o.Trials
	}
	if o.Length != 0 {
		c.Length = o.Length
	}
	if o.Alphabet != 0 {
		c.Alphabet = o.Alphabet
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	if o.Related != 0 {
		c.Related = o.Related
	}
	if len(o.Algorithms) != 0 {
		c.Algorithms = o.Algorithms
	}
	if o.MaxPairs != 0 {
		c.MaxPairs = o.MaxPairs
	}
	if o.Progress != nil {
		c.Progress = o.Progress
	}
	return c
}

// Validate checks every range and resolves the algorithm names.
func (c Config) Validate() error {
	switch {
	case c.Trials < 1:
		return fmt.Errorf("trials %d < 1: %w", c.Trials, ErrInvalidConfig)
	case c.Length < 0 || c.Length > exact.DefaultMaxLength:
		return fmt.Errorf("length %d outside [0,%d]: %w", c.Length, exact.DefaultMaxLength, ErrInvalidConfig)
	case c.Alphabet < 1 || c.Alphabet > 256:
		return fmt.Errorf("alphabet %d outside [1,256]: %w", c.Alphabet, ErrInvalidConfig)
	case c.Related < 0 || c.Related > 1:
		return fmt.Errorf("related %g outside [0,1]: %w", c.Related, ErrInvalidConfig)
	case c.MaxPairs < 1 || uint64(c.MaxPairs) > math.MaxUint32:
		return fmt.Errorf("max_pairs %d outside [1,%d]: %w", c.MaxPairs, uint64(math.MaxUint32), ErrInvalidConfig)
	}
	_, err := c.ParseAlgorithms()
	return err
}

// ParseAlgorithms resolves the configured names, dropping the oracle, which
// Compare always runs.
func (c Config) ParseAlgorithms() ([]lcs.Algorithm, error) {
	out := make([]lcs.Algorithm, 0, len(c.Algorithms))
	for _, name := range c.Algorithms {
		a, err := lcs.AlgorithmFromName(name)
		if err != nil {
			return nil, err
		}
		if a != lcs.Exact {
			out = append(out, a)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no heuristic selected: %w", ErrInvalidConfig)
	}
	return out, nil
}

// ShowProgress reports whether the progress bar is wanted; unset means yes.
func (c Config) ShowProgress() bool {
	return c.Progress == nil || *c.Progress
}
