package lcs

import (
	"github.com/katalvlaran/lcskit/chain"
	"github.com/katalvlaran/lcskit/exact"
	"github.com/katalvlaran/lcskit/pairs"
)

// Option mutates Options.
type Option func(*Options)

// Options forwards per-engine options to the engines New builds. Engines
// without options (greedy, scored) take none.
type Options struct {
	Exact []exact.Option // also applied to the Compare oracle
	Chain []chain.Option
	Pairs []pairs.Option
}

// DefaultOptions leaves every engine on its own defaults.
func DefaultOptions() Options {
	return Options{}
}

// WithExactOptions appends options for the exact engine and the oracle.
func WithExactOptions(opts ...exact.Option) Option {
	return func(o *Options) { o.Exact = append(o.Exact, opts...) }
}

// WithChainOptions appends options for the chain engine.
func WithChainOptions(opts ...chain.Option) Option {
	return func(o *Options) { o.Chain = append(o.Chain, opts...) }
}

// WithPairsOptions appends options for the candidate pair engine.
func WithPairsOptions(opts ...pairs.Option) Option {
	return func(o *Options) { o.Pairs = append(o.Pairs, opts...) }
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
