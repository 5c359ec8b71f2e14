package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lcskit/lcs"
)

func TestTally_Add(t *testing.T) {
	tally := NewTally([]lcs.Algorithm{lcs.GreedyOffset, lcs.CandidatePair, lcs.GreedyOffset})
	tally.Add(lcs.Report{Exact: 4, Results: []lcs.Result{
		{Algorithm: lcs.GreedyOffset, Length: 3, Divergence: 1, Valid: true},
		{Algorithm: lcs.CandidatePair, Length: 4, Valid: true},
	}})
	tally.Add(lcs.Report{Exact: 6, Results: []lcs.Result{
		{Algorithm: lcs.GreedyOffset, Length: 3, Divergence: 3, Valid: true},
		{Algorithm: lcs.CandidatePair, Err: errors.New("too many pairs")},
		{Algorithm: lcs.ChainSearch, Length: 6, Valid: true},
	}})

	stats := tally.Stats()
	require.Len(t, stats, 2)

	g := stats[0]
	assert.Equal(t, lcs.GreedyOffset, g.Algorithm)
	assert.Equal(t, 2, g.Trials)
	assert.Equal(t, 2, g.Divergent)
	assert.Equal(t, 3, g.MaxDivergence)
	assert.InDelta(t, 2.0, g.MeanDivergence(), 1e-9)
	assert.InDelta(t, 0.6, g.Ratio(), 1e-9)

	p := stats[1]
	assert.Equal(t, 2, p.Trials)
	assert.Equal(t, 1, p.Failed)
	assert.Zero(t, p.Divergent)
	assert.InDelta(t, 1.0, p.Ratio(), 1e-9)
}

func TestTally_Render(t *testing.T) {
	tally := NewTally([]lcs.Algorithm{lcs.ChainSearch})
	tally.Add(lcs.Report{Exact: 2, Results: []lcs.Result{
		{Algorithm: lcs.ChainSearch, Length: 2, Valid: true},
	}})
	var buf bytes.Buffer
	require.NoError(t, tally.Render(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "ALGORITHM"))
	assert.Equal(t, []string{"chain", "1", "0", "0", "0", "0.000", "0", "1.000"}, strings.Fields(lines[1]))
}

func TestStat_Empty(t *testing.T) {
	var s Stat
	assert.Zero(t, s.MeanDivergence())
	assert.Equal(t, 1.0, s.Ratio())
}
