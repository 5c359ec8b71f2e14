package pairs

import (
	"sort"

	"github.com/katalvlaran/lcskit/ragged"
)

// longestPath returns the longest chain in the unblocking DAG.
// Successors of p lie in higher source rows, so walking sourceIndex from
// the last row down sees every successor before p. Among equally long
// successors the first in row order wins; among equally long starts the
// lowest ID wins.
// Complexity: O(P + Σ|unblocking row|).
func longestPath(pairs []Pair, sourceIndex, unblocking *ragged.Matrix[ID]) []Pair {
	if len(pairs) == 0 {
		return []Pair{}
	}
	best := make([]int, len(pairs))
	next := make([]int, len(pairs))
	for k := sourceIndex.Len() - 1; k >= 0; k-- {
		for _, id := range sourceIndex.Row(k) {
			b, nx := 1, -1
			for _, q := range unblocking.Row(int(id)) {
				if best[q]+1 > b {
					b, nx = best[q]+1, int(q)
				}
			}
			best[id], next[id] = b, nx
		}
	}

	start := 0
	for id := 1; id < len(pairs); id++ {
		if best[id] > best[start] {
			start = id
		}
	}
	chain := make([]Pair, 0, best[start])
	for id := start; id >= 0; id = next[id] {
		chain = append(chain, pairs[id])
	}

	return chain
}

// patience returns a longest chain by a longest-strictly-increasing run of
// target indexes over pairs visited by source ascending, target descending
// (Hunt–Szymanski). Rows of sourceIndex list a source position's pairs by
// ascending target, so each row is walked backwards.
// Complexity: O(P log P).
func patience(pairs []Pair, sourceIndex *ragged.Matrix[ID]) []Pair {
	var (
		tails   []int // tails[l] = smallest target ending a chain of length l+1
		tailIDs []int
	)
	prev := make([]int, len(pairs))
	for k := 0; k < sourceIndex.Len(); k++ {
		row := sourceIndex.Row(k)
		for i := len(row) - 1; i >= 0; i-- {
			id := int(row[i])
			t := pairs[id].Target
			pos := sort.SearchInts(tails, t)
			prev[id] = -1
			if pos > 0 {
				prev[id] = tailIDs[pos-1]
			}
			if pos == len(tails) {
				tails = append(tails, t)
				tailIDs = append(tailIDs, id)
			} else {
				tails[pos], tailIDs[pos] = t, id
			}
		}
	}

	chain := make([]Pair, len(tails))
	if len(tails) == 0 {
		return chain
	}
	id := tailIDs[len(tailIDs)-1]
	for i := len(chain) - 1; i >= 0; i-- {
		chain[i] = pairs[id]
		id = prev[id]
	}

	return chain
}
