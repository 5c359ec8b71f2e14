// Package lcs ties the lcskit engines together behind one interface.
//
// Every engine answers the same three questions about the (source, target)
// pair it was built from: Len, Subsequence and IsEmpty. All work happens
// eagerly in the constructor.
//
//	Algorithm       Package   Result
//	Exact           exact     optimal (oracle)
//	GreedyOffset    greedy    heuristic, closest pair
//	ChainSearch     chain     heuristic, all closest ties
//	CandidatePair   pairs     optimal, via the candidate pair DAG
//	CountScore      scored    heuristic, count-weighted prefixes
//
// Compare runs the oracle next to any set of algorithms and reports how far
// each one falls short. Divergence is expected for heuristics and is
// reported, never treated as an error.
//
// Usage:
//
//	e, err := lcs.New(lcs.GreedyOffset, src, tgt)
//	report, err := lcs.Compare(src, tgt, lcs.Heuristics()...)
//	report, err = lcs.CompareWith(src, tgt, lcs.Heuristics(),
//		lcs.WithPairsOptions(pairs.WithMaxPairs(1<<16)))
package lcs
