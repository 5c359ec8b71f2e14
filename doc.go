// Package lcskit computes longest common subsequences of sequences drawn
// from a small, bounded alphabet: one exact oracle and a family of
// heuristics whose results can be compared against it.
//
// 🚀 What is lcskit?
//
//	A pure-Go library of interchangeable LCS engines:
//		• Exact: full-matrix DP with backtrace, or Hirschberg in linear memory
//		• Greedy: nearest-match offsets bounded by decaying symbol counts
//		• Chain: exhaustive search over symbol chains with memo and pruning
//		• Pairs: candidate-pair enumeration, unblocking sets, chain selection
//		• Scored: greedy matching ranked by a count-based prefix score
//
// Every engine is built once by New and then answers Len, IsEmpty and
// Subsequence in O(1) or O(L).
//
// Packages:
//
//	alphabet/: symbol constraint, counting tables, position index, marker
//	ragged/  : flat row-of-rows matrix with push/pop and views
//	exact/   : exact oracle (FullMatrix / Linear memory)
//	greedy/  : greedy offset heuristic
//	chain/   : chain search heuristic
//	pairs/   : candidate-pair heuristic
//	scored/  : count-score heuristic
//	lcs/     : Engine interface, algorithm registry, Compare, validators
//
// Quick example:
//
//	source  X M J Y A U Z
//	target  M Z J A W X U
//	LCS       M J   A U      (length 4)
//
// The lcscompare command (cmd/lcscompare) runs every heuristic on random
// inputs and reports how far each one falls short of the exact length.
//
//	go install github.com/katalvlaran/lcskit/cmd/lcscompare@latest
package lcskit
