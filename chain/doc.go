// Package chain approximates the LCS by searching every pair tied for the
// smallest offset sum, instead of committing one as package greedy does.
//
// At a state (i, j) (cursors into source and target) the engine collects
// all pairs (so, to) that share the minimum so+to, where to is the first
// occurrence of source[i+so] in target[j:]. Each tie leads to the state
// (i+so+1, j+to+1); the longest continuation wins and, among
// equal lengths, the last tie in source order. Only offset-minimal picks are explored,
// so the result can still be shorter than the exact LCS, but it is never
// shorter than the greedy one.
//
// Limits:
//
//	Without memoization the tie tree grows exponentially with the number
//	of tied positions. The engine runs an explicit work stack (no
//	recursion) and memoizes states, so at most (n+1)·(m+1) states are
//	solved; Options.MaxStates caps that number and New fails with
//	ErrSearchBudgetExceeded beyond it.
//
// Pruning:
//
//	A tie whose continuation cannot at least match the best branch found
//	so far is skipped. The bound is 1 + SharedBound of the remaining suffixes,
//	read from per-position suffix count tables when they fit, or the
//	shorter remaining length otherwise. Pruning never changes the result.
//
// Complexity: O(S · (n log m + σ)) time for S solved states.
package chain
