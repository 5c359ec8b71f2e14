// Package pairs computes an LCS through the set of candidate pairs: every
// (source index, target index) whose symbols are equal.
//
// Pipeline:
//  1. Enumerate candidate pairs grouped by symbol value ascending, source
//     index outer loop, target index inner loop. The enumeration index is
//     the pair's ID.
//  2. Build two look-ups, SourceIndex and TargetIndex, where row k holds the
//     IDs of pairs whose source (target) index is k. Both are sized exactly
//     by counting.
//  3. For every pair p compute its unblocking row: the IDs found both in
//     SourceIndex rows (p.Source, end) and TargetIndex rows (p.Target, end),
//     i.e. pairs that may follow p in a common subsequence. Rows are
//     independent and are built in parallel (errgroup, bounded workers).
//  4. Select a chain through the resulting DAG (Selection):
//     - LongestPath: longest path by DP over IDs in decreasing source index.
//     - Patience: longest strictly increasing run of target indexes over
//     pairs ordered by (source asc, target desc).
//     - NoSelection: stop after step 3; Chain reports
//     ErrChainSelectionNotImplemented.
//
// Both selection strategies return an optimal LCS, so Len equals the exact
// engine's length.
//
// Complexity:
//
//   - Time:   O(P²/workers) for the unblocking rows, O(P²) LongestPath,
//     O(P log P) Patience, where P is the number of candidate pairs.
//   - Memory: O(P²) worst case for the unblocking matrix; bounded by
//     Options.MaxPairs.
package pairs
