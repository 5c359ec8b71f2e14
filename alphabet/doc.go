// Package alphabet provides bounded-alphabet look-up tables over symbol
// sequences: per-symbol frequency counts, per-symbol position lists and
// set-intersection style filtering.
//
// ✨ Key features:
//   - tables are sized from the largest symbol actually present (max+1),
//     so the same code serves uint8 bytes, uint16 codes or small uint64 ids;
//   - position lists are pre-sized from the frequency table (no reallocation);
//   - Frequencies doubles as a decaying view: engines that consume symbols
//     own their table and Decrement it in place;
//   - SharedBound gives Σ min(count_a, count_b), an upper bound on the length
//     of any common subsequence.
//
// All functions are pure; empty input yields empty output. Table sizes are
// assumed bounded: callers that accept arbitrary input validate it first
// with CheckSize (ErrAlphabetTooLarge).
//
// Complexity:
//
//   - Counts, Positions, FilterShared: O(n + σ) time, O(σ) extra space,
//     where σ is the table size (max symbol + 1).
//   - PositionIndex.Next: O(log k) for k occurrences of the symbol.
package alphabet
