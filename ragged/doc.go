// Package ragged provides Matrix, a compressed ragged matrix: a sequence of
// variable-length rows stored back to back in one contiguous buffer plus an
// offsets index (the CSR layout).
//
// Row i occupies items[offsets[i]:offsets[i+1]]. Because rows are contiguous,
// a range of rows is itself a single sub-slice of the buffer, so Span and
// SpanFrom return "concatenated" rows without copying.
//
// Guarantees:
//   - Push / Pop: O(1) amortized (plus the row length), no per-row allocation.
//   - Row / Span / SpanFrom: O(1), no copy.
//   - Out-of-range row access panics: it is a programmer error, not a runtime
//     condition. Use Get for a checked look-up.
//
// Invariants (checked by Validate):
//
//	offsets[0] == 0
//	offsets is non-decreasing
//	len(offsets) == Len()+1
//	offsets[Len()] == len(items)
package ragged
