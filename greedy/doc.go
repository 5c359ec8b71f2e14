// Package greedy approximates the LCS by repeatedly committing the match
// closest to the start of both remaining suffixes.
//
// At each step, over the remaining suffixes (source', target'), every
// source offset so is paired with the first occurrence of its symbol in
// target' at offset to; the pair with the smallest so+to wins, later
// source offsets winning ties. The scan stops as soon as so alone exceeds
// the best sum. The winner is committed, both cursors move past it and
// the loop repeats until no pair remains.
//
// This is a heuristic: it never backtracks and can return a shorter
// subsequence than the exact engine. The result is always a common
// subsequence.
//
// Complexity: O(k · n log n) time for an LCS of length k, O(n + m + σ)
// memory.
package greedy
