// Package scored approximates the LCS with a count-weighted variant of the
// closest-pair heuristic.
//
// Instead of the smallest offset sum, each step commits the pair whose
// skipped prefixes are cheapest. A prefix p (up to and including the
// candidate) is scored from the remaining-suffix counts c of its symbols:
//
//	damage = round(len(p) / Σc · 100)
//	score  = damage / 100 · len(p)
//
// Prefixes made of frequent symbols score low: skipping them loses little.
// The pair minimizing score(source prefix) + score(target prefix) wins,
// the first candidate keeping ties. Counts live in tables owned by the
// engine and decay as the cursors advance.
//
// Complexity: O(k · (n + m)) time for a result of length k.
package scored
