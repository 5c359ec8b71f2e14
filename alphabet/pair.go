package alphabet

// Pair is one match between two sequences: source[Source] == target[Target].
type Pair struct {
	Source int
	Target int
}

// Before reports whether q may follow p in a common subsequence.
func (p Pair) Before(q Pair) bool {
	return p.Source < q.Source && p.Target < q.Target
}
