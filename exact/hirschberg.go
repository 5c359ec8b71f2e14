package exact

// hirschberg returns an LCS of a and b using O(min(n,m)) working memory.
// The shorter sequence indexes the score rows.
// Complexity: O(n·m) time, recursion depth O(log max(n,m)).
func hirschberg[T comparable](a, b []T) []T {
	if len(b) > len(a) {
		a, b = b, a
	}
	if len(b) == 0 {
		return []T{}
	}
	s := newScratch(len(b))

	return split(s, a, b, make([]T, 0, len(b)))
}

// scratch holds the four score rows shared by every recursion level.
// b only shrinks while recursing, so prefixes of the rows always fit.
type scratch struct {
	f0, f1, r0, r1 []uint16
}

func newScratch(m int) *scratch {
	w := m + 1
	buf := make([]uint16, 4*w)

	return &scratch{
		f0: buf[0*w : 1*w],
		f1: buf[1*w : 2*w],
		r0: buf[2*w : 3*w],
		r1: buf[3*w : 4*w],
	}
}

// split appends an LCS of a and b to out.
func split[T comparable](s *scratch, a, b, out []T) []T {
	switch {
	case len(a) == 0 || len(b) == 0:
		return out
	case len(a) == 1:
		for _, v := range b {
			if v == a[0] {
				return append(out, v)
			}
		}

		return out
	}

	mid := len(a) / 2
	fwd := forwardRow(a[:mid], b, s.f0, s.f1)
	rev := reverseRow(a[mid:], b, s.r0, s.r1)

	// best cut k of b: LCS(a[:mid], b[:k]) + LCS(a[mid:], b[k:]) is maximal
	k, best := 0, -1
	for j := 0; j <= len(b); j++ {
		if v := int(fwd[j]) + int(rev[j]); v > best {
			k, best = j, v
		}
	}

	out = split(s, a[:mid], b[:k], out)

	return split(s, a[mid:], b[k:], out)
}

// forwardRow returns row[j] = LCS(a, b[:j]) for j in [0, len(b)].
// The result aliases prev or curr.
func forwardRow[T comparable](a, b []T, prev, curr []uint16) []uint16 {
	m := len(b)
	prev, curr = prev[:m+1], curr[:m+1]
	clear(prev)
	for _, sa := range a {
		curr[0] = 0
		for j := 1; j <= m; j++ {
			if sa == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else {
				curr[j] = max(prev[j], curr[j-1])
			}
		}
		prev, curr = curr, prev
	}

	return prev
}

// reverseRow returns row[j] = LCS(a, b[j:]) for j in [0, len(b)].
// The result aliases prev or curr.
func reverseRow[T comparable](a, b []T, prev, curr []uint16) []uint16 {
	m := len(b)
	prev, curr = prev[:m+1], curr[:m+1]
	clear(prev)
	for i := len(a) - 1; i >= 0; i-- {
		sa := a[i]
		curr[m] = 0
		for j := m - 1; j >= 0; j-- {
			if sa == b[j] {
				curr[j] = prev[j+1] + 1
			} else {
				curr[j] = max(prev[j], curr[j+1])
			}
		}
		prev, curr = curr, prev
	}

	return prev
}
