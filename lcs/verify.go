package lcs

// IsSubsequence reports whether sub can be obtained from seq by deleting
// elements.
// Complexity: O(len(seq)).
func IsSubsequence[T comparable](sub, seq []T) bool {
	i := 0
	for _, v := range seq {
		if i == len(sub) {
			break
		}
		if sub[i] == v {
			i++
		}
	}

	return i == len(sub)
}

// IsCommonSubsequence reports whether sub is a subsequence of both a and b.
func IsCommonSubsequence[T comparable](sub, a, b []T) bool {
	return IsSubsequence(sub, a) && IsSubsequence(sub, b)
}
