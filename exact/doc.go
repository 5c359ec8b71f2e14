// Package exact computes the Longest Common Subsequence (LCS) of two
// sequences by full dynamic programming. It is the correctness oracle for
// every heuristic in lcskit.
//
// What is computed?
//
//	For source a (length n) and target b (length m) the engine fills an
//	(n+1)x(m+1) table T of LCS-length counters:
//	  T[0][*] = T[*][0] = 0
//	  T[i][j] = T[i-1][j-1] + 1            if a[i-1] == b[j-1]
//	  T[i][j] = max(T[i-1][j], T[i][j-1])  otherwise
//	Len() is T[n][m]. Subsequence() walks back from (n,m): a match is
//	emitted and both indexes step back; otherwise the engine steps along x
//	only when T[x-1][y] > T[x][y-1] (strictly) and along y in every other
//	case.
//
// Key features:
//   - generic over any comparable element type (bytes, runes, symbols)
//   - flat row-major uint16 table, one allocation
//   - explicit capacity check before allocation (ErrCapacityExceeded)
//   - Linear memory mode: two-row lengths plus Hirschberg reconstruction
//
// Usage:
//
//	e, err := exact.New([]byte("XMJYAUZ"), []byte("MZJAWXU"))
//	if err != nil {
//	  // ErrCapacityExceeded
//	}
//	fmt.Println(e.Len(), string(e.Subsequence())) // 4 MJAU
//
// Performance:
//
//   - Time:   O(n·m)
//   - Memory: O(n·m) (FullMatrix) or O(min(n,m)) (Linear)
package exact
