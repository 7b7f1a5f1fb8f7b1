package seq

// LongestMatch returns the longest common substring of a and b as a
// single run. The rolling row dp[j] holds the length of the matching
// run starting at (i, j), so the winning triple is start-indexed
// directly. Updates are strict, so among equal-length maxima the first
// one found is kept; callers relying on a particular winner should use
// exactly one variant. Time O(n*m), space O(min(n, m)).
//
// Empty operands, or operands with no symbol in common, yield the zero
// Run.
func LongestMatch(a, b []CodePoint) Run {
	if len(a) < len(b) {
		r := LongestMatch(b, a)
		r.X, r.Y = r.Y, r.X
		return r
	}
	n, m := len(a), len(b)
	if m == 0 {
		return Run{}
	}
	var x, y, best int
	dp := make([]int, m+1)
	for i := n - 1; i >= 0; i-- {
		for j := 0; j < m; j++ {
			if a[i] == b[j] {
				// dp[j+1] still holds the previous row here.
				dp[j] = dp[j+1] + 1
				if dp[j] > best {
					best = dp[j]
					x = i
					y = j
				}
			} else {
				dp[j] = 0
			}
		}
	}
	return Run{X: x, Y: y, Len: best}
}

// MatchLen returns only the length of the longest common substring,
// skipping the position bookkeeping of LongestMatch.
func MatchLen(a, b []CodePoint) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	n, m := len(a), len(b)
	if m == 0 {
		return 0
	}
	best := 0
	dp := make([]int, m+1)
	for i := 1; i <= n; i++ {
		for j := m; j > 0; j-- {
			if a[i-1] == b[j-1] {
				dp[j] = dp[j-1] + 1
				if dp[j] > best {
					best = dp[j]
				}
			} else {
				dp[j] = 0
			}
		}
	}
	return best
}

// LongestMatchDiag returns the longest common substring of a and b by
// walking every diagonal of the match matrix: first the diagonals
// starting on row 0, then those starting on column 0. A diagonal whose
// remaining length cannot beat the best run so far is skipped. Strict
// updates keep the earliest maximum within the scan order. Typically
// faster than LongestMatch when the winning run is long relative to the
// inputs.
func LongestMatchDiag(a, b []CodePoint) Run {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return Run{}
	}
	var x, y, best int
	for i := 0; i < n; i++ {
		if m == best || n <= i+best {
			break
		}
		run := 0
		for k1, k2 := i, 0; k1 < n && k2 < m; k1, k2 = k1+1, k2+1 {
			if a[k1] == b[k2] {
				run++
				if run > best {
					x, y, best = k1, k2, run
				}
			} else {
				run = 0
			}
		}
	}
	for j := 1; j < m; j++ {
		if n == best || m <= j+best {
			break
		}
		run := 0
		for k1, k2 := 0, j; k1 < n && k2 < m; k1, k2 = k1+1, k2+1 {
			if a[k1] == b[k2] {
				run++
				if run > best {
					x, y, best = k1, k2, run
				}
			} else {
				run = 0
			}
		}
	}
	if best == 0 {
		return Run{}
	}
	return Run{X: x + 1 - best, Y: y + 1 - best, Len: best}
}
