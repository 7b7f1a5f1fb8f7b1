package seq

// Hirschberg returns a longest-common-subsequence alignment of a and b
// in linear space. The divide-and-conquer splits a in half, scores
// every split of b with one forward and one reverse length-only row,
// and recurses on the two halves. On tied split scores the smallest
// split index wins. Time O(n*m), space O(min(n, m)).
//
// The alignment is valid but not necessarily the canonical one DP
// returns.
func Hirschberg(a, b []CodePoint) []Run {
	if len(a) < len(b) {
		runs := Hirschberg(b, a)
		for i := range runs {
			runs[i].X, runs[i].Y = runs[i].Y, runs[i].X
		}
		return runs
	}
	var rb runBuilder
	prefix := commonPrefixLen(a, b)
	a, b = a[prefix:], b[prefix:]
	suffix := commonSuffixLen(a, b)
	a, b = a[:len(a)-suffix], b[:len(b)-suffix]
	n, m := len(a), len(b)
	rb.addRun(0, 0, prefix)
	if m == 0 {
		rb.addRun(prefix+n, prefix+m, suffix)
		return rb.runs
	}

	left := make([]int, m+1)
	right := make([]int, m+1)
	hirschberg(a, 0, n, b, 0, m, left, right, prefix, &rb)
	rb.addRun(prefix+n, prefix+m, suffix)
	return rb.runs
}

// hirschberg solves a[aStart:aStart+n] against b[bStart:bStart+m],
// emitting single matches in increasing order. left and right are
// shared scratch rows; they are zero on entry and zeroed again before
// recursing so the callee can reuse them.
func hirschberg(a []CodePoint, aStart, n int, b []CodePoint, bStart, m int, left, right []int, prefix int, rb *runBuilder) {
	if m == 0 {
		return
	}
	if n == 1 {
		for j := bStart; j < bStart+m; j++ {
			if b[j] == a[aStart] {
				rb.add(prefix+aStart, prefix+j)
				return
			}
		}
		return
	}
	middle := n / 2
	forwardRow(a[aStart:aStart+middle], b[bStart:bStart+m], left)
	reverseRow(a[aStart+middle:aStart+n], b[bStart:bStart+m], right)
	split, best := 0, 0
	for j := 0; j <= m; j++ {
		if sum := left[j] + right[j]; sum > best {
			best = sum
			split = j
		}
		left[j] = 0
		right[j] = 0
	}
	hirschberg(a, aStart, middle, b, bStart, split, left, right, prefix, rb)
	hirschberg(a, aStart+middle, n-middle, b, bStart+split, m-split, left, right, prefix, rb)
}

// forwardRow leaves dp[j] = LCS length of a and b[:j]. dp must be zero
// on entry.
func forwardRow(a, b []CodePoint, dp []int) {
	for i := 1; i <= len(a); i++ {
		topLeft := 0
		for j := 1; j <= len(b); j++ {
			temp := dp[j]
			if a[i-1] == b[j-1] {
				dp[j] = topLeft + 1
			} else if dp[j-1] > dp[j] {
				dp[j] = dp[j-1]
			}
			topLeft = temp
		}
	}
}

// reverseRow leaves dp[j] = LCS length of a and b[j:]. dp must be zero
// on entry.
func reverseRow(a, b []CodePoint, dp []int) {
	for i := len(a) - 1; i >= 0; i-- {
		bottomRight := 0
		for j := len(b) - 1; j >= 0; j-- {
			temp := dp[j]
			if a[i] == b[j] {
				dp[j] = bottomRight + 1
			} else if dp[j+1] > dp[j] {
				dp[j] = dp[j+1]
			}
			bottomRight = temp
		}
	}
}
