package seq

import "sort"

// Len returns the length of the longest common subsequence of a and b.
// It runs the classic dynamic program over a single rolling row, after
// normalizing argument order and trimming the common prefix and suffix.
// Time O(n*m), space O(min(n, m)).
func Len(a, b []CodePoint) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	if len(b) == 0 {
		return 0
	}
	prefix := commonPrefixLen(a, b)
	a, b = a[prefix:], b[prefix:]
	suffix := commonSuffixLen(a, b)
	a, b = a[:len(a)-suffix], b[:len(b)-suffix]
	n, m := len(a), len(b)
	if m == 0 {
		return prefix + suffix
	}

	// The row is updated right to left, bottom up, so the value the
	// cell (i,j) needs from (i+1,j+1) is saved before it is clobbered.
	dp := make([]int, m+1)
	for i := n - 1; i >= 0; i-- {
		bottomRight := 0
		for j := m - 1; j >= 0; j-- {
			temp := dp[j]
			if a[i] == b[j] {
				dp[j] = bottomRight + 1
			} else if dp[j+1] > dp[j] {
				dp[j] = dp[j+1]
			}
			bottomRight = temp
		}
	}
	return dp[0] + prefix + suffix
}

// LenMap returns the length of the longest common subsequence of a and
// b by reducing LCS to longest increasing subsequence over a map from
// symbol to its positions in b. Often faster than Len when few distinct
// symbols repeat; degenerates on highly repetitive inputs.
func LenMap(a, b []CodePoint) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	if len(b) == 0 {
		return 0
	}
	prefix := commonPrefixLen(a, b)
	a, b = a[prefix:], b[prefix:]
	suffix := commonSuffixLen(a, b)
	a, b = a[:len(a)-suffix], b[:len(b)-suffix]
	n, m := len(a), len(b)
	if m == 0 {
		return prefix + suffix
	}

	pos := make(map[CodePoint][]int, m)
	for j := 0; j < m; j++ {
		pos[b[j]] = append(pos[b[j]], j)
	}

	// Patience LIS over the position lists. Each symbol's positions are
	// visited in descending order so that repeated occurrences of one
	// symbol of a cannot chain with each other.
	s := make([]int, 0, m)
	for i := 0; i < n; i++ {
		positions, ok := pos[a[i]]
		if !ok {
			continue
		}
		for t := len(positions) - 1; t >= 0; t-- {
			index := positions[t]
			if len(s) == 0 || index > s[len(s)-1] {
				s = append(s, index)
			} else {
				s[sort.SearchInts(s, index)] = index
			}
		}
	}
	return prefix + suffix + len(s)
}
