package seq

// Myers returns a longest-common-subsequence alignment of a and b using
// the bidirectional O((N+M)D) middle-snake algorithm. Forward and
// reverse d-paths are extended alternately over two diagonal arrays;
// when the farthest-reaching paths of the parity-matching side overlap,
// their meeting point splits the problem and both halves recurse.
//
// The alignment is valid but not necessarily the canonical one DP
// returns.
func Myers(a, b []CodePoint) []Run {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return nil
	}
	c := n + m + 1
	down := make([]int, c)
	up := make([]int, c)
	var rb runBuilder
	editScript(a, b, 0, n, 0, m, down, up, &rb)
	return rb.runs
}

// editScript emits the matching runs of a shortest edit script between
// a[aStart:aEnd] and b[bStart:bEnd]. The common prefix and suffix of
// the rectangle are stripped and emitted here, at every recursion
// level, before the middle snake is searched.
func editScript(a, b []CodePoint, aStart, aEnd, bStart, bEnd int, down, up []int, rb *runBuilder) {
	start, end := aStart, aEnd
	for aStart < aEnd && bStart < bEnd && a[aStart] == b[bStart] {
		aStart++
		bStart++
	}
	for aStart < aEnd && bStart < bEnd && a[aEnd-1] == b[bEnd-1] {
		aEnd--
		bEnd--
	}
	if n := aStart - start; n > 0 {
		rb.addRun(start, bStart-n, n)
	}
	snake(a, b, aStart, aEnd, bStart, bEnd, down, up, rb)
	if n := end - aEnd; n > 0 {
		rb.addRun(aEnd, bEnd, n)
	}
}

// snake finds the middle snake of the rectangle and recurses on the
// sub-rectangles before and after it. If one side is a contiguous
// substring of the other, that substring is the whole answer.
func snake(a, b []CodePoint, aStart, aEnd, bStart, bEnd int, down, up []int, rb *runBuilder) {
	if aStart == aEnd || bStart == bEnd {
		return
	}
	n := aEnd - aStart
	m := bEnd - bStart
	if n > m {
		if p := search(a[aStart:aEnd], b[bStart:bEnd]); p >= 0 {
			rb.addRun(aStart+p, bStart, m)
			return
		}
		if m == 1 {
			return
		}
	} else {
		if p := search(b[bStart:bEnd], a[aStart:aEnd]); p >= 0 {
			rb.addRun(aStart, bStart+p, n)
			return
		}
		if n == 1 {
			return
		}
	}

	dMax := (m + n + 1) / 2
	length := dMax * 2
	for i := 0; i < length; i++ {
		down[i] = -1
		up[i] = -1
	}
	// Diagonal k is stored at offset dMax+k. Seeding k=1 with 0 lets
	// the d=0 step fall out of the general k==-d case.
	down[dMax+1] = 0
	up[dMax+1] = 0
	delta := n - m
	front := delta%2 != 0
	var x, y int
	d1, d2, u1, u2 := 0, 0, 0, 0
	for d := 0; d < dMax; d++ {
		// forward path
		for k := -d + d1; k <= d-d2; k += 2 {
			k1 := dMax + k
			if k == -d || (k != d && down[k1-1] < down[k1+1]) {
				x = down[k1+1]
			} else {
				x = down[k1-1] + 1
			}
			y = x - k
			for x < n && y < m && a[aStart+x] == b[bStart+y] {
				x++
				y++
			}
			down[k1] = x
			if x > n {
				d2 += 2
				continue
			}
			if y > m {
				d1 += 2
				continue
			}
			if front {
				k2 := dMax + delta - k
				if k2 >= 0 && k2 < length && x >= n-up[k2] {
					editScript(a, b, aStart, aStart+x, bStart, bStart+y, down, up, rb)
					editScript(a, b, aStart+x, aEnd, bStart+y, bEnd, down, up, rb)
					return
				}
			}
		}
		// reverse path
		for k := -d + u1; k <= d-u2; k += 2 {
			k2 := dMax + k
			if k == -d || (k != d && up[k2-1] < up[k2+1]) {
				x = up[k2+1]
			} else {
				x = up[k2-1] + 1
			}
			y = x - k
			for x < n && y < m && a[aEnd-x-1] == b[bEnd-y-1] {
				x++
				y++
			}
			up[k2] = x
			if x > n {
				u2 += 2
				continue
			}
			if y > m {
				u1 += 2
				continue
			}
			if !front {
				k1 := dMax + delta - k
				if k1 >= 0 && k1 < length && down[k1] >= n-x {
					x = down[k1]
					y = x + k - delta
					editScript(a, b, aStart, aStart+x, bStart, bStart+y, down, up, rb)
					editScript(a, b, aStart+x, aEnd, bStart+y, bEnd, down, up, rb)
					return
				}
			}
		}
	}
}

// search returns the index of the first occurrence of needle within
// haystack, or -1.
func search(haystack, needle []CodePoint) int {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		found := true
		for j := range needle {
			if haystack[i+j] != needle[j] {
				found = false
				break
			}
		}
		if found {
			return i
		}
	}
	return -1
}
