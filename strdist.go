// Package strdist computes sequence-similarity primitives between
// UTF-8 strings: longest common subsequence (length-only and alignment
// forms), longest common substring, and Levenshtein edit distance.
//
// Comparison happens at Unicode code-point granularity. Positions and
// lengths in results are counted in code points, never bytes, and no
// normalization, case folding, or grapheme clustering is applied.
// Malformed UTF-8 does not fail: bytes decode best-effort and compare
// like any other symbol.
//
// All functions are pure and safe for concurrent use.
package strdist

import "github.com/glaslos/strdist/seq"

// A Run reports that a[A:A+Len] equals b[B:B+Len], in code-point
// positions of the two string arguments as the caller passed them.
type Run struct {
	A, B int
	Len  int
}

// LCSLen returns the length of the longest common subsequence of a and
// b, using the rolling-row dynamic program.
func LCSLen(a, b string) int {
	return seq.Len(seq.Decode([]byte(a)), seq.Decode([]byte(b)))
}

// LCSLenMap returns the length of the longest common subsequence of a
// and b, using the reduction to longest increasing subsequence. It
// always agrees with LCSLen and is often faster on text where few
// symbols repeat.
func LCSLenMap(a, b string) int {
	return seq.LenMap(seq.Decode([]byte(a)), seq.Decode([]byte(b)))
}

// LCSDP returns a longest-common-subsequence alignment of a and b from
// the full dynamic-programming table. Of the three alignment variants
// only LCSDP promises a canonical path (ties prefer advancing in b);
// use it when stable positions matter and the O(n*m) table fits.
func LCSDP(a, b string) []Run {
	return runs(seq.DP(seq.Decode([]byte(a)), seq.Decode([]byte(b))))
}

// LCSHirschberg returns a longest-common-subsequence alignment of a and
// b in linear space.
func LCSHirschberg(a, b string) []Run {
	return runs(seq.Hirschberg(seq.Decode([]byte(a)), seq.Decode([]byte(b))))
}

// LCSMyers returns a longest-common-subsequence alignment of a and b
// using the O((N+M)D) middle-snake algorithm, the fastest variant when
// the inputs are similar.
func LCSMyers(a, b string) []Run {
	return runs(seq.Myers(seq.Decode([]byte(a)), seq.Decode([]byte(b))))
}

// LongestSubstring returns the longest common substring of a and b,
// computed with the rolling-row dynamic program. When no symbol is
// shared the zero Run is returned.
func LongestSubstring(a, b string) Run {
	return run(seq.LongestMatch(seq.Decode([]byte(a)), seq.Decode([]byte(b))))
}

// LongestSubstringLen returns only the length of the longest common
// substring of a and b, cheaper than LongestSubstring when positions
// are not needed.
func LongestSubstringLen(a, b string) int {
	return seq.MatchLen(seq.Decode([]byte(a)), seq.Decode([]byte(b)))
}

// LongestSubstringDiag returns the longest common substring of a and b,
// computed by scanning diagonals. The result length always equals
// LongestSubstring's; when several substrings tie, the reported
// positions may differ between the two variants.
func LongestSubstringDiag(a, b string) Run {
	return run(seq.LongestMatchDiag(seq.Decode([]byte(a)), seq.Decode([]byte(b))))
}

// Distance returns the Levenshtein edit distance between a and b in
// code-point operations.
func Distance(a, b string) int {
	return seq.Distance(seq.Decode([]byte(a)), seq.Decode([]byte(b)))
}

// DistanceK returns the Levenshtein edit distance between a and b when
// it is at most k, and exactly k otherwise. The search stops as soon as
// the bound is provably exceeded, making it much cheaper than Distance
// for small k.
func DistanceK(a, b string, k int) int {
	return seq.DistanceK(seq.Decode([]byte(a)), seq.Decode([]byte(b)), k)
}

func run(r seq.Run) Run {
	return Run{A: r.X, B: r.Y, Len: r.Len}
}

func runs(rs []seq.Run) []Run {
	out := make([]Run, len(rs))
	for i, r := range rs {
		out[i] = run(r)
	}
	return out
}
