package strdist

import "golang.org/x/sync/errgroup"

// LCSLenBatch computes the LCS length between q and every candidate,
// in candidate order. transform selects LCSLenMap instead of LCSLen.
// workers <= 1 computes sequentially; see batch for the parallel plan.
func LCSLenBatch(q string, candidates []string, transform bool, workers int) []int {
	single := LCSLen
	if transform {
		single = LCSLenMap
	}
	return batch(q, candidates, workers, single)
}

// LongestSubstringLenBatch computes the longest-common-substring length
// between q and every candidate, in candidate order.
func LongestSubstringLenBatch(q string, candidates []string, workers int) []int {
	return batch(q, candidates, workers, LongestSubstringLen)
}

// DistanceBatch computes the Levenshtein distance between q and every
// candidate, in candidate order.
func DistanceBatch(q string, candidates []string, workers int) []int {
	return batch(q, candidates, workers, Distance)
}

// batch fans fn out over the candidates. The index range is split into
// contiguous chunks of ceil(n/workers); each chunk runs on its own
// goroutine and writes only its own slots of the pre-sized result, so
// no synchronization beyond the final join is needed. Results are in
// candidate order regardless of completion order.
func batch(q string, candidates []string, workers int, fn func(a, b string) int) []int {
	if len(candidates) == 0 {
		return nil
	}
	res := make([]int, len(candidates))
	if workers <= 1 {
		for i, c := range candidates {
			res[i] = fn(q, c)
		}
		return res
	}
	if workers > len(candidates) {
		workers = len(candidates)
	}
	step := (len(candidates) + workers - 1) / workers
	var g errgroup.Group
	for start := 0; start < len(candidates); start += step {
		start, end := start, min(start+step, len(candidates))
		g.Go(func() error {
			for i := start; i < end; i++ {
				res[i] = fn(q, candidates[i])
			}
			return nil
		})
	}
	_ = g.Wait() // workers never fail; Wait is the publication fence
	return res
}
