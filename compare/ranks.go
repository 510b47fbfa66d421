// Package compare — fractional ranking with average ranks for ties.
//
// Design:
//   - Deterministic: sorting is by value with index as tie-breaker for the
//     sort itself; tied values then share the average of their positions,
//     so the tie-breaker never leaks into the ranks.
//   - O(n log n) time, O(n) space; no hidden allocations beyond the two
//     scratch slices.
package compare

import "sort"

// ranks returns 1-based fractional ranks of xs, assigning tied values the
// average of the positions they occupy (the standard rank-correlation
// convention).
//
// Callers guarantee finite input.
func ranks(xs []float64) []float64 {
	var (
		n   = len(xs)
		idx = make([]int, n)
		out = make([]float64, n)
		i   int
	)
	for i = 0; i < n; i++ {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return xs[idx[a]] < xs[idx[b]] })

	// Walk runs of equal values and spread their average position.
	var lo, hi int
	for lo = 0; lo < n; lo = hi {
		hi = lo + 1
		for hi < n && xs[idx[hi]] == xs[idx[lo]] {
			hi++
		}
		// Positions lo..hi-1 are 1-based ranks lo+1..hi; their mean is
		// (lo+1+hi)/2.
		avg := float64(lo+1+hi) / 2
		for i = lo; i < hi; i++ {
			out[idx[i]] = avg
		}
	}

	return out
}
