// Package compare — Spearman rank correlation between condensed RDMs.
package compare

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Spearman computes the rank correlation between two equal-length
// dissimilarity vectors, with average ranks for ties, plus a two-sided
// Student-t significance approximation.
//
// Contracts:
//   - len(a) == len(b) ≥ 3, all values finite.
//   - Neither vector may be entirely tied (rank variance would be zero).
//
// The p-value uses t = ρ·√((n−2)/(1−ρ²)) against a t-distribution with
// n−2 degrees of freedom; |ρ| == 1 yields p == 0 by convention.
//
// Errors: ErrLengthMismatch, ErrTooShort, ErrNaNInf, ErrZeroRankVariance.
//
// Complexity: O(n log n) time, O(n) space.
func Spearman(a, b []float64) (Result, error) {
	// Stage 1 — shape.
	if len(a) != len(b) {
		return Result{}, ErrLengthMismatch
	}
	n := len(a)
	if n < 3 {
		return Result{}, ErrTooShort
	}

	// Stage 2 — values.
	var i int
	for i = 0; i < n; i++ {
		if math.IsNaN(a[i]) || math.IsInf(a[i], 0) || math.IsNaN(b[i]) || math.IsInf(b[i], 0) {
			return Result{}, ErrNaNInf
		}
	}

	// Stage 3 — rank and detect degenerate (all-tied) vectors.
	ra := ranks(a)
	rb := ranks(b)
	if stat.Variance(ra, nil) == 0 || stat.Variance(rb, nil) == 0 {
		return Result{}, ErrZeroRankVariance
	}

	// Stage 4 — Pearson correlation of the ranks is Spearman's rho; this
	// form handles ties correctly without the shortcut d² formula.
	rho := stat.Correlation(ra, rb, nil)

	return Result{Rho: rho, PValue: spearmanPValue(rho, n), N: n}, nil
}

// spearmanPValue returns the two-sided t-approximation p-value for rho
// over n pairs. Exact at the boundaries: |rho|==1 → 0.
func spearmanPValue(rho float64, n int) float64 {
	if math.Abs(rho) >= 1 {
		return 0
	}
	t := rho * math.Sqrt(float64(n-2)/(1-rho*rho))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 2)}
	return 2 * dist.Survival(math.Abs(t))
}
