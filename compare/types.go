// Package compare: result types, options and sentinel errors.
package compare

import "errors"

var (
	// ErrLengthMismatch indicates condensed vectors of different lengths.
	ErrLengthMismatch = errors.New("compare: dissimilarity vectors differ in length")

	// ErrTooShort indicates fewer than three paired observations; a rank
	// correlation over one or two pairs carries no information.
	ErrTooShort = errors.New("compare: need at least three paired dissimilarities")

	// ErrZeroRankVariance indicates a vector whose entries are all tied;
	// its ranks are constant and Spearman's rho is undefined.
	ErrZeroRankVariance = errors.New("compare: all dissimilarities tied, rank variance is zero")

	// ErrNaNInf signals a NaN or ±Inf dissimilarity.
	ErrNaNInf = errors.New("compare: NaN or Inf encountered")

	// ErrBadIterations indicates a non-positive permutation count.
	ErrBadIterations = errors.New("compare: permutation iterations must be positive")

	// ErrShapeMismatch indicates RDMs over different condition counts.
	ErrShapeMismatch = errors.New("compare: RDMs cover different condition counts")
)

// Result holds a rank-correlation outcome.
type Result struct {
	// Rho is Spearman's rank correlation coefficient in [−1, 1].
	Rho float64

	// PValue is the two-sided significance estimate. For Spearman it is
	// the Student-t approximation; for PermutationTest it is the
	// add-one-smoothed permutation p-value (count+1)/(iters+1).
	PValue float64

	// N is the number of paired dissimilarities.
	N int
}

// PermOptions configures the condition-label permutation test.
//
// Fields:
//   - Iterations — number of random permutations (default 1000).
//   - Seed — RNG seed; 0 selects a fixed default for reproducibility.
type PermOptions struct {
	Iterations int
	Seed       int64
}

// DefaultPermOptions returns the canonical permutation configuration.
func DefaultPermOptions() PermOptions {
	return PermOptions{Iterations: 1000, Seed: 0}
}
