// Package rdm: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the rdm
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered conditions.

package rdm

import "errors"

// Every message is prefixed with "rdm: ..." for consistency and to allow
// easy grepping across logs. Wrap with fmt.Errorf("ctx: %w", ErrX) at outer
// boundaries only; callers still match via errors.Is.
//
// ERROR PRIORITY (enforced in validation paths):
// presence -> shape -> values (NaN/Inf) -> metric semantics.
var (
	// ErrNoPatterns is returned when Compute receives fewer than two patterns;
	// a dissimilarity structure needs at least one pair.
	ErrNoPatterns = errors.New("rdm: need at least two response patterns")

	// ErrEmptyPattern indicates a zero-length response pattern.
	ErrEmptyPattern = errors.New("rdm: empty response pattern")

	// ErrDimensionMismatch indicates patterns of unequal length, or a label
	// slice whose length disagrees with the number of conditions.
	ErrDimensionMismatch = errors.New("rdm: dimension mismatch")

	// ErrZeroVariance signals a degenerate (constant) pattern under the
	// correlation metric, where Pearson r is undefined. Never coerced.
	ErrZeroVariance = errors.New("rdm: zero-variance pattern under correlation metric")

	// ErrZeroNorm signals an all-zero pattern under the cosine metric.
	ErrZeroNorm = errors.New("rdm: zero-norm pattern under cosine metric")

	// ErrUnknownMetric is returned for a Metric value outside the enum.
	ErrUnknownMetric = errors.New("rdm: unknown dissimilarity metric")

	// ErrNotCondensed indicates a vector whose length is not a triangular
	// number N·(N−1)/2 for any N ≥ 2.
	ErrNotCondensed = errors.New("rdm: length is not a condensed triangle")

	// ErrOutOfRange indicates a condition index outside [0, N).
	ErrOutOfRange = errors.New("rdm: condition index out of range")

	// ErrNotSquare is returned by FromSquare for a non-square input.
	ErrNotSquare = errors.New("rdm: matrix is not square")

	// ErrAsymmetry is returned by FromSquare when |m[i][j]−m[j][i]| exceeds
	// the structural tolerance.
	ErrAsymmetry = errors.New("rdm: matrix is not symmetric within tolerance")

	// ErrNonZeroDiagonal is returned by FromSquare for a diagonal entry
	// outside the structural tolerance around zero.
	ErrNonZeroDiagonal = errors.New("rdm: diagonal not zero within tolerance")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("rdm: NaN or Inf encountered")
)
