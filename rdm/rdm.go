// Package rdm — pairwise dissimilarity computation over response patterns.
//
// Design:
//   - Deterministic i→j pair traversal writes the condensed triangle in
//     canonical order; no map iteration, no randomness.
//   - Distance kernels delegate to gonum (stat.Correlation, floats.Distance,
//     floats.Dot/Norm) rather than re-deriving the arithmetic.
//   - Degenerate inputs are rejected up front: a constant pattern under the
//     correlation metric or an all-zero pattern under cosine is an error,
//     never a silently coerced value.
package rdm

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Compute builds the RDM of the given response patterns.
//
// Contracts:
//   - patterns is an ordered collection of N ≥ 2 vectors of one common
//     length V ≥ 1 (V ≥ 2 for the correlation metric).
//   - labels may be nil; if provided, len(labels) == N.
//   - opts may be nil, in which case DefaultOptions() applies.
//
// The output stores pair (i,j), i<j, at the canonical condensed index;
// see condensed.go for the layout.
//
// Errors:
//   - ErrNoPatterns, ErrEmptyPattern, ErrDimensionMismatch — shape stage.
//   - ErrNaNInf — value stage.
//   - ErrZeroVariance, ErrZeroNorm, ErrUnknownMetric — metric stage.
//
// Complexity: O(N²·V) time, O(N²) space.
func Compute(patterns [][]float64, labels []string, opts *Options) (*RDM, error) {
	// Stage 1 — resolve options.
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Metric != Correlation && o.Metric != Euclidean && o.Metric != Cosine {
		return nil, ErrUnknownMetric
	}

	// Stage 2 — shape validation.
	n := len(patterns)
	if n < 2 {
		return nil, ErrNoPatterns
	}
	dim := len(patterns[0])
	if dim == 0 {
		return nil, ErrEmptyPattern
	}
	lab, err := normalizeLabels(labels, n)
	if err != nil {
		return nil, err
	}

	var i, j int
	for i = 0; i < n; i++ {
		if len(patterns[i]) == 0 {
			return nil, ErrEmptyPattern
		}
		if len(patterns[i]) != dim {
			return nil, ErrDimensionMismatch
		}
	}

	// Stage 3 — value validation and per-pattern degeneracy checks, done
	// once per pattern rather than once per pair.
	for i = 0; i < n; i++ {
		if err = checkPattern(patterns[i], o.Metric); err != nil {
			return nil, err
		}
	}

	// Stage 4 — fill the condensed triangle in canonical order.
	var (
		data = make([]float64, CondensedLen(n))
		idx  int
		d    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = distance(patterns[i], patterns[j], o.Metric)
			data[idx] = d
			idx++
		}
	}

	return &RDM{n: n, metric: o.Metric, labels: lab, data: data}, nil
}

// checkPattern validates one response pattern against the numeric policy
// and the metric's degeneracy conditions.
func checkPattern(p []float64, m Metric) error {
	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaNInf
		}
	}
	switch m {
	case Correlation:
		// Pearson r needs spread on both sides; a constant vector has none.
		if len(p) < 2 || stat.Variance(p, nil) == 0 {
			return ErrZeroVariance
		}
	case Cosine:
		if floats.Norm(p, 2) == 0 {
			return ErrZeroNorm
		}
	}
	return nil
}

// distance computes one pairwise dissimilarity. Inputs are pre-validated:
// equal finite vectors, non-degenerate for the chosen metric.
func distance(a, b []float64, m Metric) float64 {
	switch m {
	case Correlation:
		return 1 - stat.Correlation(a, b, nil)
	case Euclidean:
		return floats.Distance(a, b, 2)
	default: // Cosine; Compute rejected everything else.
		return 1 - floats.Dot(a, b)/(floats.Norm(a, 2)*floats.Norm(b, 2))
	}
}
