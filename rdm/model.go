// Package rdm — hand-authored model RDM constructors.
//
// A model RDM encodes a hypothesized similarity structure (animacy,
// tool-use, physical size, …) in the same condensed layout as a neural
// RDM, so the two can be compared pair-for-pair. Model RDMs are built
// from condition attributes, never derived from imaging data.
package rdm

import "math"

// FromAttribute builds a model RDM from one numeric attribute per
// condition: the dissimilarity of pair (i,j) is |values[i] − values[j]|.
//
// Contracts:
//   - len(values) == N ≥ 2; all values finite.
//   - labels may be nil; if provided, len(labels) == N.
//
// Example: physical sizes [.3, .35, .2, …] give a first condensed entry
// of |0.3 − 0.35| = 0.05.
//
// Errors: ErrNoPatterns, ErrDimensionMismatch, ErrNaNInf.
//
// Complexity: O(N²).
func FromAttribute(values []float64, labels []string) (*RDM, error) {
	n := len(values)
	if n < 2 {
		return nil, ErrNoPatterns
	}
	lab, err := normalizeLabels(labels, n)
	if err != nil {
		return nil, err
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrNaNInf
		}
	}

	var (
		data = make([]float64, CondensedLen(n))
		idx  int
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			data[idx] = math.Abs(values[i] - values[j])
			idx++
		}
	}

	return &RDM{n: n, metric: Model, labels: lab, data: data}, nil
}

// FromCategories builds a binary model RDM from category membership:
// pair (i,j) is 0 when groups[i] == groups[j] and 1 otherwise. This is
// the classic "animate vs inanimate" style hypothesis matrix.
//
// Contracts:
//   - len(groups) == N ≥ 2.
//   - labels may be nil; if provided, len(labels) == N.
//
// Errors: ErrNoPatterns, ErrDimensionMismatch.
//
// Complexity: O(N²).
func FromCategories(groups []string, labels []string) (*RDM, error) {
	n := len(groups)
	if n < 2 {
		return nil, ErrNoPatterns
	}
	lab, err := normalizeLabels(labels, n)
	if err != nil {
		return nil, err
	}

	var (
		data = make([]float64, CondensedLen(n))
		idx  int
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if groups[i] != groups[j] {
				data[idx] = 1
			}
			idx++
		}
	}

	return &RDM{n: n, metric: Model, labels: lab, data: data}, nil
}
