// Package rdm — condensed-triangle layout and square-matrix conversions.
//
// The canonical layout places pair (i,j), i<j, at
//
//	index = i·(2N−i−1)/2 + (j−i−1)
//
// which enumerates pairs by i then j. FromSquare/Square are exact inverses
// on the condensed vector (round-trip law, covered in tests).
package rdm

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// symTol is the structural tolerance for symmetry and zero-diagonal checks
// on square input. Independent from any caller-facing epsilon.
const symTol = 1e-12

// CondensedLen returns N·(N−1)/2, the condensed length for n conditions.
// Returns 0 for n < 2.
func CondensedLen(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// ConditionsFor inverts CondensedLen: given a condensed length, it returns
// the unique N ≥ 2 with N·(N−1)/2 == length, or ErrNotCondensed when the
// length is not a triangular number.
func ConditionsFor(length int) (int, error) {
	if length < 1 {
		return 0, ErrNotCondensed
	}
	// Solve n² − n − 2·length = 0 and verify exactly (FP-safe for any
	// realistic condition count).
	n := int(math.Round((1 + math.Sqrt(1+8*float64(length))) / 2))
	if n < 2 || n*(n-1)/2 != length {
		return 0, ErrNotCondensed
	}
	return n, nil
}

// pairIndex maps ordered pair (i,j), i<j, onto its condensed index.
// Callers guarantee 0 ≤ i < j < n.
func pairIndex(i, j, n int) int {
	return i*(2*n-i-1)/2 + (j - i - 1)
}

// At returns the dissimilarity between conditions i and j.
// At(i,i) is 0 by definition; order of i and j is irrelevant.
//
// Errors: ErrOutOfRange for indices outside [0, N).
//
// Complexity: O(1).
func (r *RDM) At(i, j int) (float64, error) {
	if i < 0 || i >= r.n || j < 0 || j >= r.n {
		return 0, ErrOutOfRange
	}
	if i == j {
		return 0, nil
	}
	if i > j {
		i, j = j, i
	}
	return r.data[pairIndex(i, j, r.n)], nil
}

// Square expands the condensed triangle into a full symmetric N×N matrix
// with a zero diagonal, ready for heatmap rendering or external tooling.
//
// Complexity: O(N²) time and space.
func (r *RDM) Square() *mat.Dense {
	var (
		out  = mat.NewDense(r.n, r.n, nil)
		i, j int
		v    float64
	)
	for i = 0; i < r.n; i++ {
		for j = i + 1; j < r.n; j++ {
			v = r.data[pairIndex(i, j, r.n)]
			out.Set(i, j, v)
			out.Set(j, i, v)
		}
	}
	return out
}

// FromCondensed builds an RDM directly from a condensed vector.
//
// Contracts:
//   - len(data) must be a triangular number N·(N−1)/2, N ≥ 2.
//   - labels may be nil; if provided, len(labels) must equal N.
//   - all entries must be finite.
//
// The vector is copied; the caller keeps ownership of data.
//
// Errors: ErrNotCondensed, ErrDimensionMismatch, ErrNaNInf.
func FromCondensed(data []float64, labels []string, metric Metric) (*RDM, error) {
	n, err := ConditionsFor(len(data))
	if err != nil {
		return nil, err
	}
	lab, err := normalizeLabels(labels, n)
	if err != nil {
		return nil, err
	}
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrNaNInf
		}
	}

	cp := make([]float64, len(data))
	copy(cp, data)

	return &RDM{n: n, metric: metric, labels: lab, data: cp}, nil
}

// FromSquare validates a full dissimilarity matrix and condenses it.
//
// Contracts:
//   - m must be square with N ≥ 2.
//   - |m[i][j] − m[j][i]| ≤ symTol for all pairs (ErrAsymmetry otherwise).
//   - |m[i][i]| ≤ symTol for all i (ErrNonZeroDiagonal otherwise).
//   - all entries finite (ErrNaNInf).
//
// The upper triangle is taken as canonical.
//
// Complexity: O(N²).
func FromSquare(m *mat.Dense, labels []string, metric Metric) (*RDM, error) {
	if m == nil {
		return nil, ErrNotSquare
	}
	rows, cols := m.Dims()
	if rows != cols || rows < 2 {
		return nil, ErrNotSquare
	}
	lab, err := normalizeLabels(labels, rows)
	if err != nil {
		return nil, err
	}

	var (
		data = make([]float64, CondensedLen(rows))
		i, j int
		u, v float64
	)
	for i = 0; i < rows; i++ {
		u = m.At(i, i)
		if math.IsNaN(u) || math.IsInf(u, 0) {
			return nil, ErrNaNInf
		}
		if math.Abs(u) > symTol {
			return nil, ErrNonZeroDiagonal
		}
		for j = i + 1; j < rows; j++ {
			u, v = m.At(i, j), m.At(j, i)
			if math.IsNaN(u) || math.IsInf(u, 0) || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrNaNInf
			}
			if math.Abs(u-v) > symTol {
				return nil, ErrAsymmetry
			}
			data[pairIndex(i, j, rows)] = u
		}
	}

	return &RDM{n: rows, metric: metric, labels: lab, data: data}, nil
}

// normalizeLabels copies labels or synthesizes an empty slice of length n.
// Returns ErrDimensionMismatch when a non-nil slice has the wrong length.
func normalizeLabels(labels []string, n int) ([]string, error) {
	out := make([]string, n)
	if labels == nil {
		return out, nil
	}
	if len(labels) != n {
		return nil, ErrDimensionMismatch
	}
	copy(out, labels)
	return out, nil
}
