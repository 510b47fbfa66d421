// Package mds — classical (Torgerson) scaling.
//
// Algorithm:
//  1. Square the dissimilarities: D²[i][j] = δᵢⱼ².
//  2. Double-center: B = −½·J·D²·J with J = I − 11ᵀ/n.
//  3. Eigendecompose the symmetric B.
//  4. Coordinates: column k of X is √λₖ·vₖ for the k-th largest positive
//     eigenpair; non-positive eigenpairs contribute zero columns (the
//     input was not Euclidean in that direction).
package mds

import (
	"math"

	"github.com/repsimlab/repsim/rdm"
	"gonum.org/v1/gonum/mat"
)

// Classical computes the Torgerson embedding of r into dims dimensions.
//
// Contracts:
//   - r non-nil; 1 ≤ dims < N.
//
// The result carries the raw stress of the configuration and
// Iterations == 0. Axis orientation is arbitrary; see the package doc.
//
// Errors: ErrNilRDM, ErrBadDims, ErrEigenFailed.
//
// Complexity: O(N³) time, O(N²) space.
func Classical(r *rdm.RDM, dims int) (*Embedding, error) {
	if r == nil {
		return nil, ErrNilRDM
	}
	n := r.NumConditions()
	if dims < 1 || dims >= n {
		return nil, ErrBadDims
	}

	// Stage 1+2 — double-centered Gram matrix, built cell-wise from the
	// row/column/grand means of D²: B[i][j] = −½(d²ᵢⱼ − r̄ᵢ − r̄ⱼ + ḡ).
	var (
		d2      = make([][]float64, n)
		rowMean = make([]float64, n)
		grand   float64
		i, j    int
		v       float64
	)
	for i = 0; i < n; i++ {
		d2[i] = make([]float64, n)
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, _ = r.At(i, j) // indices in range by construction
			d2[i][j] = v * v
			rowMean[i] += d2[i][j]
		}
		rowMean[i] /= float64(n)
		grand += rowMean[i]
	}
	grand /= float64(n)

	B := mat.NewSymDense(n, nil)
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			B.SetSym(i, j, -0.5*(d2[i][j]-rowMean[i]-rowMean[j]+grand))
		}
	}

	// Stage 3 — symmetric eigendecomposition (ascending eigenvalues).
	var es mat.EigenSym
	if !es.Factorize(B, true) {
		return nil, ErrEigenFailed
	}
	vals := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	// Stage 4 — top positive eigenpairs become coordinate axes.
	points := make([][]float64, n)
	for i = 0; i < n; i++ {
		points[i] = make([]float64, dims)
	}
	var k, src int
	for k = 0; k < dims; k++ {
		src = n - 1 - k // descending through the ascending value order
		if vals[src] <= 0 {
			continue // non-Euclidean direction; leave the column at zero
		}
		scale := math.Sqrt(vals[src])
		for i = 0; i < n; i++ {
			points[i][k] = scale * vecs.At(i, src)
		}
	}

	return &Embedding{
		Points:     points,
		Stress:     rawStress(r, points),
		Iterations: 0,
	}, nil
}

// rawStress is Σ_{i<j} (δᵢⱼ − dᵢⱼ)² for the configuration's Euclidean
// distances dᵢⱼ.
func rawStress(r *rdm.RDM, points [][]float64) float64 {
	var (
		n     = r.NumConditions()
		sum   float64
		i, j  int
		delta float64
		d     float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			delta, _ = r.At(i, j)
			d = euclid(points[i], points[j])
			sum += (delta - d) * (delta - d)
		}
	}
	return sum
}

// euclid is the Euclidean distance between two coordinate rows.
func euclid(a, b []float64) float64 {
	var s, diff float64
	for k := range a {
		diff = a[k] - b[k]
		s += diff * diff
	}
	return math.Sqrt(s)
}
