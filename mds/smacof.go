// SMACOF stress majorization.
//
// Each iteration applies the Guttman transform
//
//	X ← (1/n)·B(X)·X,   bᵢⱼ = −δᵢⱼ/dᵢⱼ (i≠j, dᵢⱼ>0),  bᵢᵢ = −Σ_{j≠i} bᵢⱼ
//
// which majorizes raw stress: σ(X) never increases. Coincident points
// (dᵢⱼ = 0) contribute a zero weight for that pair, the standard SMACOF
// convention.
package mds

import (
	"math"
	"math/rand"

	"github.com/repsimlab/repsim/rdm"
)

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// SMACOF embeds r by iterative stress majorization.
//
// Contracts:
//   - r non-nil; opts may be nil (DefaultOptions applies);
//     1 ≤ Dims < N, MaxIter ≥ 1, Tol ≥ 0 and finite.
//
// Convergence: stop after MaxIter iterations or once the relative stress
// improvement (σ_prev − σ)/σ_prev drops below Tol. The returned stress is
// the final raw stress; Iterations counts performed Guttman steps.
//
// Errors: ErrNilRDM, ErrBadDims, ErrBadIterations, ErrBadTolerance,
// ErrUnknownInit, plus ErrEigenFailed from a classical initialization.
//
// Complexity: O(MaxIter·N²·Dims) time, O(N·Dims) extra space.
func SMACOF(r *rdm.RDM, opts *Options) (*Embedding, error) {
	// Stage 1 — options.
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if r == nil {
		return nil, ErrNilRDM
	}
	n := r.NumConditions()
	if o.Dims < 1 || o.Dims >= n {
		return nil, ErrBadDims
	}
	if o.MaxIter < 1 {
		return nil, ErrBadIterations
	}
	if o.Tol < 0 || math.IsNaN(o.Tol) || math.IsInf(o.Tol, 0) {
		return nil, ErrBadTolerance
	}

	// Stage 2 — starting configuration.
	var (
		points [][]float64
		err    error
	)
	switch o.Init {
	case InitClassical:
		var start *Embedding
		if start, err = Classical(r, o.Dims); err != nil {
			return nil, err
		}
		points = start.Points
	case InitRandom:
		points = randomConfig(n, o.Dims, o.Seed)
	default:
		return nil, ErrUnknownInit
	}

	// Stage 3 — majorization loop.
	var (
		stress = rawStress(r, points)
		iters  int
		next   [][]float64
		sNext  float64
	)
	for iters = 0; iters < o.MaxIter; iters++ {
		next = guttman(r, points)
		sNext = rawStress(r, next)
		points = next

		if stress > 0 && (stress-sNext)/stress < o.Tol {
			stress = sNext
			iters++
			break
		}
		stress = sNext
	}

	return &Embedding{Points: points, Stress: stress, Iterations: iters}, nil
}

// guttman applies one Guttman transform step to the configuration.
func guttman(r *rdm.RDM, points [][]float64) [][]float64 {
	var (
		n    = len(points)
		dims = len(points[0])
		out  = make([][]float64, n)
		brow = make([]float64, n)

		i, j, k int
		delta   float64
		d       float64
		diag    float64
	)
	for i = 0; i < n; i++ {
		out[i] = make([]float64, dims)
	}

	for i = 0; i < n; i++ {
		// Row i of B(X): off-diagonal −δᵢⱼ/dᵢⱼ, diagonal the negated sum.
		diag = 0
		for j = 0; j < n; j++ {
			if j == i {
				continue
			}
			d = euclid(points[i], points[j])
			if d > 0 {
				delta, _ = r.At(i, j)
				brow[j] = -delta / d
			} else {
				brow[j] = 0
			}
			diag -= brow[j]
		}
		brow[i] = diag

		// Row i of (1/n)·B(X)·X.
		for j = 0; j < n; j++ {
			if brow[j] == 0 {
				continue
			}
			for k = 0; k < dims; k++ {
				out[i][k] += brow[j] * points[j][k]
			}
		}
		for k = 0; k < dims; k++ {
			out[i][k] /= float64(n)
		}
	}

	return out
}

// randomConfig draws a seeded standard-normal n×dims configuration.
// Policy: seed==0 ⇒ defaultRNGSeed (mirrors the compare package).
func randomConfig(n, dims int, seed int64) [][]float64 {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	rng := rand.New(rand.NewSource(s))

	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, dims)
		for k := range out[i] {
			out[i][k] = rng.NormFloat64()
		}
	}
	return out
}
