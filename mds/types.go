// Package mds: options, embedding result and sentinel errors.
package mds

import "errors"

var (
	// ErrNilRDM indicates a nil dissimilarity input.
	ErrNilRDM = errors.New("mds: nil RDM")

	// ErrBadDims indicates a requested dimensionality below 1 or at/above
	// the condition count.
	ErrBadDims = errors.New("mds: dimensionality out of range")

	// ErrBadIterations indicates a non-positive iteration cap.
	ErrBadIterations = errors.New("mds: iteration cap must be positive")

	// ErrBadTolerance indicates a negative or non-finite tolerance.
	ErrBadTolerance = errors.New("mds: tolerance must be non-negative and finite")

	// ErrUnknownInit is returned for an Init value outside the enum.
	ErrUnknownInit = errors.New("mds: unknown initialization mode")

	// ErrEigenFailed indicates the symmetric eigendecomposition of the
	// double-centered matrix did not converge.
	ErrEigenFailed = errors.New("mds: eigendecomposition failed")
)

// InitMode selects the SMACOF starting configuration.
type InitMode int

const (
	// InitClassical starts from the Torgerson solution (default).
	InitClassical InitMode = iota

	// InitRandom starts from seeded standard-normal coordinates.
	InitRandom
)

// Options configures SMACOF.
//
// Fields:
//   - Dims — embedding dimensionality (default 2).
//   - MaxIter — iteration cap (default 300).
//   - Tol — relative stress-change convergence threshold (default 1e-6).
//   - Init — starting configuration; see InitMode.
//   - Seed — RNG seed for InitRandom; 0 selects a fixed default.
type Options struct {
	Dims    int
	MaxIter int
	Tol     float64
	Init    InitMode
	Seed    int64
}

// DefaultOptions returns the canonical configuration: 2-D, classical
// init, 300 iterations, 1e-6 relative tolerance.
func DefaultOptions() Options {
	return Options{Dims: 2, MaxIter: 300, Tol: 1e-6, Init: InitClassical, Seed: 0}
}

// Embedding is the outcome of a scaling run: one coordinate row per
// condition (n×dims), the final raw stress Σ(δᵢⱼ−dᵢⱼ)², and the number
// of majorization iterations performed (0 for classical scaling).
type Embedding struct {
	Points     [][]float64
	Stress     float64
	Iterations int
}
