// Package compare — condition-label permutation test between two RDMs.
//
// The null hypothesis is "no shared representational structure": shuffling
// the condition labels of one RDM destroys any genuine correspondence
// while preserving that RDM's internal dissimilarity distribution. The
// observed rank correlation is then located within the permutation
// distribution.
//
// Pairs move together under a condition shuffle — the permuted condensed
// vector of pair (i,j) reads the original entry (π(i), π(j)) — which is
// what distinguishes this test from naively shuffling condensed entries.
package compare

import "github.com/repsimlab/repsim/rdm"

// PermutationTest locates Spearman(neural, model) within a seeded
// condition-permutation null distribution.
//
// Contracts:
//   - both RDMs are non-nil and cover the same condition count.
//   - opts may be nil; DefaultPermOptions() applies.
//
// The returned Result carries the OBSERVED rho; PValue is the two-sided
// add-one-smoothed permutation estimate (count+1)/(iters+1), so the
// smallest reachable p is 1/(iters+1), never an overconfident zero.
//
// Errors: ErrShapeMismatch, ErrBadIterations, plus everything Spearman
// reports for the observed comparison.
//
// Complexity: O(iters · P log P) time for P = N·(N−1)/2 pairs.
func PermutationTest(neural, model *rdm.RDM, opts *PermOptions) (Result, error) {
	// Stage 1 — options and shape.
	o := DefaultPermOptions()
	if opts != nil {
		o = *opts
	}
	if o.Iterations < 1 {
		return Result{}, ErrBadIterations
	}
	if neural == nil || model == nil || neural.NumConditions() != model.NumConditions() {
		return Result{}, ErrShapeMismatch
	}

	// Stage 2 — observed statistic.
	observed, err := Spearman(neural.Condensed(), model.Condensed())
	if err != nil {
		return Result{}, err
	}

	// Stage 3 — permutation loop. The model side is shuffled; the neural
	// side stays fixed. Degeneracy cannot appear mid-loop: a permutation
	// only reorders the multiset of model dissimilarities.
	var (
		n        = model.NumConditions()
		rng      = rngFromSeed(o.Seed)
		neuralCv = neural.Condensed()
		extreme  int
		it       int
		permRho  Result
	)
	for it = 0; it < o.Iterations; it++ {
		shuffled := permuteConditions(model, rng.Perm(n))
		permRho, err = Spearman(neuralCv, shuffled)
		if err != nil {
			return Result{}, err
		}
		if abs(permRho.Rho) >= abs(observed.Rho) {
			extreme++
		}
	}

	return Result{
		Rho:    observed.Rho,
		PValue: float64(extreme+1) / float64(o.Iterations+1),
		N:      observed.N,
	}, nil
}

// permuteConditions builds the condensed vector of r under the condition
// relabeling perm: output pair (i,j) reads original pair (perm[i], perm[j]).
// Indices come from rng.Perm and are in range, so At cannot fail.
func permuteConditions(r *rdm.RDM, perm []int) []float64 {
	var (
		n    = r.NumConditions()
		out  = make([]float64, r.Len())
		idx  int
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			v, _ = r.At(perm[i], perm[j])
			out[idx] = v
			idx++
		}
	}
	return out
}

// abs returns the absolute value of a float64.
func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
