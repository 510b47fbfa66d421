// Package glm — least-squares fitting and cross-run combination.
package glm

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FitRun fits one run's GLM and returns the coefficient map of every
// condition present in that run's events.
//
// Contracts:
//   - run.Bold is non-nil, nScans×V with nScans ≥ 1 and V ≥ 1.
//   - events as for DesignMatrix; when Options.Conditions is set, every
//     event condition must be listed (ErrUnknownCondition otherwise).
//
// The fit solves min‖Y − X·B‖² for all voxels simultaneously via QR;
// a run with fewer scans than design columns surfaces as
// ErrUnderdeterminedDesign, a rank-deficient design as ErrSingularDesign.
//
// Complexity: O(nScans·p² + p²·V) for p design columns.
func FitRun(run Run, tr float64, opts *Options) (map[string][]float64, error) {
	// Stage 1 — shape.
	if run.Bold == nil {
		return nil, ErrNoScans
	}
	nScans, voxels := run.Bold.Dims()
	if nScans < 1 {
		return nil, ErrNoScans
	}
	if voxels < 1 {
		return nil, ErrNoVoxels
	}

	// Stage 2 — closed-universe check before design construction, so the
	// caller hears about a stray label rather than about its side effects.
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if len(o.Conditions) > 0 {
		allowed := make(map[string]struct{}, len(o.Conditions))
		for _, c := range o.Conditions {
			allowed[c] = struct{}{}
		}
		for _, ev := range run.Events {
			if _, ok := allowed[ev.Condition]; !ok {
				return nil, ErrUnknownCondition
			}
		}
	}

	// Stage 3 — design. QR needs at least as many rows as columns; a
	// shorter run cannot determine its coefficients.
	X, cols, err := DesignMatrix(run.Events, nScans, tr, &o)
	if err != nil {
		return nil, err
	}
	if nScans < len(cols) {
		return nil, ErrUnderdeterminedDesign
	}

	// Stage 4 — solve. gonum reports ill-conditioned systems through the
	// returned error; we fold every solve failure into one sentinel.
	var qr mat.QR
	qr.Factorize(X)
	var B mat.Dense
	if err = qr.SolveTo(&B, false, run.Bold); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularDesign, err)
	}

	// Stage 5 — slice condition rows back out. The deterministic layout
	// puts the nCond condition columns first, then DriftOrder drifts, then
	// the intercept; drift and intercept rows stay behind as nuisance
	// estimates.
	nCond := len(cols) - o.DriftOrder - 1
	out := make(map[string][]float64, nCond)
	for i := 0; i < nCond; i++ {
		beta := make([]float64, voxels)
		mat.Row(beta, i, &B)
		out[cols[i]] = beta
	}

	return out, nil
}

// EstimatePatterns fits every run and averages per-run condition
// coefficients into one representative pattern per condition.
//
// Contracts:
//   - at least one run; all runs share one voxel count.
//   - a condition with no events in a run contributes no estimate for
//     that run; its pattern is the mean over the runs that contain it.
//   - with a closed Options.Conditions universe, conditions observed in
//     no run are reported via PatternSet.Missing rather than failing the
//     whole estimation.
//
// Complexity: sum of FitRun costs over runs.
func EstimatePatterns(runs []Run, tr float64, opts *Options) (*PatternSet, error) {
	if len(runs) == 0 {
		return nil, ErrNoRuns
	}

	// Voxel agreement up front.
	var voxels int
	for i, run := range runs {
		if run.Bold == nil {
			return nil, ErrNoScans
		}
		_, v := run.Bold.Dims()
		if i == 0 {
			voxels = v
			continue
		}
		if v != voxels {
			return nil, ErrVoxelMismatch
		}
	}

	// Per-run fits, accumulated as sums and counts.
	var (
		sums   = make(map[string][]float64)
		counts = make(map[string]int)
	)
	for _, run := range runs {
		betas, err := FitRun(run, tr, opts)
		if err != nil {
			return nil, err
		}
		for name, beta := range betas {
			acc, ok := sums[name]
			if !ok {
				acc = make([]float64, voxels)
				sums[name] = acc
			}
			for j, v := range beta {
				acc[j] += v
			}
			counts[name]++
		}
	}

	// Combine and settle the universe.
	var (
		observed = make([]string, 0, len(sums))
		patterns = make(map[string][]float64, len(sums))
	)
	for name, acc := range sums {
		inv := 1.0 / float64(counts[name])
		for j := range acc {
			acc[j] *= inv
		}
		patterns[name] = acc
		observed = append(observed, name)
	}
	conditions := sortedUnique(observed)

	var missing []string
	if opts != nil && len(opts.Conditions) > 0 {
		for _, want := range sortedUnique(opts.Conditions) {
			if _, ok := patterns[want]; !ok {
				missing = append(missing, want)
			}
		}
	}

	return &PatternSet{
		conditions: conditions,
		missing:    missing,
		voxels:     voxels,
		patterns:   patterns,
	}, nil
}
