// Package glm estimates condition response patterns from imaging time
// series with per-run general linear models.
//
// 🚀 What does it do?
//
//	For each scanning run, the package builds a design matrix — one
//	regressor per stimulus condition (a boxcar over the event window,
//	optionally convolved with a canonical hemodynamic response function),
//	plus polynomial drift terms and an intercept — and solves the least-
//	squares problem
//
//	    B̂ = argmin_B ‖Y − X·B‖²
//
//	for all voxels at once.  The per-run condition coefficient maps are
//	then averaged into one representative response pattern per condition,
//	ready for dissimilarity analysis in package rdm.
//
// ✨ Key features:
//   - canonical double-gamma HRF (peak at 6 s, undershoot at 16 s,
//     peak-normalized), toggleable for raw-boxcar teaching runs
//   - polynomial drift regressors over [−1, 1] scan time plus intercept
//   - QR-based least squares via gonum; rank deficiency surfaces as a
//     sentinel, never as garbage coefficients
//   - conditions absent from a run contribute no estimate for that run;
//     conditions absent from every run are reported as missing so callers
//     can exclude them from the RDM
//
// ⚙️ Usage:
//
//	opts := glm.DefaultOptions()
//	set, err := glm.EstimatePatterns(runs, 2.5, &opts)
//	if err != nil { ... }
//	patterns := set.Vectors() // ordered by set.Conditions()
//
// All functions return sentinel errors from types.go; nothing panics on
// user input.
package glm
