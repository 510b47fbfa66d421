// Package glm — design matrix construction.
//
// Column layout is deterministic: sorted condition regressors first, then
// drift powers 1..DriftOrder, then the constant. Fitting relies on this
// order to slice condition coefficients back out of the solution.
package glm

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// designColumnConstant names the intercept column.
const designColumnConstant = "constant"

// DesignMatrix builds the per-run design: one regressor per condition
// present in events (boxcar over [Onset, Onset+Duration), sampled at frame
// times t·tr, optionally HRF-convolved), DriftOrder polynomial drift
// columns over scan time mapped to [−1, 1], and a trailing intercept.
//
// Returns the nScans×p matrix and the p column names in order.
//
// Errors:
//   - ErrNoScans, ErrBadTR, ErrBadDriftOrder, ErrNoEvents — shape stage.
//   - ErrBadEvent, ErrEventOutOfWindow — event stage.
//
// Complexity: O(nScans·(conditions + kernel) + events).
func DesignMatrix(events []Event, nScans int, tr float64, opts *Options) (*mat.Dense, []string, error) {
	// Stage 1 — options and shape.
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if nScans < 1 {
		return nil, nil, ErrNoScans
	}
	if tr <= 0 || math.IsNaN(tr) || math.IsInf(tr, 0) {
		return nil, nil, ErrBadTR
	}
	if o.DriftOrder < 0 {
		return nil, nil, ErrBadDriftOrder
	}
	if len(events) == 0 {
		return nil, nil, ErrNoEvents
	}

	// Stage 2 — validate events and collect the condition set.
	window := float64(nScans) * tr
	names := make([]string, 0, len(events))
	for _, ev := range events {
		if ev.Condition == "" || ev.Onset < 0 || ev.Duration <= 0 ||
			math.IsNaN(ev.Onset) || math.IsInf(ev.Onset, 0) ||
			math.IsNaN(ev.Duration) || math.IsInf(ev.Duration, 0) {
			return nil, nil, ErrBadEvent
		}
		if ev.Onset >= window {
			return nil, nil, ErrEventOutOfWindow
		}
		names = append(names, ev.Condition)
	}
	conditions := sortedUnique(names)

	// Stage 3 — column bookkeeping.
	var (
		nCond = len(conditions)
		p     = nCond + o.DriftOrder + 1
		cols  = make([]string, 0, p)
		X     = mat.NewDense(nScans, p, nil)
		ci    = make(map[string]int, nCond)
	)
	for i, c := range conditions {
		ci[c] = i
		cols = append(cols, c)
	}

	// Stage 4 — condition boxcars at frame times, one pass over events.
	boxcars := make([][]float64, nCond)
	for i := range boxcars {
		boxcars[i] = make([]float64, nScans)
	}
	var lo, hi, t int
	for _, ev := range events {
		// Frames whose time t·tr falls inside [Onset, Onset+Duration).
		lo = int(math.Ceil(ev.Onset / tr))
		hi = int(math.Ceil((ev.Onset + ev.Duration) / tr))
		if hi > nScans {
			hi = nScans
		}
		for t = lo; t < hi; t++ {
			boxcars[ci[ev.Condition]][t] = 1
		}
	}

	// Stage 5 — optional HRF convolution, then write condition columns.
	var kernel []float64
	if o.ConvolveHRF {
		kernel = hrfKernel(tr)
	}
	for i := range boxcars {
		col := boxcars[i]
		if kernel != nil {
			col = convolve(col, kernel)
		}
		X.SetCol(i, col)
	}

	// Stage 6 — drift powers over [−1, 1] and the intercept.
	var (
		x float64
		k int
	)
	for k = 1; k <= o.DriftOrder; k++ {
		col := make([]float64, nScans)
		for t = 0; t < nScans; t++ {
			if nScans > 1 {
				x = 2*float64(t)/float64(nScans-1) - 1
			}
			col[t] = math.Pow(x, float64(k))
		}
		X.SetCol(nCond+k-1, col)
		cols = append(cols, driftName(k))
	}

	ones := make([]float64, nScans)
	for t = range ones {
		ones[t] = 1
	}
	X.SetCol(p-1, ones)
	cols = append(cols, designColumnConstant)

	return X, cols, nil
}

// driftName labels drift columns drift1, drift2, …
func driftName(k int) string {
	return "drift" + strconv.Itoa(k)
}
