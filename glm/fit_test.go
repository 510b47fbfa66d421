package glm_test

import (
	"testing"

	"github.com/repsimlab/repsim/glm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// synthRun builds a noiseless run: Y = X·B for a design constructed from
// the given events, with one true coefficient row per design column.
// rows maps design column name → true voxel coefficients.
func synthRun(t *testing.T, events []glm.Event, nScans int, tr float64,
	opts *glm.Options, rows map[string][]float64, voxels int) glm.Run {
	t.Helper()

	X, cols, err := glm.DesignMatrix(events, nScans, tr, opts)
	require.NoError(t, err)

	B := mat.NewDense(len(cols), voxels, nil)
	for i, name := range cols {
		if r, ok := rows[name]; ok {
			B.SetRow(i, r)
		}
	}

	var Y mat.Dense
	Y.Mul(X, B)

	return glm.Run{Bold: &Y, Events: events}
}

// TestFitRun_RecoversAmplitudes verifies exact recovery of known
// condition amplitudes from noiseless synthetic data.
func TestFitRun_RecoversAmplitudes(t *testing.T) {
	events := []glm.Event{
		{Onset: 5, Duration: 5, Condition: "face"},
		{Onset: 30, Duration: 5, Condition: "house"},
		{Onset: 55, Duration: 5, Condition: "face"},
	}
	opts := glm.DefaultOptions()

	truth := map[string][]float64{
		"face":     {2.0, -1.0, 0.5},
		"house":    {0.5, 3.0, -2.0},
		"drift1":   {0.1, 0.1, 0.1},
		"constant": {10, 10, 10},
	}
	run := synthRun(t, events, 40, 2.0, &opts, truth, 3)

	betas, err := glm.FitRun(run, 2.0, &opts)
	require.NoError(t, err)
	require.Len(t, betas, 2, "only condition rows are returned")

	for _, cond := range []string{"face", "house"} {
		require.Contains(t, betas, cond)
		for v, want := range truth[cond] {
			assert.InDelta(t, want, betas[cond][v], 1e-8, "%s voxel %d", cond, v)
		}
	}
}

// TestFitRun_SingularDesign ensures a boxcar that duplicates the
// intercept is reported, not silently solved.
func TestFitRun_SingularDesign(t *testing.T) {
	// One event covering every scan, no HRF, no drift: the condition
	// column equals the constant column.
	events := []glm.Event{{Onset: 0, Duration: 10, Condition: "always-on"}}
	opts := glm.Options{ConvolveHRF: false, DriftOrder: 0}

	run := glm.Run{Bold: mat.NewDense(10, 2, nil), Events: events}
	_, err := glm.FitRun(run, 1.0, &opts)
	assert.ErrorIs(t, err, glm.ErrSingularDesign)
}

// TestFitRun_UnderdeterminedDesign ensures a run shorter than its design
// is reported as an error, never handed to the factorization.
func TestFitRun_UnderdeterminedDesign(t *testing.T) {
	// Two scans against three columns (condition + drift1 + constant).
	events := []glm.Event{{Onset: 0, Duration: 1, Condition: "face"}}
	opts := glm.DefaultOptions()

	run := glm.Run{Bold: mat.NewDense(2, 3, nil), Events: events}
	_, err := glm.FitRun(run, 1.0, &opts)
	assert.ErrorIs(t, err, glm.ErrUnderdeterminedDesign)
}

// TestFitRun_UnknownCondition covers the closed-universe rejection.
func TestFitRun_UnknownCondition(t *testing.T) {
	events := []glm.Event{{Onset: 0, Duration: 2, Condition: "intruder"}}
	opts := glm.DefaultOptions()
	opts.Conditions = []string{"face", "house"}

	run := glm.Run{Bold: mat.NewDense(10, 1, nil), Events: events}
	_, err := glm.FitRun(run, 1.0, &opts)
	assert.ErrorIs(t, err, glm.ErrUnknownCondition)
}

// TestEstimatePatterns_MeanAcrossRuns verifies per-condition averaging and
// the per-run absence rule: a condition missing from a run is averaged
// only over the runs that contain it.
func TestEstimatePatterns_MeanAcrossRuns(t *testing.T) {
	opts := glm.Options{ConvolveHRF: false, DriftOrder: 1}

	faceEvents := []glm.Event{{Onset: 4, Duration: 6, Condition: "face"}}
	bothEvents := []glm.Event{
		{Onset: 4, Duration: 6, Condition: "face"},
		{Onset: 30, Duration: 6, Condition: "house"},
	}

	run1 := synthRun(t, bothEvents, 30, 2.0, &opts,
		map[string][]float64{"face": {1, 2}, "house": {5, 6}}, 2)
	run2 := synthRun(t, faceEvents, 30, 2.0, &opts,
		map[string][]float64{"face": {3, 4}}, 2)

	set, err := glm.EstimatePatterns([]glm.Run{run1, run2}, 2.0, &opts)
	require.NoError(t, err)

	assert.Equal(t, []string{"face", "house"}, set.Conditions())
	assert.Equal(t, 2, set.Voxels())
	assert.Empty(t, set.Missing())

	face, ok := set.Pattern("face")
	require.True(t, ok)
	assert.InDelta(t, 2.0, face[0], 1e-8, "mean of 1 and 3")
	assert.InDelta(t, 3.0, face[1], 1e-8, "mean of 2 and 4")

	house, ok := set.Pattern("house")
	require.True(t, ok)
	assert.InDelta(t, 5.0, house[0], 1e-8, "house appears in run 1 only")
	assert.InDelta(t, 6.0, house[1], 1e-8)
}

// TestEstimatePatterns_MissingConditions verifies that a requested
// condition observed in no run lands in Missing rather than failing.
func TestEstimatePatterns_MissingConditions(t *testing.T) {
	opts := glm.Options{ConvolveHRF: false, DriftOrder: 0, Conditions: []string{"face", "ghost"}}

	events := []glm.Event{{Onset: 2, Duration: 4, Condition: "face"}}
	run := synthRun(t, events, 20, 1.0, &opts, map[string][]float64{"face": {1}}, 1)

	set, err := glm.EstimatePatterns([]glm.Run{run}, 1.0, &opts)
	require.NoError(t, err)

	assert.Equal(t, []string{"face"}, set.Conditions())
	assert.Equal(t, []string{"ghost"}, set.Missing())

	_, ok := set.Pattern("ghost")
	assert.False(t, ok, "missing conditions expose no pattern")
}

// TestEstimatePatterns_Validation covers run-collection sentinels.
func TestEstimatePatterns_Validation(t *testing.T) {
	_, err := glm.EstimatePatterns(nil, 1.0, nil)
	assert.ErrorIs(t, err, glm.ErrNoRuns)

	opts := glm.Options{ConvolveHRF: false, DriftOrder: 0}
	ev := []glm.Event{{Onset: 0, Duration: 2, Condition: "a"}}
	runA := glm.Run{Bold: mat.NewDense(10, 2, nil), Events: ev}
	runB := glm.Run{Bold: mat.NewDense(10, 3, nil), Events: ev}

	_, err = glm.EstimatePatterns([]glm.Run{runA, runB}, 1.0, &opts)
	assert.ErrorIs(t, err, glm.ErrVoxelMismatch)
}
