package glm_test

import (
	"testing"

	"github.com/repsimlab/repsim/glm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDesignMatrix_Layout verifies the deterministic column layout:
// sorted conditions, drift powers, intercept.
func TestDesignMatrix_Layout(t *testing.T) {
	events := []glm.Event{
		{Onset: 0, Duration: 4, Condition: "house"},
		{Onset: 10, Duration: 4, Condition: "face"},
	}
	opts := glm.Options{ConvolveHRF: false, DriftOrder: 2}

	X, cols, err := glm.DesignMatrix(events, 20, 2.0, &opts)
	require.NoError(t, err)

	assert.Equal(t, []string{"face", "house", "drift1", "drift2", "constant"}, cols)
	r, c := X.Dims()
	assert.Equal(t, 20, r)
	assert.Equal(t, 5, c)
}

// TestDesignMatrix_Boxcar pins the frame coverage rule: frames whose time
// t·tr falls inside [onset, onset+duration) are active.
func TestDesignMatrix_Boxcar(t *testing.T) {
	events := []glm.Event{{Onset: 4, Duration: 4, Condition: "face"}}
	opts := glm.Options{ConvolveHRF: false, DriftOrder: 0}

	// tr=2: event covers seconds [4,8) → frames 2 and 3.
	X, cols, err := glm.DesignMatrix(events, 6, 2.0, &opts)
	require.NoError(t, err)
	require.Equal(t, []string{"face", "constant"}, cols)

	want := []float64{0, 0, 1, 1, 0, 0}
	for i, w := range want {
		assert.Equal(t, w, X.At(i, 0), "frame %d", i)
	}

	// The intercept is all ones.
	for i := 0; i < 6; i++ {
		assert.Equal(t, 1.0, X.At(i, 1))
	}
}

// TestDesignMatrix_HRFDelaysResponse checks that convolving shifts mass
// later in time: the convolved regressor is ~0 at the event onset frame
// and substantial a few frames later.
func TestDesignMatrix_HRFDelaysResponse(t *testing.T) {
	events := []glm.Event{{Onset: 0, Duration: 2, Condition: "face"}}
	opts := glm.Options{ConvolveHRF: true, DriftOrder: 0}

	X, _, err := glm.DesignMatrix(events, 20, 1.0, &opts)
	require.NoError(t, err)

	assert.InDelta(t, 0, X.At(0, 0), 1e-6, "no response at stimulus onset")
	assert.Greater(t, X.At(6, 0), 0.5, "strong response near the 6 s peak")
}

// TestDesignMatrix_Validation walks the sentinel set.
func TestDesignMatrix_Validation(t *testing.T) {
	ok := []glm.Event{{Onset: 0, Duration: 1, Condition: "a"}}

	_, _, err := glm.DesignMatrix(ok, 0, 1, nil)
	assert.ErrorIs(t, err, glm.ErrNoScans)

	_, _, err = glm.DesignMatrix(ok, 10, 0, nil)
	assert.ErrorIs(t, err, glm.ErrBadTR)

	bad := glm.Options{DriftOrder: -1}
	_, _, err = glm.DesignMatrix(ok, 10, 1, &bad)
	assert.ErrorIs(t, err, glm.ErrBadDriftOrder)

	_, _, err = glm.DesignMatrix(nil, 10, 1, nil)
	assert.ErrorIs(t, err, glm.ErrNoEvents)

	_, _, err = glm.DesignMatrix([]glm.Event{{Onset: -1, Duration: 1, Condition: "a"}}, 10, 1, nil)
	assert.ErrorIs(t, err, glm.ErrBadEvent)

	_, _, err = glm.DesignMatrix([]glm.Event{{Onset: 50, Duration: 1, Condition: "a"}}, 10, 1, nil)
	assert.ErrorIs(t, err, glm.ErrEventOutOfWindow)
}
