package glm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHRFKernel_Shape verifies the canonical double-gamma geometry at
// 1 s sampling: unit peak near 6 s, a late undershoot, ~zero tail.
func TestHRFKernel_Shape(t *testing.T) {
	k := hrfKernel(1.0)
	require.Len(t, k, 32)

	peakIdx := 0
	for i := range k {
		if k[i] > k[peakIdx] {
			peakIdx = i
		}
	}
	assert.Equal(t, 1.0, k[peakIdx], "kernel is peak-normalized")
	assert.InDelta(t, 5, peakIdx, 1, "peak sits near the 6 s delay")
	assert.Negative(t, k[15], "undershoot around 16 s")
	assert.InDelta(t, 0, k[31], 1e-3, "response has decayed by 32 s")
	assert.Equal(t, 0.0, k[0], "causal: nothing at t=0")
}

// TestHRFKernel_CoarseTR ensures a TR longer than the window still yields
// a non-empty kernel.
func TestHRFKernel_CoarseTR(t *testing.T) {
	k := hrfKernel(40)
	assert.Len(t, k, 1)
}

// TestConvolve_Truncation checks the causal truncated convolution against
// a hand-computed case.
func TestConvolve_Truncation(t *testing.T) {
	signal := []float64{1, 0, 1, 0}
	kernel := []float64{1, 0.5}

	got := convolve(signal, kernel)
	assert.Equal(t, []float64{1, 0.5, 1, 0.5}, got)
}
