// Package glm — canonical hemodynamic response function.
//
// The BOLD signal lags neural activity by seconds; regressing raw boxcars
// against it misattributes variance. The canonical double-gamma HRF models
// the lag: a gamma-density peak around 6 s post-stimulus minus a scaled
// gamma-density undershoot around 16 s, sampled at TR resolution over a
// 32 s support and normalized to a unit peak so condition coefficients
// keep the amplitude units of the data.
package glm

import "math"

// HRF support and shape constants (seconds).
const (
	hrfWindow          = 32.0 // support length; the response is ~0 beyond this
	hrfPeakDelay       = 6.0  // gamma shape of the positive lobe
	hrfUndershootDelay = 16.0 // gamma shape of the undershoot lobe
	hrfUndershootFrac  = 1.0 / 6.0
)

// hrfKernel samples the canonical double-gamma HRF at TR resolution.
// The kernel is peak-normalized; it always contains at least one sample.
//
// Complexity: O(window/tr).
func hrfKernel(tr float64) []float64 {
	n := int(hrfWindow / tr)
	if n < 1 {
		n = 1
	}

	var (
		out  = make([]float64, n)
		peak float64
		t    float64
		i    int
	)
	for i = 0; i < n; i++ {
		t = float64(i) * tr
		out[i] = gammaDensity(t, hrfPeakDelay) - hrfUndershootFrac*gammaDensity(t, hrfUndershootDelay)
		if out[i] > peak {
			peak = out[i]
		}
	}
	if peak > 0 {
		for i = 0; i < n; i++ {
			out[i] /= peak
		}
	}

	return out
}

// gammaDensity is the unit-scale gamma probability density t^(k−1)·e^(−t)/Γ(k).
func gammaDensity(t, k float64) float64 {
	if t <= 0 {
		return 0
	}
	return math.Pow(t, k-1) * math.Exp(-t) / math.Gamma(k)
}

// convolve returns the first len(signal) samples of signal ∗ kernel,
// the causal truncated convolution used for regressor construction.
//
// Complexity: O(len(signal)·len(kernel)).
func convolve(signal, kernel []float64) []float64 {
	var (
		out  = make([]float64, len(signal))
		i, k int
	)
	for i = range signal {
		if signal[i] == 0 {
			continue
		}
		for k = 0; k < len(kernel) && i+k < len(out); k++ {
			out[i+k] += signal[i] * kernel[k]
		}
	}
	return out
}
