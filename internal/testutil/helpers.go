// Package testutil provides reusable statistical and spectral helpers for
// the signal synthesis tests. All helpers operate on plain sample slices so
// the package stays importable from in-package tests.
package testutil

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/stat"
)

// Default tolerances for statistical tests over finite sample counts.
const (
	MeanTolerance     = 0.02
	VarianceTolerance = 0.05
)

// AssertMean verifies the sample mean is within tol of want.
func AssertMean(t *testing.T, samples []float64, want, tol float64) bool {
	t.Helper()

	mean := stat.Mean(samples, nil)

	return assert.InDelta(t, want, mean, tol,
		"sample mean %f outside %f±%f over %d samples", mean, want, tol, len(samples))
}

// AssertVariance verifies the sample variance is within tol of want.
func AssertVariance(t *testing.T, samples []float64, want, tol float64) bool {
	t.Helper()

	variance := stat.Variance(samples, nil)

	return assert.InDelta(t, want, variance, tol,
		"sample variance %f outside %f±%f over %d samples", variance, want, tol, len(samples))
}

// SpectralSlope estimates the log-log slope of the power spectral density of
// samples by averaging periodograms over non-overlapping segments of segLen
// samples and regressing log power on log frequency. A flat spectrum yields
// a slope near 0, a random walk near -2, a first difference near +2.
//
// The fit excludes the DC bin and is restricted to the low-frequency quarter
// of the band, where the discrete-time filter responses (sin² and its
// reciprocal) still track their continuous power-law targets.
func SpectralSlope(samples []float64, segLen int) float64 {
	nseg := len(samples) / segLen
	if nseg < 1 {
		return math.NaN()
	}

	fft := fourier.NewFFT(segLen)
	nbins := segLen/2 + 1
	power := make([]float64, nbins)

	for s := 0; s < nseg; s++ {
		coeffs := fft.Coefficients(nil, samples[s*segLen:(s+1)*segLen])

		for k, c := range coeffs {
			m := cmplx.Abs(c)
			power[k] += m * m
		}
	}

	maxBin := nbins / 4
	if maxBin < 2 {
		maxBin = 2
	}

	logf := make([]float64, 0, maxBin)
	logp := make([]float64, 0, maxBin)

	for k := 1; k < maxBin; k++ {
		if power[k] <= 0 {
			continue
		}

		logf = append(logf, math.Log10(float64(k)))
		logp = append(logp, math.Log10(power[k]/float64(nseg)))
	}

	_, slope := stat.LinearRegression(logf, logp, nil, false)

	return slope
}
