package gwsignal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gwsim/go-gwsignal/internal/testutil"
)

const (
	noiseTestSeed    = 42
	noiseTestSamples = 100000
	noiseTestWindow  = 64
)

func collectNoise(t *testing.T, src *WhiteNoiseSource, n int) []float64 {
	t.Helper()

	samples := make([]float64, n)

	for i := range samples {
		v, err := src.At(int64(i))
		require.NoError(t, err)
		samples[i] = v
	}

	return samples
}

func TestWhiteNoiseSource_Deterministic(t *testing.T) {
	a := NewWhiteNoiseSource(noiseTestWindow, noiseTestSeed, 1.0)
	b := NewWhiteNoiseSource(noiseTestWindow, noiseTestSeed, 1.0)

	sa := collectNoise(t, a, 200)
	sb := collectNoise(t, b, 200)

	assert.Equal(t, sa, sb, "same seed must give the same stream")
}

func TestWhiteNoiseSource_ResetReproduces(t *testing.T) {
	src := NewWhiteNoiseSource(noiseTestWindow, noiseTestSeed, 1.0)

	first := collectNoise(t, src, 100)
	src.Reset(noiseTestSeed)
	second := collectNoise(t, src, 100)

	assert.Equal(t, first, second)
}

func TestWhiteNoiseSource_Statistics(t *testing.T) {
	tests := []struct {
		name  string
		scale float64
	}{
		{"unit_scale", 1.0},
		{"double_scale", 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewWhiteNoiseSource(noiseTestWindow, noiseTestSeed, tt.scale)
			samples := collectNoise(t, src, noiseTestSamples)

			variance := tt.scale * tt.scale

			testutil.AssertMean(t, samples, 0.0, testutil.MeanTolerance*tt.scale)
			testutil.AssertVariance(t, samples, variance, testutil.VarianceTolerance*variance)
		})
	}
}

func TestWhiteNoiseSource_DefaultSeedsDistinct(t *testing.T) {
	SetDefaultSeed(1000)

	a := NewWhiteNoiseSource(noiseTestWindow, 0, 1.0)
	b := NewWhiteNoiseSource(noiseTestWindow, 0, 1.0)

	sa := collectNoise(t, a, 16)
	sb := collectNoise(t, b, 16)

	assert.NotEqual(t, sa, sb, "default-seeded sources must draw distinct streams")
}

func TestDefaultSeed_CounterAdvances(t *testing.T) {
	SetDefaultSeed(5000)
	require.Equal(t, uint64(5000), DefaultSeed())

	// Each default-seeded source consumes one counter value.
	_ = NewWhiteNoiseSource(noiseTestWindow, 0, 1.0)
	assert.Equal(t, uint64(5001), DefaultSeed())

	_ = NewWhiteNoiseSource(noiseTestWindow, 0, 1.0)
	assert.Equal(t, uint64(5002), DefaultSeed())
}
