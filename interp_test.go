package gwsignal

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// polySource returns samples of a polynomial evaluated at the position.
func polySource(coeffs ...float64) Source {
	return funcSource{fn: func(pos int64) (float64, error) {
		x := float64(pos)
		y := 0.0

		for i := len(coeffs) - 1; i >= 0; i-- {
			y = y*x + coeffs[i]
		}

		return y, nil
	}}
}

func evalPoly(x float64, coeffs ...float64) float64 {
	y := 0.0
	for i := len(coeffs) - 1; i >= 0; i-- {
		y = y*x + coeffs[i]
	}

	return y
}

func TestNearestInterpolator(t *testing.T) {
	y := rampSource()
	interp := NearestInterpolator{}

	tests := []struct {
		dind float64
		want float64
	}{
		{0.0, 5.0},
		{0.49, 5.0},
		{0.5, 6.0},
		{0.99, 6.0},
	}

	for _, tt := range tests {
		v, err := interp.Interpolate(y, 5, tt.dind)
		require.NoError(t, err)
		assert.Equal(t, tt.want, v, "dind=%g", tt.dind)
	}
}

func TestLinearInterpolator(t *testing.T) {
	y := rampSource()
	interp := LinearInterpolator{}

	// dind = 0 returns exactly the anchor sample.
	v, err := interp.Interpolate(y, 5, 0.0)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)

	v, err = interp.Interpolate(y, 5, 0.25)
	require.NoError(t, err)
	assert.InDelta(t, 5.25, v, 1e-15)

	// dind → 1 approaches the next sample.
	v, err = interp.Interpolate(y, 5, 1.0-1e-12)
	require.NoError(t, err)
	assert.InDelta(t, 6.0, v, 1e-9)
}

func TestLinearExtrapolator_UsesOnlyPastSamples(t *testing.T) {
	// Reading past the anchor must not happen: fail loudly if it does.
	guarded := funcSource{fn: func(pos int64) (float64, error) {
		if pos > 5 {
			return 0, fmt.Errorf("%w: read ahead of anchor at %d", ErrOutOfBounds, pos)
		}
		return float64(pos), nil
	}}

	interp := LinearExtrapolator{}

	v, err := interp.Interpolate(guarded, 5, 0.7)
	require.NoError(t, err)

	// (-0.7)*4 + 1.7*5 extends the ramp to 5.7.
	assert.InDelta(t, 5.7, v, 1e-12)
}

func TestLagrangeInterpolator_ExactOnPolynomials(t *testing.T) {
	tests := []struct {
		name       string
		semiwindow int
		coeffs     []float64
	}{
		{"semiwindow_1_constant", 1, []float64{3.5}},
		{"semiwindow_1_linear", 1, []float64{-1.0, 2.0}},
		{"semiwindow_2_cubic", 2, []float64{1.0, -2.0, 0.5, 0.25}},
		{"semiwindow_4_cubic", 4, []float64{1.0, -2.0, 0.5, 0.25}},
	}

	offsets := []float64{0.0, 0.25, 0.5, 0.9}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interp := NewLagrangeInterpolator(tt.semiwindow)
			y := polySource(tt.coeffs...)

			for _, dind := range offsets {
				v, err := interp.Interpolate(y, 10, dind)
				require.NoError(t, err)

				want := evalPoly(10.0+dind, tt.coeffs...)
				assert.InEpsilon(t, want, v, 1e-9,
					"degree-%d polynomial not reproduced at dind=%g", len(tt.coeffs)-1, dind)
			}
		})
	}
}

func TestLagrangeVariants_Agree(t *testing.T) {
	y := funcSource{fn: func(pos int64) (float64, error) {
		x := float64(pos)
		return math.Sin(0.3*x) + 0.1*x, nil
	}}

	semiwindows := []int{1, 2, 4}
	offsets := []float64{0.0, 0.1, 0.5, 0.9}

	for _, sw := range semiwindows {
		t.Run(fmt.Sprintf("semiwindow_%d", sw), func(t *testing.T) {
			classic := NewLagrangeInterpolator(sw)
			fast := NewFastLagrangeInterpolator(sw)

			for _, dind := range offsets {
				a, err := classic.Interpolate(y, 10, dind)
				require.NoError(t, err)

				b, err := fast.Interpolate(y, 10, dind)
				require.NoError(t, err)

				assert.InEpsilon(t, a, b, 1e-9,
					"variants disagree at semiwindow=%d dind=%g", sw, dind)
			}
		})
	}
}

func TestLagrangeInterpolator_ScratchReuse(t *testing.T) {
	// Back-to-back calls must not contaminate each other through the
	// reusable scratch arrays.
	interp := NewLagrangeInterpolator(2)
	y := polySource(0.0, 1.0) // ramp

	first, err := interp.Interpolate(y, 10, 0.5)
	require.NoError(t, err)

	_, err = interp.Interpolate(y, 100, 0.25)
	require.NoError(t, err)

	again, err := interp.Interpolate(y, 10, 0.5)
	require.NoError(t, err)

	assert.Equal(t, first, again)
}

func TestNewInterpolator_Codes(t *testing.T) {
	tests := []struct {
		name    string
		code    int
		want    any
		wantErr bool
	}{
		{"nearest", InterpNearest, NearestInterpolator{}, false},
		{"linear", InterpLinear, LinearInterpolator{}, false},
		{"extrapolate", InterpExtrapolate, LinearExtrapolator{}, false},
		{"lagrange_4", 4, &LagrangeInterpolator{}, false},
		{"undefined_-2", -2, nil, true},
		{"undefined_-7", -7, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interp, err := NewInterpolator(tt.code)

			if tt.wantErr {
				require.ErrorIs(t, err, ErrUndefined)
				return
			}

			require.NoError(t, err)
			assert.IsType(t, tt.want, interp)
		})
	}
}

func TestNewInterpolator_LagrangeWindow(t *testing.T) {
	interp, err := NewInterpolator(8)
	require.NoError(t, err)

	lagrange, ok := interp.(*LagrangeInterpolator)
	require.True(t, ok)
	assert.Equal(t, 16, lagrange.window)
}
