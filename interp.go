package gwsignal

import (
	"fmt"
	"math"
)

// Interpolator maps a continuous query position onto discrete samples. The
// position is given as an integer anchor ind (the last sample at or before
// the query) plus a fractional offset dind in [0, 1), so the query sits at
// ind + dind.
//
// Interpolators hold no evolving state; the Lagrange variants own reusable
// scratch buffers, so a single interpolator instance must not be shared
// across goroutines.
type Interpolator interface {
	Interpolate(y Source, ind int64, dind float64) (float64, error)
}

// NewInterpolator selects an interpolator from an integer code:
// InterpNearest (0), InterpLinear (1), InterpExtrapolate (-1), or any value
// greater than one for Lagrange interpolation with that half-window. Any
// other value fails with ErrUndefined.
func NewInterpolator(code int) (Interpolator, error) {
	switch {
	case code == InterpNearest:
		return NearestInterpolator{}, nil
	case code == InterpLinear:
		return LinearInterpolator{}, nil
	case code == InterpExtrapolate:
		return LinearExtrapolator{}, nil
	case code > 1:
		return NewLagrangeInterpolator(code), nil
	default:
		return nil, fmt.Errorf("%w: interpolator code %d", ErrUndefined, code)
	}
}

// NearestInterpolator returns the discrete sample closest to the query
// position.
type NearestInterpolator struct{}

// Interpolate returns y[ind] for dind below the midpoint, y[ind+1] above.
func (NearestInterpolator) Interpolate(y Source, ind int64, dind float64) (float64, error) {
	if dind < nearestMidpoint {
		return y.At(ind)
	}

	return y.At(ind + 1)
}

// LinearInterpolator blends the two samples bracketing the query position.
type LinearInterpolator struct{}

// Interpolate returns (1-dind)·y[ind] + dind·y[ind+1].
func (LinearInterpolator) Interpolate(y Source, ind int64, dind float64) (float64, error) {
	a, err := y.At(ind)
	if err != nil {
		return 0, err
	}

	b, err := y.At(ind + 1)
	if err != nil {
		return 0, err
	}

	return (1.0-dind)*a + dind*b, nil
}

// LinearExtrapolator extends the line through the two samples at and before
// the anchor, never reading past y[ind]. Intended for query positions beyond
// the latest reliably bufferable sample.
type LinearExtrapolator struct{}

// Interpolate returns (-dind)·y[ind-1] + (1+dind)·y[ind].
func (LinearExtrapolator) Interpolate(y Source, ind int64, dind float64) (float64, error) {
	prev, err := y.At(ind - 1)
	if err != nil {
		return 0, err
	}

	cur, err := y.At(ind)
	if err != nil {
		return 0, err
	}

	return (-dind)*prev + (1.0+dind)*cur, nil
}

// LagrangeInterpolator evaluates the unique polynomial of degree
// 2·semiwindow-1 through the 2·semiwindow samples centered on the anchor
// (positions ind-semiwindow+1 … ind+semiwindow), using Neville's algorithm.
//
// The scratch arrays are 1-based like the classic Neville formulation; index
// zero is unused.
type LagrangeInterpolator struct {
	window     int
	semiwindow int

	xa []float64
	ya []float64
	c  []float64
	d  []float64
}

// NewLagrangeInterpolator creates a Lagrange interpolator with the given
// half-window; the full interpolation window spans 2·semiwindow samples.
func NewLagrangeInterpolator(semiwindow int) *LagrangeInterpolator {
	window := 2 * semiwindow

	l := &LagrangeInterpolator{
		window:     window,
		semiwindow: semiwindow,
		xa:         make([]float64, window+1),
		ya:         make([]float64, window+1),
		c:          make([]float64, window+1),
		d:          make([]float64, window+1),
	}

	for i := 1; i <= window; i++ {
		l.xa[i] = float64(i)
	}

	return l
}

// Interpolate gathers the window around the anchor and evaluates the
// interpolating polynomial at semiwindow + dind.
func (l *LagrangeInterpolator) Interpolate(y Source, ind int64, dind float64) (float64, error) {
	for i := 0; i < l.semiwindow; i++ {
		back, err := y.At(ind - int64(i))
		if err != nil {
			return 0, err
		}

		fwd, err := y.At(ind + int64(i) + 1)
		if err != nil {
			return 0, err
		}

		l.ya[l.semiwindow-i] = back
		l.ya[l.semiwindow+i+1] = fwd
	}

	return l.polint(float64(l.semiwindow) + dind), nil
}

// polint is Neville's algorithm over the gathered window. The running
// estimate starts from the node nearest to x (first-found wins on exact
// ties) and accumulates correction terms from the c/d difference tableau.
func (l *LagrangeInterpolator) polint(x float64) float64 {
	n := l.window
	ns := 1

	dif := math.Abs(x - l.xa[1])

	for i := 1; i <= n; i++ {
		if dift := math.Abs(x - l.xa[i]); dift < dif {
			ns = i
			dif = dift
		}

		l.c[i] = l.ya[i]
		l.d[i] = l.ya[i]
	}

	res := l.ya[ns]
	ns--

	for m := 1; m < n; m++ {
		for i := 1; i <= n-m; i++ {
			ho := l.xa[i] - x
			hp := l.xa[i+m] - x
			w := l.c[i+1] - l.d[i]

			den := w / (ho - hp)
			l.d[i] = hp * den
			l.c[i] = ho * den
		}

		// Step down the side of the tableau closest to x.
		if 2*ns < n-m {
			res += l.c[ns+1]
		} else {
			res += l.d[ns]
			ns--
		}
	}

	return res
}

// FastLagrangeInterpolator is an algebraically rearranged version of
// LagrangeInterpolator. Because the nodes sit on the unit grid, the
// denominators in Neville's recurrence are the constant integer distances
// -m, so the per-level reciprocals can be tabulated once (ya[i] = -1/i) and
// the inner loop trades a subtraction and a division for one
// multiplication. Both variants produce numerically equivalent results for
// well-conditioned inputs, differing at most in last-bit rounding.
type FastLagrangeInterpolator struct {
	window     int
	semiwindow float64

	xa []float64
	ya []float64 // ya[i] = -1/i, the precomputed reciprocal distances
	c  []float64
	d  []float64
}

// NewFastLagrangeInterpolator creates a rearranged-Neville Lagrange
// interpolator with the given half-window.
func NewFastLagrangeInterpolator(semiwindow int) *FastLagrangeInterpolator {
	window := 2 * semiwindow

	l := &FastLagrangeInterpolator{
		window:     window,
		semiwindow: float64(semiwindow),
		xa:         make([]float64, window+1),
		ya:         make([]float64, window+1),
		c:          make([]float64, window+1),
		d:          make([]float64, window+1),
	}

	for i := 1; i <= window; i++ {
		l.xa[i] = float64(i)
		l.ya[i] = -1.0 / l.xa[i]
	}

	return l
}

// Interpolate gathers the window directly into the difference tableau and
// evaluates the interpolating polynomial at semiwindow + dind.
func (l *FastLagrangeInterpolator) Interpolate(y Source, ind int64, dind float64) (float64, error) {
	base := ind - int64(l.window/2)

	// Descending so the furthest forward sample is requested first; the
	// remaining reads then hit the freshly filled cache.
	for i := l.window; i > 0; i-- {
		v, err := y.At(base + int64(i))
		if err != nil {
			return 0, err
		}

		l.c[i] = v
		l.d[i] = v
	}

	return l.polint(l.semiwindow + dind), nil
}

func (l *FastLagrangeInterpolator) polint(x float64) float64 {
	n := l.window
	ns := 1

	mindif := math.Abs(x - l.xa[1])

	for i := 2; i <= n; i++ {
		dif := math.Abs(x - l.xa[i])

		if dif < mindif {
			ns = i
			mindif = dif
		}
	}

	res := l.c[ns]
	ns--

	for m := 1; m < n; m++ {
		for i := 1; i <= n-m; i++ {
			den := l.ya[m] * (l.c[i+1] - l.d[i])

			l.c[i] = (l.xa[i] - x) * den
			l.d[i] = (l.xa[i+m] - x) * den
		}

		if 2*ns < n-m {
			res += l.c[ns+1]
		} else {
			res += l.d[ns]
			ns--
		}
	}

	return res
}
