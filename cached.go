package gwsignal

import "fmt"

// CachedSignal wraps an arbitrary continuous Signal with a resampling and
// interpolation stage, amortizing expensive evaluation: the wrapped signal
// is evaluated once per grid point and repeated queries are served from the
// cache through the interpolator.
type CachedSignal struct {
	resampled *ResampledSource
	signal    *InterpolatedSignal
}

// NewCachedSignal caches signal on a grid with period dt and a retention
// window of length samples. The interpolator is selected by interpCode as in
// NewInterpolator; the prebuffer is sized to the interpolator half-window so
// that queries near time zero stay inside the cached region.
func NewCachedSignal(signal Signal, length int64, dt float64, interpCode int) (*CachedSignal, error) {
	if dt <= 0 {
		return nil, fmt.Errorf("%w: sampling period must be positive, got %g", ErrUndefined, dt)
	}

	interp, err := NewInterpolator(interpCode)
	if err != nil {
		return nil, fmt.Errorf("cached signal: %w", err)
	}

	prebuffer := float64(interpCode) * dt
	if prebuffer < 0 {
		// The extrapolating interpolator never reads forward, so it needs
		// no prebuffer at all.
		prebuffer = 0
	}

	c := &CachedSignal{}
	c.resampled = NewResampledSource(length, dt, prebuffer, signal)

	c.signal, err = NewInterpolatedSignal(c.resampled, interp, dt, prebuffer, 1.0)
	if err != nil {
		return nil, fmt.Errorf("cached signal: %w", err)
	}

	return c, nil
}

// Value returns the cached, interpolated value at time t. Failures from the
// wrapped signal propagate unchanged in kind.
func (c *CachedSignal) Value(t float64) (float64, error) {
	return c.signal.Value(t)
}

// ValueSplit evaluates at base + corr with separate index flooring; see
// InterpolatedSignal.ValueSplit.
func (c *CachedSignal) ValueSplit(base, corr float64) (float64, error) {
	return c.signal.ValueSplit(base, corr)
}

// Reset clears the cache and cascades to the wrapped signal.
func (c *CachedSignal) Reset(seed uint64) {
	c.signal.Reset(seed)
}
