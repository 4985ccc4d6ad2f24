package gwsignal

import (
	"fmt"
	"log"
)

// SampledSignal is a continuous view over externally supplied discrete
// samples, optionally piped through a caller-supplied filter before
// interpolation. The sample slice is borrowed, not copied: it must outlive
// the signal and must not be mutated while the signal is in use.
type SampledSignal struct {
	samples  *SampledSource
	filtered *FilteredSource // nil when no filter is configured
	signal   *InterpolatedSignal
}

// NewSampledSignal wraps data (sampled at period dt, scaled by scale) as a
// continuous signal with the given prebuffer time. A non-nil filter is
// applied between the samples and the interpolator, buffered to cover the
// prebuffer plus headroom. The interpolator is selected by interpCode as in
// NewInterpolator.
//
// If the interpolator half-window reaches before the start of the prebuffer
// region at time zero, a non-fatal warning is logged: such reads resolve to
// the sampled source's zero padding rather than failing.
func NewSampledSignal(data []float64, dt, prebuffer, scale float64, filter Filter, interpCode int) (*SampledSignal, error) {
	if dt <= 0 {
		return nil, fmt.Errorf("%w: sampling period must be positive, got %g", ErrUndefined, dt)
	}

	interp, err := NewInterpolator(interpCode)
	if err != nil {
		return nil, fmt.Errorf("sampled signal: %w", err)
	}

	if float64(interpCode) > prebuffer/dt {
		log.Printf("gwsignal: sampled signal: interpolator half-window %d strays beyond the prebuffer (%g samples) at t=0; early queries will read zero padding",
			interpCode, prebuffer/dt)
	}

	s := &SampledSignal{
		samples: NewSampledSource(data, scale),
	}

	source := Source(s.samples)
	if filter != nil {
		s.filtered = NewFilteredSource(int64(prebuffer/dt+bufferHeadroomSamples), s.samples, filter, 1.0)
		source = s.filtered
	}

	s.signal, err = NewInterpolatedSignal(source, interp, dt, prebuffer, 1.0)
	if err != nil {
		return nil, fmt.Errorf("sampled signal: %w", err)
	}

	return s, nil
}

// Value returns the interpolated value at time t. Querying past the end of
// the sample data fails with ErrOutOfBounds.
func (s *SampledSignal) Value(t float64) (float64, error) {
	return s.signal.Value(t)
}

// ValueSplit evaluates at base + corr with separate index flooring; see
// InterpolatedSignal.ValueSplit.
func (s *SampledSignal) ValueSplit(base, corr float64) (float64, error) {
	return s.signal.ValueSplit(base, corr)
}

// Reset clears the filter cache, if any. The sample data itself is
// immutable.
func (s *SampledSignal) Reset(seed uint64) {
	s.signal.Reset(seed)
}
