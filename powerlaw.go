package gwsignal

import (
	"fmt"
	"math"
)

// PowerLawNoise is a ready-to-use continuous colored-noise signal whose
// power spectral density follows f^exponent. Supported exponents are
// SpectrumWhite (0), SpectrumBlue (2), and SpectrumRed (-2); the target PSD
// is specified at the Nyquist frequency 1/(2Δt).
//
// The assembly owns its whole chain — white noise source, spectral shaping
// filter, interpolator, continuous facade — and nothing in the chain is
// shared with other assemblies.
type PowerLawNoise struct {
	white    *WhiteNoiseSource
	filtered *FilteredSource
	signal   *InterpolatedSignal
}

// NewPowerLawNoise assembles a colored-noise signal with sampling period dt,
// prebuffer duration, target PSD at Nyquist, and spectral exponent. The
// interpolator is selected by interpCode as in NewInterpolator. A zero seed
// draws from the process-wide fallback seed counter.
func NewPowerLawNoise(dt, prebuffer, psd, exponent float64, interpCode int, seed uint64) (*PowerLawNoise, error) {
	if dt <= 0 {
		return nil, fmt.Errorf("%w: sampling period must be positive, got %g", ErrUndefined, dt)
	}

	if psd < 0 {
		return nil, fmt.Errorf("%w: power spectral density must be non-negative, got %g", ErrUndefined, psd)
	}

	nyquist := 0.5 / dt

	var (
		filter    Filter
		amplitude float64
	)

	switch exponent {
	case SpectrumWhite:
		filter = IdentityFilter{}
		amplitude = math.Sqrt(psd) * math.Sqrt(nyquist)
	case SpectrumBlue:
		filter = DifferencerFilter{}
		amplitude = math.Sqrt(psd) * math.Sqrt(nyquist) / (2.0 * math.Pi * dt)
	case SpectrumRed:
		filter = NewIntegratorFilter(1.0)
		amplitude = math.Sqrt(psd) * math.Sqrt(nyquist) * (2.0 * math.Pi * dt)
	default:
		return nil, fmt.Errorf("%w: power-law exponent %g (supported: 0, 2, -2)", ErrUndefined, exponent)
	}

	interp, err := NewInterpolator(interpCode)
	if err != nil {
		return nil, fmt.Errorf("power-law noise: %w", err)
	}

	bufLen := int64(prebuffer/dt + bufferHeadroomSamples)

	p := &PowerLawNoise{}
	p.white = NewWhiteNoiseSource(bufLen, seed, 1.0)
	p.filtered = NewFilteredSource(bufLen, p.white, filter, amplitude)

	p.signal, err = NewInterpolatedSignal(p.filtered, interp, dt, prebuffer, 1.0)
	if err != nil {
		return nil, fmt.Errorf("power-law noise: %w", err)
	}

	return p, nil
}

// Value returns the noise value at time t.
func (p *PowerLawNoise) Value(t float64) (float64, error) {
	return p.signal.Value(t)
}

// ValueSplit evaluates at base + corr with separate index flooring; see
// InterpolatedSignal.ValueSplit.
func (p *PowerLawNoise) ValueSplit(base, corr float64) (float64, error) {
	return p.signal.ValueSplit(base, corr)
}

// Reset reseeds the whole chain and clears all cached samples. A zero seed
// again requests default seeding.
func (p *PowerLawNoise) Reset(seed uint64) {
	p.signal.Reset(seed)
}
