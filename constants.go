package gwsignal

// Interpolator selection codes accepted by NewInterpolator and by the
// assembly constructors. Values greater than one select Lagrange
// interpolation with that half-window.
const (
	// InterpNearest selects nearest-sample interpolation.
	InterpNearest = 0

	// InterpLinear selects two-point linear interpolation.
	InterpLinear = 1

	// InterpExtrapolate selects backward-only linear extrapolation, which
	// never reads past the anchor sample. Intended for query positions
	// beyond the latest reliably bufferable sample.
	InterpExtrapolate = -1
)

// Spectral exponents supported by NewPowerLawNoise. The power spectral
// density of the generated noise follows f^exponent.
const (
	// SpectrumWhite is a flat spectrum (f⁰).
	SpectrumWhite = 0.0

	// SpectrumBlue is an f² spectrum, obtained by first-differencing.
	SpectrumBlue = 2.0

	// SpectrumRed is an f⁻² spectrum, obtained by integration.
	SpectrumRed = -2.0
)

const (
	// bufferHeadroomSamples is added to prebuffer/Δt when sizing the
	// retention window of a filtered source, so that filters and
	// interpolators can look a little behind the prebuffer region.
	bufferHeadroomSamples = 32

	// nearestMidpoint is the fractional offset at which nearest-sample
	// interpolation switches from the anchor to the following sample.
	nearestMidpoint = 0.5
)
