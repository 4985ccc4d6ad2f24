package gwsignal

// NewWhiteNoise creates flat-spectrum (f⁰) noise with the given PSD at the
// Nyquist frequency. Shorthand for NewPowerLawNoise with SpectrumWhite.
func NewWhiteNoise(dt, prebuffer, psd float64, interpCode int, seed uint64) (*PowerLawNoise, error) {
	return NewPowerLawNoise(dt, prebuffer, psd, SpectrumWhite, interpCode, seed)
}

// NewRedNoise creates 1/f² noise with the given PSD at the Nyquist
// frequency. Shorthand for NewPowerLawNoise with SpectrumRed.
func NewRedNoise(dt, prebuffer, psd float64, interpCode int, seed uint64) (*PowerLawNoise, error) {
	return NewPowerLawNoise(dt, prebuffer, psd, SpectrumRed, interpCode, seed)
}

// NewBlueNoise creates f² noise with the given PSD at the Nyquist frequency.
// Shorthand for NewPowerLawNoise with SpectrumBlue.
func NewBlueNoise(dt, prebuffer, psd float64, interpCode int, seed uint64) (*PowerLawNoise, error) {
	return NewPowerLawNoise(dt, prebuffer, psd, SpectrumBlue, interpCode, seed)
}
