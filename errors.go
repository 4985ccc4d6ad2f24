package gwsignal

import "errors"

// Common errors returned by the signal synthesis pipeline.
var (
	// ErrOutOfBounds indicates a discrete sample access outside the valid
	// range: either behind a buffered source's retention window (stale) or
	// past the end of a finite sampled source. It always signals a caller
	// error, not a transient condition.
	ErrOutOfBounds = errors.New("sample position out of bounds")

	// ErrUndefined indicates an unsupported configuration, such as an
	// unknown interpolator code or an unsupported spectral exponent.
	// It is returned at construction time and is fatal to the assembly.
	ErrUndefined = errors.New("undefined signal configuration")
)
