package gwsignal

import (
	"fmt"

	"github.com/tphakala/simd/f64"
)

// Filter computes one output sample from an input source and the filter's
// own output history. Filters hold no evolving state: everything they need
// is in the two sources and their fixed coefficient arrays, so the same
// filter value always results from the same inputs.
//
// in is the upstream source; out is the filter's own past output, supplied
// by the FilteredSource hosting the filter (feedback for recursive filters).
type Filter interface {
	Apply(in, out Source, pos int64) (float64, error)
}

// IdentityFilter passes the input through unchanged: y[p] = x[p].
// Used for flat (white) spectra.
type IdentityFilter struct{}

// Apply returns the input sample at pos.
func (IdentityFilter) Apply(in, _ Source, pos int64) (float64, error) {
	return in.At(pos)
}

// IntegratorFilter is a single-pole recursive integrator:
// y[p] = α·y[p-1] + x[p]. With α = 1 it turns a flat input spectrum red
// (1/f²).
type IntegratorFilter struct {
	alpha float64
}

// NewIntegratorFilter creates an integrator with pole α. Use α = 1 for a
// pure accumulator.
func NewIntegratorFilter(alpha float64) *IntegratorFilter {
	return &IntegratorFilter{alpha: alpha}
}

// Apply computes α·y[pos-1] + x[pos].
func (f *IntegratorFilter) Apply(in, out Source, pos int64) (float64, error) {
	prev, err := out.At(pos - 1)
	if err != nil {
		return 0, err
	}

	x, err := in.At(pos)
	if err != nil {
		return 0, err
	}

	return f.alpha*prev + x, nil
}

// DifferencerFilter is the first difference y[p] = x[p] - x[p-1], turning a
// flat input spectrum blue (f²). It is the exact inverse of a unit-pole
// integrator up to the integrator's initial condition.
type DifferencerFilter struct{}

// Apply computes x[pos] - x[pos-1].
func (DifferencerFilter) Apply(in, _ Source, pos int64) (float64, error) {
	x, err := in.At(pos)
	if err != nil {
		return 0, err
	}

	xprev, err := in.At(pos - 1)
	if err != nil {
		return 0, err
	}

	return x - xprev, nil
}

// FIRFilter is a general finite-impulse-response filter:
// y[p] = Σ a[i]·x[p-i]. Coefficients are copied at construction; by
// convention a[0] = 1 for a normalized filter.
type FIRFilter struct {
	coeffs []float64
	taps   []float64 // reusable gather window, not shared across goroutines
}

// NewFIRFilter creates an FIR filter over a copy of coeffs.
// A FilteredSource hosting the filter must retain at least len(coeffs)
// samples, or applying the filter fails with stale-access errors.
func NewFIRFilter(coeffs []float64) (*FIRFilter, error) {
	if len(coeffs) == 0 {
		return nil, fmt.Errorf("%w: FIR filter needs at least one coefficient", ErrUndefined)
	}

	f := &FIRFilter{
		coeffs: make([]float64, len(coeffs)),
		taps:   make([]float64, len(coeffs)),
	}
	copy(f.coeffs, coeffs)

	return f, nil
}

// Apply gathers the tap window x[pos-i] and returns its inner product with
// the coefficients.
func (f *FIRFilter) Apply(in, _ Source, pos int64) (float64, error) {
	for i := range f.coeffs {
		v, err := in.At(pos - int64(i))
		if err != nil {
			return 0, err
		}

		f.taps[i] = v
	}

	// Lengths are equal by construction.
	return f64.DotProductUnsafe(f.taps, f.coeffs), nil
}

// IIRFilter is a general recursive filter:
// y[p] = Σ a[i]·x[p-i] + Σ_{j≥1} b[j]·y[p-j]. Both coefficient arrays are
// copied at construction; by convention a[0] = 1 and b[0] is unused.
type IIRFilter struct {
	a    []float64
	b    []float64
	taps []float64 // reusable gather window for the feedforward part
}

// NewIIRFilter creates an IIR filter over copies of the feedforward (a) and
// feedback (b) coefficient arrays. A FilteredSource hosting the filter must
// retain at least max(len(a), len(b)) samples.
func NewIIRFilter(a, b []float64) (*IIRFilter, error) {
	if len(a) == 0 {
		return nil, fmt.Errorf("%w: IIR filter needs at least one feedforward coefficient", ErrUndefined)
	}

	f := &IIRFilter{
		a:    make([]float64, len(a)),
		b:    make([]float64, len(b)),
		taps: make([]float64, len(a)),
	}
	copy(f.a, a)
	copy(f.b, b)

	return f, nil
}

// Apply computes the feedforward inner product plus the feedback sum over
// the filter's own output history.
func (f *IIRFilter) Apply(in, out Source, pos int64) (float64, error) {
	for i := range f.a {
		v, err := in.At(pos - int64(i))
		if err != nil {
			return 0, err
		}

		f.taps[i] = v
	}

	acc := f64.DotProductUnsafe(f.taps, f.a)

	for j := 1; j < len(f.b); j++ {
		v, err := out.At(pos - int64(j))
		if err != nil {
			return 0, err
		}

		acc += f.b[j] * v
	}

	return acc, nil
}

// FilteredSource applies a Filter to an upstream source, buffering the
// filter output so that recursive filters can read their own history. The
// source's own buffer serves as the filter's output-history accessor;
// feedback reads the raw recurrence output, while the scale factor is a
// read-side normalization. Scaling the feedback instead would make any
// recursive filter unstable for scales above one.
type FilteredSource struct {
	*BufferedSource

	source Source
	filter Filter
	scale  float64
}

// NewFilteredSource creates a filtered view of source with a retention
// window of length samples. Every output sample is multiplied by scale on
// read. The window must cover the largest coefficient lag of filter plus the
// deepest backward reach of any downstream interpolator.
func NewFilteredSource(length int64, source Source, filter Filter, scale float64) *FilteredSource {
	fs := &FilteredSource{
		source: source,
		filter: filter,
		scale:  scale,
	}

	fs.BufferedSource = NewBufferedSource(length, fs.computeValue)

	return fs
}

// At returns the scaled filter output at pos, filling forward as needed.
func (fs *FilteredSource) At(pos int64) (float64, error) {
	v, err := fs.BufferedSource.At(pos)
	if err != nil {
		return 0, err
	}

	return fs.scale * v, nil
}

// Reset cascades to the upstream source before clearing the buffered
// window.
func (fs *FilteredSource) Reset(seed uint64) {
	fs.source.Reset(seed)
	fs.BufferedSource.Reset(seed)
}

func (fs *FilteredSource) computeValue(pos int64) (float64, error) {
	return fs.filter.Apply(fs.source, fs.BufferedSource, pos)
}
