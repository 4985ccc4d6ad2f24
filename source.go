package gwsignal

import (
	"fmt"
)

// Source is a discrete-time sequence of real samples indexed by integer
// position. Implementations are either lazily-filled infinite sequences
// backed by a bounded retention window (BufferedSource and its wrappers) or
// finite zero-padded arrays (SampledSource).
//
// At returns the sample at pos. Lazy implementations fill forward as far as
// needed on the calling goroutine; reading behind the retention window fails
// with ErrOutOfBounds.
//
// Reset reinitializes the source's state (cached samples, randomness) without
// changing structural parameters. Composite sources propagate the reset
// upstream. A seed of zero requests the process-default seeding behavior.
type Source interface {
	At(pos int64) (float64, error)
	Reset(seed uint64)
}

// Signal is a continuous-time signal evaluated at arbitrary real times.
// It is the interface through which higher simulator layers (waveforms,
// detector geometry) consume synthesized noise and sampled data.
type Signal interface {
	Value(t float64) (float64, error)
	Reset(seed uint64)
}

// ComputeFunc produces the sample at a given position for a BufferedSource.
// It is called at most once per position for the position's lifetime in the
// retention window, in strictly increasing position order.
type ComputeFunc func(pos int64) (float64, error)

// BufferedSource is a lazily-filled discrete source backed by a fixed-size
// circular window. Samples are computed in strictly increasing order by the
// supplied ComputeFunc and retained for the most recent window positions;
// older positions are evicted and reading them fails with ErrOutOfBounds.
//
// The eviction failure is deliberate: interpolators and filters only ever
// look a bounded distance backward from a monotonically advancing playhead,
// so a stale read indicates a caller error, and silently recomputing would
// desynchronize any stateful filter feedback.
type BufferedSource struct {
	buf     []float64
	length  int64
	current int64 // high-water mark; -1 before the first access
	compute ComputeFunc
}

// NewBufferedSource creates a buffered source retaining the last length
// samples, computed on demand by compute.
func NewBufferedSource(length int64, compute ComputeFunc) *BufferedSource {
	if length < 1 {
		length = 1
	}

	b := &BufferedSource{
		buf:     make([]float64, length),
		length:  length,
		current: -1,
		compute: compute,
	}

	return b
}

// At returns the sample at pos, computing and caching every position between
// the high-water mark and pos on first access. Re-reading a retained position
// is idempotent and triggers no recomputation.
func (b *BufferedSource) At(pos int64) (float64, error) {
	if pos <= b.current-b.length {
		return 0, fmt.Errorf("%w: stale sample access at position %d (high-water mark %d, window %d)",
			ErrOutOfBounds, pos, b.current, b.length)
	}

	// Fill forward one position at a time, advancing the high-water mark as
	// we go so that filter feedback reading just-computed positions hits the
	// cache instead of re-entering the fill loop.
	for b.current < pos {
		v, err := b.compute(b.current + 1)
		if err != nil {
			return 0, err
		}

		b.current++
		b.buf[b.index(b.current)] = v
	}

	return b.buf[b.index(pos)], nil
}

// Reset clears the cached window to zero and rewinds the high-water mark.
// The seed is unused at this level; wrappers that own randomness reseed
// before delegating here.
func (b *BufferedSource) Reset(seed uint64) {
	for i := range b.buf {
		b.buf[i] = 0
	}

	b.current = -1
}

// index maps a position into the circular window. Positions are non-negative
// by the fill invariant, but the floor-mod keeps the mapping correct even for
// negative values.
func (b *BufferedSource) index(pos int64) int64 {
	i := pos % b.length
	if i < 0 {
		i += b.length
	}

	return i
}

// SampledSource is a finite discrete source over an externally owned sample
// slice. It does not copy the data: the backing slice must outlive the
// source and must not be mutated while the source is in use.
//
// Negative positions read as zero (padding); positions at or past the end
// fail with ErrOutOfBounds. Lookup is O(1), so no caching is involved.
type SampledSource struct {
	data  []float64
	scale float64
}

// NewSampledSource wraps data, scaling every sample by scale on read.
func NewSampledSource(data []float64, scale float64) *SampledSource {
	return &SampledSource{
		data:  data,
		scale: scale,
	}
}

// At returns scale*data[pos], zero for negative positions, or ErrOutOfBounds
// past the end of the data.
func (s *SampledSource) At(pos int64) (float64, error) {
	switch {
	case pos < 0:
		return 0, nil
	case pos >= int64(len(s.data)):
		return 0, fmt.Errorf("%w: sampled source position %d past end of data (length %d)",
			ErrOutOfBounds, pos, len(s.data))
	default:
		return s.scale * s.data[pos], nil
	}
}

// Reset is a no-op: the source holds no mutable state.
func (s *SampledSource) Reset(seed uint64) {}

// ResampledSource discretizes a continuous Signal onto a regular grid so
// that an InterpolatedSignal stacked on top can serve repeated queries from
// the cache instead of re-evaluating the signal. Position p maps to time
// p*Δt - prebuffer.
type ResampledSource struct {
	*BufferedSource

	signal    Signal
	dt        float64
	prebuffer float64
}

// NewResampledSource creates a resampling source over signal with a
// retention window of length samples.
func NewResampledSource(length int64, dt, prebuffer float64, signal Signal) *ResampledSource {
	r := &ResampledSource{
		signal:    signal,
		dt:        dt,
		prebuffer: prebuffer,
	}

	r.BufferedSource = NewBufferedSource(length, r.computeValue)

	return r
}

// Reset cascades to the wrapped signal before clearing the cache.
func (r *ResampledSource) Reset(seed uint64) {
	r.signal.Reset(seed)
	r.BufferedSource.Reset(seed)
}

func (r *ResampledSource) computeValue(pos int64) (float64, error) {
	return r.signal.Value(float64(pos)*r.dt - r.prebuffer)
}
