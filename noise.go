package gwsignal

import (
	"math"

	"github.com/gwsim/go-gwsignal/internal/rng"
)

// WhiteNoiseSource is a buffered source of Gaussian white noise with
// standard deviation scale, generated by the Box-Muller polar method over a
// deterministic uniform stream.
//
// The generated value does not depend on the requested position, only on the
// draw order, so the source gives sensible results only through its buffered
// window, where each position is computed exactly once.
type WhiteNoiseSource struct {
	*BufferedSource

	stream *rng.Stream
	scale  float64

	// The polar method yields deviates in pairs; the second of each pair is
	// held here and returned by the following computeValue call.
	spare     float64
	haveSpare bool
}

// NewWhiteNoiseSource creates a white noise source retaining the last length
// samples. A zero seed draws from the process-wide fallback seed counter
// (see SetDefaultSeed).
func NewWhiteNoiseSource(length int64, seed uint64, scale float64) *WhiteNoiseSource {
	w := &WhiteNoiseSource{
		stream: rng.New(seed),
		scale:  scale,
	}

	w.BufferedSource = NewBufferedSource(length, w.computeValue)

	return w
}

// Reset reseeds the uniform stream, discards any held pair deviate, and
// clears the buffered window. A zero seed again requests default seeding.
func (w *WhiteNoiseSource) Reset(seed uint64) {
	w.stream.Seed(seed)
	w.haveSpare = false
	w.spare = 0

	w.BufferedSource.Reset(seed)
}

// computeValue returns one standard-normal deviate scaled by w.scale.
// Box-Muller polar method: draw (x, y) uniformly in [-1,1]², reject until
// 0 < x²+y² ≤ 1, then derive two independent deviates from the accepted
// pair, returning one and holding the other for the next call.
func (w *WhiteNoiseSource) computeValue(_ int64) (float64, error) {
	if w.haveSpare {
		w.haveSpare = false
		return w.scale * w.spare, nil
	}

	var x, y, r2 float64
	for {
		x = -1.0 + 2.0*w.stream.Uniform()
		y = -1.0 + 2.0*w.stream.Uniform()

		r2 = x*x + y*y
		if r2 <= 1.0 && r2 != 0 {
			break
		}
	}

	root := math.Sqrt(-2.0 * math.Log(r2) / r2)

	w.spare = x * root
	w.haveSpare = true

	return w.scale * y * root, nil
}

// SetDefaultSeed overrides the process-wide fallback seed counter used by
// zero-seeded noise sources. Passing zero reseeds the counter from the wall
// clock. The counter advances on every default-seeded source, so distinct
// default-seeded sources get distinct streams.
func SetDefaultSeed(seed uint64) {
	rng.SetDefaultSeed(seed)
}

// DefaultSeed returns the current fallback seed, initializing it from the
// wall clock on first use.
func DefaultSeed() uint64 {
	return rng.DefaultSeed()
}
