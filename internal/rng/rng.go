// Package rng provides the deterministic uniform random streams consumed by
// the noise sources, plus the process-wide fallback seed used when a caller
// requests default seeding.
package rng

import (
	"sync"
	"time"

	"golang.org/x/exp/rand"
)

// Stream is a seedable, resettable deterministic uniform generator.
// Uniform returns values in [0, 1) and is fully determined by the last seed.
type Stream struct {
	src *rand.Rand
}

// New creates a stream seeded with seed. A zero seed draws the next value
// from the process-wide fallback seed counter, guaranteeing distinct streams
// across default-seeded instances within one process run.
func New(seed uint64) *Stream {
	s := &Stream{src: rand.New(rand.NewSource(1))}
	s.Seed(seed)

	return s
}

// Seed reseeds the stream. A zero seed uses the fallback seed counter.
func (s *Stream) Seed(seed uint64) {
	if seed == 0 {
		seed = NextDefaultSeed()
	}

	s.src.Seed(seed)
}

// Uniform returns the next deterministic uniform deviate in [0, 1).
func (s *Stream) Uniform() float64 {
	return s.src.Float64()
}

// The fallback seed counter is the only process-wide mutable state in the
// library. It is initialized from the wall clock on first use unless
// explicitly overridden, and advances on every default-seeded stream so that
// two default-seeded sources never share a stream.
var (
	defaultMu   sync.Mutex
	defaultSeed uint64
)

// SetDefaultSeed overrides the fallback seed counter. Passing zero reseeds
// it from the wall clock.
func SetDefaultSeed(seed uint64) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	setDefaultSeedLocked(seed)
}

// DefaultSeed returns the current fallback seed, initializing it from the
// wall clock on first use.
func DefaultSeed() uint64 {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultSeed == 0 {
		setDefaultSeedLocked(0)
	}

	return defaultSeed
}

// NextDefaultSeed returns the current fallback seed and advances the
// counter.
func NextDefaultSeed() uint64 {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultSeed == 0 {
		setDefaultSeedLocked(0)
	}

	seed := defaultSeed
	defaultSeed++

	return seed
}

func setDefaultSeedLocked(seed uint64) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
		if seed == 0 {
			seed = 1
		}
	}

	defaultSeed = seed
}
