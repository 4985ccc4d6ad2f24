// Package gwsignal synthesizes continuous-time signals for a
// gravitational-wave-detector simulator.
//
// The library produces colored noise processes and continuous views of
// externally sampled data. Callers request a signal's value at an arbitrary
// real-valued time; the library answers from an underlying discrete-time
// process using causal buffering, digital filtering, and polynomial
// interpolation.
//
// # Features
//
//   - Lazily-filled, monotonically-advancing buffered sample sources with a
//     bounded retention window and explicit stale-access failure
//   - Gaussian white noise via the Box-Muller polar method with deterministic
//     seeding and a process-wide fallback seed for default-seeded instances
//   - Digital filters: identity, single-pole integrator, first difference,
//     and general FIR/IIR with copied coefficient arrays
//   - Interpolators: nearest, linear, backward-only linear extrapolation, and
//     Lagrange polynomial interpolation (two Neville-scheme implementations)
//   - Ready-to-use assemblies: power-law noise (f⁰, f², f⁻² spectra),
//     continuous views over sampled data, and caching wrappers that amortize
//     expensive signal evaluation
//
// # Quick Start
//
// Generating red (1/f²) noise with a 16-point Lagrange interpolator:
//
//	noise, err := gwsignal.NewPowerLawNoise(0.1, 32.0, 1e-6, gwsignal.SpectrumRed, 8, 42)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for t := 0.0; t < 100.0; t += 0.05 {
//	    v, err := noise.Value(t)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    process(v)
//	}
//
// Wrapping externally sampled data as a continuous signal:
//
//	sig, err := gwsignal.NewSampledSignal(samples, 0.1, 3.2, 1.0, nil, 1)
//
// # Evaluation model
//
// Every assembly is constructed once with fixed structural parameters and
// then queried repeatedly through Value. Each query pulls through the
// interpolator and the discrete source chain, triggering lazy fill-forward
// exactly as far as needed; nothing is generated in the background. Sources
// retain only the most recent window of samples, so queries must advance
// roughly monotonically. Reading behind the retention window fails with
// ErrOutOfBounds rather than silently recomputing, since recomputation would
// desynchronize filter feedback.
//
// The library is single-threaded by design: an assembly owns its whole chain
// exclusively and must not be queried from multiple goroutines concurrently.
// The only process-wide state is the fallback seed counter used by
// default-seeded noise sources, which is guarded internally.
package gwsignal
