// Command noisegen synthesizes power-law noise and writes it to a WAV file.
//
// Usage:
//
//	noisegen -exponent 0 -duration 10 noise.wav
//	noisegen -exponent -2 -rate 8000 -interp 4 -seed 42 red.wav
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	gwsignal "github.com/gwsim/go-gwsignal"
)

const (
	// CLI defaults
	defaultRate     = 8000
	defaultDuration = 5.0
	defaultExponent = 0.0
	defaultPSD      = 1.0
	defaultInterp   = gwsignal.InterpLinear

	// Prebuffer length in samples; generous enough for any interpolator
	// half-window the flag accepts.
	prebufferSamples = 256

	// WAV output format
	wavBitDepth    = 16
	wavAudioFormat = 1 // PCM
	wavChannels    = 1

	// Peak normalization target, leaving headroom below full scale.
	peakTarget = 0.9 * 32767.0
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("noisegen: ")

	rate := flag.Int("rate", defaultRate, "sample rate in Hz")
	duration := flag.Float64("duration", defaultDuration, "output duration in seconds")
	exponent := flag.Float64("exponent", defaultExponent, "spectral exponent (0, 2, or -2)")
	psd := flag.Float64("psd", defaultPSD, "power spectral density at the Nyquist frequency")
	interp := flag.Int("interp", defaultInterp, "interpolator code (0=nearest, 1=linear, -1=extrapolate, >1=Lagrange half-window)")
	seed := flag.Uint64("seed", 0, "noise seed (0 picks a time-based seed)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: noisegen [options] output.wav\n\nOptions:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *rate, *duration, *exponent, *psd, *interp, *seed); err != nil {
		log.Fatal(err)
	}
}

func run(path string, rate int, duration, exponent, psd float64, interp int, seed uint64) error {
	if rate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %d", rate)
	}

	if duration <= 0 {
		return fmt.Errorf("duration must be positive, got %g", duration)
	}

	dt := 1.0 / float64(rate)
	prebuffer := prebufferSamples * dt

	noise, err := gwsignal.NewPowerLawNoise(dt, prebuffer, psd, exponent, interp, seed)
	if err != nil {
		return err
	}

	n := int(duration * float64(rate))
	samples := make([]float64, n)

	peak := 0.0

	for i := range samples {
		v, err := noise.Value(float64(i) * dt)
		if err != nil {
			return fmt.Errorf("generating sample %d: %w", i, err)
		}

		samples[i] = v

		if a := math.Abs(v); a > peak {
			peak = a
		}
	}

	return writeWAV(path, samples, rate, peak)
}

// writeWAV normalizes samples to the peak target and writes them as 16-bit
// mono PCM.
func writeWAV(path string, samples []float64, rate int, peak float64) error {
	gain := 1.0
	if peak > 0 {
		gain = peakTarget / peak
	}

	data := make([]int, len(samples))
	for i, v := range samples {
		data[i] = int(math.Round(v * gain))
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	enc := wav.NewEncoder(out, rate, wavBitDepth, wavChannels, wavAudioFormat)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: wavChannels,
			SampleRate:  rate,
		},
		Data:           data,
		SourceBitDepth: wavBitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing %s: %w", path, err)
	}

	log.Printf("wrote %d samples (%.1f s at %d Hz) to %s", len(data),
		float64(len(data))/float64(rate), rate, path)

	return nil
}
