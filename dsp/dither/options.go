package dither

import (
	"fmt"
	"math"
)

const (
	defaultDitherType = DitherRectangular
	defaultAmplitude  = 0.01
	defaultSeed       = 1
)

type config struct {
	ditherType DitherType
	amplitude  float64
	source     Source
	seed       uint64
}

func defaultConfig() config {
	return config{
		ditherType: defaultDitherType,
		amplitude:  defaultAmplitude,
		seed:       defaultSeed,
	}
}

// Option configures a [Noise] generator.
type Option func(*config) error

// WithDitherType sets the noise PDF (default [DitherRectangular]).
func WithDitherType(dt DitherType) Option {
	return func(cfg *config) error {
		if !dt.Valid() {
			return fmt.Errorf("dither: invalid dither type: %d", dt)
		}

		cfg.ditherType = dt

		return nil
	}
}

// WithAmplitude sets the peak noise amplitude (default 0.01, must be >= 0).
func WithAmplitude(amp float64) Option {
	return func(cfg *config) error {
		if amp < 0 || math.IsNaN(amp) || math.IsInf(amp, 0) {
			return fmt.Errorf("dither: amplitude must be >= 0 and finite: %f", amp)
		}

		cfg.amplitude = amp

		return nil
	}
}

// WithSource draws noise from src instead of an internal [Uniform].
func WithSource(src Source) Option {
	return func(cfg *config) error {
		if src == nil {
			return fmt.Errorf("dither: nil source")
		}

		cfg.source = src

		return nil
	}
}

// WithSeed seeds the internal [Uniform] source. Ignored when [WithSource] is used.
func WithSeed(seed uint64) Option {
	return func(cfg *config) error {
		cfg.seed = seed
		return nil
	}
}
