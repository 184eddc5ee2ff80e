package brute

import (
	"fmt"
	"math"

	"github.com/cwbudde/brutefilter/dsp/dither"
	"github.com/cwbudde/brutefilter/dsp/filter/stage"
)

const (
	defaultDitherAmplitude = 0.01
	defaultSeed            = 1
)

// Option mutates constructor configuration.
type Option func(*config) error

type config struct {
	ditherAmplitude float64
	source          dither.Source
	seed            uint64
	curve           Curve
	newSplitter     func() stage.Splitter
	newFollower     func() stage.Follower
}

func defaultConfig() config {
	return config{
		ditherAmplitude: defaultDitherAmplitude,
		seed:            defaultSeed,
		curve:           CurveDownward,
		newSplitter:     func() stage.Splitter { return stage.NewRC(MaxCutoffHz / 44100) },
		newFollower:     func() stage.Follower { return stage.NewPeak(1 / MaxCutoffHz) },
	}
}

// WithDitherAmplitude sets the peak amplitude of the rectangular input
// dither (default 0.01). Zero disables dither.
func WithDitherAmplitude(amp float64) Option {
	return func(cfg *config) error {
		if amp < 0 || math.IsNaN(amp) || math.IsInf(amp, 0) {
			return fmt.Errorf("brute: dither amplitude must be >= 0 and finite: %f", amp)
		}

		cfg.ditherAmplitude = amp

		return nil
	}
}

// WithNoiseSource draws dither from src, typically the host's random
// service. The source is called once per sample and must not block.
func WithNoiseSource(src dither.Source) Option {
	return func(cfg *config) error {
		if src == nil {
			return fmt.Errorf("brute: nil noise source")
		}

		cfg.source = src

		return nil
	}
}

// WithSeed seeds the internal dither source. Ignored with WithNoiseSource.
func WithSeed(seed uint64) Option {
	return func(cfg *config) error {
		cfg.seed = seed
		return nil
	}
}

// WithCurve selects the cutoff modulation curve (default CurveDownward).
func WithCurve(curve Curve) Option {
	return func(cfg *config) error {
		if !validCurve(curve) {
			return fmt.Errorf("brute: invalid curve: %d", curve)
		}

		cfg.curve = curve

		return nil
	}
}

// WithStages replaces the stage constructors. newSplitter is called three
// times and newFollower four times; every call must return a fresh instance.
func WithStages(newSplitter func() stage.Splitter, newFollower func() stage.Follower) Option {
	return func(cfg *config) error {
		if newSplitter == nil || newFollower == nil {
			return fmt.Errorf("brute: nil stage constructor")
		}

		cfg.newSplitter = newSplitter
		cfg.newFollower = newFollower

		return nil
	}
}
