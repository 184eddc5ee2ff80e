package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/brutefilter/dsp/core"
)

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed uint64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return NewGeneratorWithOptions(opts)
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// SetSeed replaces the noise seed.
func (g *Generator) SetSeed(seed uint64) { g.seed = seed }

// Seed returns the noise seed.
func (g *Generator) Seed() uint64 { return g.seed }

// Oscillator returns a streaming oscillator at the generator's sample rate.
func (g *Generator) Oscillator(w Waveform, freqHz, amplitude float64) (*Oscillator, error) {
	return NewOscillator(w, freqHz, amplitude, g.cfg.SampleRate, g.seed)
}

// Wave renders samples of the given waveform.
func (g *Generator) Wave(w Waveform, freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: %s samples must be > 0: %d", w, samples)
	}

	osc, err := g.Oscillator(w, freqHz, amplitude)
	if err != nil {
		return nil, err
	}

	out := make([]float64, samples)
	for i := range out {
		out[i] = osc.Next()
	}
	return out, nil
}

// Sine generates a sine wave.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	return g.Wave(WaveSine, freqHz, amplitude, samples)
}

// Saw generates a rising sawtooth starting at -amplitude.
func (g *Generator) Saw(freqHz, amplitude float64, samples int) ([]float64, error) {
	return g.Wave(WaveSaw, freqHz, amplitude, samples)
}

// Square generates a square wave starting at +amplitude.
func (g *Generator) Square(freqHz, amplitude float64, samples int) ([]float64, error) {
	return g.Wave(WaveSquare, freqHz, amplitude, samples)
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if amplitude < 0 {
		return nil, fmt.Errorf("signal: noise amplitude must be >= 0: %f", amplitude)
	}
	return g.Wave(WaveNoise, 0, amplitude, samples)
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("signal: normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("signal: normalize input must not be empty")
	}

	maxAbs := 0.0
	for _, v := range data {
		maxAbs = max(maxAbs, math.Abs(v))
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}
	return out, nil
}
