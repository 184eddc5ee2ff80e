package brute

import (
	"fmt"

	"github.com/cwbudde/brutefilter/dsp/core"
	"github.com/cwbudde/brutefilter/dsp/dither"
	"github.com/cwbudde/brutefilter/dsp/filter/stage"
)

// Outputs holds the four filter outputs of one sample.
type Outputs struct {
	Lowpass  float64
	Highpass float64
	Bandpass float64
	Notch    float64
}

// Taps exposes the intermediate values of the last processed sample.
//
// Notch is the algebraic notch signal Buffer - Bandpass. The notch output is
// NotchPeak * Bandpass; Notch itself does not reach any output.
type Taps struct {
	Buffer         float64
	FirstLowpass   float64
	FirstHighpass  float64
	SecondLowpass  float64
	SecondHighpass float64
	Bandpass       float64
	Notch          float64

	CutoffHz  float64
	Resonance float64

	LowpassPeak  float64
	HighpassPeak float64
	BandpassPeak float64
	NotchPeak    float64
}

// Filter is the brute multimode filter. It owns three splitter stages and
// four peak followers exclusively; none of them are shared between filters.
//
// A Filter is not safe for concurrent use. The host drives it from a single
// audio goroutine.
type Filter struct {
	sampleRate float64
	curve      Curve
	noise      *dither.Noise

	first    stage.Splitter
	second   stage.Splitter
	highpass stage.Splitter

	lowpassRes  stage.Follower
	highpassRes stage.Follower
	bandpassRes stage.Follower
	notchRes    stage.Follower

	taps Taps

	// block scratch: four peak envelopes
	peaks []float64
}

// New creates a filter for the given sample rate.
func New(sampleRate float64, opts ...Option) (*Filter, error) {
	if err := validateSampleRate(sampleRate); err != nil {
		return nil, err
	}

	cfg := defaultConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		err := opt(&cfg)
		if err != nil {
			return nil, err
		}
	}

	noiseOpts := []dither.Option{
		dither.WithDitherType(dither.DitherRectangular),
		dither.WithAmplitude(cfg.ditherAmplitude),
		dither.WithSeed(cfg.seed),
	}
	if cfg.source != nil {
		noiseOpts = append(noiseOpts, dither.WithSource(cfg.source))
	}

	noise, err := dither.NewNoise(noiseOpts...)
	if err != nil {
		return nil, fmt.Errorf("brute: %w", err)
	}

	return &Filter{
		sampleRate:  sampleRate,
		curve:       cfg.curve,
		noise:       noise,
		first:       cfg.newSplitter(),
		second:      cfg.newSplitter(),
		highpass:    cfg.newSplitter(),
		lowpassRes:  cfg.newFollower(),
		highpassRes: cfg.newFollower(),
		bandpassRes: cfg.newFollower(),
		notchRes:    cfg.newFollower(),
	}, nil
}

// SampleRate returns the current sample rate in Hz.
func (f *Filter) SampleRate() float64 { return f.sampleRate }

// Curve returns the cutoff modulation curve.
func (f *Filter) Curve() Curve { return f.curve }

// SetSampleRate changes the sample rate. Stage state is kept, so the rate
// may change between any two samples.
func (f *Filter) SetSampleRate(sampleRate float64) error {
	if err := validateSampleRate(sampleRate); err != nil {
		return err
	}

	f.sampleRate = sampleRate

	return nil
}

// Reset clears all stage and follower state.
func (f *Filter) Reset() {
	f.first.Reset()
	f.second.Reset()
	f.highpass.Reset()
	f.lowpassRes.Reset()
	f.highpassRes.Reset()
	f.bandpassRes.Reset()
	f.notchRes.Reset()
	f.taps = Taps{}
}

// Taps returns the intermediate values of the last processed sample.
func (f *Filter) Taps() Taps { return f.taps }

// CutoffHz returns the effective cutoff for c and in under the filter's curve.
func (f *Filter) CutoffHz(c Controls, in Inputs) float64 {
	depth := ModulationDepth(c.CutoffAmount, in.CutoffCV, c.AttAmount, in.AttCV, in.AttActive)
	return f.curve.Remap(BaseCutoffHz(c.Cutoff), depth)
}

// ProcessSample advances the filter by one sample and returns the four
// outputs.
func (f *Filter) ProcessSample(c Controls, in Inputs) Outputs {
	return f.ProcessSampleAt(f.sampleRate, c, in)
}

// ProcessSampleAt is ProcessSample at the host's current sample rate, which
// is kept for later calls. The rate is not checked: it must be > 0 and
// finite, as [SetSampleRate] would accept.
func (f *Filter) ProcessSampleAt(sampleRate float64, c Controls, in Inputs) Outputs {
	f.sampleRate = sampleRate
	t := f.step(c, in)

	return Outputs{
		Lowpass:  t.LowpassPeak * t.SecondLowpass,
		Highpass: t.HighpassPeak * t.SecondHighpass,
		Bandpass: t.BandpassPeak * t.Bandpass,
		Notch:    t.NotchPeak * t.Bandpass,
	}
}

// step runs the stage cascade and the resonance followers for one sample
// and records the taps. Output products are left to the caller.
func (f *Filter) step(c Controls, in Inputs) *Taps {
	t := &f.taps

	t.CutoffHz = f.CutoffHz(c, in)
	ratio := t.CutoffHz / f.sampleRate

	f.first.SetCutoff(ratio)
	f.second.SetCutoff(ratio)
	f.highpass.SetCutoff(ratio)

	t.Buffer = f.noise.Apply(in.Audio)

	f.first.Process(t.Buffer)
	t.FirstLowpass = f.first.Lowpass()
	t.FirstHighpass = f.first.Highpass()

	f.second.Process(t.FirstLowpass)
	t.SecondLowpass = f.second.Lowpass()
	t.Bandpass = f.second.Highpass()

	f.highpass.Process(t.FirstHighpass)
	t.SecondHighpass = f.highpass.Highpass()

	t.Notch = t.Buffer - t.Bandpass

	t.Resonance = Resonance(c.Resonance, c.ResonanceAmount, in.ResonanceCV)

	// Follower rate comes from the cutoff in Hz, not from the ratio.
	rate := 1 / t.CutoffHz

	t.LowpassPeak = follow(f.lowpassRes, rate, t.Resonance)
	t.HighpassPeak = follow(f.highpassRes, rate, t.Resonance)
	t.BandpassPeak = follow(f.bandpassRes, rate, t.Resonance)
	t.NotchPeak = follow(f.notchRes, rate, t.Resonance)

	return t
}

func follow(fl stage.Follower, rate, x float64) float64 {
	fl.SetRate(rate)
	fl.Process(x)

	return fl.Peak()
}

func validateSampleRate(sampleRate float64) error {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return fmt.Errorf("brute: sample rate must be > 0 and finite: %f", sampleRate)
	}

	return nil
}
