package signal

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/brutefilter/dsp/core"
	"github.com/cwbudde/brutefilter/dsp/dither"
)

// Waveform selects an oscillator shape.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSaw
	WaveSquare
	WaveNoise
)

func (w Waveform) String() string {
	switch w {
	case WaveSine:
		return "sine"
	case WaveSaw:
		return "saw"
	case WaveSquare:
		return "square"
	case WaveNoise:
		return "noise"
	default:
		return "unknown"
	}
}

// ParseWaveform maps a name such as "saw" to its Waveform.
func ParseWaveform(name string) (Waveform, error) {
	for w := WaveSine; w <= WaveNoise; w++ {
		if strings.EqualFold(name, w.String()) {
			return w, nil
		}
	}

	return 0, fmt.Errorf("signal: unknown waveform %q", name)
}

// Oscillator produces one sample per Next call. Saw and square are naive
// (not band limited); they are meant as filter test sources.
type Oscillator struct {
	waveform   Waveform
	freq       float64
	amplitude  float64
	sampleRate float64
	phase      float64
	noise      *dither.Uniform
}

// NewOscillator creates an oscillator at the given sample rate. seed only
// affects WaveNoise.
func NewOscillator(w Waveform, freqHz, amplitude, sampleRate float64, seed uint64) (*Oscillator, error) {
	if w < WaveSine || w > WaveNoise {
		return nil, fmt.Errorf("signal: invalid waveform: %d", w)
	}

	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return nil, fmt.Errorf("signal: sample rate must be > 0: %f", sampleRate)
	}

	if freqHz < 0 || !core.IsFinite(freqHz) {
		return nil, fmt.Errorf("signal: frequency must be >= 0: %f", freqHz)
	}

	return &Oscillator{
		waveform:   w,
		freq:       freqHz,
		amplitude:  amplitude,
		sampleRate: sampleRate,
		noise:      dither.NewUniform(seed),
	}, nil
}

// Waveform returns the oscillator shape.
func (o *Oscillator) Waveform() Waveform { return o.waveform }

// SetFrequency changes the frequency without resetting the phase.
func (o *Oscillator) SetFrequency(freqHz float64) {
	if freqHz >= 0 && core.IsFinite(freqHz) {
		o.freq = freqHz
	}
}

// SetSampleRate changes the sample rate without resetting the phase.
func (o *Oscillator) SetSampleRate(sampleRate float64) {
	if sampleRate > 0 && core.IsFinite(sampleRate) {
		o.sampleRate = sampleRate
	}
}

// Reset returns the phase to zero.
func (o *Oscillator) Reset() { o.phase = 0 }

// Next returns the current sample and advances the phase.
func (o *Oscillator) Next() float64 {
	var v float64

	switch o.waveform {
	case WaveSine:
		v = math.Sin(2 * math.Pi * o.phase)
	case WaveSaw:
		v = 2*o.phase - 1
	case WaveSquare:
		v = 1
		if o.phase >= 0.5 {
			v = -1
		}
	case WaveNoise:
		v = 2*o.noise.Float64() - 1
	}

	o.phase += o.freq / o.sampleRate
	o.phase -= math.Floor(o.phase)

	return o.amplitude * v
}
