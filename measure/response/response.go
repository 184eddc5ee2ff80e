// Package response measures magnitude responses of impulse responses.
//
// An Analyzer owns one FFT plan and its scratch buffers, so a single
// Analyzer must not be shared between goroutines.
package response

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/brutefilter/dsp/core"
)

// ErrSize is returned for FFT sizes that are not a power of two >= 8.
var ErrSize = errors.New("invalid FFT size")

const (
	minSize = 8
	// floorDB is reported for bins with zero magnitude.
	floorDB = -300.0
)

type forwarder interface {
	Forward(dst, src []complex128) error
}

// Analyzer computes magnitude spectra of real signals.
type Analyzer struct {
	sampleRate float64
	size       int
	plan       forwarder

	in  []complex128
	out []complex128
	re  []float64
	im  []float64
}

// NewAnalyzer creates an analyzer with an FFT of the given size.
func NewAnalyzer(sampleRate float64, size int) (*Analyzer, error) {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return nil, fmt.Errorf("response: sample rate must be > 0 and finite: %f", sampleRate)
	}

	if size < minSize || size&(size-1) != 0 {
		return nil, fmt.Errorf("response: %w: %d", ErrSize, size)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("response: fft plan: %w", err)
	}

	bins := size/2 + 1

	return &Analyzer{
		sampleRate: sampleRate,
		size:       size,
		plan:       plan,
		in:         make([]complex128, size),
		out:        make([]complex128, size),
		re:         make([]float64, bins),
		im:         make([]float64, bins),
	}, nil
}

// Size returns the FFT size.
func (a *Analyzer) Size() int { return a.size }

// Bins returns the number of magnitude bins, Size()/2 + 1.
func (a *Analyzer) Bins() int { return a.size/2 + 1 }

// SampleRate returns the analysis sample rate.
func (a *Analyzer) SampleRate() float64 { return a.sampleRate }

// Magnitude returns |X[k]| for k in [0, Size()/2] of ir, zero padded or
// truncated to the FFT size.
func (a *Analyzer) Magnitude(ir []float64) ([]float64, error) {
	for i := range a.in {
		a.in[i] = complex(core.At(ir, i), 0)
	}

	if err := a.plan.Forward(a.out, a.in); err != nil {
		return nil, fmt.Errorf("response: fft: %w", err)
	}

	for k := range a.re {
		a.re[k] = real(a.out[k])
		a.im[k] = imag(a.out[k])
	}

	mag := make([]float64, a.Bins())
	vecmath.Magnitude(mag, a.re, a.im)

	return mag, nil
}

// MagnitudeDB is Magnitude in decibels. Empty bins read -300 dB.
func (a *Analyzer) MagnitudeDB(ir []float64) ([]float64, error) {
	mag, err := a.Magnitude(ir)
	if err != nil {
		return nil, err
	}

	for k, m := range mag {
		mag[k] = toDB(m)
	}

	return mag, nil
}

// BinFrequency returns the centre frequency of bin k in Hz.
func (a *Analyzer) BinFrequency(k int) float64 {
	return float64(k) * a.sampleRate / float64(a.size)
}

// At returns the value of the bin nearest to hz. Frequencies outside
// [0, Nyquist] map to the edge bins.
func (a *Analyzer) At(spectrum []float64, hz float64) float64 {
	if len(spectrum) == 0 {
		return 0
	}

	k := int(math.Round(hz * float64(a.size) / a.sampleRate))
	k = max(0, min(k, len(spectrum)-1))

	return spectrum[k]
}

// Impulse returns the first n output samples of process driven by a unit
// impulse.
func Impulse(n int, process func(x float64) float64) []float64 {
	out := make([]float64, n)

	for i := range out {
		x := 0.0
		if i == 0 {
			x = 1
		}

		out[i] = process(x)
	}

	return out
}

func toDB(m float64) float64 {
	if m <= 0 || math.IsNaN(m) {
		return floorDB
	}

	return 20 * log10(m)
}
