package brute

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/brutefilter/dsp/core"
)

// Block holds per-sample input slices for ProcessBlock. Audio sets the block
// length. A nil or short CV slice reads as 0 V; a nil AttCV marks the
// attenuator input as disconnected.
type Block struct {
	Audio       []float64
	CutoffCV    []float64
	ResonanceCV []float64
	AttCV       []float64
}

// BlockOutputs receives the four output signals. Each slice must be at
// least as long as the input block.
type BlockOutputs struct {
	Lowpass  []float64
	Highpass []float64
	Bandpass []float64
	Notch    []float64
}

// ProcessBlock runs the filter over a block with fixed controls. The output
// is identical to calling ProcessSample once per frame.
func (f *Filter) ProcessBlock(c Controls, in Block, out BlockOutputs) {
	n := len(in.Audio)
	if n == 0 {
		return
	}

	_ = out.Lowpass[n-1]
	_ = out.Highpass[n-1]
	_ = out.Bandpass[n-1]
	_ = out.Notch[n-1]

	f.peaks = core.EnsureLen(f.peaks, 4*n)
	lowPeak := f.peaks[:n]
	highPeak := f.peaks[n : 2*n]
	bandPeak := f.peaks[2*n : 3*n]
	notchPeak := f.peaks[3*n : 4*n]

	attActive := in.AttCV != nil

	for i, x := range in.Audio {
		t := f.step(c, Inputs{
			Audio:       x,
			CutoffCV:    core.At(in.CutoffCV, i),
			ResonanceCV: core.At(in.ResonanceCV, i),
			AttCV:       core.At(in.AttCV, i),
			AttActive:   attActive,
		})

		out.Lowpass[i] = t.SecondLowpass
		out.Highpass[i] = t.SecondHighpass
		out.Bandpass[i] = t.Bandpass
		out.Notch[i] = t.Bandpass

		lowPeak[i] = t.LowpassPeak
		highPeak[i] = t.HighpassPeak
		bandPeak[i] = t.BandpassPeak
		notchPeak[i] = t.NotchPeak
	}

	vecmath.MulBlockInPlace(out.Lowpass[:n], lowPeak)
	vecmath.MulBlockInPlace(out.Highpass[:n], highPeak)
	vecmath.MulBlockInPlace(out.Bandpass[:n], bandPeak)
	vecmath.MulBlockInPlace(out.Notch[:n], notchPeak)
}
