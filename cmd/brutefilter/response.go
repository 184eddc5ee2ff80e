package main

import (
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/brutefilter/dsp/dither"
	"github.com/cwbudde/brutefilter/measure/response"
)

func runResponse(args []string, stdout, stderr io.Writer) error {
	var (
		k    knobs
		rate float64
		size int
	)

	fs := flag.NewFlagSet("response", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Float64Var(&rate, "rate", 44100, "sample rate in Hz")
	fs.IntVar(&size, "size", 8192, "FFT size (power of two)")
	k.bind(fs)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: brutefilter response [flags]\n\n")
		fmt.Fprintf(stderr, "Prints output magnitudes in dB at octave frequencies, dither disabled.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := response.NewAnalyzer(rate, size)
	if err != nil {
		return err
	}

	spectra, err := measure(a, k)
	if err != nil {
		return err
	}

	return printResponse(stdout, a, spectra)
}

// measure captures the impulse response of every output with zero dither
// and returns their dB spectra indexed by output id.
func measure(a *response.Analyzer, k knobs) ([][]float64, error) {
	spectra := make([][]float64, len(outputNames))

	for id := range outputNames {
		r, err := newRack(rackConfig{
			sampleRate: a.SampleRate(),
			knobs:      k,
			noise:      dither.Constant(0.5),
		})
		if err != nil {
			return nil, err
		}

		ir := response.Impulse(a.Size(), func(x float64) float64 {
			return r.step(x)[id]
		})

		spectra[id], err = a.MagnitudeDB(ir)
		if err != nil {
			return nil, err
		}
	}

	return spectra, nil
}

func octaveFrequencies(sampleRate float64) []float64 {
	var out []float64
	for hz := 31.25; hz < sampleRate/2; hz *= 2 {
		out = append(out, hz)
	}
	return out
}

func printResponse(w io.Writer, a *response.Analyzer, spectra [][]float64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Hz\t")
	for _, name := range outputNames {
		fmt.Fprintf(tw, "%s [dB]\t", name)
	}
	fmt.Fprintln(tw)

	for _, hz := range octaveFrequencies(a.SampleRate()) {
		fmt.Fprintf(tw, "%.0f\t", hz)
		for id := range outputNames {
			fmt.Fprintf(tw, "%.1f\t", a.At(spectra[id], hz))
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}
