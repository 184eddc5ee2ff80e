package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/cwbudde/brutefilter/dsp/core"
	"github.com/cwbudde/brutefilter/dsp/signal"
)

type renderOptions struct {
	in        string
	outDir    string
	duration  float64
	source    string
	freq      float64
	amplitude float64
	rate      int
	seed      uint64
	peak      float64
	knobs     knobs
	mod       modulation
}

func runRender(args []string, stdout, stderr io.Writer) error {
	var opts renderOptions

	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.in, "in", "", "input WAV file (default: oscillator source)")
	fs.StringVar(&opts.outDir, "out", ".", "output directory")
	fs.Float64Var(&opts.duration, "duration", 2, "oscillator duration in seconds")
	fs.StringVar(&opts.source, "source", "saw", "oscillator source: sine, saw, square, noise")
	fs.Float64Var(&opts.freq, "freq", 110, "oscillator frequency in Hz")
	fs.Float64Var(&opts.amplitude, "amp", 0.8, "oscillator amplitude")
	fs.IntVar(&opts.rate, "rate", 44100, "oscillator sample rate in Hz")
	fs.Uint64Var(&opts.seed, "seed", 1, "seed for dither and noise")
	fs.Float64Var(&opts.peak, "normalize", 0.9, "normalize each output to this peak (0 = raw)")
	opts.knobs.bind(fs)
	opts.mod.bind(fs)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: brutefilter render [flags]\n\n")
		fmt.Fprintf(stderr, "Writes highpass.wav, lowpass.wav, bandpass.wav and notch.wav.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	input, rate, err := loadInput(opts)
	if err != nil {
		return err
	}

	outputs, err := render(input, float64(rate), opts)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return err
	}

	for id, data := range outputs {
		path := filepath.Join(opts.outDir, outputNames[id]+".wav")
		if err := writeWAV(path, data, rate); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "wrote %s (%d samples, peak %.1f dBFS)\n", path, len(data), core.LinearToDB(peakAbs(data)))
	}

	return nil
}

func loadInput(opts renderOptions) ([]float64, int, error) {
	if opts.in != "" {
		data, rate, err := readWAV(opts.in)
		if err != nil {
			return nil, 0, err
		}
		if len(data) == 0 {
			return nil, 0, fmt.Errorf("%s contains no samples", opts.in)
		}
		return data, rate, nil
	}

	if opts.rate <= 0 {
		return nil, 0, fmt.Errorf("sample rate must be > 0: %d", opts.rate)
	}

	w, err := signal.ParseWaveform(opts.source)
	if err != nil {
		return nil, 0, err
	}

	g := signal.NewGeneratorWithOptions(
		[]core.ProcessorOption{core.WithSampleRate(float64(opts.rate))},
		signal.WithSeed(opts.seed),
	)

	samples := int(math.Round(opts.duration * float64(opts.rate)))
	data, err := g.Wave(w, opts.freq, opts.amplitude, samples)
	if err != nil {
		return nil, 0, err
	}

	return data, opts.rate, nil
}

// render runs input through a fresh rack and returns the outputs indexed by
// output id.
func render(input []float64, sampleRate float64, opts renderOptions) ([][]float64, error) {
	r, err := newRack(rackConfig{
		sampleRate: sampleRate,
		seed:       opts.seed,
		knobs:      opts.knobs,
		mod:        opts.mod,
	})
	if err != nil {
		return nil, err
	}

	outputs := make([][]float64, len(outputNames))
	for id := range outputs {
		outputs[id] = make([]float64, len(input))
	}

	for i, x := range input {
		out := r.step(x)
		for id, v := range out {
			outputs[id][i] = v
		}
	}

	if opts.peak > 0 {
		for id, data := range outputs {
			outputs[id], err = signal.Normalize(data, opts.peak)
			if err != nil {
				return nil, err
			}
		}
	}

	return outputs, nil
}

func peakAbs(data []float64) float64 {
	p := 0.0
	for _, v := range data {
		p = max(p, math.Abs(v))
	}
	return p
}
