package main

import (
	"context"
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"time"

	"github.com/cwbudde/brutefilter/dsp/core"
	dspsignal "github.com/cwbudde/brutefilter/dsp/signal"
)

const bytesPerSample = 4

// streamReader renders one rack output as mono float32 little-endian PCM.
// Read runs on the audio device goroutine.
type streamReader struct {
	rack   *rack
	osc    *dspsignal.Oscillator
	output int
	gain   float64
}

func (s *streamReader) Read(p []byte) (int, error) {
	n := len(p) / bytesPerSample
	for i := range n {
		out := s.rack.step(s.osc.Next())
		v := float32(core.Clamp(s.gain*out[s.output], -1, 1))
		binary.LittleEndian.PutUint32(p[i*bytesPerSample:], math.Float32bits(v))
	}
	return n * bytesPerSample, nil
}

func runPlay(args []string, stdout, stderr io.Writer) error {
	var (
		k        knobs
		mod      modulation
		output   string
		source   string
		freq     float64
		rate     int
		gain     float64
		duration float64
		seed     uint64
		block    int
		midi     bool
	)

	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&output, "output", "lowpass", "output to play: highpass, lowpass, bandpass, notch")
	fs.StringVar(&source, "source", "saw", "oscillator source: sine, saw, square, noise")
	fs.Float64Var(&freq, "freq", 110, "oscillator frequency in Hz")
	fs.IntVar(&rate, "rate", 48000, "device sample rate in Hz")
	fs.Float64Var(&gain, "gain", 0.5, "output gain")
	fs.Float64Var(&duration, "duration", 0, "seconds to play (0 = until interrupted)")
	fs.Uint64Var(&seed, "seed", 1, "seed for dither and noise")
	fs.IntVar(&block, "block", 512, "device buffer size in frames")
	fs.BoolVar(&midi, "midi", false, "map MIDI CC 74/71/1/2/7 from the default input to the knobs")
	k.bind(fs)
	mod.bind(fs)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: brutefilter play [flags]\n\n")
		fmt.Fprintf(stderr, "MIDI CC map: 74 cutoff, 71 resonance, 1 cutoff amount, 2 resonance amount, 7 attenuator.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	outputID, err := parseOutput(output)
	if err != nil {
		return err
	}

	w, err := dspsignal.ParseWaveform(source)
	if err != nil {
		return err
	}

	osc, err := dspsignal.NewOscillator(w, freq, 0.8, float64(rate), seed)
	if err != nil {
		return err
	}

	r, err := newRack(rackConfig{sampleRate: float64(rate), seed: seed, blockSize: block, knobs: k, mod: mod})
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if duration > 0 {
		var cancelTimeout context.CancelFunc
		ctx, cancelTimeout = context.WithTimeout(ctx, time.Duration(duration*float64(time.Second)))
		defer cancelTimeout()
	}

	return playLive(ctx, liveOptions{
		rate:   rate,
		midi:   midi,
		rack:   r,
		stream: &streamReader{rack: r, osc: osc, output: outputID, gain: gain},
		banner: fmt.Sprintf("playing %s output of a %s source at %d Hz, Ctrl-C to stop", outputNames[outputID], w, rate),
	}, stdout, stderr)
}

// liveOptions is what a live backend needs to run one playback session.
type liveOptions struct {
	rate   int
	midi   bool
	rack   *rack
	stream io.Reader
	banner string
}
