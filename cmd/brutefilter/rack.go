package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/cwbudde/brutefilter/dsp/dither"
	"github.com/cwbudde/brutefilter/dsp/signal"
	"github.com/cwbudde/brutefilter/host"
	"github.com/cwbudde/brutefilter/modules/brutefilter"
)

var outputNames = [brutefilter.NumOutputs]string{
	brutefilter.HighpassOutput: "highpass",
	brutefilter.LowpassOutput:  "lowpass",
	brutefilter.BandpassOutput: "bandpass",
	brutefilter.NotchOutput:    "notch",
}

func parseOutput(name string) (int, error) {
	for id, n := range outputNames {
		if strings.EqualFold(name, n) {
			return id, nil
		}
	}
	return 0, fmt.Errorf("unknown output %q (want %s)", name, strings.Join(outputNames[:], ", "))
}

// knobs mirrors the module parameters as command line flags.
type knobs [brutefilter.NumParams]float64

var knobFlags = [brutefilter.NumParams]string{
	brutefilter.CutoffParam:          "cutoff",
	brutefilter.CutoffAmountParam:    "cutoff-amount",
	brutefilter.ResonanceParam:       "resonance",
	brutefilter.ResonanceAmountParam: "resonance-amount",
	brutefilter.AttAmountParam:       "att-amount",
}

func (k *knobs) bind(fs *flag.FlagSet) {
	for id, spec := range brutefilter.ParamSpecs() {
		fs.Float64Var(&k[id], knobFlags[id], spec.Default,
			fmt.Sprintf("%s knob [%g, %g]", strings.ToLower(spec.Name), spec.Min, spec.Max))
	}
}

func (k *knobs) apply(u *host.Unit) {
	for id, v := range k {
		u.Param(id).SetValue(v)
	}
}

// modulation configures the LFOs patched into the CV inputs. A zero rate
// leaves the input disconnected.
type modulation struct {
	cutoffHz float64
	attHz    float64
}

func (m *modulation) bind(fs *flag.FlagSet) {
	fs.Float64Var(&m.cutoffHz, "lfo", 0, "sine LFO rate in Hz patched into the cutoff CV input (0 = unpatched)")
	fs.Float64Var(&m.attHz, "att-lfo", 0, "unipolar LFO rate in Hz patched into the attenuator input (0 = unpatched)")
}

type rackConfig struct {
	sampleRate float64
	seed       uint64
	blockSize  int
	knobs      knobs
	mod        modulation
	noise      dither.Source
}

// rack is one engine with a single BruteFilter module and its LFOs.
type rack struct {
	engine    *host.Engine
	unit      *host.Unit
	cutoffLFO *signal.Oscillator
	attLFO    *signal.Oscillator
	out       [brutefilter.NumOutputs]float64
}

func newRack(cfg rackConfig) (*rack, error) {
	reg, err := newRegistry()
	if err != nil {
		return nil, err
	}

	opts := []host.Option{host.WithSampleRate(cfg.sampleRate), host.WithSeed(cfg.seed)}
	if cfg.noise != nil {
		opts = append(opts, host.WithNoiseSource(cfg.noise))
	}
	if cfg.blockSize > 0 {
		opts = append(opts, host.WithBlockSize(cfg.blockSize))
	}

	engine, err := host.NewEngine(reg, opts...)
	if err != nil {
		return nil, err
	}

	m, err := engine.AddModule(brutefilter.Slug)
	if err != nil {
		return nil, err
	}

	r := &rack{engine: engine, unit: m.Unit()}
	cfg.knobs.apply(r.unit)

	if cfg.mod.cutoffHz > 0 {
		r.cutoffLFO, err = signal.NewOscillator(signal.WaveSine, cfg.mod.cutoffHz, 1, cfg.sampleRate, cfg.seed)
		if err != nil {
			return nil, err
		}
	}

	if cfg.mod.attHz > 0 {
		r.attLFO, err = signal.NewOscillator(signal.WaveSine, cfg.mod.attHz, 0.5, cfg.sampleRate, cfg.seed)
		if err != nil {
			return nil, err
		}
	}

	return r, nil
}

// step feeds one audio sample through the rack and returns the four outputs
// indexed by output id.
func (r *rack) step(audio float64) [brutefilter.NumOutputs]float64 {
	r.unit.Input(brutefilter.AudioInput).Set(audio)

	if r.cutoffLFO != nil {
		r.unit.Input(brutefilter.CutoffInput).Set(r.cutoffLFO.Next())
	}

	if r.attLFO != nil {
		r.unit.Input(brutefilter.AttInput).Set(0.5 + r.attLFO.Next())
	}

	r.engine.Step()

	for id := range r.out {
		r.out[id] = r.unit.Output(id).Value
	}
	return r.out
}
