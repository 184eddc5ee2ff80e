// Package brutefilter wires the brute multimode filter into the host as the
// "BruteFilter" module.
package brutefilter

import (
	"fmt"

	"github.com/cwbudde/brutefilter/dsp/filter/brute"
	"github.com/cwbudde/brutefilter/host"
)

// Model metadata.
const (
	Slug    = "BruteFilter"
	Name    = "BruteFilter"
	Version = "0.6.0"
	Tag     = "filter"
)

// Parameter ids.
const (
	CutoffParam = iota
	CutoffAmountParam
	ResonanceParam
	ResonanceAmountParam
	AttAmountParam
	NumParams
)

// Input ids.
const (
	AudioInput = iota
	CutoffInput
	ResonanceInput
	AttInput
	NumInputs
)

// Output ids.
const (
	HighpassOutput = iota
	LowpassOutput
	BandpassOutput
	NotchOutput
	NumOutputs
)

// ParamSpecs returns the knob descriptions in id order.
func ParamSpecs() []host.ParamSpec {
	return []host.ParamSpec{
		CutoffParam:          {Name: "Cutoff", Min: brute.MinCutoff, Max: brute.MaxCutoff, Default: brute.DefaultCutoff},
		CutoffAmountParam:    {Name: "Cutoff amount", Min: brute.MinCutoffAmount, Max: brute.MaxCutoffAmount, Default: brute.DefaultCutoffAmount},
		ResonanceParam:       {Name: "Resonance", Min: brute.MinResonance, Max: brute.MaxResonance, Default: brute.DefaultResonance},
		ResonanceAmountParam: {Name: "Resonance amount", Min: brute.MinResonanceAmount, Max: brute.MaxResonanceAmount, Default: brute.DefaultResonanceAmount},
		AttAmountParam:       {Name: "Attenuator", Min: brute.MinAttAmount, Max: brute.MaxAttAmount, Default: brute.DefaultAttAmount},
	}
}

// Module is one BruteFilter instance.
type Module struct {
	unit   *host.Unit
	filter *brute.Filter
}

// New creates a module. Dither is drawn from ctx.Noise when set. Extra
// options are passed to the filter after the host-derived ones.
func New(ctx host.Context, opts ...brute.Option) (*Module, error) {
	unit, err := host.NewUnit(ParamSpecs(), NumInputs, NumOutputs)
	if err != nil {
		return nil, err
	}

	var filterOpts []brute.Option
	if ctx.Noise != nil {
		filterOpts = append(filterOpts, brute.WithNoiseSource(ctx.Noise))
	}

	filterOpts = append(filterOpts, opts...)

	filter, err := brute.New(ctx.SampleRate, filterOpts...)
	if err != nil {
		return nil, fmt.Errorf("brutefilter: %w", err)
	}

	return &Module{unit: unit, filter: filter}, nil
}

// Unit returns the module's parameters and ports.
func (m *Module) Unit() *host.Unit { return m.unit }

// Filter returns the underlying filter.
func (m *Module) Filter() *brute.Filter { return m.filter }

// Controls reads the current knob values.
func (m *Module) Controls() brute.Controls {
	p := m.unit.Params

	return brute.Controls{
		Cutoff:          p[CutoffParam].Value(),
		CutoffAmount:    p[CutoffAmountParam].Value(),
		Resonance:       p[ResonanceParam].Value(),
		ResonanceAmount: p[ResonanceAmountParam].Value(),
		AttAmount:       p[AttAmountParam].Value(),
	}
}

// Process runs one frame and writes all four outputs.
func (m *Module) Process(args host.ProcessArgs) {
	in := m.unit.Inputs
	// The engine only hands out validated rates.
	out := m.filter.ProcessSampleAt(args.SampleRate, m.Controls(), brute.Inputs{
		Audio:       in[AudioInput].Value,
		CutoffCV:    in[CutoffInput].Value,
		ResonanceCV: in[ResonanceInput].Value,
		AttCV:       in[AttInput].Value,
		AttActive:   in[AttInput].Active,
	})

	o := m.unit.Outputs
	o[HighpassOutput].Value = out.Highpass
	o[LowpassOutput].Value = out.Lowpass
	o[BandpassOutput].Value = out.Bandpass
	o[NotchOutput].Value = out.Notch
}

// Model returns the host model for this module.
func Model() host.Model {
	return host.Model{
		Slug:    Slug,
		Name:    Name,
		Version: Version,
		Tags:    []string{Tag},
		New: func(ctx host.Context) (host.Module, error) {
			return New(ctx)
		},
	}
}

// Register adds the BruteFilter model to reg.
func Register(reg *host.Registry) error {
	return reg.Register(Model())
}
