package brute

import (
	"math"

	"github.com/cwbudde/brutefilter/dsp/core"
)

const (
	// MinCutoffHz and MaxCutoffHz bound the effective cutoff frequency.
	MinCutoffHz = 20.0
	MaxCutoffHz = 22000.0

	// DampingFactor scales the resonance control twice.
	DampingFactor = 2.5

	baseCutoffHz = 20.0
)

// Knob ranges and defaults.
const (
	MinCutoff     = 0.1
	MaxCutoff     = 2.9
	DefaultCutoff = 2.9

	MinCutoffAmount     = -1.0
	MaxCutoffAmount     = 1.0
	DefaultCutoffAmount = 0.0

	MinResonance     = 0.1
	MaxResonance     = 1.0
	DefaultResonance = 0.1

	MinResonanceAmount     = 0.0
	MaxResonanceAmount     = 1.0
	DefaultResonanceAmount = 0.0

	MinAttAmount     = 0.0
	MaxAttAmount     = 1.0
	DefaultAttAmount = 0.0
)

// Controls holds the five knob values. Range enforcement belongs to the
// host; the modulators accept any finite value.
type Controls struct {
	Cutoff          float64 // exponential cutoff knob, [0.1, 2.9]
	CutoffAmount    float64 // cutoff CV depth, [-1, 1]
	Resonance       float64 // resonance base, [0.1, 1]
	ResonanceAmount float64 // resonance CV depth, [0, 1]
	AttAmount       float64 // attenuator depth, [0, 1]
}

// DefaultControls returns the knob defaults.
func DefaultControls() Controls {
	return Controls{
		Cutoff:          DefaultCutoff,
		CutoffAmount:    DefaultCutoffAmount,
		Resonance:       DefaultResonance,
		ResonanceAmount: DefaultResonanceAmount,
		AttAmount:       DefaultAttAmount,
	}
}

// Inputs holds the per-sample signal and CV inputs.
type Inputs struct {
	Audio       float64
	CutoffCV    float64 // clamped to [-1, 1]
	ResonanceCV float64 // used unclamped
	AttCV       float64 // clamped to [0, 1], only read when AttActive
	AttActive   bool
}

// Curve selects how a modulation depth moves the base cutoff.
type Curve int

const (
	// CurveDownward pulls the cutoff below the base frequency for either
	// sign of modulation: base - depth*base for positive depth and
	// base + depth*base for negative depth.
	CurveDownward Curve = iota
	// CurveSymmetric scales the base frequency by (1 + depth), so positive
	// modulation raises the cutoff and negative modulation lowers it.
	CurveSymmetric
)

func (c Curve) String() string {
	switch c {
	case CurveDownward:
		return "downward"
	case CurveSymmetric:
		return "symmetric"
	default:
		return "unknown"
	}
}

func validCurve(c Curve) bool {
	return c == CurveDownward || c == CurveSymmetric
}

// BaseCutoffHz maps the exponential cutoff knob to 20*10^knob Hz.
func BaseCutoffHz(knob float64) float64 {
	return baseCutoffHz * math.Pow(10, knob)
}

// ModulationDepth returns amount*clamp(cv, -1, 1), scaled by
// attAmount*clamp(attCV, 0, 1) when the attenuator input is active.
func ModulationDepth(amount, cv, attAmount, attCV float64, attActive bool) float64 {
	depth := amount * core.Clamp(cv, -1, 1)

	if attActive {
		depth *= attAmount * core.Clamp(attCV, 0, 1)
	}

	return depth
}

// Remap applies depth to base and clamps the result to
// [MinCutoffHz, MaxCutoffHz]. A depth of exactly zero (or NaN) returns the
// clamped base frequency.
func (c Curve) Remap(base, depth float64) float64 {
	var hz float64

	switch {
	case depth > 0 && c == CurveSymmetric:
		hz = base + depth*base
	case depth > 0:
		hz = base - depth*base
	case depth < 0:
		hz = base + depth*base
	default:
		hz = base
	}

	return core.Clamp(hz, MinCutoffHz, MaxCutoffHz)
}

// CutoffHz returns the effective cutoff frequency in Hz for the given knob
// and CV values using [CurveDownward]. The result is always within
// [MinCutoffHz, MaxCutoffHz].
func CutoffHz(cutoff, amount, cv, attAmount, attCV float64, attActive bool) float64 {
	return CurveDownward.Remap(BaseCutoffHz(cutoff), ModulationDepth(amount, cv, attAmount, attCV, attActive))
}

// Resonance returns (resonance + amount*cv) * DampingFactor². The result is
// not clamped; the peak followers downstream bound its audible effect.
func Resonance(resonance, amount, cv float64) float64 {
	v := resonance + amount*cv

	return v * (DampingFactor * DampingFactor)
}
