package host

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/cwbudde/brutefilter/dsp/core"
)

// ParamSpec describes one knob.
type ParamSpec struct {
	Name    string
	Unit    string
	Min     float64
	Max     float64
	Default float64
}

// Validate checks the range and the default.
func (s ParamSpec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("host: empty parameter name")
	}

	if !core.IsFinite(s.Min) || !core.IsFinite(s.Max) || s.Min > s.Max {
		return fmt.Errorf("host: parameter %q: invalid range [%f, %f]", s.Name, s.Min, s.Max)
	}

	if s.Default < s.Min || s.Default > s.Max || math.IsNaN(s.Default) {
		return fmt.Errorf("host: parameter %q: default %f outside [%f, %f]", s.Name, s.Default, s.Min, s.Max)
	}

	return nil
}

// Param is a knob value. The value is stored as float64 bits so that writers
// on control goroutines never tear a read on the audio goroutine.
type Param struct {
	spec ParamSpec
	bits atomic.Uint64
}

// NewParam returns a parameter set to its default.
func NewParam(spec ParamSpec) (*Param, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	p := &Param{spec: spec}
	p.bits.Store(math.Float64bits(spec.Default))

	return p, nil
}

// Spec returns the parameter description.
func (p *Param) Spec() ParamSpec { return p.spec }

// Value returns the current value.
func (p *Param) Value() float64 {
	return math.Float64frombits(p.bits.Load())
}

// SetValue stores v clamped to the parameter range. NaN is ignored.
func (p *Param) SetValue(v float64) {
	if math.IsNaN(v) {
		return
	}

	p.bits.Store(math.Float64bits(core.Clamp(v, p.spec.Min, p.spec.Max)))
}

// SetNormalized maps n in [0, 1] linearly onto the parameter range.
func (p *Param) SetNormalized(n float64) {
	p.SetValue(p.spec.Min + core.Clamp(n, 0, 1)*(p.spec.Max-p.spec.Min))
}

// Normalized returns the value mapped onto [0, 1].
func (p *Param) Normalized() float64 {
	span := p.spec.Max - p.spec.Min
	if span == 0 {
		return 0
	}

	return (p.Value() - p.spec.Min) / span
}

// Reset restores the default.
func (p *Param) Reset() {
	p.bits.Store(math.Float64bits(p.spec.Default))
}
