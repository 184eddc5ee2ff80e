package stage

import (
	"fmt"

	"github.com/cwbudde/brutefilter/dsp/core"
)

// Peak is a decaying peak follower.
//
// SetRate(r) sets the per-sample retention c = 1 - r. Each Process call
// raises the state to the input when the input is larger and then scales the
// state by c, so a constant input x settles at x*c immediately.
type Peak struct {
	c     float64
	state float64
}

// NewPeak returns a follower with the given rate and zero state.
func NewPeak(rate float64) *Peak {
	p := &Peak{}
	p.SetRate(rate)

	return p
}

// Reset clears the tracked peak.
func (p *Peak) Reset() {
	p.state = 0
}

// SetRate sets the decay rate. The state falls to 1/e after about 1/rate
// samples without new peaks.
func (p *Peak) SetRate(rate float64) {
	p.c = 1 - rate
}

// Process advances the follower by one control sample.
func (p *Peak) Process(x float64) {
	if x > p.state {
		p.state = x
	}

	p.state = core.FlushDenormals(p.state * p.c)
}

// Peak returns the current peak reading.
func (p *Peak) Peak() float64 { return p.state }

// State returns the tracked value.
func (p *Peak) State() float64 { return p.state }

// SetState restores a previously saved value.
func (p *Peak) SetState(v float64) error {
	if !core.IsFinite(v) {
		return fmt.Errorf("stage: peak state is NaN or Inf")
	}

	p.state = v

	return nil
}
