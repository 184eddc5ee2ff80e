package stage

import (
	"fmt"
	"math"

	"github.com/cwbudde/brutefilter/dsp/core"
)

// RCState is the history of an [RC] stage: the last input and the last
// lowpass output.
type RCState struct {
	X float64
	Y float64
}

// RC is a bilinear one-pole RC filter stage.
//
// With r = fc/fs the stage computes
//
//	c = 2/r
//	y = (x + x[n-1] - y[n-1]*(1-c)) / (1+c)
//
// The lowpass reading is y and the highpass reading is x - y, so the two
// always sum to the last input.
//
// fc is not the -3 dB point. The analog corner of this bilinear form is
// r*fs/(2*pi), the RCFilter convention, and the digital corner is
// fs*atan(r/2)/pi; see [RCCorner].
type RC struct {
	c     float64
	state RCState
}

// NewRC returns a stage with the given cutoff ratio and zero history.
func NewRC(ratio float64) *RC {
	r := &RC{}
	r.SetCutoff(ratio)

	return r
}

// Reset clears the stage history.
func (r *RC) Reset() {
	r.state = RCState{}
}

// SetCutoff sets the cutoff ratio fc/fs. The -3 dB corner lands near
// fc/(2*pi). The ratio must be > 0; callers clamp the cutoff frequency
// upstream so this holds on the audio path.
func (r *RC) SetCutoff(ratio float64) {
	r.c = 2 / ratio
}

// RCCorner returns the -3 dB frequency of an RC stage with cutoff ratio
// ratio, as a fraction of the sample rate.
func RCCorner(ratio float64) float64 {
	return math.Atan(ratio/2) / math.Pi
}

// RCResponse returns the steady-state lowpass and highpass gains of an RC
// stage with cutoff ratio ratio at normalized frequency f = hz/fs.
func RCResponse(ratio, f float64) (lowpass, highpass float64) {
	g := 2 * math.Tan(math.Pi*f) / ratio
	d := math.Sqrt(1 + g*g)

	return 1 / d, g / d
}

// Process advances the stage by one sample.
func (r *RC) Process(x float64) {
	y := (x + r.state.X - r.state.Y*(1-r.c)) / (1 + r.c)
	r.state.X = x
	r.state.Y = core.FlushDenormals(y)
}

// Lowpass returns the lowpass component of the last sample.
func (r *RC) Lowpass() float64 { return r.state.Y }

// Highpass returns the highpass component of the last sample.
func (r *RC) Highpass() float64 { return r.state.X - r.state.Y }

// State returns a copy of the stage history.
func (r *RC) State() RCState { return r.state }

// SetState restores a previously saved history.
func (r *RC) SetState(s RCState) error {
	if !core.IsFinite(s.X) || !core.IsFinite(s.Y) {
		return fmt.Errorf("stage: RC state contains NaN or Inf")
	}

	r.state = s

	return nil
}
