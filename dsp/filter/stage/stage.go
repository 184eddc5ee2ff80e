package stage

// Splitter is a one-pole stage that splits its input into complementary
// lowpass and highpass components.
type Splitter interface {
	// Reset clears the stage history.
	Reset()
	// SetCutoff sets the cutoff as a ratio of cutoff frequency to sample rate.
	SetCutoff(ratio float64)
	// Process advances the stage by one input sample.
	Process(x float64)
	// Lowpass returns the lowpass component of the last processed sample.
	Lowpass() float64
	// Highpass returns the highpass component of the last processed sample.
	Highpass() float64
}

// Follower tracks a control value and exposes a decaying peak reading.
type Follower interface {
	// Reset clears the tracked peak.
	Reset()
	// SetRate sets the per-sample decay rate.
	SetRate(rate float64)
	// Process advances the follower by one control sample.
	Process(x float64)
	// Peak returns the current peak reading.
	Peak() float64
}

var (
	_ Splitter = (*RC)(nil)
	_ Follower = (*Peak)(nil)
)
