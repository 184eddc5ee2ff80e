// Package brute implements a four-output multimode filter: lowpass,
// highpass, bandpass and notch, each shaped by a modulatable cutoff and a
// modulatable resonance envelope.
//
// Signal flow for one sample:
//
//	in + dither ─► A ──lp──► B ──lp──► lowpass
//	               │         └──hp──► bandpass
//	               └──hp──► C ──hp──► highpass
//	notch signal = buffer - bandpass
//
// A, B and C are one-pole RC splitters sharing one cutoff ratio. Four peak
// followers track the modulated resonance value at a rate of 1/cutoffHz;
// each output is its filtered signal multiplied by its follower's peak. The
// notch output is multiplied by the bandpass signal, not by the algebraic
// notch signal (see Taps).
//
// The cutoff knob is exponential: 20*10^knob Hz. CV modulation is clamped to
// [-1, 1], optionally scaled by an attenuator, and remapped by a Curve. The
// effective cutoff is always kept within [20, 22000] Hz before it reaches a
// stage.
//
// ProcessSample and ProcessSampleAt are allocation free and have no error
// path, so they can run inside a host's real-time callback. The sample rate
// must be > 0; this is checked by New and SetSampleRate only.
package brute
