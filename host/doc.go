// Package host is a minimal modular-synth host: it stores module parameters,
// carries per-frame port values, keeps a registry of module models and steps
// every instantiated module once per audio frame.
//
// Parameters are safe to write from any goroutine (UI, MIDI). Ports, module
// processing and Engine.Step belong to the single audio goroutine, except
// Engine.SetSampleRate which may be called from anywhere and takes effect on
// the next Step.
package host
