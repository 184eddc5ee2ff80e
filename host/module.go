package host

import "github.com/cwbudde/brutefilter/dsp/dither"

// ProcessArgs is passed to every module once per frame.
type ProcessArgs struct {
	SampleRate float64
	SampleTime float64
	Frame      int64
}

// Context carries host services to a module factory.
type Context struct {
	SampleRate float64
	// Noise is the host random service. Modules draw from it on the audio
	// goroutine only.
	Noise dither.Source
}

// Module is one instantiated module.
type Module interface {
	Unit() *Unit
	Process(args ProcessArgs)
}

// Factory builds one module instance.
type Factory func(ctx Context) (Module, error)
