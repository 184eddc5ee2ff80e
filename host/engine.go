package host

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/cwbudde/brutefilter/dsp/core"
	"github.com/cwbudde/brutefilter/dsp/dither"
)

// Option mutates engine configuration.
type Option func(*config) error

type config struct {
	core.ProcessorConfig
	noise dither.Source
	seed  uint64
}

func defaultConfig() config {
	return config{
		ProcessorConfig: core.DefaultProcessorConfig(),
		seed:            1,
	}
}

// WithSampleRate sets the initial sample rate (default 44100).
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *config) error {
		if err := validateSampleRate(sampleRate); err != nil {
			return err
		}

		cfg.SampleRate = sampleRate

		return nil
	}
}

// WithBlockSize sets the frame count hosts use when running the engine in
// blocks (default 256).
func WithBlockSize(blockSize int) Option {
	return func(cfg *config) error {
		if blockSize <= 0 {
			return fmt.Errorf("host: block size must be > 0: %d", blockSize)
		}

		cfg.BlockSize = blockSize

		return nil
	}
}

// WithNoiseSource replaces the engine's random service.
func WithNoiseSource(src dither.Source) Option {
	return func(cfg *config) error {
		if src == nil {
			return fmt.Errorf("host: nil noise source")
		}

		cfg.noise = src

		return nil
	}
}

// WithSeed seeds the engine's default random service.
func WithSeed(seed uint64) Option {
	return func(cfg *config) error {
		cfg.seed = seed
		return nil
	}
}

// Engine owns module instances and steps them one frame at a time.
type Engine struct {
	registry  *Registry
	noise     dither.Source
	blockSize int

	sampleRate atomic.Uint64
	modules    []Module
	frame      int64
}

// NewEngine creates an engine backed by reg.
func NewEngine(reg *Registry, opts ...Option) (*Engine, error) {
	if reg == nil {
		return nil, fmt.Errorf("host: nil registry")
	}

	cfg := defaultConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		err := opt(&cfg)
		if err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("host: %w", err)
	}

	if cfg.noise == nil {
		cfg.noise = dither.NewUniform(cfg.seed)
	}

	e := &Engine{
		registry:  reg,
		noise:     cfg.noise,
		blockSize: cfg.BlockSize,
	}
	e.sampleRate.Store(math.Float64bits(cfg.SampleRate))

	return e, nil
}

// AddModule instantiates the model registered under slug. Call it from the
// audio goroutine or before audio starts.
func (e *Engine) AddModule(slug string) (Module, error) {
	model, err := e.registry.Lookup(slug)
	if err != nil {
		return nil, err
	}

	m, err := model.New(Context{SampleRate: e.SampleRate(), Noise: e.noise})
	if err != nil {
		return nil, fmt.Errorf("host: model %s: %w", slug, err)
	}

	e.modules = append(e.modules, m)

	return m, nil
}

// Modules returns the instantiated modules in creation order.
func (e *Engine) Modules() []Module { return e.modules }

// SampleRate returns the current sample rate.
func (e *Engine) SampleRate() float64 {
	return math.Float64frombits(e.sampleRate.Load())
}

// SetSampleRate changes the sample rate from any goroutine. Modules see the
// new rate on the next Step.
func (e *Engine) SetSampleRate(sampleRate float64) error {
	if err := validateSampleRate(sampleRate); err != nil {
		return err
	}

	e.sampleRate.Store(math.Float64bits(sampleRate))

	return nil
}

// BlockSize returns the configured block size.
func (e *Engine) BlockSize() int { return e.blockSize }

// Frame returns the number of frames stepped so far.
func (e *Engine) Frame() int64 { return e.frame }

// Step processes one frame for every module.
func (e *Engine) Step() {
	sr := e.SampleRate()
	args := ProcessArgs{SampleRate: sr, SampleTime: 1 / sr, Frame: e.frame}

	for _, m := range e.modules {
		m.Process(args)
	}

	e.frame++
}

func validateSampleRate(sampleRate float64) error {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return fmt.Errorf("host: sample rate must be > 0 and finite: %f", sampleRate)
	}

	return nil
}
