package dither

// Noise produces one dither value per call from a uniform [Source].
type Noise struct {
	ditherType DitherType
	amplitude  float64
	source     Source
}

// NewNoise creates a dither noise generator. The default configuration is
// rectangular dither with amplitude 0.01 drawn from a seeded [Uniform].
func NewNoise(opts ...Option) (*Noise, error) {
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

	src := cfg.source
	if src == nil {
		src = NewUniform(cfg.seed)
	}

	return &Noise{
		ditherType: cfg.ditherType,
		amplitude:  cfg.amplitude,
		source:     src,
	}, nil
}

// DitherType returns the configured PDF.
func (n *Noise) DitherType() DitherType { return n.ditherType }

// Amplitude returns the peak noise amplitude.
func (n *Noise) Amplitude() float64 { return n.amplitude }

// Source returns the uniform source noise is drawn from.
func (n *Noise) Source() Source { return n.source }

// Next returns the next noise value in [-amplitude, amplitude).
// DitherNone returns 0 without consuming the source.
func (n *Noise) Next() float64 {
	switch n.ditherType {
	case DitherRectangular:
		return n.amplitude * (2*n.source.Float64() - 1)
	case DitherTriangular:
		u1 := n.source.Float64()
		u2 := n.source.Float64()

		return n.amplitude * (u1 - u2)
	default:
		return 0
	}
}

// Apply returns x with one fresh noise value added.
func (n *Noise) Apply(x float64) float64 {
	return x + n.Next()
}
