package dither

import "math/rand/v2"

// Source yields uniformly distributed values in [0, 1).
//
// Implementations used on an audio goroutine must not block or allocate.
type Source interface {
	Float64() float64
}

// Uniform is a PCG-backed Source. It is not safe for concurrent use; each
// processing instance owns its own Uniform.
type Uniform struct {
	rng *rand.Rand
}

// NewUniform returns a deterministic uniform source for seed.
func NewUniform(seed uint64) *Uniform {
	return &Uniform{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Float64 returns the next value in [0, 1).
func (u *Uniform) Float64() float64 {
	return u.rng.Float64()
}

// Constant is a Source that always returns the same value. Constant(0.5)
// makes rectangular and triangular dither exactly zero, which is useful for
// reproducible measurements.
type Constant float64

// Float64 returns c.
func (c Constant) Float64() float64 {
	return float64(c)
}
