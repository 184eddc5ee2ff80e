package dither

import (
	"math"
	"testing"
)

type sequence struct {
	values []float64
	pos    int
}

func (s *sequence) Float64() float64 {
	v := s.values[s.pos%len(s.values)]
	s.pos++

	return v
}

func TestRectangularMapping(t *testing.T) {
	src := &sequence{values: []float64{0, 0.25, 0.5, 0.75}}

	n, err := NewNoise(WithSource(src), WithAmplitude(0.01))
	if err != nil {
		t.Fatalf("NewNoise() error = %v", err)
	}

	want := []float64{-0.01, -0.005, 0, 0.005}
	for i, w := range want {
		if got := n.Next(); math.Abs(got-w) > 1e-15 {
			t.Fatalf("Next() #%d = %v, want %v", i, got, w)
		}
	}
}

func TestTriangularUsesTwoDraws(t *testing.T) {
	src := &sequence{values: []float64{0.75, 0.25}}

	n, err := NewNoise(WithSource(src), WithDitherType(DitherTriangular), WithAmplitude(1))
	if err != nil {
		t.Fatalf("NewNoise() error = %v", err)
	}

	if got := n.Next(); got != 0.5 {
		t.Fatalf("Next() = %v, want 0.5", got)
	}

	if src.pos != 2 {
		t.Fatalf("draws = %d, want 2", src.pos)
	}
}

func TestNoneDoesNotConsume(t *testing.T) {
	src := &sequence{values: []float64{0.9}}

	n, err := NewNoise(WithSource(src), WithDitherType(DitherNone))
	if err != nil {
		t.Fatalf("NewNoise() error = %v", err)
	}

	if got := n.Apply(0.3); got != 0.3 {
		t.Fatalf("Apply() = %v, want 0.3", got)
	}

	if src.pos != 0 {
		t.Fatalf("draws = %d, want 0", src.pos)
	}
}

func TestUniformRangeAndDeterminism(t *testing.T) {
	a := NewUniform(7)
	b := NewUniform(7)

	for i := range 4096 {
		x := a.Float64()
		if x < 0 || x >= 1 {
			t.Fatalf("sample %d = %v outside [0,1)", i, x)
		}

		if y := b.Float64(); x != y {
			t.Fatalf("sample %d: %v != %v for equal seeds", i, x, y)
		}
	}
}

func TestRectangularBounds(t *testing.T) {
	n, err := NewNoise(WithSeed(3), WithAmplitude(0.01))
	if err != nil {
		t.Fatalf("NewNoise() error = %v", err)
	}

	sum := 0.0
	for i := range 20000 {
		v := n.Next()
		if v < -0.01 || v >= 0.01 {
			t.Fatalf("sample %d = %v outside [-0.01, 0.01)", i, v)
		}

		sum += v
	}

	if mean := sum / 20000; math.Abs(mean) > 5e-4 {
		t.Fatalf("mean = %v, want ~0", mean)
	}
}

func BenchmarkNoiseNext(b *testing.B) {
	n, err := NewNoise()
	if err != nil {
		b.Fatalf("NewNoise() error = %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		_ = n.Next()
	}
}
