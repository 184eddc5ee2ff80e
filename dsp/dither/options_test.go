package dither

import (
	"math"
	"testing"
)

func TestNewNoiseDefaults(t *testing.T) {
	n, err := NewNoise()
	if err != nil {
		t.Fatalf("NewNoise() error = %v", err)
	}

	if n.DitherType() != DitherRectangular {
		t.Fatalf("DitherType() = %v, want Rectangular", n.DitherType())
	}

	if n.Amplitude() != 0.01 {
		t.Fatalf("Amplitude() = %v, want 0.01", n.Amplitude())
	}

	if _, ok := n.Source().(*Uniform); !ok {
		t.Fatalf("Source() = %T, want *Uniform", n.Source())
	}
}

func TestNewNoiseValidation(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{name: "negative amplitude", opt: WithAmplitude(-0.1)},
		{name: "NaN amplitude", opt: WithAmplitude(math.NaN())},
		{name: "invalid type", opt: WithDitherType(DitherType(42))},
		{name: "nil source", opt: WithSource(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewNoise(tt.opt); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestNilOptionSkipped(t *testing.T) {
	if _, err := NewNoise(nil, WithAmplitude(0)); err != nil {
		t.Fatalf("NewNoise() error = %v", err)
	}
}
