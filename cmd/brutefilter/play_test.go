package main

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/cwbudde/brutefilter/dsp/dither"
	"github.com/cwbudde/brutefilter/dsp/signal"
	"github.com/cwbudde/brutefilter/modules/brutefilter"
)

func TestStreamReader(t *testing.T) {
	var k knobs
	for id, spec := range brutefilter.ParamSpecs() {
		k[id] = spec.Default
	}
	k[brutefilter.ResonanceParam] = 1

	r, err := newRack(rackConfig{sampleRate: 48000, blockSize: 64, knobs: k, noise: dither.Constant(0.5)})
	if err != nil {
		t.Fatalf("newRack() error = %v", err)
	}

	if got := r.engine.BlockSize(); got != 64 {
		t.Fatalf("BlockSize() = %d, want 64", got)
	}

	osc, err := signal.NewOscillator(signal.WaveSquare, 100, 1, 48000, 1)
	if err != nil {
		t.Fatalf("NewOscillator() error = %v", err)
	}

	s := &streamReader{rack: r, osc: osc, output: brutefilter.LowpassOutput, gain: 1}

	buf := make([]byte, 4*256+3)
	n, err := s.Read(buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if n != 4*256 {
		t.Fatalf("Read() = %d bytes, want %d", n, 4*256)
	}

	clipped := 0
	for i := 0; i < n; i += 4 {
		v := math.Float32frombits(binary.LittleEndian.Uint32(buf[i:]))
		if v < -1 || v > 1 {
			t.Fatalf("sample %d = %v outside [-1, 1]", i/4, v)
		}
		if v == 1 || v == -1 {
			clipped++
		}
	}

	// resonance 1 gives a gain of 6.25, so a full-scale square clips
	if clipped == 0 {
		t.Fatal("expected clipped samples at resonance 1")
	}
}
