package main

import (
	"bytes"
	"flag"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/brutefilter/dsp/filter/brute"
	"github.com/cwbudde/brutefilter/host"
	"github.com/cwbudde/brutefilter/modules/brutefilter"
)

func TestRunDispatch(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{name: "no args", args: nil, want: 1},
		{name: "help", args: []string{"help"}, want: 0},
		{name: "unknown", args: []string{"bogus"}, want: 1},
		{name: "command help", args: []string{"response", "-h"}, want: 0},
		{name: "bad flag", args: []string{"render", "-nope"}, want: 1},
		{name: "models extra arg", args: []string{"models", "x"}, want: 1},
		{name: "play bad output", args: []string{"play", "-output", "bogus"}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := run(tt.args, io.Discard, io.Discard); got != tt.want {
				t.Fatalf("run(%v) = %d, want %d", tt.args, got, tt.want)
			}
		})
	}
}

func TestModels(t *testing.T) {
	var out bytes.Buffer
	if code := run([]string{"models"}, &out, io.Discard); code != 0 {
		t.Fatalf("run(models) = %d, want 0", code)
	}

	for _, want := range []string{"BruteFilter", "0.6.0", "filter"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("models output missing %q:\n%s", want, out.String())
		}
	}
}

func TestParseOutput(t *testing.T) {
	for id, name := range outputNames {
		got, err := parseOutput(strings.ToUpper(name))
		if err != nil || got != id {
			t.Fatalf("parseOutput(%q) = %d, %v, want %d", name, got, err, id)
		}
	}

	if _, err := parseOutput("allpass"); err == nil {
		t.Fatal("parseOutput(allpass) expected error")
	}
}

func TestKnobFlags(t *testing.T) {
	var k knobs

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	k.bind(fs)

	if err := fs.Parse([]string{"-cutoff", "1.5", "-resonance", "5", "-att-amount", "0.25"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	u, err := host.NewUnit(brutefilter.ParamSpecs(), brutefilter.NumInputs, brutefilter.NumOutputs)
	if err != nil {
		t.Fatalf("NewUnit() error = %v", err)
	}

	k.apply(u)

	want := knobs{1.5, 0, 1, 0, 0.25}
	for id := range want {
		if got := u.Param(id).Value(); got != want[id] {
			t.Fatalf("param %s = %v, want %v", knobFlags[id], got, want[id])
		}
	}
}

func TestApplyCC(t *testing.T) {
	u, err := host.NewUnit(brutefilter.ParamSpecs(), brutefilter.NumInputs, brutefilter.NumOutputs)
	if err != nil {
		t.Fatalf("NewUnit() error = %v", err)
	}

	tests := []struct {
		status, data1, data2 int64
		used                 bool
		param                int
		want                 float64
	}{
		{status: 0xb0, data1: 74, data2: 0, used: true, param: brutefilter.CutoffParam, want: brute.MinCutoff},
		{status: 0xb5, data1: 71, data2: 127, used: true, param: brutefilter.ResonanceParam, want: brute.MaxResonance},
		{status: 0xb0, data1: 1, data2: 127, used: true, param: brutefilter.CutoffAmountParam, want: 1},
		{status: 0x90, data1: 74, data2: 64, used: false, param: brutefilter.CutoffParam, want: brute.MinCutoff},
		{status: 0xb0, data1: 20, data2: 64, used: false},
	}

	for _, tt := range tests {
		if got := applyCC(u, tt.status, tt.data1, tt.data2); got != tt.used {
			t.Fatalf("applyCC(%#x, %d, %d) = %v, want %v", tt.status, tt.data1, tt.data2, got, tt.used)
		}

		if tt.used || tt.data1 == 74 {
			if got := u.Param(tt.param).Value(); math.Abs(got-tt.want) > 1e-12 {
				t.Fatalf("after CC %d=%d param %d = %v, want %v", tt.data1, tt.data2, tt.param, got, tt.want)
			}
		}
	}
}

func TestRenderWritesFourFiles(t *testing.T) {
	dir := t.TempDir()

	var out bytes.Buffer
	args := []string{"render", "-out", dir, "-duration", "0.05", "-rate", "8000", "-source", "square", "-lfo", "2", "-att-lfo", "1"}
	if code := run(args, &out, io.Discard); code != 0 {
		t.Fatalf("run(render) = %d, want 0", code)
	}

	for _, name := range outputNames {
		path := filepath.Join(dir, name+".wav")
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("missing %s: %v", path, err)
		}

		data, rate, err := readWAV(path)
		if err != nil {
			t.Fatalf("readWAV(%s) error = %v", name, err)
		}

		if rate != 8000 || len(data) != 400 {
			t.Fatalf("%s: %d samples at %d Hz, want 400 at 8000", name, len(data), rate)
		}

		if p := peakAbs(data); math.Abs(p-0.9) > 1e-3 {
			t.Fatalf("%s peak = %v, want 0.9", name, p)
		}
	}
}

func TestRenderFromWAV(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.wav")

	src := make([]float64, 256)
	for i := range src {
		src[i] = 0.5 * math.Sin(2*math.Pi*float64(i)/32)
	}

	if err := writeWAV(in, src, 22050); err != nil {
		t.Fatalf("writeWAV() error = %v", err)
	}

	outDir := filepath.Join(dir, "out")
	if code := run([]string{"render", "-in", in, "-out", outDir, "-normalize", "0"}, io.Discard, io.Discard); code != 0 {
		t.Fatalf("run(render -in) = %d, want 0", code)
	}

	data, rate, err := readWAV(filepath.Join(outDir, "lowpass.wav"))
	if err != nil {
		t.Fatalf("readWAV() error = %v", err)
	}

	if rate != 22050 || len(data) != len(src) {
		t.Fatalf("lowpass.wav: %d samples at %d Hz, want %d at 22050", len(data), rate, len(src))
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	opts := renderOptions{seed: 4, mod: modulation{cutoffHz: 3}}
	for id, spec := range brutefilter.ParamSpecs() {
		opts.knobs[id] = spec.Default
	}
	opts.knobs[brutefilter.CutoffAmountParam] = -0.7

	input := make([]float64, 512)
	for i := range input {
		input[i] = float64(i%50)/25 - 1
	}

	a, err := render(input, 44100, opts)
	if err != nil {
		t.Fatalf("render() error = %v", err)
	}

	b, err := render(input, 44100, opts)
	if err != nil {
		t.Fatalf("render() error = %v", err)
	}

	for id := range a {
		for i := range a[id] {
			if a[id][i] != b[id][i] {
				t.Fatalf("output %s differs at %d", outputNames[id], i)
			}
		}
	}

	for i := range a[brutefilter.NotchOutput] {
		if a[brutefilter.NotchOutput][i] != a[brutefilter.BandpassOutput][i] {
			t.Fatalf("notch[%d] != bandpass[%d]", i, i)
		}
	}
}

func TestResponseCommand(t *testing.T) {
	var out bytes.Buffer
	if code := run([]string{"response", "-size", "1024", "-cutoff", "2"}, &out, io.Discard); code != 0 {
		t.Fatalf("run(response) = %d, want 0", code)
	}

	text := out.String()
	for _, want := range []string{"lowpass [dB]", "notch [dB]", "1000", "16000"} {
		if !strings.Contains(text, want) {
			t.Fatalf("response output missing %q:\n%s", want, text)
		}
	}

	if code := run([]string{"response", "-size", "1000"}, io.Discard, io.Discard); code != 1 {
		t.Fatalf("run(response -size 1000) = %d, want 1", code)
	}
}

func TestOctaveFrequencies(t *testing.T) {
	got := octaveFrequencies(44100)
	if len(got) != 10 || got[0] != 31.25 || got[9] != 16000 {
		t.Fatalf("octaveFrequencies(44100) = %v", got)
	}
}
