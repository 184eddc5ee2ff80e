package brutefilter

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/brutefilter/dsp/dither"
	"github.com/cwbudde/brutefilter/dsp/filter/brute"
	"github.com/cwbudde/brutefilter/host"
	"github.com/cwbudde/brutefilter/internal/testutil"
)

func newEngine(t *testing.T, opts ...host.Option) (*host.Engine, *Module) {
	t.Helper()

	reg := host.NewRegistry()
	if err := Register(reg); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	e, err := host.NewEngine(reg, opts...)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	m, err := e.AddModule(Slug)
	if err != nil {
		t.Fatalf("AddModule() error = %v", err)
	}

	return e, m.(*Module)
}

func TestParamSpecs(t *testing.T) {
	specs := ParamSpecs()
	if len(specs) != NumParams {
		t.Fatalf("len(ParamSpecs()) = %d, want %d", len(specs), NumParams)
	}

	want := []struct {
		min, max, def float64
	}{
		CutoffParam:          {0.1, 2.9, 2.9},
		CutoffAmountParam:    {-1, 1, 0},
		ResonanceParam:       {0.1, 1, 0.1},
		ResonanceAmountParam: {0, 1, 0},
		AttAmountParam:       {0, 1, 0},
	}

	for i, s := range specs {
		if s.Min != want[i].min || s.Max != want[i].max || s.Default != want[i].def {
			t.Fatalf("ParamSpecs()[%d] = %+v, want range [%v, %v] default %v",
				i, s, want[i].min, want[i].max, want[i].def)
		}

		if err := s.Validate(); err != nil {
			t.Fatalf("ParamSpecs()[%d].Validate() error = %v", i, err)
		}
	}
}

func TestRegister(t *testing.T) {
	reg := host.NewRegistry()
	if err := Register(reg); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	m, err := reg.Lookup("BruteFilter")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}

	if m.Version != "0.6.0" || len(m.Tags) != 1 || m.Tags[0] != "filter" {
		t.Fatalf("model = %+v, want version 0.6.0 tagged filter", m)
	}

	if err := Register(reg); !errors.Is(err, host.ErrDuplicateModel) {
		t.Fatalf("Register() twice error = %v, want ErrDuplicateModel", err)
	}
}

func TestNewRejectsInvalidSampleRate(t *testing.T) {
	if _, err := New(host.Context{SampleRate: 0}); err == nil {
		t.Fatal("New() expected error")
	}
}

func TestModuleMatchesFilter(t *testing.T) {
	e, m := newEngine(t, host.WithNoiseSource(dither.Constant(0.5)))

	ref, err := brute.New(44100, brute.WithNoiseSource(dither.Constant(0.5)))
	if err != nil {
		t.Fatalf("brute.New() error = %v", err)
	}

	u := m.Unit()
	u.Param(CutoffParam).SetValue(2.3)
	u.Param(CutoffAmountParam).SetValue(-0.4)
	u.Param(ResonanceParam).SetValue(0.5)
	u.Param(ResonanceAmountParam).SetValue(0.2)

	c := brute.Controls{Cutoff: 2.3, CutoffAmount: -0.4, Resonance: 0.5, ResonanceAmount: 0.2}
	if m.Controls() != c {
		t.Fatalf("Controls() = %+v, want %+v", m.Controls(), c)
	}

	audio := testutil.DeterministicSine(330, 44100, 0.8, 512)
	cv := testutil.DeterministicSine(2, 44100, 1, 512)

	for i, x := range audio {
		u.Input(AudioInput).Set(x)
		u.Input(CutoffInput).Set(cv[i])
		u.Input(ResonanceInput).Set(cv[i] / 2)

		e.Step()

		want := ref.ProcessSample(c, brute.Inputs{Audio: x, CutoffCV: cv[i], ResonanceCV: cv[i] / 2})

		got := brute.Outputs{
			Lowpass:  u.Output(LowpassOutput).Value,
			Highpass: u.Output(HighpassOutput).Value,
			Bandpass: u.Output(BandpassOutput).Value,
			Notch:    u.Output(NotchOutput).Value,
		}
		if got != want {
			t.Fatalf("frame %d: outputs = %+v, want %+v", i, got, want)
		}
	}
}

func TestAttInputGatesModulation(t *testing.T) {
	e, m := newEngine(t, host.WithNoiseSource(dither.Constant(0.5)))
	u := m.Unit()

	u.Param(CutoffAmountParam).SetValue(1)
	u.Param(AttAmountParam).SetValue(0.5)
	u.Input(CutoffInput).Set(-1)

	e.Step()

	base := brute.BaseCutoffHz(brute.DefaultCutoff)
	if got := m.Filter().Taps().CutoffHz; got != brute.MinCutoffHz {
		t.Fatalf("CutoffHz = %v without att, want %v", got, brute.MinCutoffHz)
	}

	u.Input(AttInput).Set(1)
	e.Step()

	if got, want := m.Filter().Taps().CutoffHz, base-0.5*base; math.Abs(got-want) > 1e-9 {
		t.Fatalf("CutoffHz = %v with att, want %v", got, want)
	}

	u.Input(AttInput).Disconnect()
	e.Step()

	if got := m.Filter().Taps().CutoffHz; got != brute.MinCutoffHz {
		t.Fatalf("CutoffHz = %v after disconnect, want %v", got, brute.MinCutoffHz)
	}
}

func TestParamsClampedByHost(t *testing.T) {
	e, m := newEngine(t)
	u := m.Unit()

	u.Param(CutoffParam).SetValue(10)
	u.Param(ResonanceParam).SetValue(-3)
	e.Step()

	if got := m.Controls(); got.Cutoff != 2.9 || got.Resonance != 0.1 {
		t.Fatalf("Controls() = %+v, want clamped cutoff 2.9 and resonance 0.1", got)
	}
}

func TestSampleRateChangeFromEngine(t *testing.T) {
	e, m := newEngine(t, host.WithSampleRate(48000))

	e.Step()

	if got := m.Filter().SampleRate(); got != 48000 {
		t.Fatalf("SampleRate() = %v, want 48000", got)
	}

	if err := e.SetSampleRate(22050); err != nil {
		t.Fatalf("SetSampleRate() error = %v", err)
	}

	e.Step()

	if got := m.Filter().SampleRate(); got != 22050 {
		t.Fatalf("SampleRate() = %v after change, want 22050", got)
	}
}

func TestAllOutputsWritten(t *testing.T) {
	e, m := newEngine(t, host.WithNoiseSource(dither.Constant(0.5)))
	u := m.Unit()

	for i := range u.Outputs {
		u.Outputs[i].Value = math.NaN()
	}

	u.Input(AudioInput).Set(0.3)
	e.Step()

	for i, o := range u.Outputs {
		if math.IsNaN(o.Value) {
			t.Fatalf("output %d not written", i)
		}
	}
}
