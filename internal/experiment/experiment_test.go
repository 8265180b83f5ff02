package experiment

import (
	"errors"
	"io"
	"math"
	"os"
	"testing"

	log "github.com/sirupsen/logrus"

	"github.com/san-kum/fringe/internal/control"
	"github.com/san-kum/fringe/internal/optics"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func newExperiment(t *testing.T) *Experiment {
	t.Helper()
	e, err := New(control.NewPanel())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return e
}

func TestNew_InitialRender(t *testing.T) {
	e := newExperiment(t)

	if e.Revision() != 1 {
		t.Errorf("revision = %d, want 1", e.Revision())
	}
	if len(e.Curve()) != optics.GridSamples {
		t.Errorf("curve has %d samples, want %d", len(e.Curve()), optics.GridSamples)
	}
	if len(e.Envelope()) != optics.GridSamples {
		t.Errorf("envelope has %d samples, want %d", len(e.Envelope()), optics.GridSamples)
	}
	if e.Params() != optics.DefaultParams() {
		t.Errorf("params = %+v, want defaults", e.Params())
	}
	if e.Err() != nil {
		t.Errorf("unexpected error: %v", e.Err())
	}
}

func TestOnChange_Recomputes(t *testing.T) {
	e := newExperiment(t)
	before := e.Curve()

	e.Panel().Slider(control.SlitSeparation).Set(2)
	if err := e.OnChange(control.SlitSeparation); err != nil {
		t.Fatalf("OnChange failed: %v", err)
	}

	if e.Revision() != 2 {
		t.Errorf("revision = %d, want 2", e.Revision())
	}
	if e.Params().SlitSeparation != 2e-3 {
		t.Errorf("separation = %v, want 2e-3", e.Params().SlitSeparation)
	}
	same := true
	for i := range before {
		if before[i] != e.Curve()[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("curve did not change")
	}
}

func TestOnChange_Idempotent(t *testing.T) {
	e := newExperiment(t)
	e.Panel().Slider(control.Wavelength).Set(700)
	if err := e.OnChange(control.Wavelength); err != nil {
		t.Fatal(err)
	}
	first := append(optics.Curve(nil), e.Curve()...)
	if err := e.OnChange(control.Wavelength); err != nil {
		t.Fatal(err)
	}
	for i := range first {
		if first[i] != e.Curve()[i] {
			t.Fatalf("sample %d differs after repeated recompute", i)
		}
	}
}

func TestUpdate_KeepsPreviousCurveOnError(t *testing.T) {
	e := newExperiment(t)
	prev := e.Curve()
	prevParams := e.Params()

	bad := prevParams
	bad.Wavelength = 0
	err := e.Update(bad)
	if !errors.Is(err, optics.ErrParameterBounds) {
		t.Fatalf("expected ErrParameterBounds, got %v", err)
	}

	if e.Err() == nil {
		t.Error("error not kept")
	}
	if e.Revision() != 1 {
		t.Errorf("revision = %d, want 1", e.Revision())
	}
	if e.Params() != prevParams {
		t.Error("params replaced by rejected update")
	}
	for i := range prev {
		if prev[i] != e.Curve()[i] {
			t.Fatalf("sample %d replaced by rejected update", i)
		}
	}

	bad.Wavelength = math.NaN()
	if err := e.Update(bad); err == nil {
		t.Error("NaN accepted")
	}

	if err := e.Update(prevParams); err != nil {
		t.Fatalf("recovery failed: %v", err)
	}
	if e.Err() != nil {
		t.Error("error not cleared after successful update")
	}
}

func TestApplyAndReset(t *testing.T) {
	e := newExperiment(t)
	p := optics.Params{Wavelength: 633e-9, SlitWidth: 80e-6, ScreenDistance: 1, SlitSeparation: 0.5e-3}

	if err := e.Apply(p); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if e.Params() != p {
		t.Errorf("params = %+v, want %+v", e.Params(), p)
	}
	if v := e.Panel().Slider(control.Wavelength).Value(); v != 633 {
		t.Errorf("wavelength slider = %v, want 633", v)
	}

	if err := e.Reset(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if e.Params() != optics.DefaultParams() {
		t.Errorf("params after reset = %+v", e.Params())
	}
}

func TestApply_ClampsToSliderDomain(t *testing.T) {
	e := newExperiment(t)
	p := optics.DefaultParams()
	p.ScreenDistance = 0

	if err := e.Apply(p); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if e.Params().ScreenDistance != 0.1 {
		t.Errorf("screen distance = %v, want 0.1", e.Params().ScreenDistance)
	}
}

func TestSummary(t *testing.T) {
	e := newExperiment(t)
	s := e.Summary()
	if math.Abs(s.FringeSpacing-2.5e-4) > 1e-15 {
		t.Errorf("fringe spacing = %v, want 2.5e-4", s.FringeSpacing)
	}
	if s.CentralFringes != 19 {
		t.Errorf("central fringes = %d, want 19", s.CentralFringes)
	}
}

func TestRefresh(t *testing.T) {
	e := newExperiment(t)
	rev := e.Revision()

	e.Panel().Slider(control.SlitSeparation).Set(0.5)
	if err := e.Refresh(); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if e.Revision() != rev+1 {
		t.Errorf("revision = %d, want %d", e.Revision(), rev+1)
	}
	if e.Params().SlitSeparation != 0.5e-3 {
		t.Errorf("separation = %v, want 0.5e-3", e.Params().SlitSeparation)
	}
}
