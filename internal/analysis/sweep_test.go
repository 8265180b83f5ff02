package analysis

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/san-kum/fringe/internal/control"
	"github.com/san-kum/fringe/internal/optics"
)

func TestSweep_Separation(t *testing.T) {
	values := SweepValues(0.5, 2, 4)
	points, err := Sweep(context.Background(), optics.DefaultParams(), control.SlitSeparation, values, optics.DefaultGrid())
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if len(points) != 4 {
		t.Fatalf("got %d points, want 4", len(points))
	}

	for i, pt := range points {
		if pt.Value != values[i] {
			t.Errorf("point %d value = %v, want %v", i, pt.Value, values[i])
		}
		if pt.Params.Wavelength != optics.DefaultWavelength {
			t.Errorf("point %d changed wavelength", i)
		}
		want := 5e-7 * 0.5 / (values[i] / 1e3)
		if math.Abs(pt.Summary.FringeSpacing-want) > 1e-15 {
			t.Errorf("point %d spacing = %v, want %v", i, pt.Summary.FringeSpacing, want)
		}
	}

	for i := 1; i < len(points); i++ {
		if points[i].Summary.FringeSpacing >= points[i-1].Summary.FringeSpacing {
			t.Error("spacing should shrink as separation grows")
		}
	}
}

func TestSweep_RejectsOutOfDomain(t *testing.T) {
	if _, err := Sweep(context.Background(), optics.DefaultParams(), control.Wavelength, []float64{50}, optics.DefaultGrid()); err == nil {
		t.Error("expected error for 50 nm")
	}
}

func TestSweep_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Sweep(ctx, optics.DefaultParams(), control.SlitWidth, SweepValues(10, 100, 5), optics.DefaultGrid())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestSweepValues(t *testing.T) {
	v := SweepValues(100, 1000, 10)
	if len(v) != 10 || v[0] != 100 || v[9] != 1000 {
		t.Errorf("SweepValues = %v", v)
	}
}
