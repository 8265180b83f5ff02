package analysis

import (
	"context"
	"fmt"

	"github.com/san-kum/fringe/internal/control"
	"github.com/san-kum/fringe/internal/optics"
)

// SweepPoint is the pattern measured at one slider value.
type SweepPoint struct {
	Value   float64
	Params  optics.Params
	Summary Summary
}

// SweepValues returns steps evenly spaced display values from min to max.
func SweepValues(min, max float64, steps int) []float64 {
	return []float64(optics.Linspace(min, max, steps))
}

// Sweep varies one field over values given in the slider's display unit,
// holding the rest of base fixed. Values outside the slider domain are
// rejected before any work starts. ctx is checked between points.
func Sweep(ctx context.Context, base optics.Params, field control.Field, values []float64, grid optics.Grid) ([]SweepPoint, error) {
	slider := control.NewPanel().Slider(field)
	if slider == nil {
		return nil, fmt.Errorf("unknown field %v", field)
	}
	for _, v := range values {
		if !slider.Contains(v) {
			return nil, fmt.Errorf("%s %g %s outside [%g, %g]", slider.Label, v, slider.Unit, slider.Min, slider.Max)
		}
	}

	points := make([]SweepPoint, 0, len(values))
	for _, v := range values {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p := withField(base, field, v/slider.PerMetre)
		curve, err := optics.Intensity(p, grid)
		if err != nil {
			return nil, fmt.Errorf("%s=%g: %w", field, v, err)
		}
		points = append(points, SweepPoint{
			Value:   v,
			Params:  p,
			Summary: Summarize(p, grid, curve),
		})
	}
	return points, nil
}

func withField(p optics.Params, f control.Field, si float64) optics.Params {
	switch f {
	case control.Wavelength:
		p.Wavelength = si
	case control.SlitWidth:
		p.SlitWidth = si
	case control.ScreenDistance:
		p.ScreenDistance = si
	case control.SlitSeparation:
		p.SlitSeparation = si
	}
	return p
}
