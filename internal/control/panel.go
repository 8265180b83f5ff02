package control

import "github.com/san-kum/fringe/internal/optics"

// Display units per metre.
const (
	NanometresPerMetre  = 1e9
	MicrometresPerMetre = 1e6
	CentimetresPerMetre = 1e2
	MillimetresPerMetre = 1e3
)

// Slider domains and defaults in display units.
const (
	WavelengthMin, WavelengthMax, WavelengthDefault             = 100.0, 1000.0, 500.0
	SlitWidthMin, SlitWidthMax, SlitWidthDefault                = 10.0, 1000.0, 100.0
	ScreenDistanceMin, ScreenDistanceMax, ScreenDistanceDefault = 10.0, 100.0, 50.0
	SlitSeparationMin, SlitSeparationMax, SlitSeparationDefault = 0.1, 10.0, 1.0
)

// Panel owns the four sliders of the setup.
type Panel struct {
	sliders []*Slider
}

// NewPanel builds the sliders at their default values.
func NewPanel() *Panel {
	return &Panel{
		sliders: []*Slider{
			NewSlider(Wavelength, "wavelength", "nm", WavelengthMin, WavelengthMax, 10, NanometresPerMetre, WavelengthDefault),
			NewSlider(SlitWidth, "slit width", "µm", SlitWidthMin, SlitWidthMax, 10, MicrometresPerMetre, SlitWidthDefault),
			NewSlider(ScreenDistance, "screen dist", "cm", ScreenDistanceMin, ScreenDistanceMax, 1, CentimetresPerMetre, ScreenDistanceDefault),
			NewSlider(SlitSeparation, "separation", "mm", SlitSeparationMin, SlitSeparationMax, 0.1, MillimetresPerMetre, SlitSeparationDefault),
		},
	}
}

func (p *Panel) Sliders() []*Slider {
	return p.sliders
}

func (p *Panel) Slider(f Field) *Slider {
	for _, s := range p.sliders {
		if s.Field == f {
			return s
		}
	}
	return nil
}

func (p *Panel) Len() int {
	return len(p.sliders)
}

// Params converts the current slider values to SI units.
func (p *Panel) Params() optics.Params {
	return optics.Params{
		Wavelength:     p.Slider(Wavelength).SI(),
		SlitWidth:      p.Slider(SlitWidth).SI(),
		ScreenDistance: p.Slider(ScreenDistance).SI(),
		SlitSeparation: p.Slider(SlitSeparation).SI(),
	}
}

// SetParams moves every slider to the SI values in params, clamping to the
// slider domains. It reports whether any slider moved.
func (p *Panel) SetParams(params optics.Params) bool {
	changed := false
	changed = p.Slider(Wavelength).SetSI(params.Wavelength) || changed
	changed = p.Slider(SlitWidth).SetSI(params.SlitWidth) || changed
	changed = p.Slider(ScreenDistance).SetSI(params.ScreenDistance) || changed
	changed = p.Slider(SlitSeparation).SetSI(params.SlitSeparation) || changed
	return changed
}

// Reset returns every slider to its initial value.
func (p *Panel) Reset() bool {
	changed := false
	for _, s := range p.sliders {
		changed = s.Reset() || changed
	}
	return changed
}
