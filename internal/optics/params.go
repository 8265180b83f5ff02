package optics

import "math"

// Defaults of the reference setup: green light through 100 µm slits 1 mm apart,
// screen half a metre away.
const (
	DefaultWavelength     = 500e-9
	DefaultSlitWidth      = 100e-6
	DefaultScreenDistance = 50e-2
	DefaultSlitSeparation = 1e-3
)

// Params are the physical parameters of the setup, all in metres.
type Params struct {
	Wavelength     float64 `json:"wavelength"`
	SlitWidth      float64 `json:"slit_width"`
	ScreenDistance float64 `json:"screen_distance"`
	SlitSeparation float64 `json:"slit_separation"`
}

func DefaultParams() Params {
	return Params{
		Wavelength:     DefaultWavelength,
		SlitWidth:      DefaultSlitWidth,
		ScreenDistance: DefaultScreenDistance,
		SlitSeparation: DefaultSlitSeparation,
	}
}

// Validate reports the first parameter that is not a positive finite number,
// then checks that the phase coefficient K survives the product λL.
func (p Params) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"wavelength", p.Wavelength},
		{"slit width", p.SlitWidth},
		{"screen distance", p.ScreenDistance},
		{"slit separation", p.SlitSeparation},
	}
	for _, f := range fields {
		if !(f.value > 0) || math.IsInf(f.value, 0) {
			return &ParamError{Name: f.name, Value: f.value}
		}
	}
	if k := p.K(); !(k > 0) || math.IsInf(k, 0) {
		return &ParamError{Name: "phase coefficient", Value: k}
	}
	return nil
}

// K returns the phase coefficient π/(λL) that turns a screen position into
// the half phase difference per metre of aperture.
func (p Params) K() float64 {
	return math.Pi / (p.Wavelength * p.ScreenDistance)
}
