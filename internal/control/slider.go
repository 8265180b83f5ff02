package control

import (
	"fmt"
	"math"
)

// Field identifies one of the four physical parameters.
type Field int

const (
	Wavelength Field = iota
	SlitWidth
	ScreenDistance
	SlitSeparation
)

// Fields lists every field in display order.
var Fields = []Field{Wavelength, SlitWidth, ScreenDistance, SlitSeparation}

var fieldNames = map[Field]string{
	Wavelength:     "wavelength",
	SlitWidth:      "slit_width",
	ScreenDistance: "screen_distance",
	SlitSeparation: "slit_separation",
}

func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return fmt.Sprintf("field(%d)", int(f))
}

// ParseField accepts the snake_case name or the short CLI alias of a field.
func ParseField(s string) (Field, error) {
	switch s {
	case "wavelength", "lambda":
		return Wavelength, nil
	case "slit_width", "slit-width", "width":
		return SlitWidth, nil
	case "screen_distance", "screen-distance", "distance":
		return ScreenDistance, nil
	case "slit_separation", "slit-separation", "separation":
		return SlitSeparation, nil
	}
	return 0, fmt.Errorf("unknown parameter: %q", s)
}

// Slider is a bounded scalar in display units. PerMetre is the number of
// display units in one metre (1e9 for nm), so SI = value / PerMetre.
type Slider struct {
	Field    Field
	Label    string
	Unit     string
	Min      float64
	Max      float64
	Step     float64
	PerMetre float64
	Initial  float64

	value float64
}

func NewSlider(field Field, label, unit string, min, max, step, perMetre, initial float64) *Slider {
	s := &Slider{
		Field:    field,
		Label:    label,
		Unit:     unit,
		Min:      min,
		Max:      max,
		Step:     step,
		PerMetre: perMetre,
		Initial:  initial,
	}
	s.Initial = s.clamp(initial)
	s.value = s.Initial
	return s
}

func (s *Slider) Value() float64 {
	return s.value
}

// Set clamps v into [Min, Max] and reports whether the value changed.
// NaN is ignored.
func (s *Slider) Set(v float64) bool {
	if math.IsNaN(v) {
		return false
	}
	v = s.clamp(v)
	if v == s.value {
		return false
	}
	s.value = v
	return true
}

// Nudge moves the value by n steps.
func (s *Slider) Nudge(n int) bool {
	return s.Set(tidy(s.value + float64(n)*s.Step))
}

// Fraction returns the position of the value inside the domain, in [0, 1].
func (s *Slider) Fraction() float64 {
	if s.Max == s.Min {
		return 0
	}
	return (s.value - s.Min) / (s.Max - s.Min)
}

// SetFraction positions the slider at f of its travel, f clamped to [0, 1].
// The result snaps to the step grid counted from Min.
func (s *Slider) SetFraction(f float64) bool {
	f = math.Max(0, math.Min(1, f))
	v := s.Min + f*(s.Max-s.Min)
	if s.Step > 0 {
		v = s.Min + math.Round((v-s.Min)/s.Step)*s.Step
	}
	return s.Set(tidy(v))
}

// SI returns the value converted to metres.
func (s *Slider) SI() float64 {
	return s.value / s.PerMetre
}

// SetSI sets the slider from a value in metres.
func (s *Slider) SetSI(metres float64) bool {
	return s.Set(metres * s.PerMetre)
}

func (s *Slider) Reset() bool {
	return s.Set(s.Initial)
}

// Contains reports whether v lies inside the inclusive domain.
func (s *Slider) Contains(v float64) bool {
	return v >= s.Min && v <= s.Max
}

func (s *Slider) String() string {
	return fmt.Sprintf("%s %g %s", s.Label, s.value, s.Unit)
}

// tidy drops binary drift below a billionth of a display unit, so two
// nudges of 0.1 from 1 land on 1.2 and not 1.2000000000000002.
func tidy(v float64) float64 {
	return math.Round(v*1e9) / 1e9
}

func (s *Slider) clamp(v float64) float64 {
	return math.Max(s.Min, math.Min(s.Max, v))
}
