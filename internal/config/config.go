package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/fringe/internal/control"
	"github.com/san-kum/fringe/internal/optics"
)

const (
	DefaultTheme    = "cyberpunk"
	DefaultLogLevel = "info"
)

// Config describes a setup in display units, the way the sliders show it.
type Config struct {
	WavelengthNm     float64 `yaml:"wavelength_nm"`
	SlitWidthUm      float64 `yaml:"slit_width_um"`
	ScreenDistanceCm float64 `yaml:"screen_distance_cm"`
	SlitSeparationMm float64 `yaml:"slit_separation_mm"`
	Theme            string  `yaml:"theme,omitempty"`
	LogLevel         string  `yaml:"log_level,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		WavelengthNm:     control.WavelengthDefault,
		SlitWidthUm:      control.SlitWidthDefault,
		ScreenDistanceCm: control.ScreenDistanceDefault,
		SlitSeparationMm: control.SlitSeparationDefault,
		Theme:            DefaultTheme,
		LogLevel:         DefaultLogLevel,
	}
}

// Load reads a YAML file on top of the defaults and validates the result.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto reads a YAML file on top of cfg. Keys absent from the file keep
// their value in cfg.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks every value against the domain of its slider.
func (c *Config) Validate() error {
	panel := control.NewPanel()
	for _, f := range control.Fields {
		s := panel.Slider(f)
		v := c.Value(f)
		if !s.Contains(v) {
			return fmt.Errorf("%s %g %s outside [%g, %g]", s.Label, v, s.Unit, s.Min, s.Max)
		}
	}
	return nil
}

// Value returns the display value of a field.
func (c *Config) Value(f control.Field) float64 {
	switch f {
	case control.Wavelength:
		return c.WavelengthNm
	case control.SlitWidth:
		return c.SlitWidthUm
	case control.ScreenDistance:
		return c.ScreenDistanceCm
	case control.SlitSeparation:
		return c.SlitSeparationMm
	}
	return 0
}

// SetValue sets the display value of a field.
func (c *Config) SetValue(f control.Field, v float64) {
	switch f {
	case control.Wavelength:
		c.WavelengthNm = v
	case control.SlitWidth:
		c.SlitWidthUm = v
	case control.ScreenDistance:
		c.ScreenDistanceCm = v
	case control.SlitSeparation:
		c.SlitSeparationMm = v
	}
}

// Panel returns sliders positioned at the configured values. The values
// also become the sliders' reset point.
func (c *Config) Panel() *control.Panel {
	panel := control.NewPanel()
	for _, s := range panel.Sliders() {
		s.Initial = c.Value(s.Field)
		s.Set(s.Initial)
		s.Initial = s.Value()
	}
	return panel
}

// ApplyTo moves the sliders of panel to the configured display values
// without changing their reset point. It reports whether any slider moved.
func (c *Config) ApplyTo(panel *control.Panel) bool {
	changed := false
	for _, s := range panel.Sliders() {
		changed = s.Set(c.Value(s.Field)) || changed
	}
	return changed
}

// Params returns the configured setup in SI units.
func (c *Config) Params() optics.Params {
	return c.Panel().Params()
}
