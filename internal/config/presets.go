package config

import "sort"

var Presets = map[string]*Config{
	"default": {
		WavelengthNm: 500, SlitWidthUm: 100, ScreenDistanceCm: 50, SlitSeparationMm: 1,
	},
	"red-laser": {
		WavelengthNm: 633, SlitWidthUm: 80, ScreenDistanceCm: 100, SlitSeparationMm: 0.5,
	},
	"violet": {
		WavelengthNm: 405, SlitWidthUm: 50, ScreenDistanceCm: 60, SlitSeparationMm: 0.3,
	},
	"infrared": {
		WavelengthNm: 980, SlitWidthUm: 150, ScreenDistanceCm: 80, SlitSeparationMm: 1.5,
	},
	"narrow-slits": {
		WavelengthNm: 500, SlitWidthUm: 20, ScreenDistanceCm: 50, SlitSeparationMm: 0.2,
	},
	"wide-separation": {
		WavelengthNm: 500, SlitWidthUm: 100, ScreenDistanceCm: 50, SlitSeparationMm: 5,
	},
	"missing-orders": {
		WavelengthNm: 550, SlitWidthUm: 200, ScreenDistanceCm: 100, SlitSeparationMm: 0.6,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	if cfg.Theme == "" {
		cfg.Theme = DefaultTheme
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	return &cfg
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
