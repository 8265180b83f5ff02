package main

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/fringe/internal/config"
	"github.com/san-kum/fringe/internal/control"
	"github.com/san-kum/fringe/internal/experiment"
)

// setupFlags maps the persistent value flags to the field they override.
var setupFlags = map[string]control.Field{
	"wavelength":      control.Wavelength,
	"slit-width":      control.SlitWidth,
	"screen-distance": control.ScreenDistance,
	"separation":      control.SlitSeparation,
}

// resolveConfig layers preset, config file and flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		if err := config.LoadInto(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	values := map[control.Field]float64{
		control.Wavelength:     wavelength,
		control.SlitWidth:      slitWidth,
		control.ScreenDistance: screenDistance,
		control.SlitSeparation: separation,
	}
	for name, f := range setupFlags {
		if cmd.Flags().Changed(name) {
			cfg.SetValue(f, values[f])
		}
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLogging configures logrus. A full-screen UI owns the terminal, so
// without a log file its output is discarded.
func setupLogging(cfg *config.Config, fullScreen bool) (io.Closer, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	switch {
	case logFile != "":
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		log.SetOutput(f)
		return f, nil
	case fullScreen:
		log.SetOutput(io.Discard)
	default:
		log.SetOutput(os.Stderr)
	}
	return nopCloser{}, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newExperiment resolves the configuration, sets up logging and renders the
// initial curve. The returned closer releases the log file.
func newExperiment(cmd *cobra.Command, fullScreen bool) (*experiment.Experiment, *config.Config, io.Closer, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	closer, err := setupLogging(cfg, fullScreen)
	if err != nil {
		return nil, nil, nil, err
	}

	log.WithFields(log.Fields{
		"wavelength_nm":      cfg.WavelengthNm,
		"slit_width_um":      cfg.SlitWidthUm,
		"screen_distance_cm": cfg.ScreenDistanceCm,
		"slit_separation_mm": cfg.SlitSeparationMm,
		"preset":             preset,
		"config":             configFile,
	}).Debug("Configuration resolved")

	exp, err := experiment.New(cfg.Panel())
	if err != nil {
		closer.Close()
		return nil, nil, nil, err
	}
	return exp, cfg, closer, nil
}
