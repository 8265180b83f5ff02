package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/fringe/internal/export"
)

func parse(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "fringe"}
	addSetupFlags(cmd)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return cmd
}

func TestResolveConfig_Defaults(t *testing.T) {
	cfg, err := resolveConfig(parse(t))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.WavelengthNm != 500 || cfg.SlitWidthUm != 100 || cfg.ScreenDistanceCm != 50 || cfg.SlitSeparationMm != 1 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestResolveConfig_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "setup.yaml")
	if err := os.WriteFile(path, []byte("slit_width_um: 120\nscreen_distance_cm: 90\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := resolveConfig(parse(t,
		"--preset", "red-laser",
		"--config", path,
		"--screen-distance", "30",
		"--log-level", "debug",
	))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.WavelengthNm != 633 {
		t.Errorf("preset wavelength lost: %v", cfg.WavelengthNm)
	}
	if cfg.SlitWidthUm != 120 {
		t.Errorf("config did not override preset: %v", cfg.SlitWidthUm)
	}
	if cfg.ScreenDistanceCm != 30 {
		t.Errorf("flag did not override config: %v", cfg.ScreenDistanceCm)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log level = %q", cfg.LogLevel)
	}
}

func TestResolveConfig_Errors(t *testing.T) {
	if _, err := resolveConfig(parse(t, "--preset", "nope")); err == nil {
		t.Error("expected error for unknown preset")
	}
	if _, err := resolveConfig(parse(t, "--wavelength", "5000")); err == nil {
		t.Error("expected error for out-of-domain wavelength")
	}
	if _, err := resolveConfig(parse(t, "--config", "/nonexistent/fringe.yaml")); err == nil {
		t.Error("expected error for missing config")
	}
}

func TestSetupLogging(t *testing.T) {
	defer log.SetOutput(os.Stderr)
	cfg, err := resolveConfig(parse(t, "--log-level", "warn"))
	if err != nil {
		t.Fatal(err)
	}

	closer, err := setupLogging(cfg, true)
	if err != nil {
		t.Fatal(err)
	}
	closer.Close()
	if log.GetLevel() != log.WarnLevel {
		t.Errorf("level = %v", log.GetLevel())
	}
	if log.StandardLogger().Out != io.Discard {
		t.Error("full-screen logging not discarded")
	}

	cfg.LogLevel = "loud"
	if _, err := setupLogging(cfg, false); err == nil {
		t.Error("expected error for invalid level")
	}
}

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		name, path string
		want       export.Format
	}{
		{"", "", export.HTML},
		{"", "out.csv", export.CSV},
		{"json", "out.csv", export.JSON},
		{"", "noext", export.HTML},
	}
	for _, tt := range tests {
		got, err := resolveFormat(tt.name, tt.path)
		if err != nil {
			t.Fatalf("resolveFormat(%q, %q): %v", tt.name, tt.path, err)
		}
		if got != tt.want {
			t.Errorf("resolveFormat(%q, %q) = %v, want %v", tt.name, tt.path, got, tt.want)
		}
	}
}
