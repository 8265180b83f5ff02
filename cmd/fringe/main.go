package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/fringe/internal/analysis"
	"github.com/san-kum/fringe/internal/config"
	"github.com/san-kum/fringe/internal/control"
	"github.com/san-kum/fringe/internal/export"
	"github.com/san-kum/fringe/internal/gui"
	"github.com/san-kum/fringe/internal/tui"
)

var (
	configFile string
	preset     string
	logLevel   string
	logFile    string

	// display units, as on the sliders
	wavelength     float64
	slitWidth      float64
	screenDistance float64
	separation     float64

	sweepParam string
	sweepFrom  float64
	sweepTo    float64
	sweepSteps int

	exportFormat string
	outputPath   string
)

// main registers the fringe commands and runs the terminal view when no
// subcommand is given. It exits with status 1 if the command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:          "fringe",
		Short:        "double-slit interference lab",
		SilenceUsage: true,
		RunE:         runTUI,
	}

	addSetupFlags(rootCmd)

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the desktop window",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "print the intensity curve",
		Args:  cobra.NoArgs,
		RunE:  plotCurve,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "fringe metrics and spatial spectrum",
		Args:  cobra.NoArgs,
		RunE:  analyzeCurve,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "vary one parameter and tabulate the fringe metrics",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&sweepParam, "param", "separation", "parameter to vary (wavelength, slit-width, screen-distance, separation)")
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0, "first value in display units (default: slider minimum)")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 0, "last value in display units (default: slider maximum)")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 10, "number of values")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "render the curve to html, svg, csv or json",
		Args:  cobra.NoArgs,
		RunE:  exportCurve,
	}
	exportCmd.Flags().StringVar(&exportFormat, "format", "", "html, svg, csv or json (default: from output extension, else html)")
	exportCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default: fringe.<format>)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	rootCmd.AddCommand(guiCmd, plotCmd, analyzeCmd, sweepCmd, exportCmd, presetsCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// addSetupFlags registers the flags every command uses to pick its setup.
func addSetupFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "start from a preset setup")
	pf.Float64Var(&wavelength, "wavelength", control.WavelengthDefault, "wavelength (nm)")
	pf.Float64Var(&slitWidth, "slit-width", control.SlitWidthDefault, "slit width (µm)")
	pf.Float64Var(&screenDistance, "screen-distance", control.ScreenDistanceDefault, "screen distance (cm)")
	pf.Float64Var(&separation, "separation", control.SlitSeparationDefault, "slit separation (mm)")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	pf.StringVar(&logFile, "log-file", "", "append logs to this file")
}

func runTUI(cmd *cobra.Command, args []string) error {
	exp, cfg, closer, err := newExperiment(cmd, true)
	if err != nil {
		return err
	}
	defer closer.Close()

	log.WithField("theme", cfg.Theme).Info("Starting terminal view")
	return tui.Run(exp, cfg.Theme)
}

func runGUI(cmd *cobra.Command, args []string) error {
	exp, _, closer, err := newExperiment(cmd, false)
	if err != nil {
		return err
	}
	defer closer.Close()

	gui.Run(exp)
	return nil
}

func plotCurve(cmd *cobra.Command, args []string) error {
	exp, cfg, closer, err := newExperiment(cmd, false)
	if err != nil {
		return err
	}
	defer closer.Close()

	fmt.Printf("λ=%g nm  a=%g µm  L=%g cm  d=%g mm\n\n",
		cfg.WavelengthNm, cfg.SlitWidthUm, cfg.ScreenDistanceCm, cfg.SlitSeparationMm)

	graph := asciigraph.PlotMany([][]float64{exp.Curve(), exp.Envelope()},
		asciigraph.Height(15),
		asciigraph.Width(100),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(1),
		asciigraph.Precision(2),
		asciigraph.Caption("relative intensity, -5 mm .. +5 mm (with envelope)"),
	)
	fmt.Println(graph)
	return nil
}

func analyzeCurve(cmd *cobra.Command, args []string) error {
	exp, _, closer, err := newExperiment(cmd, false)
	if err != nil {
		return err
	}
	defer closer.Close()

	p, grid, curve := exp.Params(), exp.Grid(), exp.Curve()
	s := exp.Summary()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tTHEORY\tMEASURED")
	fmt.Fprintf(w, "fringe spacing\t%.4f mm\t%.4f mm\n", s.FringeSpacing*1e3, s.MeasuredSpacing*1e3)
	fmt.Fprintf(w, "envelope zero\t%.4f mm\t\n", s.EnvelopeZero*1e3)
	fmt.Fprintf(w, "central fringes\t%d\t%d\n", s.CentralFringes, s.Peaks)
	fmt.Fprintf(w, "visibility\t\t%.4f\n", s.Visibility)
	fmt.Fprintf(w, "max intensity\t1\t%.4f\n", s.MaxIntensity)
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Println()

	spec, err := analysis.SpatialSpectrum(grid, curve)
	if err != nil {
		return fmt.Errorf("spectrum: %w", err)
	}

	expected := analysis.ExpectedFringeFrequency(p)
	limit := len(spec.Magnitudes)
	for i, f := range spec.Frequencies {
		if f > 2*expected {
			limit = i
			break
		}
	}
	if limit < 2 {
		limit = len(spec.Magnitudes)
	}
	// skip the DC bin, it dwarfs everything else
	graph := asciigraph.Plot(spec.Magnitudes[1:limit],
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("spatial spectrum, 0 .. %.0f cycles/m", spec.Frequencies[limit-1])),
	)
	fmt.Println(graph)
	fmt.Println()

	freq, err := analysis.FringeFrequency(p, grid, curve)
	if err != nil {
		fmt.Printf("fringe frequency: %v\n", err)
		return nil
	}
	fmt.Printf("fringe frequency: %.1f cycles/m (expected %.1f)\n", freq, expected)
	fmt.Printf("period: %.4f mm\n", 1e3/freq)
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	exp, _, closer, err := newExperiment(cmd, false)
	if err != nil {
		return err
	}
	defer closer.Close()

	field, err := control.ParseField(sweepParam)
	if err != nil {
		return err
	}
	slider := exp.Panel().Slider(field)
	from, to := slider.Min, slider.Max
	if cmd.Flags().Changed("from") {
		from = sweepFrom
	}
	if cmd.Flags().Changed("to") {
		to = sweepTo
	}
	if sweepSteps < 2 {
		return fmt.Errorf("steps must be at least 2, got %d", sweepSteps)
	}

	points, err := analysis.Sweep(cmd.Context(), exp.Params(), field, analysis.SweepValues(from, to, sweepSteps), exp.Grid())
	if err != nil {
		return fmt.Errorf("sweep failed: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s (%s)\tSPACING\tMEASURED\tENV ZERO\tCENTRAL\tVISIBILITY\n", slider.Label, slider.Unit)
	spacing := make([]float64, len(points))
	for i, pt := range points {
		s := pt.Summary
		fmt.Fprintf(w, "%g\t%.4f mm\t%.4f mm\t%.4f mm\t%d\t%.3f\n",
			pt.Value, s.FringeSpacing*1e3, s.MeasuredSpacing*1e3, s.EnvelopeZero*1e3, s.CentralFringes, s.Visibility)
		spacing[i] = s.FringeSpacing * 1e3
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Println()

	graph := asciigraph.Plot(spacing,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("fringe spacing (mm) vs %s, %g .. %g %s", slider.Label, from, to, slider.Unit)),
	)
	fmt.Println(graph)
	return nil
}

func exportCurve(cmd *cobra.Command, args []string) error {
	exp, _, closer, err := newExperiment(cmd, false)
	if err != nil {
		return err
	}
	defer closer.Close()

	format, err := resolveFormat(exportFormat, outputPath)
	if err != nil {
		return err
	}
	path := outputPath
	if path == "" {
		path = "fringe" + format.Ext()
	}

	data, err := export.NewData(exp.Params(), exp.Grid())
	if err != nil {
		return err
	}
	if err := export.WriteFile(path, format, data); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	abs, _ := filepath.Abs(path)
	fmt.Printf("wrote %s\n", abs)
	return nil
}

// resolveFormat prefers an explicit format, then the output extension.
func resolveFormat(name, path string) (export.Format, error) {
	if name != "" {
		return export.ParseFormat(name)
	}
	if path != "" {
		if f, err := export.FormatFromPath(path); err == nil {
			return f, nil
		}
	}
	return export.HTML, nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tλ (nm)\ta (µm)\tL (cm)\td (mm)\td/a")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%g\t%.1f\n", name,
			p.WavelengthNm, p.SlitWidthUm, p.ScreenDistanceCm, p.SlitSeparationMm,
			math.Round(p.SlitSeparationMm*1e3/p.SlitWidthUm*10)/10)
	}
	return w.Flush()
}
