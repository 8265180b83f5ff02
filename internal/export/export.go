package export

import (
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/san-kum/fringe/internal/analysis"
	"github.com/san-kum/fringe/internal/optics"
)

// Data is everything an export renders: the setup, its curve and the
// envelope overlay.
type Data struct {
	Params   optics.Params
	Grid     optics.Grid
	Curve    optics.Curve
	Envelope optics.Curve
	Summary  analysis.Summary
}

// NewData evaluates the model for p on grid.
func NewData(p optics.Params, grid optics.Grid) (*Data, error) {
	curve, err := optics.Intensity(p, grid)
	if err != nil {
		return nil, err
	}
	env, err := optics.Envelope(p, grid)
	if err != nil {
		return nil, err
	}
	return &Data{
		Params:   p,
		Grid:     grid,
		Curve:    curve,
		Envelope: env,
		Summary:  analysis.Summarize(p, grid, curve),
	}, nil
}

// Write renders d in format f.
func Write(w io.Writer, f Format, d *Data) error {
	switch f {
	case HTML:
		return WriteHTML(w, d)
	case SVG:
		_, err := io.WriteString(w, CurveToSVG(d.Grid, d.Curve, 960, 480, "#00ffff"))
		return err
	case CSV:
		return WriteCSV(w, d)
	case JSON:
		return WriteJSON(w, d)
	}
	return fmt.Errorf("unsupported format: %v", f)
}

// WriteFile renders d into path.
func WriteFile(path string, f Format, d *Data) error {
	start := time.Now()
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if err := Write(file, f, d); err != nil {
		return fmt.Errorf("failed to render %s: %w", f, err)
	}
	log.WithFields(log.Fields{
		"path":   path,
		"format": f.String(),
		"time":   time.Since(start),
	}).Info("Curve exported")
	return nil
}
