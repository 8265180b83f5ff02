package experiment

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/san-kum/fringe/internal/analysis"
	"github.com/san-kum/fringe/internal/control"
	"github.com/san-kum/fringe/internal/optics"
)

// Experiment is the state a UI owns: the sliders, the fixed grid and the
// curve currently on display. It is not safe for concurrent use; UIs call it
// from their event loop only.
type Experiment struct {
	panel    *control.Panel
	grid     optics.Grid
	params   optics.Params
	curve    optics.Curve
	envelope optics.Curve
	err      error
	revision int
}

// New computes the initial curve from the panel's current values.
func New(panel *control.Panel) (*Experiment, error) {
	e := &Experiment{
		panel: panel,
		grid:  optics.DefaultGrid(),
	}
	if err := e.Update(panel.Params()); err != nil {
		return nil, fmt.Errorf("initial render: %w", err)
	}
	return e, nil
}

// OnChange recomputes the curve after a slider moved. On failure the
// previous curve stays in place and the error is returned and kept.
func (e *Experiment) OnChange(f control.Field) error {
	s := e.panel.Slider(f)
	if s != nil {
		log.WithFields(log.Fields{
			"field": f,
			"value": s.Value(),
			"unit":  s.Unit,
		}).Debug("Slider changed")
	}
	return e.Update(e.panel.Params())
}

// Update evaluates the model for p and swaps the displayed curve.
func (e *Experiment) Update(p optics.Params) error {
	start := time.Now()

	curve, err := optics.Intensity(p, e.grid)
	if err == nil {
		var env optics.Curve
		env, err = optics.Envelope(p, e.grid)
		if err == nil {
			e.params = p
			e.curve = curve
			e.envelope = env
			e.err = nil
			e.revision++
			log.WithFields(log.Fields{
				"revision":        e.revision,
				"wavelength":      p.Wavelength,
				"slit_width":      p.SlitWidth,
				"screen_distance": p.ScreenDistance,
				"slit_separation": p.SlitSeparation,
				"time":            time.Since(start),
			}).Debug("Curve recomputed")
			return nil
		}
	}

	e.err = err
	log.WithError(err).WithField("revision", e.revision).Warn("Recompute rejected, keeping previous curve")
	return err
}

// Apply moves the sliders to p (clamped to their domains) and recomputes.
func (e *Experiment) Apply(p optics.Params) error {
	e.panel.SetParams(p)
	return e.Update(e.panel.Params())
}

// Reset returns the sliders to their initial values and recomputes.
func (e *Experiment) Reset() error {
	e.panel.Reset()
	return e.Refresh()
}

// Refresh recomputes from the sliders after they were moved directly.
func (e *Experiment) Refresh() error {
	return e.Update(e.panel.Params())
}

func (e *Experiment) Panel() *control.Panel {
	return e.panel
}

func (e *Experiment) Grid() optics.Grid {
	return e.grid
}

// Params returns the parameters of the displayed curve.
func (e *Experiment) Params() optics.Params {
	return e.params
}

func (e *Experiment) Curve() optics.Curve {
	return e.curve
}

func (e *Experiment) Envelope() optics.Curve {
	return e.envelope
}

// Err returns the error of the last recompute, or nil if it succeeded.
func (e *Experiment) Err() error {
	return e.err
}

// Revision counts successful recomputes, starting at 1 after New.
func (e *Experiment) Revision() int {
	return e.revision
}

// Summary measures the displayed curve.
func (e *Experiment) Summary() analysis.Summary {
	return analysis.Summarize(e.params, e.grid, e.curve)
}
