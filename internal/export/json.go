package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/fringe/internal/analysis"
	"github.com/san-kum/fringe/internal/optics"
)

type jsonData struct {
	Params    optics.Params    `json:"params"`
	Samples   int              `json:"samples"`
	Positions []float64        `json:"positions"`
	Intensity []float64        `json:"intensity"`
	Envelope  []float64        `json:"envelope"`
	Summary   analysis.Summary `json:"summary"`
}

func WriteJSON(w io.Writer, d *Data) error {
	data := jsonData{
		Params:    d.Params,
		Samples:   len(d.Curve),
		Positions: d.Grid,
		Intensity: d.Curve,
		Envelope:  d.Envelope,
		Summary:   d.Summary,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
