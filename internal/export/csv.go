package export

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteCSV writes one row per grid position: position in millimetres,
// intensity and envelope.
func WriteCSV(w io.Writer, d *Data) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"position_mm", "intensity", "envelope"}); err != nil {
		return err
	}
	mm := d.Grid.Millimetres()
	for i := range d.Curve {
		row := []string{
			strconv.FormatFloat(mm[i], 'f', 6, 64),
			strconv.FormatFloat(d.Curve[i], 'g', 10, 64),
			strconv.FormatFloat(d.Envelope[i], 'g', 10, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
