package analysis

import (
	"math"

	"github.com/san-kum/fringe/internal/optics"
)

// PeakThreshold is the fraction of the curve maximum a local maximum must
// exceed to count as a bright fringe.
const PeakThreshold = 0.01

// Summary holds theoretical and measured properties of a pattern. Lengths
// are in metres.
type Summary struct {
	FringeSpacing   float64 `json:"fringe_spacing"`
	EnvelopeZero    float64 `json:"envelope_zero"`
	CentralFringes  int     `json:"central_fringes"`
	Peaks           int     `json:"peaks"`
	MeasuredSpacing float64 `json:"measured_spacing"`
	Visibility      float64 `json:"visibility"`
	MaxIntensity    float64 `json:"max_intensity"`
}

// FringeSpacing returns the distance λL/d between adjacent bright fringes.
func FringeSpacing(p optics.Params) float64 {
	return p.Wavelength * p.ScreenDistance / p.SlitSeparation
}

// EnvelopeZero returns the position λL/a of the first single-slit minimum.
func EnvelopeZero(p optics.Params) float64 {
	return p.Wavelength * p.ScreenDistance / p.SlitWidth
}

// CentralFringes counts the bright fringes strictly inside the central
// envelope lobe. Orders that land on the envelope zero are missing.
func CentralFringes(p optics.Params) int {
	// Rounded so that d/a = 3 does not come out as 3.0000000000000004.
	ratio := math.Round(p.SlitSeparation/p.SlitWidth*1e6) / 1e6
	n := int(math.Ceil(ratio)) - 1
	if n < 0 {
		n = 0
	}
	return 2*n + 1
}

// Peaks returns the indices of local maxima above threshold·max(curve).
func Peaks(curve optics.Curve, threshold float64) []int {
	if len(curve) < 3 {
		return nil
	}
	limit := threshold * curve.Max()
	var peaks []int
	for i := 1; i < len(curve)-1; i++ {
		v := curve[i]
		if v > curve[i-1] && v >= curve[i+1] && v > limit {
			peaks = append(peaks, i)
		}
	}
	return peaks
}

// Visibility returns (Imax-Imin)/(Imax+Imin) over the samples with
// |x| < halfWidth, or 0 when nothing is bright enough to measure.
func Visibility(grid optics.Grid, curve optics.Curve, halfWidth float64) float64 {
	lo, hi := math.Inf(1), math.Inf(-1)
	for i, x := range grid {
		if i >= len(curve) || math.Abs(x) >= halfWidth {
			continue
		}
		lo = math.Min(lo, curve[i])
		hi = math.Max(hi, curve[i])
	}
	if math.IsInf(lo, 0) || hi+lo <= 0 {
		return 0
	}
	return (hi - lo) / (hi + lo)
}

// Summarize measures curve against the geometry of p. Peaks, spacing and
// visibility are taken from the central envelope lobe only.
func Summarize(p optics.Params, grid optics.Grid, curve optics.Curve) Summary {
	s := Summary{
		FringeSpacing:  FringeSpacing(p),
		EnvelopeZero:   EnvelopeZero(p),
		CentralFringes: CentralFringes(p),
		MaxIntensity:   curve.Max(),
	}

	var central []float64
	for _, i := range Peaks(curve, PeakThreshold) {
		if i < len(grid) && math.Abs(grid[i]) < s.EnvelopeZero {
			central = append(central, grid[i])
		}
	}
	s.Peaks = len(central)
	if len(central) > 1 {
		s.MeasuredSpacing = (central[len(central)-1] - central[0]) / float64(len(central)-1)
	}
	s.Visibility = Visibility(grid, curve, s.EnvelopeZero)
	return s
}
