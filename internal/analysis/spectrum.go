package analysis

import (
	"errors"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/san-kum/fringe/internal/optics"
)

var (
	// ErrShortCurve indicates fewer than two samples or a grid/curve length mismatch.
	ErrShortCurve = errors.New("analysis: curve too short or not aligned with grid")

	// ErrNoFringes indicates no spectral peak above the envelope bandwidth.
	ErrNoFringes = errors.New("analysis: no fringe frequency above envelope bandwidth")
)

// Spectrum is the one-sided magnitude spectrum of a curve. Frequencies are in
// cycles per metre of screen.
type Spectrum struct {
	Frequencies []float64
	Magnitudes  []float64
}

// SpatialSpectrum transforms curve over the grid spacing.
func SpatialSpectrum(grid optics.Grid, curve optics.Curve) (Spectrum, error) {
	n := len(curve)
	if n < 2 || len(grid) != n {
		return Spectrum{}, ErrShortCurve
	}
	coeffs := fft.FFTReal(curve)
	df := 1 / (float64(n) * grid.Step())

	half := n/2 + 1
	s := Spectrum{
		Frequencies: make([]float64, half),
		Magnitudes:  make([]float64, half),
	}
	for k := 0; k < half; k++ {
		s.Frequencies[k] = float64(k) * df
		s.Magnitudes[k] = cmplx.Abs(coeffs[k])
	}
	return s, nil
}

// Dominant returns the strongest bin strictly above minFreq.
func (s Spectrum) Dominant(minFreq float64) (freq, magnitude float64, ok bool) {
	for k, f := range s.Frequencies {
		if f <= minFreq {
			continue
		}
		if !ok || s.Magnitudes[k] > magnitude {
			freq, magnitude, ok = f, s.Magnitudes[k], true
		}
	}
	return freq, magnitude, ok
}

// FringeFrequency finds the fringe frequency of curve. The envelope alone
// occupies |f| <= a/(λL), so the search starts at 1.5 times that bandwidth;
// setups with d < 1.5a have no separable fringe peak.
func FringeFrequency(p optics.Params, grid optics.Grid, curve optics.Curve) (float64, error) {
	spec, err := SpatialSpectrum(grid, curve)
	if err != nil {
		return 0, err
	}
	bandwidth := p.SlitWidth / (p.Wavelength * p.ScreenDistance)
	if p.SlitSeparation < 1.5*p.SlitWidth {
		return 0, ErrNoFringes
	}
	f, _, ok := spec.Dominant(1.5 * bandwidth)
	if !ok {
		return 0, ErrNoFringes
	}
	return f, nil
}

// ExpectedFringeFrequency returns d/(λL), the frequency the fringes follow
// when it stays below the grid's Nyquist limit.
func ExpectedFringeFrequency(p optics.Params) float64 {
	return p.SlitSeparation / (p.Wavelength * p.ScreenDistance)
}
