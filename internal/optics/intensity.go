package optics

import "math"

// Curve holds one value per grid position.
type Curve []float64

// Max returns the largest value, or 0 for an empty curve.
func (c Curve) Max() float64 {
	m := 0.0
	for _, v := range c {
		if v > m {
			m = v
		}
	}
	return m
}

// Intensity evaluates the double-slit pattern envelope(x)·interference(x) on
// every grid position. The result is a new slice; the grid is not touched.
func Intensity(p Params, grid Grid) (Curve, error) {
	if err := check(p, grid); err != nil {
		return nil, err
	}
	k := p.K()
	out := make(Curve, len(grid))
	for i, x := range grid {
		out[i] = envelope(k*p.SlitWidth*x) * interference(k*p.SlitSeparation*x)
	}
	return out, nil
}

// Envelope evaluates the single-slit factor (sin β/β)² alone. It does not
// depend on the slit separation.
func Envelope(p Params, grid Grid) (Curve, error) {
	if err := check(p, grid); err != nil {
		return nil, err
	}
	k := p.K()
	out := make(Curve, len(grid))
	for i, x := range grid {
		out[i] = envelope(k * p.SlitWidth * x)
	}
	return out, nil
}

// Interference evaluates the two-slit factor cos²(k·d·x) alone.
func Interference(p Params, grid Grid) (Curve, error) {
	if err := check(p, grid); err != nil {
		return nil, err
	}
	k := p.K()
	out := make(Curve, len(grid))
	for i, x := range grid {
		out[i] = interference(k * p.SlitSeparation * x)
	}
	return out, nil
}

func check(p Params, grid Grid) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if len(grid) == 0 {
		return ErrEmptyGrid
	}
	// the largest phase on the grid must stay finite or sin/cos yield NaN
	reach := 0.0
	for _, x := range grid {
		reach = math.Max(reach, math.Abs(x))
	}
	if phase := p.K() * math.Max(p.SlitWidth, p.SlitSeparation) * reach; math.IsInf(phase, 0) || math.IsNaN(phase) {
		return &ParamError{Name: "phase", Value: phase}
	}
	return nil
}

// envelope returns sinc²(beta). At beta == 0 the removable singularity takes
// its limit of 1.
func envelope(beta float64) float64 {
	if beta == 0 {
		return 1
	}
	s := math.Sin(beta) / beta
	return s * s
}

func interference(phase float64) float64 {
	c := math.Cos(phase)
	return c * c
}
