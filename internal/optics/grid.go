package optics

// Screen window of the default grid, in metres.
const (
	GridStart   = -0.005
	GridStop    = 0.005
	GridSamples = 1000
)

// Grid is an ordered set of screen positions in metres.
type Grid []float64

// Linspace returns n evenly spaced samples from start to stop. Both endpoints
// are included and the last sample equals stop exactly.
func Linspace(start, stop float64, n int) Grid {
	if n <= 0 {
		return Grid{}
	}
	g := make(Grid, n)
	if n == 1 {
		g[0] = start
		return g
	}
	step := (stop - start) / float64(n-1)
	for i := range g {
		g[i] = start + float64(i)*step
	}
	g[n-1] = stop
	return g
}

var defaultGrid = Linspace(GridStart, GridStop, GridSamples)

// DefaultGrid returns a copy of the 1000-sample grid over [-5, 5] mm.
func DefaultGrid() Grid {
	return defaultGrid.Clone()
}

func (g Grid) Clone() Grid {
	c := make(Grid, len(g))
	copy(c, g)
	return c
}

// Step returns the spacing between adjacent samples, or 0 for fewer than two.
func (g Grid) Step() float64 {
	if len(g) < 2 {
		return 0
	}
	return (g[len(g)-1] - g[0]) / float64(len(g)-1)
}

// Millimetres returns the positions scaled for display.
func (g Grid) Millimetres() []float64 {
	mm := make([]float64, len(g))
	for i, x := range g {
		mm[i] = x * 1e3
	}
	return mm
}
