// Package analysis measures double-slit patterns.
//
// The package compares what a curve shows with what the geometry predicts:
//
//   - [Summarize]: theoretical spacing and envelope zero next to measured
//     peaks, spacing and visibility
//   - [SpatialSpectrum]: magnitude spectrum of a curve over screen position
//   - [FringeFrequency]: dominant fringe frequency, which follows d/(λL)
//   - [Sweep]: metrics over a range of one slider
//
// # Example
//
//	s := analysis.Summarize(p, grid, curve)
//	if s.Visibility < 0.5 {
//	    // fringes washed out
//	}
package analysis
