// Package optics provides the double-slit intensity model.
//
// The package evaluates the Fraunhofer pattern of two slits of width a,
// separated by d, lit by light of wavelength λ and observed on a screen
// at distance L:
//
//   - [Params]: the four physical parameters in SI units
//   - [Grid]: the fixed screen positions the pattern is sampled on
//   - [Intensity]: envelope times interference, the displayed curve
//   - [Envelope] and [Interference]: the two factors on their own
//
// # Example
//
//	p := optics.DefaultParams()
//	curve, err := optics.Intensity(p, optics.DefaultGrid())
//
// # Thread Safety
//
// All functions are pure. A [Grid] is never modified after construction and
// may be shared between goroutines.
package optics
