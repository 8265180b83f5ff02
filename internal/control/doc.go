// Package control provides the slider controls that drive the intensity model.
//
// A [Slider] holds one value in its display unit (nm, µm, cm, mm) together
// with its inclusive bounds and converts it to metres on demand:
//
//   - [Slider]: bounded scalar with step nudging and fractional positioning
//   - [Panel]: the four sliders of the setup, in display order
//
// # Usage
//
//	panel := control.NewPanel()
//	panel.Slider(control.Wavelength).Set(633)
//	p := panel.Params() // optics.Params in SI units
//
// Sliders never leave their domain: every setter clamps.
package control
