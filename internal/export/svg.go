package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/fringe/internal/optics"
)

// CurveToSVG draws curve over grid as a single path. The x axis spans the
// grid, the y axis is fixed to [0, 1] so curves of different setups line up.
func CurveToSVG(grid optics.Grid, curve optics.Curve, width, height int, strokeColor string) string {
	n := len(curve)
	if len(grid) < n {
		n = len(grid)
	}
	if n < 2 {
		return ""
	}

	minX, maxX := grid[0], grid[n-1]
	rangeX := maxX - minX
	if rangeX == 0 {
		rangeX = 1
	}
	pad := 0.05 * float64(height)
	plotH := float64(height) - 2*pad

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#333333" stroke-width="1"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, pad+plotH, width, pad+plotH, strokeColor))

	for i := 0; i < n; i++ {
		x := (grid[i] - minX) / rangeX * float64(width)
		y := pad + plotH - curve[i]*plotH

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
