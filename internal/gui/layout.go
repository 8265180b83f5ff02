package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/fringe/internal/optics"
)

const (
	screenWidth  = 1280
	screenHeight = 720
)

var (
	plotRect = rl.NewRectangle(90, 90, 1110, 400)

	sliderTop     = float32(540)
	sliderPitch   = float32(38)
	sliderTrackX  = float32(260)
	sliderTrackW  = float32(640)
	sliderHitPadY = float32(12)
)

// curvePoints maps curve over grid into r with y in [0, 1] upwards.
func curvePoints(grid optics.Grid, curve optics.Curve, r rl.Rectangle) []rl.Vector2 {
	n := len(curve)
	if len(grid) < n {
		n = len(grid)
	}
	if n < 2 {
		return nil
	}
	minX, maxX := grid[0], grid[n-1]
	span := maxX - minX
	if span == 0 {
		span = 1
	}

	points := make([]rl.Vector2, n)
	for i := 0; i < n; i++ {
		px := r.X + float32((grid[i]-minX)/span)*r.Width
		py := r.Y + r.Height - float32(curve[i])*r.Height
		points[i] = rl.NewVector2(px, py)
	}
	return points
}

// sliderTrack is the rectangle of the i-th slider's track.
func sliderTrack(i int) rl.Rectangle {
	return rl.NewRectangle(sliderTrackX, sliderTop+float32(i)*sliderPitch, sliderTrackW, 4)
}

// sliderHit is the mouse target of the i-th slider, taller than its track.
func sliderHit(i int) rl.Rectangle {
	t := sliderTrack(i)
	return rl.NewRectangle(t.X-8, t.Y-sliderHitPadY, t.Width+16, t.Height+2*sliderHitPadY)
}

// trackFraction converts a mouse x into a slider fraction.
func trackFraction(mouseX float32) float64 {
	return float64((mouseX - sliderTrackX) / sliderTrackW)
}

// xForMillimetre places a screen position in mm on the plot's x axis.
func xForMillimetre(mm float64) float32 {
	f := (mm - optics.GridStart*1e3) / ((optics.GridStop - optics.GridStart) * 1e3)
	return plotRect.X + float32(f)*plotRect.Width
}
