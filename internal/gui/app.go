package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	log "github.com/sirupsen/logrus"

	"github.com/san-kum/fringe/internal/config"
	"github.com/san-kum/fringe/internal/experiment"
)

// Monochrome palette with a single accent for the curve.
var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColAccent  = rl.NewColor(0, 220, 220, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColGrid    = rl.NewColor(30, 30, 30, 255)
	ColError   = rl.NewColor(255, 70, 70, 255)
)

type App struct {
	Exp          *experiment.Experiment
	Font         rl.Font
	Selected     int
	Dragging     int
	ShowEnvelope bool

	presets []string
	preset  int
	status  string
	quit    bool
}

func initWindow() {
	rl.InitWindow(screenWidth, screenHeight, "fringe")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

// loadFont loads Liberation Mono, falling back to raylib's built-in font.
func loadFont() rl.Font {
	font := rl.LoadFontEx("/usr/share/fonts/liberation/LiberationMono-Regular.ttf", 32, nil, 0)
	if font.Texture.ID == 0 {
		return rl.GetFontDefault()
	}
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

func NewApp(exp *experiment.Experiment) *App {
	return &App{
		Exp:          exp,
		Font:         loadFont(),
		Dragging:     -1,
		ShowEnvelope: true,
		presets:      config.ListPresets(),
		preset:       -1,
	}
}

// Run opens the window and blocks until it is closed.
func Run(exp *experiment.Experiment) {
	initWindow()
	defer rl.CloseWindow()

	log.Info("Window opened")
	app := NewApp(exp)
	app.RunLoop()
	log.WithField("revision", exp.Revision()).Info("Window closed")
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() && !a.quit {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	a.handleKeys()
	a.handleMouse()
}

func (a *App) handleKeys() {
	sliders := a.Exp.Panel().Sliders()

	if rl.IsKeyPressed(rl.KeyQ) {
		a.quit = true
	}
	if rl.IsKeyPressed(rl.KeyUp) && a.Selected > 0 {
		a.Selected--
	}
	if rl.IsKeyPressed(rl.KeyDown) && a.Selected < len(sliders)-1 {
		a.Selected++
	}

	steps := 1
	if rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift) {
		steps = 10
	}
	if rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressedRepeat(rl.KeyLeft) {
		a.nudge(-steps)
	}
	if rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressedRepeat(rl.KeyRight) {
		a.nudge(steps)
	}

	if rl.IsKeyPressed(rl.KeyR) {
		a.preset = -1
		a.status = ""
		a.Exp.Reset()
	}
	if rl.IsKeyPressed(rl.KeyE) {
		a.ShowEnvelope = !a.ShowEnvelope
	}
	if rl.IsKeyPressed(rl.KeyP) && len(a.presets) > 0 {
		a.preset = (a.preset + 1) % len(a.presets)
		name := a.presets[a.preset]
		a.status = "preset " + name
		config.GetPreset(name).ApplyTo(a.Exp.Panel())
		a.Exp.Refresh()
	}
}

func (a *App) handleMouse() {
	mouse := rl.GetMousePosition()

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		for i := range a.Exp.Panel().Sliders() {
			if rl.CheckCollisionPointRec(mouse, sliderHit(i)) {
				a.Dragging = i
				a.Selected = i
				break
			}
		}
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		a.Dragging = -1
	}

	if a.Dragging >= 0 && rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		s := a.Exp.Panel().Sliders()[a.Dragging]
		if s.SetFraction(trackFraction(mouse.X)) {
			a.preset = -1
			a.Exp.OnChange(s.Field)
		}
	}
}

func (a *App) nudge(steps int) {
	s := a.Exp.Panel().Sliders()[a.Selected]
	if s.Nudge(steps) {
		a.preset = -1
		a.Exp.OnChange(s.Field)
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.drawPlot()
	a.drawSliders()
	a.DrawHUD()

	rl.EndDrawing()
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

func (a *App) drawPlot() {
	r := plotRect

	// one vertical line per millimetre
	for mm := -5; mm <= 5; mm++ {
		x := xForMillimetre(float64(mm))
		rl.DrawLineV(rl.NewVector2(x, r.Y), rl.NewVector2(x, r.Y+r.Height), ColGrid)
		a.drawText(fmt.Sprintf("%d", mm), int(x)-4, int(r.Y+r.Height)+8, 14, ColTextDim)
	}
	for _, level := range []float64{0, 0.5, 1} {
		y := r.Y + r.Height - float32(level)*r.Height
		rl.DrawLineV(rl.NewVector2(r.X, y), rl.NewVector2(r.X+r.Width, y), ColGrid)
		a.drawText(fmt.Sprintf("%.1f", level), int(r.X)-40, int(y)-7, 14, ColTextDim)
	}
	rl.DrawRectangleLinesEx(r, 1, ColTextDim)
	a.drawText("position, mm", int(r.X+r.Width)-110, int(r.Y+r.Height)+26, 14, ColText)

	grid := a.Exp.Grid()
	if a.ShowEnvelope {
		if pts := curvePoints(grid, a.Exp.Envelope(), r); pts != nil {
			rl.DrawLineStrip(pts, ColTextDim)
		}
	}
	if pts := curvePoints(grid, a.Exp.Curve(), r); pts != nil {
		rl.DrawLineStrip(pts, ColAccent)
	}
}

func (a *App) drawSliders() {
	for i, s := range a.Exp.Panel().Sliders() {
		track := sliderTrack(i)
		labelCol, knobCol := ColText, ColText
		if i == a.Selected {
			labelCol, knobCol = ColSelect, ColAccent
		}

		a.drawText(s.Label, 90, int(track.Y)-8, 18, labelCol)
		rl.DrawRectangleRec(track, ColGrid)
		filled := rl.NewRectangle(track.X, track.Y, track.Width*float32(s.Fraction()), track.Height)
		rl.DrawRectangleRec(filled, ColTextDim)
		knob := rl.NewVector2(track.X+track.Width*float32(s.Fraction()), track.Y+track.Height/2)
		rl.DrawCircleV(knob, 7, knobCol)

		a.drawText(fmt.Sprintf("%g %s", s.Value(), s.Unit), int(track.X+track.Width)+30, int(track.Y)-8, 18, labelCol)
	}
}

func (a *App) DrawHUD() {
	a.drawText("fringe", 30, 30, 24, ColSelect)
	a.drawText(":: double slit", 130, 34, 16, ColText)

	s := a.Exp.Summary()
	x := 1060
	a.drawText(fmt.Sprintf("spacing   %.3f mm", s.FringeSpacing*1e3), x, 540, 14, ColText)
	a.drawText(fmt.Sprintf("measured  %.3f mm", s.MeasuredSpacing*1e3), x, 560, 14, ColText)
	a.drawText(fmt.Sprintf("env zero  %.3f mm", s.EnvelopeZero*1e3), x, 580, 14, ColText)
	a.drawText(fmt.Sprintf("central   %d", s.CentralFringes), x, 600, 14, ColText)

	if err := a.Exp.Err(); err != nil {
		a.drawText("error: "+err.Error(), 30, 650, 14, ColError)
	} else if a.status != "" {
		a.drawText(a.status, 30, 650, 14, ColAccent)
	}

	a.drawText("[DRAG] SLIDER  [ARROWS] ADJUST  [SHIFT] x10  [P] PRESET  [R] RESET  [E] ENVELOPE  [Q] QUIT", 420, 680, 14, ColTextDim)
	a.drawText(fmt.Sprintf("%d FPS", int32(rl.GetFPS())), 30, 680, 14, ColTextDim)
}
