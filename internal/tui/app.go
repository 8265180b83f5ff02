package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	log "github.com/sirupsen/logrus"

	"github.com/san-kum/fringe/internal/config"
	"github.com/san-kum/fringe/internal/experiment"
)

const (
	minPlotWidth  = 40
	minPlotHeight = 8
	barWidth      = 24
)

type model struct {
	exp *experiment.Experiment

	cursor  int
	editing bool
	editBuf string

	showEnvelope bool
	showHelp     bool
	theme        int
	styles       styles
	presets      []string
	preset       int
	status       string

	width  int
	height int
}

// NewModel returns the interactive slider view over exp.
func NewModel(exp *experiment.Experiment, theme string) *model {
	idx := themeIndex(theme)
	return &model{
		exp:          exp,
		showEnvelope: true,
		theme:        idx,
		styles:       newStyles(Themes[idx]),
		presets:      config.ListPresets(),
		preset:       -1,
		width:        100,
		height:       32,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.editing {
		return m.editKey(msg)
	}
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	sliders := m.exp.Panel().Sliders()
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(sliders)-1 {
			m.cursor++
		}
	case "left", "h":
		m.nudge(-1)
	case "right", "l":
		m.nudge(1)
	case "shift+left", "H":
		m.nudge(-10)
	case "shift+right", "L":
		m.nudge(10)
	case "enter":
		m.editing = true
		m.editBuf = formatValue(sliders[m.cursor].Value())
	case "p":
		m.nextPreset()
	case "r":
		m.preset = -1
		m.status = ""
		m.exp.Reset()
	case "e":
		m.showEnvelope = !m.showEnvelope
	case "t":
		m.theme = (m.theme + 1) % len(Themes)
		m.styles = newStyles(Themes[m.theme])
	case "?":
		m.showHelp = true
	}
	return m, nil
}

func (m model) editKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter":
		m.commitEdit()
	case "esc":
		m.editing = false
		m.editBuf = ""
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	default:
		if len(msg.String()) == 1 {
			c := msg.String()[0]
			if (c >= '0' && c <= '9') || c == '.' || c == 'e' || c == '-' {
				m.editBuf += string(c)
			}
		}
	}
	return m, nil
}

func (m *model) commitEdit() {
	s := m.exp.Panel().Sliders()[m.cursor]
	buf := m.editBuf
	m.editing = false
	m.editBuf = ""

	v, err := strconv.ParseFloat(buf, 64)
	if err != nil {
		m.status = fmt.Sprintf("invalid %s %q", s.Label, buf)
		return
	}
	m.status = ""
	if !s.Contains(v) {
		m.status = fmt.Sprintf("%s clamped to [%g, %g] %s", s.Label, s.Min, s.Max, s.Unit)
	}
	if s.Set(v) {
		m.preset = -1
		// a failed recompute is kept by the experiment and shown on the status line
		m.exp.OnChange(s.Field)
	}
}

func (m *model) nudge(steps int) {
	s := m.exp.Panel().Sliders()[m.cursor]
	if s.Nudge(steps) {
		m.preset = -1
		m.exp.OnChange(s.Field)
	}
}

func (m *model) nextPreset() {
	if len(m.presets) == 0 {
		return
	}
	m.preset = (m.preset + 1) % len(m.presets)
	name := m.presets[m.preset]
	m.status = "preset " + name
	log.WithField("preset", name).Debug("Preset selected")
	config.GetPreset(name).ApplyTo(m.exp.Panel())
	m.exp.Refresh()
}

func (m model) View() string {
	if m.showHelp {
		return m.viewHelp()
	}

	var b strings.Builder
	st := m.styles
	theme := Themes[m.theme]

	b.WriteString("\n  " + gradientText("d o u b l e   s l i t", theme.Primary, theme.Secondary))
	b.WriteString("  " + st.muted.Render("theme "+theme.Name) + "\n\n")

	b.WriteString(m.viewPlot())
	b.WriteString("\n\n")

	controls := lipgloss.JoinHorizontal(lipgloss.Top,
		st.panel.Render(m.viewSliders()),
		"  ",
		st.panel.Render(m.viewMetrics()),
	)
	b.WriteString(controls + "\n")

	b.WriteString(m.viewStatus() + "\n")
	b.WriteString(st.dim.Render("  ↑↓ select  ←→ adjust  shift ×10  enter edit  p preset  r reset  e envelope  t theme  ? help  q quit") + "\n")

	return b.String()
}

func (m model) viewPlot() string {
	w := m.width - 14
	if w < minPlotWidth {
		w = minPlotWidth
	}
	h := m.height - 20
	if h < minPlotHeight {
		h = minPlotHeight
	}

	curve := []float64(m.exp.Curve())
	caption := "intensity vs position, -5 mm .. +5 mm"
	if m.showEnvelope {
		return asciigraph.PlotMany([][]float64{curve, m.exp.Envelope()},
			asciigraph.Height(h),
			asciigraph.Width(w),
			asciigraph.LowerBound(0),
			asciigraph.UpperBound(1),
			asciigraph.Precision(2),
			asciigraph.SeriesColors(asciigraph.Cyan, asciigraph.DarkGray),
			asciigraph.Caption(caption+", envelope dimmed"))
	}
	return asciigraph.Plot(curve,
		asciigraph.Height(h),
		asciigraph.Width(w),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(1),
		asciigraph.Precision(2),
		asciigraph.Caption(caption))
}

func (m model) viewSliders() string {
	var b strings.Builder
	st := m.styles

	for i, s := range m.exp.Panel().Sliders() {
		val := fmt.Sprintf("%7s", formatValue(s.Value()))
		if m.editing && i == m.cursor {
			val = fmt.Sprintf("%7s", m.editBuf+"▋")
		}
		line := fmt.Sprintf("%-12s", s.Label)
		if i == m.cursor {
			b.WriteString(st.accent.Render("▸ ") + st.selected.Render(line) + " " +
				st.value.Render(sliderBar(s.Fraction(), barWidth)) + " " +
				st.value.Render(val) + " " + st.label.Render(s.Unit))
		} else {
			b.WriteString("  " + st.label.Render(line) + " " +
				st.dim.Render(sliderBar(s.Fraction(), barWidth)) + " " +
				st.muted.Render(val) + " " + st.label.Render(s.Unit))
		}
		if i < m.exp.Panel().Len()-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m model) viewMetrics() string {
	st := m.styles
	s := m.exp.Summary()

	rows := []struct {
		label string
		value string
	}{
		{"fringe spacing", fmt.Sprintf("%.3f mm", s.FringeSpacing*1e3)},
		{"measured", fmt.Sprintf("%.3f mm", s.MeasuredSpacing*1e3)},
		{"envelope zero", fmt.Sprintf("%.3f mm", s.EnvelopeZero*1e3)},
		{"central fringes", strconv.Itoa(s.CentralFringes)},
	}

	var b strings.Builder
	for i, r := range rows {
		b.WriteString(st.label.Render(fmt.Sprintf("%-16s", r.label)) + st.value.Render(r.value))
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m model) viewStatus() string {
	st := m.styles
	if err := m.exp.Err(); err != nil {
		return "  " + st.err.Render("error: "+err.Error()) + st.muted.Render("  (previous curve kept)")
	}
	if m.status != "" {
		return "  " + st.warning.Render(m.status)
	}
	return "  " + st.dim.Render(fmt.Sprintf("revision %d", m.exp.Revision()))
}

func (m model) viewHelp() string {
	st := m.styles
	keys := [][2]string{
		{"↑ ↓", "select slider"},
		{"← →", "adjust by one step"},
		{"shift+← →", "adjust by ten steps"},
		{"enter", "type a value, esc cancels"},
		{"p", "next preset"},
		{"r", "reset to defaults"},
		{"e", "toggle envelope overlay"},
		{"t", "next colour theme"},
		{"?", "toggle this help"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString("\n  " + st.title.Render("keys") + "\n\n")
	for _, k := range keys {
		b.WriteString("  " + st.accent.Render(fmt.Sprintf("%-12s", k[0])) + st.muted.Render(k[1]) + "\n")
	}
	b.WriteString("\n  " + st.dim.Render("any key to return") + "\n")
	return b.String()
}

// Run starts the interactive view in the alternate screen.
func Run(exp *experiment.Experiment, theme string) error {
	p := tea.NewProgram(NewModel(exp, theme), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
