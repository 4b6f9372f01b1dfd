package journey

import (
	"image/color"
	"math"
	"strings"

	"github.com/chaos-architect/astral_engine/internal/render"
)

const (
	panelW     = 560.0
	panelH     = 340.0
	panelPad   = 24.0
	answerSize = 12.0
	answerRows = 5
	logRows    = 4
)

var (
	shroud     = color.NRGBA{0, 0, 0, 230}
	boxColor   = color.NRGBA{17, 17, 17, 255}
	boxBorder  = render.Alpha(render.ColorGold, 0.3)
	titleColor = color.NRGBA{228, 228, 231, 255}
	proseColor = color.NRGBA{212, 212, 216, 255}
	faintColor = render.Alpha(render.ColorWhite, 0.4)
)

// Draw paints the engine and the overlay for the current phase.
func (m *Machine) Draw(c render.Canvas) {
	captured := m.in.Captured()
	flying := m.phase == PhaseFlying
	m.engine.Draw(c, flying, captured)

	switch {
	case flying && captured:
		m.drawLog(c)
	case m.phase == PhaseTeaching:
		m.drawTeaching(c)
	case m.phase == PhaseWarping:
		m.drawWarping(c)
	}
}

func (m *Machine) drawLog(c render.Canvas) {
	for i, e := range m.events.Recent(logRows) {
		clr := render.Alpha(render.ColorGold, 0.6)
		if e.Tone == ToneWarn {
			clr = render.Alpha(render.ColorRed, 0.8)
		}
		c.Text(20, 20+float64(i)*14, e.Text, 10, clr, render.AlignLeft)
	}
}

func (m *Machine) drawTeaching(c render.Canvas) {
	w, h := c.Size()
	fw, fh := float64(w), float64(h)
	c.Rect(0, 0, fw, fh, shroud)

	x, y := (fw-panelW)/2, (fh-panelH)/2
	cx := fw / 2
	c.Rect(x, y, panelW, panelH, render.ColorPanel)
	c.StrokeRect(x, y, panelW, panelH, 1, render.ColorGold)

	sym := m.Symbol()
	render.Baseline(c, cx, y+56, "MONOLITH ACCESSED", 26, titleColor, render.AlignCenter)
	render.Baseline(c, cx, y+84, "SYMBOL: "+strings.ToUpper(sym.Name), 12, render.ColorGold, render.AlignCenter)
	render.Baseline(c, cx, y+102, strings.ToUpper(sym.Short), 10, faintColor, render.AlignCenter)
	render.Baseline(c, cx, y+132, "Define the meaning of this symbol to construct the next sector.", 11, proseColor, render.AlignCenter)

	bx, by := x+panelPad, y+148
	bw, bh := panelW-2*panelPad, answerSize*1.5*answerRows+16
	c.Rect(bx, by, bw, bh, boxColor)
	c.StrokeRect(bx, by, bw, bh, 1, boxBorder)

	text := m.Philosophy()
	lines := wrapText(text, bw-16, answerSize)
	if len(lines) > answerRows {
		lines = lines[len(lines)-answerRows:]
	}
	if len(lines) == 0 {
		c.Text(bx+8, by+8, "The void is not empty, but full of potential...", answerSize, faintColor, render.AlignLeft)
	}
	for i, line := range lines {
		if i == len(lines)-1 && math.Mod(m.clock, 1) < 0.5 {
			line += "_"
		}
		c.Text(bx+8, by+8+float64(i)*answerSize*1.5, line, answerSize, titleColor, render.AlignLeft)
	}

	hint := "ENTER: INITIATE WARP JUMP | BACKSPACE: ERASE"
	hintColor := render.ColorGold
	if strings.TrimSpace(text) == "" {
		hintColor = render.Alpha(render.ColorGold, 0.5)
	}
	render.Baseline(c, cx, y+panelH-24, hint, 11, hintColor, render.AlignCenter)
}

func (m *Machine) drawWarping(c render.Canvas) {
	w, h := c.Size()
	pulse := 0.6 + 0.4*math.Sin(m.clock*4)
	render.Baseline(c, float64(w)/2, float64(h)/2, "GENERATING REALITY...", 16, render.Alpha(render.ColorGold, pulse), render.AlignCenter)
}
