package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Align controls horizontal text anchoring.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Canvas is the raw 2D drawing surface the 3D views render onto. There is no
// depth buffer: later calls paint over earlier ones.
type Canvas interface {
	Size() (w, h int)
	Fill(clr color.Color)
	Line(x0, y0, x1, y1, width float64, clr color.Color)
	Disc(cx, cy, r float64, clr color.Color)
	// Glow paints a soft radial falloff from clr at the centre to transparent at r.
	Glow(cx, cy, r float64, clr color.NRGBA)
	Rect(x, y, w, h float64, clr color.Color)
	StrokeRect(x, y, w, h, width float64, clr color.Color)
	// Text draws s with its baseline box top at y; size is the pixel height.
	Text(x, y float64, s string, size float64, clr color.Color, align Align)
}

// glowRings is the number of concentric discs approximating a radial gradient.
const glowRings = 6

// Screen draws onto an Ebitengine image.
type Screen struct {
	Atlas *FontAtlas
	dst   *ebiten.Image
}

// NewScreen creates a canvas backed by the given atlas. Bind must be called
// with the frame's target image before drawing.
func NewScreen(atlas *FontAtlas) *Screen {
	return &Screen{Atlas: atlas}
}

// Bind sets the image subsequent draw calls paint onto.
func (s *Screen) Bind(dst *ebiten.Image) *Screen {
	s.dst = dst
	return s
}

func (s *Screen) Size() (int, int) {
	b := s.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Screen) Fill(clr color.Color) {
	s.dst.Fill(clr)
}

func (s *Screen) Line(x0, y0, x1, y1, width float64, clr color.Color) {
	vector.StrokeLine(s.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}

func (s *Screen) Disc(cx, cy, r float64, clr color.Color) {
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(r), clr, true)
}

func (s *Screen) Glow(cx, cy, r float64, clr color.NRGBA) {
	for i := glowRings; i >= 1; i-- {
		f := float64(i) / glowRings
		// Stacked rings accumulate toward full strength at the centre.
		s.Disc(cx, cy, r*f, Alpha(clr, (1-f)/glowRings*2+0.02))
	}
}

func (s *Screen) Rect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (s *Screen) StrokeRect(x, y, w, h, width float64, clr color.Color) {
	vector.StrokeRect(s.dst, float32(x), float32(y), float32(w), float32(h), float32(width), clr, false)
}

func (s *Screen) Text(x, y float64, str string, size float64, clr color.Color, align Align) {
	switch align {
	case AlignCenter:
		x -= TextWidth(str, size) / 2
	case AlignRight:
		x -= TextWidth(str, size)
	}
	scale := size / GlyphHeight
	var op ebiten.DrawImageOptions
	for i, r := range []rune(str) {
		g := s.Atlas.Glyph(r)
		if g == nil || r == ' ' {
			continue
		}
		op = ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(x+float64(i)*GlyphWidth*scale, y)
		op.ColorScale.ScaleWithColor(clr)
		s.dst.DrawImage(g, &op)
	}
}

// Baseline draws text whose baseline sits at y, matching how HUD layouts
// are specified.
func Baseline(c Canvas, x, y float64, s string, size float64, clr color.Color, align Align) {
	c.Text(x, y-size*glyphAscent/GlyphHeight, s, size, clr, align)
}
