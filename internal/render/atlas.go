package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	GlyphWidth  = 7  // basicfont.Face7x13 advance
	GlyphHeight = 13 // basicfont.Face7x13 line height
	glyphAscent = 11

	firstGlyph = 32
	lastGlyph  = 126
	atlasCols  = 16
)

// FontAtlas holds the printable ASCII glyphs rendered once at startup.
type FontAtlas struct {
	image  *ebiten.Image
	glyphs [lastGlyph - firstGlyph + 1]*ebiten.Image
}

// NewFontAtlas rasterises basicfont.Face7x13 into a single texture.
func NewFontAtlas() *FontAtlas {
	count := lastGlyph - firstGlyph + 1
	rows := (count + atlasCols - 1) / atlasCols
	img := image.NewNRGBA(image.Rect(0, 0, atlasCols*GlyphWidth, rows*GlyphHeight))
	face := basicfont.Face7x13

	for code := firstGlyph; code <= lastGlyph; code++ {
		i := code - firstGlyph
		drawFontGlyph(img, face, (i%atlasCols)*GlyphWidth, (i/atlasCols)*GlyphHeight, rune(code))
	}

	eimg := ebiten.NewImageFromImage(img)
	a := &FontAtlas{image: eimg}
	for code := firstGlyph; code <= lastGlyph; code++ {
		i := code - firstGlyph
		x := (i % atlasCols) * GlyphWidth
		y := (i / atlasCols) * GlyphHeight
		a.glyphs[i] = eimg.SubImage(image.Rect(x, y, x+GlyphWidth, y+GlyphHeight)).(*ebiten.Image)
	}
	return a
}

// Glyph returns the sub-image for r, or nil for anything outside printable ASCII.
func (a *FontAtlas) Glyph(r rune) *ebiten.Image {
	if r < firstGlyph || r > lastGlyph {
		return nil
	}
	return a.glyphs[r-firstGlyph]
}

// TextWidth is the rendered width of s at the given pixel height.
func TextWidth(s string, size float64) float64 {
	return float64(len([]rune(s))) * GlyphWidth * size / GlyphHeight
}

func drawFontGlyph(img *image.NRGBA, face font.Face, cellX, cellY int, r rune) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(cellX, cellY+glyphAscent),
	}
	d.DrawString(string(r))
}
