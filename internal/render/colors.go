package render

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Interface palette shared by the dome and the flight HUD.
var (
	ColorSpace     = color.NRGBA{3, 3, 3, 255}       // dome background
	ColorGold      = color.NRGBA{212, 175, 55, 255}  // #d4af37
	ColorWhite     = color.NRGBA{255, 255, 255, 255} //
	ColorCyan      = color.NRGBA{0, 255, 255, 255}   // boost bar, aberration
	ColorRed       = color.NRGBA{255, 0, 0, 255}     // aberration
	ColorPanel     = color.NRGBA{10, 10, 10, 204}    // telemetry block
	ColorVeil      = color.NRGBA{0, 0, 0, 178}       // idle overlay
	ColorDust      = color.NRGBA{255, 255, 255, 128} // warp streaks
	ColorSpeedRail = color.NRGBA{255, 255, 255, 51}  //
)

// Hex parses a "#rrggbb" string.
func Hex(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.NRGBA{r, g, b, 255}, nil
}

// HexOr parses s and falls back to def when it is not a valid colour.
func HexOr(s string, def color.NRGBA) color.NRGBA {
	c, err := Hex(s)
	if err != nil {
		return def
	}
	return c
}

// ValidHex reports whether s parses as a hex colour.
func ValidHex(s string) bool {
	_, err := colorful.Hex(s)
	return err == nil
}

// Alpha returns c with its alpha channel scaled by a in [0,1].
func Alpha(c color.NRGBA, a float64) color.NRGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	c.A = uint8(float64(c.A) * a)
	return c
}

// Tint blends c toward t by amount in [0,1], in Lab space, keeping c's alpha.
func Tint(c, t color.NRGBA, amount float64) color.NRGBA {
	a := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	b := colorful.Color{R: float64(t.R) / 255, G: float64(t.G) / 255, B: float64(t.B) / 255}
	r, g, bl := a.BlendLab(b, amount).Clamped().RGB255()
	return color.NRGBA{r, g, bl, c.A}
}
