package dome

import (
	"fmt"
	"math"

	"github.com/chaos-architect/astral_engine/internal/geom"
	"github.com/chaos-architect/astral_engine/internal/render"
)

const (
	glowMag  = 2.5
	labelMag = 2.0
	boostMag = 1.0
	minSize  = 0.5

	gridDecStep = 20
	gridDecMax  = 80
	gridRAStep  = 30
	gridArcStep = 10

	reticle = 20.0
	dash    = 5.0
)

var (
	gridColor   = render.Alpha(render.ColorGold, 0.15)
	figureColor = render.Alpha(render.ColorGold, 0.3)
	labelColor  = render.Alpha(render.ColorGold, 0.8)
	nameColor   = render.Alpha(render.ColorWhite, 0.7)
)

// Twinkle is the brightness factor of star index at t seconds.
func Twinkle(t float64, index int) float64 {
	return 0.8 + 0.2*math.Sin(t*1000*0.005+float64(index))
}

// StarSize is the core radius of a star of magnitude mag at projected scale.
func StarSize(mag, scale, twinkle float64) float64 {
	size := (3 - mag*0.4) * scale * twinkle
	if mag < boostMag {
		size *= 2
	}
	return math.Max(size, minSize)
}

// Draw paints the sky onto c.
func (d *Dome) Draw(c render.Canvas) {
	w, h := c.Size()
	cam := d.camera(w, h)

	c.Fill(render.ColorSpace)

	if d.interactive {
		d.drawGrid(c, &cam)
	}

	for i := range d.stars {
		d.proj[i] = cam.Project(d.stars[i].Pos)
	}

	if d.interactive {
		for _, l := range Lines {
			a, b := d.proj[l.From], d.proj[l.To]
			if a.Visible && b.Visible {
				c.Line(a.X, a.Y, b.X, b.Y, 1.5, figureColor)
			}
		}
		for i, pos := range d.labels {
			p := cam.Project(pos)
			if p.Visible {
				render.Baseline(c, p.X, p.Y-10, Labels[i].Name, 12, labelColor, render.AlignCenter)
			}
		}
	}

	d.drawStars(c)

	if d.interactive {
		d.drawHUD(c, w, h)
	}
}

func (d *Dome) drawStars(c render.Canvas) {
	for i := range d.stars {
		p := d.proj[i]
		if !p.Visible {
			continue
		}
		s := &d.stars[i]
		tw := Twinkle(d.clock, s.Index)
		size := StarSize(s.Mag, p.Scale, tw)

		if s.Mag < glowMag {
			c.Glow(p.X, p.Y, size*4, render.Alpha(s.Color, 0.4*tw))
		}

		alpha := 1.0
		if !d.interactive {
			alpha = math.Min(1, tw/(1+s.Mag*0.5))
		}
		c.Disc(p.X, p.Y, size, render.Alpha(s.Color, alpha))

		if d.interactive && s.Name != "" && s.Mag < labelMag {
			render.Baseline(c, p.X+8, p.Y+3, s.Name, 10, nameColor, render.AlignLeft)
		}
	}
}

// drawGrid traces circles of constant declination and meridians of constant
// right ascension, breaking each polyline where it leaves the view.
func (d *Dome) drawGrid(c render.Canvas, cam *geom.Camera) {
	for lat := -gridDecMax; lat <= gridDecMax; lat += gridDecStep {
		var prev geom.Projected
		for lon := 0; lon <= 360; lon += gridArcStep {
			p := cam.Project(gridPoint(float64(lat), float64(lon)))
			segment(c, prev, p)
			prev = p
		}
	}
	for lon := 0; lon < 360; lon += gridRAStep {
		var prev geom.Projected
		for lat := -90; lat <= 90; lat += gridArcStep {
			p := cam.Project(gridPoint(float64(lat), float64(lon)))
			segment(c, prev, p)
			prev = p
		}
	}
}

func gridPoint(latDeg, lonDeg float64) geom.Vec3 {
	lat, lon := geom.DegToRad(latDeg), geom.DegToRad(lonDeg)
	r := Radius * math.Cos(lat)
	return geom.Vec3{X: r * math.Cos(lon), Y: Radius * math.Sin(lat), Z: r * math.Sin(lon)}
}

func segment(c render.Canvas, a, b geom.Projected) {
	if a.Visible && b.Visible {
		c.Line(a.X, a.Y, b.X, b.Y, 1, gridColor)
	}
}

func (d *Dome) drawHUD(c render.Canvas, w, h int) {
	cx, cy := float64(w)/2, float64(h)/2
	dashed(c, cx-reticle, cy, cx+reticle, cy)
	dashed(c, cx, cy-reticle, cx, cy+reticle)

	fh := float64(h)
	c.Rect(20, fh-100, 200, 80, render.ColorPanel)
	c.StrokeRect(20, fh-100, 200, 80, 1, render.ColorGold)

	raH, raM, dec, fov := d.Telemetry()
	render.Baseline(c, 35, fh-75, fmt.Sprintf("RA:  %dh %dm", raH, raM), 12, render.ColorGold, render.AlignLeft)
	render.Baseline(c, 35, fh-55, fmt.Sprintf("DEC: %.2f deg", dec), 12, render.ColorGold, render.AlignLeft)
	render.Baseline(c, 35, fh-35, fmt.Sprintf("FOV: %.1fmm", fov), 12, render.ColorGold, render.AlignLeft)
}

// dashed draws an axis-aligned 5-on 5-off dashed line.
func dashed(c render.Canvas, x0, y0, x1, y1 float64) {
	length := math.Hypot(x1-x0, y1-y0)
	ux, uy := (x1-x0)/length, (y1-y0)/length
	for s := 0.0; s < length; s += 2 * dash {
		e := math.Min(s+dash, length)
		c.Line(x0+ux*s, y0+uy*s, x0+ux*e, y0+uy*e, 1, render.ColorGold)
	}
}
