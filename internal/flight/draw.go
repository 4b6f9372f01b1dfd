package flight

import (
	"image/color"
	"math"
	"sort"
	"strings"

	"github.com/chaos-architect/astral_engine/internal/geom"
	"github.com/chaos-architect/astral_engine/internal/render"
)

// Camera and draw range, in world units.
const (
	BaseFOV        = 800.0
	FOVPerSpeed    = 5.0
	NearPlane      = 10.0
	RenderDistance = 6000.0

	aberration = 5.0
	pulseAmp   = 0.08
	pulseRate  = 2.0

	ringRadius   = 15.0
	ringSegments = 32
	bankOffset   = 30.0
	bankLength   = 10.0
	barWidth     = 200.0
	barHeight    = 4.0
	barFullSpeed = 10.0
)

var (
	ghostRed  = render.Alpha(render.ColorRed, 0.7)
	ghostCyan = render.Alpha(render.ColorCyan, 0.7)
	hintColor = render.Alpha(render.ColorWhite, 0.5)
)

type ranked struct {
	Block
	distSq float64
}

// DrawOrder returns the blocks within render distance of eye, farthest first.
func DrawOrder(blocks []Block, eye geom.Vec3) []Block {
	order := rank(nil, blocks, eye)
	out := make([]Block, len(order))
	for i := range order {
		out[i] = order[i].Block
	}
	return out
}

func rank(dst []ranked, blocks []Block, eye geom.Vec3) []ranked {
	dst = dst[:0]
	for _, b := range blocks {
		d := b.Pos.DistSq(eye)
		if d < RenderDistance*RenderDistance {
			dst = append(dst, ranked{Block: b, distSq: d})
		}
	}
	sort.SliceStable(dst, func(i, j int) bool { return dst[i].distSq > dst[j].distSq })
	return dst
}

// Camera is the view from the cockpit. The field of view widens with speed.
func (e *Engine) Camera(w, h int) geom.Camera {
	return geom.Camera{
		Position: e.player.Pos,
		Rotation: e.player.Rot,
		FOV:      BaseFOV + e.player.Speed*FOVPerSpeed,
		Near:     NearPlane,
		CenterX:  float64(w) / 2,
		CenterY:  float64(h) / 2,
	}
}

// Draw paints the level. The HUD is drawn only when hud is set; captured
// selects between the flight instruments and the idle prompt.
func (e *Engine) Draw(c render.Canvas, hud, captured bool) {
	w, h := c.Size()
	cam := e.Camera(w, h)

	c.Fill(e.fog)
	e.drawDust(c, &cam, w, h)

	e.blocks = e.world.Blocks(e.blocks[:0])
	e.order = rank(e.order, e.blocks, e.player.Pos)
	for i := range e.order {
		e.drawBlock(c, &cam, &e.order[i].Block)
	}

	if hud {
		e.drawHUD(c, w, h, captured)
	}
}

// drawDust streaks each particle away from the viewport centre.
func (e *Engine) drawDust(c render.Canvas, cam *geom.Camera, w, h int) {
	cx, cy := float64(w)/2, float64(h)/2
	for _, pt := range e.world.Particles {
		p := geom.Jitter(cam.Project(pt), e.shake, e.rng)
		if !p.Visible {
			continue
		}
		length := math.Min(e.player.Speed*2, 100) * p.Scale
		angle := math.Atan2(p.Y-cy, p.X-cx)
		clr := render.Alpha(render.ColorDust, 0.5*math.Min(1, p.Scale))
		c.Line(p.X, p.Y, p.X+math.Cos(angle)*length, p.Y+math.Sin(angle)*length, p.Scale*2, clr)
	}
}

// Vertices returns the wireframe corners of a block of the given style.
func Vertices(style GeometryStyle, center geom.Vec3, size float64, dst []geom.Vec3) []geom.Vec3 {
	hs := size / 2
	x, y, z := center.X, center.Y, center.Z
	dst = dst[:0]
	switch style {
	case StylePyramid:
		return append(dst,
			geom.V(x, y-hs, z),
			geom.V(x-hs, y+hs, z-hs), geom.V(x+hs, y+hs, z-hs),
			geom.V(x+hs, y+hs, z+hs), geom.V(x-hs, y+hs, z+hs),
		)
	case StyleOctahedron:
		return append(dst,
			geom.V(x, y-hs, z), geom.V(x, y+hs, z),
			geom.V(x-hs, y, z), geom.V(x, y, z-hs),
			geom.V(x+hs, y, z), geom.V(x, y, z+hs),
		)
	default:
		return append(dst,
			geom.V(x-hs, y-hs, z-hs), geom.V(x+hs, y-hs, z-hs),
			geom.V(x+hs, y+hs, z-hs), geom.V(x-hs, y+hs, z-hs),
			geom.V(x-hs, y-hs, z+hs), geom.V(x+hs, y-hs, z+hs),
			geom.V(x+hs, y+hs, z+hs), geom.V(x-hs, y+hs, z+hs),
		)
	}
}

var (
	cubeEdges = [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	pyramidEdges = [][2]int{
		{1, 2}, {2, 3}, {3, 4}, {4, 1},
		{1, 0}, {2, 0}, {3, 0}, {4, 0},
	}
	octahedronEdges = [][2]int{
		{2, 3}, {3, 4}, {4, 5}, {5, 2},
		{2, 0}, {2, 1}, {3, 0}, {3, 1},
		{4, 0}, {4, 1}, {5, 0}, {5, 1},
	}
)

// Edges returns the index pairs joining the vertices of style.
func Edges(style GeometryStyle) [][2]int {
	switch style {
	case StylePyramid:
		return pyramidEdges
	case StyleOctahedron:
		return octahedronEdges
	default:
		return cubeEdges
	}
}

// drawBlock strokes one wireframe. A shape with any vertex behind the near
// plane is skipped.
func (e *Engine) drawBlock(c render.Canvas, cam *geom.Camera, b *Block) {
	size := b.Size
	if b.Kind == KindTarget {
		size *= 1 + pulseAmp*math.Sin(e.clock*pulseRate+b.Pulse)
	}
	style := e.params.GeometryStyle
	e.verts = Vertices(style, b.Pos, size, e.verts)

	var ok bool
	e.proj, ok = cam.ProjectAll(e.verts, e.proj)
	if !ok {
		return
	}
	for i := range e.proj {
		e.proj[i] = geom.Jitter(e.proj[i], e.shake, e.rng)
	}

	edges := Edges(style)
	if e.player.Boost {
		stroke(c, e.proj, edges, -aberration, 2, ghostRed)
		stroke(c, e.proj, edges, aberration, 2, ghostCyan)
	}
	stroke(c, e.proj, edges, 0, 1.5, b.Color)
}

func stroke(c render.Canvas, p []geom.Projected, edges [][2]int, dx, width float64, clr color.NRGBA) {
	for _, ed := range edges {
		a, b := p[ed[0]], p[ed[1]]
		c.Line(a.X+dx, a.Y, b.X+dx, b.Y, width, clr)
	}
}

func (e *Engine) drawHUD(c render.Canvas, w, h int, captured bool) {
	cx, cy := float64(w)/2, float64(h)/2
	fw, fh := float64(w), float64(h)

	for i := 0; i < ringSegments; i++ {
		a0 := 2 * math.Pi * float64(i) / ringSegments
		a1 := 2 * math.Pi * float64(i+1) / ringSegments
		c.Line(cx+math.Cos(a0)*ringRadius, cy+math.Sin(a0)*ringRadius,
			cx+math.Cos(a1)*ringRadius, cy+math.Sin(a1)*ringRadius, 1, e.accent)
	}

	// Horizon marks counter-rotate with the roll.
	ux, uy := math.Cos(-e.player.Rot.Roll), math.Sin(-e.player.Rot.Roll)
	r1x, r1y := cx+ux*bankOffset, cy+uy*bankOffset
	r2x, r2y := cx-ux*bankOffset, cy-uy*bankOffset
	c.Line(r1x, r1y, r1x+ux*bankLength, r1y+uy*bankLength, 1, e.accent)
	c.Line(r2x, r2y, r2x-ux*bankLength, r2y-uy*bankLength, 1, e.accent)

	fill := render.ColorGold
	if e.player.Boost {
		fill = render.ColorCyan
	}
	c.Rect(cx-barWidth/2, fh-60, barWidth, barHeight, render.ColorSpeedRail)
	c.Rect(cx-barWidth/2, fh-60, barWidth*SpeedFraction(e.player.Speed), barHeight, fill)

	if !captured {
		c.Rect(0, 0, fw, fh, render.ColorVeil)
		render.Baseline(c, cx, cy-30, "SYSTEM IDLE", 30, render.ColorGold, render.AlignCenter)
		render.Baseline(c, cx, cy+30, "CLICK TO ENGAGE FLIGHT SYSTEMS", 14, render.ColorWhite, render.AlignCenter)
		return
	}
	render.Baseline(c, 20, fh-30, "SECTOR: "+strings.ToUpper(e.params.ThemeName), 14, e.accent, render.AlignLeft)
	render.Baseline(c, fw-20, fh-30, "Q/E: ROLL | SHIFT: BOOST | WASD: THRUST", 10, hintColor, render.AlignRight)
}

// SpeedFraction is how full the speed bar is.
func SpeedFraction(speed float64) float64 {
	return geom.Clamp(speed/barFullSpeed, 0, 1)
}
