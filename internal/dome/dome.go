// Package dome renders a rotatable celestial sphere: a bright-star catalog
// with constellation figures over a procedural Milky Way, used both as the
// ambient backdrop and as an interactive observatory.
package dome

import (
	"image/color"
	"math"
	"time"

	"github.com/chaos-architect/astral_engine/internal/geom"
	"github.com/chaos-architect/astral_engine/internal/input"
	"github.com/chaos-architect/astral_engine/internal/render"
)

// Sphere and camera constants.
const (
	Radius      = 2000.0
	DefaultZoom = 1000.0
	MinZoom     = 400.0
	MaxZoom     = 4000.0
	nearOffset  = 50.0

	wheelStep  = 100.0 // pixels per wheel notch
	zoomSpeed  = 1.5
	dragScale  = 0.003 // radians per pixel
	damping    = 0.95
	driftEps   = 0.00001
	idleDrift  = 0.0001
	autoRotate = 0.0002
	zoomEase   = 0.05

	frameMillis = 16.67
	maxFrames   = 2.0
)

// placed is a star fixed on the sphere.
type placed struct {
	Star
	Pos   geom.Vec3
	Color color.NRGBA
	Index int
}

// Dome is the sky camera and its stars. The zero value is not usable; call New.
type Dome struct {
	stars  []placed
	labels []geom.Vec3
	proj   []geom.Projected

	rotX, rotY float64 // pitch, yaw
	velX, velY float64
	zoom       float64

	interactive bool
	dragging    bool
	clock       float64 // seconds since creation, drives twinkle

	in input.Source
}

// SiderealOffset approximates the sky rotation for wall-clock time t, in radians.
func SiderealOffset(t time.Time) float64 {
	return geom.DegToRad(float64(t.Hour())*15 + float64(t.Minute())*0.25)
}

// SpherePoint places ra (hours) and dec (degrees) on the sphere.
func SpherePoint(ra, dec, offset float64) geom.Vec3 {
	alpha := ra/24*2*math.Pi + offset
	delta := dec / 180 * math.Pi
	return geom.Vec3{
		X: Radius * math.Cos(delta) * math.Cos(alpha),
		Y: Radius * math.Sin(delta),
		Z: Radius * math.Cos(delta) * math.Sin(alpha),
	}
}

// New merges the catalog with background stars and fixes their positions
// using the sidereal offset. in may be nil for a purely decorative dome.
func New(background []Star, offset float64, in input.Source) *Dome {
	all := make([]Star, 0, len(Catalog)+len(background))
	all = append(all, Catalog...)
	all = append(all, background...)

	d := &Dome{
		stars: make([]placed, len(all)),
		proj:  make([]geom.Projected, len(all)),
		rotX:  -0.2,
		velY:  idleDrift,
		zoom:  DefaultZoom,
		in:    in,
	}
	for i, s := range all {
		d.stars[i] = placed{
			Star:  s,
			Pos:   SpherePoint(s.RA, s.Dec, offset),
			Color: render.HexOr(s.Color, render.ColorWhite),
			Index: i,
		}
	}
	for _, l := range Labels {
		d.labels = append(d.labels, SpherePoint(l.RA, l.Dec, offset))
	}
	return d
}

// Len returns the number of stars on the dome.
func (d *Dome) Len() int { return len(d.stars) }

// SetInteractive switches between observatory and background presentation.
func (d *Dome) SetInteractive(on bool) {
	d.interactive = on
	if !on {
		d.dragging = false
	}
}

// Interactive reports the presentation mode.
func (d *Dome) Interactive() bool { return d.interactive }

// BeginDrag grabs the sky, stopping any spin.
func (d *Dome) BeginDrag() {
	if !d.interactive {
		return
	}
	d.dragging = true
	d.velX, d.velY = 0, 0
}

// Drag rotates by a pointer delta in pixels and records it as velocity so
// releasing leaves the sky spinning.
func (d *Dome) Drag(dx, dy float64) {
	if !d.interactive || !d.dragging {
		return
	}
	d.rotY += dx * dragScale
	d.rotX += dy * dragScale
	d.velX, d.velY = dy*dragScale, dx*dragScale
}

// EndDrag releases the sky.
func (d *Dome) EndDrag() { d.dragging = false }

// Wheel zooms by wheel notches; positive notches scroll away from the user
// and narrow the view (zoom in).
func (d *Dome) Wheel(notches float64) {
	if !d.interactive || notches == 0 {
		return
	}
	d.zoom = geom.Clamp(d.zoom+notches*wheelStep*zoomSpeed, MinZoom, MaxZoom)
}

// Integrate advances the camera by dt frames (1 frame = 16.67ms).
func (d *Dome) Integrate(dt float64) {
	if d.dragging {
		return
	}
	if d.interactive {
		d.velX *= damping
		d.velY *= damping
		if math.Abs(d.velX) < driftEps && math.Abs(d.velY) < driftEps {
			d.velY = idleDrift
		}
	} else {
		d.velX, d.velY = 0, autoRotate
		d.zoom += (DefaultZoom - d.zoom) * zoomEase
	}
	d.rotX += d.velX * dt
	d.rotY += d.velY * dt
}

// Tick reads input and advances the dome by dt seconds.
func (d *Dome) Tick(dt float64) {
	d.clock += dt
	if d.interactive && d.in != nil {
		d.handleInput()
	}
	d.Integrate(math.Min(dt*1000/frameMillis, maxFrames))
}

func (d *Dome) handleInput() {
	if d.in.Clicked() {
		d.BeginDrag()
		d.in.ConsumeMouseDelta()
	}
	dx, dy := d.in.ConsumeMouseDelta()
	if d.dragging {
		if d.in.PointerDown() {
			d.Drag(dx, dy)
		} else {
			d.EndDrag()
		}
	}
	d.Wheel(d.in.ConsumeWheel())
}

// Rotation returns the pitch and yaw of the sky.
func (d *Dome) Rotation() (x, y float64) { return d.rotX, d.rotY }

// Velocity returns the angular velocity per frame.
func (d *Dome) Velocity() (x, y float64) { return d.velX, d.velY }

// SetVelocity throws the sky.
func (d *Dome) SetVelocity(x, y float64) { d.velX, d.velY = x, y }

// Zoom returns the current focal length.
func (d *Dome) Zoom() float64 { return d.zoom }

// Telemetry derives the observatory readouts from the camera.
func (d *Dome) Telemetry() (raHours, raMinutes int, decDeg, fovMM float64) {
	ra := math.Mod(d.rotY, 2*math.Pi)
	if ra < 0 {
		ra += 2 * math.Pi
	}
	h := ra / (2 * math.Pi) * 24
	_, frac := math.Modf(h)
	return int(h), int(frac * 60), d.rotX / math.Pi * 180, d.zoom / 10
}

func (d *Dome) camera(w, h int) geom.Camera {
	return geom.Camera{
		Rotation: geom.Rotation{Yaw: -d.rotY, Pitch: -d.rotX},
		FOV:      d.zoom,
		Near:     nearOffset,
		Dolly:    d.zoom,
		CenterX:  float64(w) / 2,
		CenterY:  float64(h) / 2,
	}
}
