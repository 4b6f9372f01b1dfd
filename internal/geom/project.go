package geom

// Projected is a world point mapped to screen space. When Visible is false
// the screen coordinates are meaningless and anything drawn from this point
// must be skipped.
type Projected struct {
	X, Y    float64
	Scale   float64
	Depth   float64
	Visible bool
}

// Camera is a perspective viewer.
type Camera struct {
	Position Vec3
	Rotation Rotation

	// FOV is the focal length in pixels: scale = FOV / depth.
	FOV float64

	// Near is the clipping threshold. Points with depth <= Near are hidden.
	Near float64

	// Dolly is added to the view-space depth after rotation. The dome uses it
	// to orbit the sphere centre from a distance equal to its zoom.
	Dolly float64

	// CenterX/CenterY is the viewport centre in pixels.
	CenterX, CenterY float64
}

// View transforms a world point into camera space.
func (c *Camera) View(v Vec3) Vec3 {
	p := c.Rotation.ToView(v.Sub(c.Position))
	p.Z += c.Dolly
	return p
}

// Project maps a world point to the screen.
func (c *Camera) Project(v Vec3) Projected {
	return c.Perspective(c.View(v))
}

// Perspective projects a point already in camera space.
func (c *Camera) Perspective(p Vec3) Projected {
	if p.Z <= c.Near {
		return Projected{Depth: p.Z}
	}
	scale := c.FOV / p.Z
	return Projected{
		X:       c.CenterX + p.X*scale,
		Y:       c.CenterY + p.Y*scale,
		Scale:   scale,
		Depth:   p.Z,
		Visible: true,
	}
}

// ProjectAll projects a vertex set and reports whether every vertex is
// visible. Callers drawing edges or faces must skip the shape when it is not.
func (c *Camera) ProjectAll(verts []Vec3, out []Projected) ([]Projected, bool) {
	out = out[:0]
	ok := true
	for _, v := range verts {
		p := c.Project(v)
		if !p.Visible {
			ok = false
		}
		out = append(out, p)
	}
	return out, ok
}

// Jitter offsets a projected point by independent random amounts in
// [-shake/2, shake/2) on each axis. It only touches screen space.
func Jitter(p Projected, shake float64, rng Source) Projected {
	if !p.Visible || shake == 0 {
		return p
	}
	p.X += (rng.Float64() - 0.5) * shake
	p.Y += (rng.Float64() - 0.5) * shake
	return p
}
