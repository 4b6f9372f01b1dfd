// Package geom holds the vector and projection math shared by the star dome
// and the flight engine: Euler rotations, perspective projection with a near
// plane, and post-projection screen shake.
package geom

import "math"

// Vec3 is a point or direction in world space.
// Y grows downward to match screen space.
type Vec3 struct {
	X, Y, Z float64
}

// V creates a Vec3.
func V(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// Add returns v+o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v-o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale multiplies every component by k.
func (v Vec3) Scale(k float64) Vec3 { return Vec3{v.X * k, v.Y * k, v.Z * k} }

// Dot returns the dot product.
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// LenSq returns the squared magnitude.
func (v Vec3) LenSq() float64 { return v.Dot(v) }

// Len returns the magnitude.
func (v Vec3) Len() float64 { return math.Sqrt(v.LenSq()) }

// DistSq returns the squared distance between two points.
func (v Vec3) DistSq(o Vec3) float64 { return v.Sub(o).LenSq() }

// Normalize returns a unit vector, or the zero vector for zero input.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// RotateYaw rotates around the vertical (Y) axis.
func (v Vec3) RotateYaw(a float64) Vec3 {
	c, s := math.Cos(a), math.Sin(a)
	return Vec3{
		X: v.X*c - v.Z*s,
		Y: v.Y,
		Z: v.X*s + v.Z*c,
	}
}

// RotatePitch rotates around the lateral (X) axis.
func (v Vec3) RotatePitch(a float64) Vec3 {
	c, s := math.Cos(a), math.Sin(a)
	return Vec3{
		X: v.X,
		Y: v.Y*c - v.Z*s,
		Z: v.Y*s + v.Z*c,
	}
}

// RotateRoll rotates around the forward (Z) axis.
func (v Vec3) RotateRoll(a float64) Vec3 {
	c, s := math.Cos(a), math.Sin(a)
	return Vec3{
		X: v.X*c - v.Y*s,
		Y: v.X*s + v.Y*c,
		Z: v.Z,
	}
}

// Rotation is a set of Euler angles in radians.
type Rotation struct {
	Yaw, Pitch, Roll float64
}

// ToView applies the inverse of r to v: yaw, then pitch, then roll, each with
// the negated angle, so the world turns opposite to the camera.
func (r Rotation) ToView(v Vec3) Vec3 {
	return v.RotateYaw(-r.Yaw).RotatePitch(-r.Pitch).RotateRoll(-r.Roll)
}

// Basis holds the camera-relative movement axes derived from a Rotation.
type Basis struct {
	Forward Vec3
	Right   Vec3
	Up      Vec3
}

// Basis builds forward/right/up vectors. Up is the absolute vertical
// (negative Y) rather than the rolled up axis.
func (r Rotation) Basis() Basis {
	return Basis{
		Forward: Vec3{
			X: math.Sin(r.Yaw) * math.Cos(r.Pitch),
			Y: math.Sin(r.Pitch),
			Z: math.Cos(r.Yaw) * math.Cos(r.Pitch),
		},
		Right: Vec3{
			X: math.Cos(r.Yaw) * math.Cos(r.Roll),
			Y: math.Sin(r.Roll),
			Z: -math.Sin(r.Yaw) * math.Cos(r.Roll),
		},
		Up: Vec3{Y: -1},
	}
}

// Lerp moves a toward b by factor t.
func Lerp(a, b, t float64) float64 { return a + (b-a)*t }

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DegToRad converts degrees to radians.
func DegToRad(d float64) float64 { return d * math.Pi / 180 }
