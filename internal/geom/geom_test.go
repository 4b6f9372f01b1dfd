package geom

import (
	"math"
	"testing"
)

const eps = 1e-9

func flightCamera() Camera {
	return Camera{
		Position: V(0, 300, 0),
		FOV:      800,
		Near:     10,
		CenterX:  640,
		CenterY:  360,
	}
}

func TestProjectAtCameraIsHidden(t *testing.T) {
	cam := flightCamera()
	p := cam.Project(cam.Position)
	if p.Visible {
		t.Errorf("point at camera position should not be visible, got %+v", p)
	}
}

func TestProjectBehindAndNearPlane(t *testing.T) {
	cam := flightCamera()
	tests := []struct {
		name    string
		point   Vec3
		visible bool
	}{
		{"ahead", V(0, 300, 500), true},
		{"behind", V(0, 300, -500), false},
		{"on near plane", V(0, 300, 10), false},
		{"just past near plane", V(0, 300, 10.5), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cam.Project(tt.point)
			if got.Visible != tt.visible {
				t.Errorf("Visible = %v, want %v", got.Visible, tt.visible)
			}
		})
	}
}

func TestProjectScaleAndCenter(t *testing.T) {
	cam := flightCamera()
	p := cam.Project(V(100, 350, 400))
	if math.Abs(p.Scale-2) > eps {
		t.Errorf("Scale = %v, want 2", p.Scale)
	}
	if math.Abs(p.X-840) > eps || math.Abs(p.Y-460) > eps {
		t.Errorf("screen = (%v, %v), want (840, 460)", p.X, p.Y)
	}
}

func TestProjectFullTurnYaw(t *testing.T) {
	a := flightCamera()
	b := flightCamera()
	b.Rotation.Yaw = 2 * math.Pi

	pt := V(120, 250, 900)
	pa, pb := a.Project(pt), b.Project(pt)
	if !pa.Visible || !pb.Visible {
		t.Fatalf("expected both visible: %+v %+v", pa, pb)
	}
	if math.Abs(pa.X-pb.X) > 1e-6 || math.Abs(pa.Y-pb.Y) > 1e-6 {
		t.Errorf("yaw 0 -> (%v,%v), yaw 2pi -> (%v,%v)", pa.X, pa.Y, pb.X, pb.Y)
	}
}

func TestYawTurnsWorldOpposite(t *testing.T) {
	cam := flightCamera()
	cam.Position = Vec3{}
	cam.Rotation.Yaw = math.Pi / 2

	p := cam.Project(V(0, 0, 1000))
	if p.Visible {
		t.Errorf("point that was straight ahead should be beside the camera after a quarter turn")
	}
	q := cam.Project(V(-1000, 0, 0))
	if !q.Visible || math.Abs(q.X-cam.CenterX) > 1e-6 {
		t.Errorf("point along -X should be centered, got %+v", q)
	}
	if r := cam.Project(V(1000, 0, 0)); r.Visible {
		t.Errorf("point along +X should be behind, got %+v", r)
	}
}

func TestProjectAllRejectsPartialShapes(t *testing.T) {
	cam := flightCamera()
	verts := []Vec3{V(0, 300, 100), V(10, 300, 100), V(0, 300, -100)}
	proj, ok := cam.ProjectAll(verts, nil)
	if ok {
		t.Error("shape with a vertex behind the camera must be rejected")
	}
	if len(proj) != 3 {
		t.Errorf("len = %d, want 3", len(proj))
	}
}

func TestDollyOrbit(t *testing.T) {
	cam := Camera{FOV: 1000, Near: 50, Dolly: 1000, CenterX: 0, CenterY: 0}
	// Sphere point facing the viewer sits at depth fov - radius.
	p := cam.Project(V(0, 0, -2000))
	if p.Visible {
		t.Errorf("depth %v should be clipped", p.Depth)
	}
	q := cam.Project(V(0, 0, 2000))
	if !q.Visible || math.Abs(q.Scale-1000.0/3000.0) > eps {
		t.Errorf("far side scale = %v, want %v", q.Scale, 1000.0/3000.0)
	}
}

func TestJitterOnlyMovesScreenSpace(t *testing.T) {
	p := Projected{X: 10, Y: 20, Scale: 1, Depth: 50, Visible: true}
	seq := &Sequence{Values: []float64{1.0, 0.0}}
	got := Jitter(p, 10, seq)
	if got.X != 15 || got.Y != 15 {
		t.Errorf("jitter = (%v,%v), want (15,15)", got.X, got.Y)
	}
	if got.Depth != p.Depth || got.Scale != p.Scale {
		t.Errorf("jitter changed depth/scale: %+v", got)
	}

	hidden := Jitter(Projected{}, 10, seq)
	if hidden.X != 0 || hidden.Y != 0 {
		t.Errorf("hidden point should not be jittered: %+v", hidden)
	}
}

func TestBasisOrthogonalAtRest(t *testing.T) {
	b := Rotation{}.Basis()
	if b.Forward != V(0, 0, 1) {
		t.Errorf("Forward = %+v", b.Forward)
	}
	if b.Right != V(1, 0, 0) {
		t.Errorf("Right = %+v", b.Right)
	}
	if math.Abs(b.Forward.Dot(b.Right)) > eps {
		t.Errorf("forward and right not orthogonal")
	}
}

func TestNormalizeZero(t *testing.T) {
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("Normalize(0) = %+v", got)
	}
	if got := V(3, 4, 0).Normalize(); math.Abs(got.Len()-1) > eps {
		t.Errorf("len = %v", got.Len())
	}
}

func TestSequenceWraps(t *testing.T) {
	s := &Sequence{Values: []float64{0.1, 0.2}}
	got := []float64{s.Float64(), s.Float64(), s.Float64()}
	want := []float64{0.1, 0.2, 0.1}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("draw %d = %v, want %v", i, got[i], want[i])
		}
	}
	if s.Draws() != 3 {
		t.Errorf("Draws = %d", s.Draws())
	}
}
