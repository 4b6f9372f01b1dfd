// Package flight is the six-degree-of-freedom exploration engine: player
// physics, procedural level generation and wireframe rendering.
package flight

import (
	"image/color"
	"math"

	"github.com/chaos-architect/astral_engine/internal/geom"
	"github.com/chaos-architect/astral_engine/internal/input"
	"github.com/chaos-architect/astral_engine/internal/render"
)

// Flight tuning, per tick at 60 TPS.
const (
	Thrust      = 1.8
	BoostThrust = 5.0
	Friction    = 0.94
	Sensitivity = 0.0015 // radians per pointer pixel
	PitchLimit  = math.Pi/2 - 0.1

	ManualRoll    = 1.0
	BankGain      = 20.0
	StrafeBank    = 0.2
	TurnSmoothing = 0.1
	RollSmoothing = 0.05

	BoostShake = 0.05 // shake per unit speed
	WarpStep   = 5.0
	WarpMax    = 300.0
	WarpShake  = 10.0

	TargetRadius = 300.0

	dustBehind = 100.0
	dustAhead  = 2000.0
	dustWrap   = 2000.0
)

// Spawn is where the player starts every level.
var Spawn = geom.Vec3{X: 0, Y: 300, Z: 0}

// Controls is the held-key state sampled for one tick.
type Controls struct {
	Forward, Back       bool
	Left, Right         bool
	Rise, Sink          bool
	RollLeft, RollRight bool
	Boost               bool
}

// ReadControls samples the movement keys from src.
func ReadControls(src input.Source) Controls {
	return Controls{
		Forward:   src.IsKeyDown(input.KeyForward),
		Back:      src.IsKeyDown(input.KeyBack),
		Left:      src.IsKeyDown(input.KeyStrafeLeft),
		Right:     src.IsKeyDown(input.KeyStrafeRight),
		Rise:      src.IsKeyDown(input.KeyRise),
		Sink:      src.IsKeyDown(input.KeySink),
		RollLeft:  src.IsKeyDown(input.KeyRollLeft),
		RollRight: src.IsKeyDown(input.KeyRollRight),
		Boost:     src.IsKeyDown(input.KeyBoost),
	}
}

// PlayerState is the craft. The engine hands out copies only.
type PlayerState struct {
	Pos, Vel  geom.Vec3
	Rot       geom.Rotation
	TargetRot geom.Rotation // smoothing destination for yaw and pitch
	Boost     bool
	Speed     float64
}

// Engine owns the player, the current level and the effect state. It is
// driven from a single goroutine.
type Engine struct {
	params   LevelParams
	world    *World
	player   PlayerState
	controls Controls
	rng      geom.Source

	shake     float64
	warpSpeed float64
	clock     float64

	fog, accent color.NRGBA

	blocks []Block
	order  []ranked
	verts  []geom.Vec3
	proj   []geom.Projected
}

// NewEngine generates the first level from p.
func NewEngine(p LevelParams, rng geom.Source) *Engine {
	e := &Engine{rng: rng}
	e.SetParams(p)
	return e
}

// SetParams replaces the level: the world is regenerated and the player
// returns to the spawn point at rest.
func (e *Engine) SetParams(p LevelParams) {
	e.params = p
	e.world = Generate(p, e.rng)
	e.fog = render.HexOr(p.FogColor, render.ColorSpace)
	e.accent = render.HexOr(p.TargetColor, render.ColorGold)
	e.player = PlayerState{Pos: Spawn}
	e.controls = Controls{}
	e.shake, e.warpSpeed = 0, 0
}

// Params returns the active level.
func (e *Engine) Params() LevelParams { return e.params }

// World returns the active level's blocks and dust.
func (e *Engine) World() *World { return e.world }

// Player returns a copy of the craft state.
func (e *Engine) Player() PlayerState { return e.player }

// PlacePlayer teleports the craft, keeping its velocity.
func (e *Engine) PlacePlayer(pos geom.Vec3) { e.player.Pos = pos }

// SetVelocity overrides the craft velocity.
func (e *Engine) SetVelocity(v geom.Vec3) { e.player.Vel = v }

// Shake is the current screen-shake amplitude in pixels.
func (e *Engine) Shake() float64 { return e.shake }

// WarpSpeed is the scripted forward speed during a warp.
func (e *Engine) WarpSpeed() float64 { return e.warpSpeed }

// ApplyInput records the held controls for the next Integrate.
func (e *Engine) ApplyInput(c Controls) { e.controls = c }

// Look turns the craft's target heading by a pointer delta.
func (e *Engine) Look(dx, dy float64) {
	t := &e.player.TargetRot
	t.Yaw += dx * Sensitivity
	t.Pitch = geom.Clamp(t.Pitch+dy*Sensitivity, -PitchLimit, PitchLimit)
}

// Advance moves the animation clock by dt seconds.
func (e *Engine) Advance(dt float64) { e.clock += dt }

// Integrate runs one physics tick and reports whether the craft is within
// reach of the monolith.
func (e *Engine) Integrate() bool {
	p := &e.player
	c := e.controls
	e.warpSpeed = 0

	p.Boost = c.Boost
	thrust := Thrust
	if c.Boost {
		thrust = BoostThrust
	}

	b := p.Rot.Basis()
	var acc geom.Vec3
	if c.Forward {
		acc = acc.Add(b.Forward)
	}
	if c.Back {
		acc = acc.Sub(b.Forward)
	}
	if c.Right {
		acc = acc.Add(b.Right)
	}
	if c.Left {
		acc = acc.Sub(b.Right)
	}
	if c.Rise {
		acc = acc.Add(b.Up)
	}
	if c.Sink {
		acc = acc.Sub(b.Up)
	}

	bank := 0.0
	if c.RollRight {
		bank += ManualRoll
	}
	if c.RollLeft {
		bank -= ManualRoll
	}
	bank += (p.TargetRot.Yaw - p.Rot.Yaw) * BankGain
	if c.Left {
		bank += StrafeBank
	}
	if c.Right {
		bank -= StrafeBank
	}

	p.Rot.Yaw += (p.TargetRot.Yaw - p.Rot.Yaw) * TurnSmoothing
	p.Rot.Pitch += (p.TargetRot.Pitch - p.Rot.Pitch) * TurnSmoothing
	p.Rot.Roll += (bank - p.Rot.Roll) * RollSmoothing

	p.Vel = p.Vel.Add(acc.Scale(thrust))
	p.Vel.Y += e.params.PhysicsGravity
	p.Vel = p.Vel.Scale(Friction)
	p.Pos = p.Pos.Add(p.Vel)

	p.Speed = p.Vel.Len()
	if c.Boost {
		e.shake = p.Speed * BoostShake
	} else {
		e.shake = 0
	}

	e.recycleDust()
	return p.Pos.DistSq(e.world.Target) < TargetRadius*TargetRadius
}

// Warp advances the scripted warp: forward speed ramps toward WarpMax with
// a constant shake. Player input is ignored.
func (e *Engine) Warp() {
	e.warpSpeed = math.Min(e.warpSpeed+WarpStep, WarpMax)
	e.player.Pos.Z += e.warpSpeed
	e.shake = WarpShake
	e.recycleDust()
}

// Settle ends any warp ramp and shake while the craft is parked.
func (e *Engine) Settle() {
	e.warpSpeed = 0
	e.shake = 0
}

// recycleDust wraps particles that fall outside the window around the craft
// along the travel axis.
func (e *Engine) recycleDust() {
	z := e.player.Pos.Z
	for i := range e.world.Particles {
		pt := &e.world.Particles[i]
		if pt.Z < z-dustBehind {
			pt.Z += dustWrap
		}
		if pt.Z > z+dustAhead {
			pt.Z -= dustWrap
		}
	}
}
