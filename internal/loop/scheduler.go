// Package loop is the frame scheduler shared by the visualisations: each
// display refresh runs one tick of the active scene, then draws it.
package loop

import (
	"github.com/chaos-architect/astral_engine/internal/render"
)

// MaxStep caps a single tick so a stall does not turn into a jump.
const MaxStep = 0.25 // seconds

// Scene is anything the scheduler can drive.
type Scene interface {
	Tick(dt float64)
	Draw(c render.Canvas)
}

// Closer is implemented by scenes that hold resources past their last frame.
type Closer interface {
	Close()
}

type periodic struct {
	every uint64
	fn    func()
}

// Scheduler runs a Scene while started. Tick is a pure entry point: the
// caller supplies dt, so tests drive frames without a display or timer.
type Scheduler struct {
	scene   Scene
	running bool
	ticks   uint64
	elapsed float64
	hooks   []periodic
}

// New creates a stopped scheduler for scene.
func New(scene Scene) *Scheduler {
	return &Scheduler{scene: scene}
}

// Start resumes ticking.
func (s *Scheduler) Start() { s.running = true }

// Stop halts ticking and drawing until Start is called again.
func (s *Scheduler) Stop() { s.running = false }

// Running reports whether the scheduler is started.
func (s *Scheduler) Running() bool { return s.running }

// Scene returns the active scene.
func (s *Scheduler) Scene() Scene { return s.scene }

// SetScene swaps the active scene. The outgoing scene is closed if it
// implements Closer.
func (s *Scheduler) SetScene(next Scene) {
	if s.scene == next {
		return
	}
	if c, ok := s.scene.(Closer); ok {
		c.Close()
	}
	s.scene = next
}

// Every registers fn to run after every n-th tick.
func (s *Scheduler) Every(n uint64, fn func()) {
	if n == 0 {
		return
	}
	s.hooks = append(s.hooks, periodic{every: n, fn: fn})
}

// Tick advances the active scene by dt seconds. It reports whether a tick
// ran.
func (s *Scheduler) Tick(dt float64) bool {
	if !s.running || s.scene == nil {
		return false
	}
	if dt < 0 {
		dt = 0
	}
	if dt > MaxStep {
		dt = MaxStep
	}
	s.scene.Tick(dt)
	s.ticks++
	s.elapsed += dt
	for _, h := range s.hooks {
		if s.ticks%h.every == 0 {
			h.fn()
		}
	}
	return true
}

// Render draws the active scene. Nothing is drawn while stopped.
func (s *Scheduler) Render(c render.Canvas) {
	if !s.running || s.scene == nil {
		return
	}
	s.scene.Draw(c)
}

// Ticks counts ticks run since creation.
func (s *Scheduler) Ticks() uint64 { return s.ticks }

// Elapsed is the simulated time in seconds.
func (s *Scheduler) Elapsed() float64 { return s.elapsed }
