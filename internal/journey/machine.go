package journey

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/chaos-architect/astral_engine/internal/flight"
	"github.com/chaos-architect/astral_engine/internal/geom"
	"github.com/chaos-architect/astral_engine/internal/input"
	"github.com/chaos-architect/astral_engine/internal/logging"
)

// DefaultWarp is how long the warp plays once the next level is known.
const DefaultWarp = 2500 * time.Millisecond

const (
	maxPhilosophy = 280 // runes
	logSize       = 8
)

// Generator designs the next level from a player's answer. It is called
// from its own goroutine.
type Generator interface {
	Generate(ctx context.Context, philosophy, symbol string) (flight.LevelParams, error)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(ctx context.Context, philosophy, symbol string) (flight.LevelParams, error)

func (f GeneratorFunc) Generate(ctx context.Context, philosophy, symbol string) (flight.LevelParams, error) {
	return f(ctx, philosophy, symbol)
}

// Cues are the sounds that accompany phase changes.
type Cues interface {
	Chime()
	StartHum()
	StopHum()
}

type silent struct{}

func (silent) Chime()    {}
func (silent) StartHum() {}
func (silent) StopHum()  {}

type outcome struct {
	params flight.LevelParams
	err    error
}

// Machine owns the flight engine for one journey. Tick and Draw must be
// called from the same goroutine.
type Machine struct {
	engine *flight.Engine
	in     input.Source
	gen    Generator
	cues   Cues
	log    *logging.Logger
	warp   float64 // seconds

	phase Phase
	level int
	text  []rune
	clock float64

	ctx     context.Context
	cancel  context.CancelFunc
	pending chan outcome
	arrived *outcome
	left    float64
	closed  bool

	// parked is where the craft stood when the warp began.
	parked geom.Vec3

	events *Log
}

// Option configures a Machine.
type Option func(*Machine)

// WithCues sets the sound cues.
func WithCues(c Cues) Option {
	return func(m *Machine) {
		m.cues = c
	}
}

// WithLogger sets where phase changes are reported.
func WithLogger(log *logging.Logger) Option {
	return func(m *Machine) {
		m.log = log
	}
}

// WithWarpDuration sets how long the warp plays after the next level
// arrives.
func WithWarpDuration(d time.Duration) Option {
	return func(m *Machine) {
		m.warp = d.Seconds()
	}
}

// New starts a journey in the FLYING phase at level 0.
func New(engine *flight.Engine, in input.Source, gen Generator, opts ...Option) *Machine {
	m := &Machine{
		engine: engine,
		in:     in,
		gen:    gen,
		cues:   silent{},
		log:    logging.Discard(),
		warp:   DefaultWarp.Seconds(),
		events: NewLog(logSize),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.events.Add("SECTOR: "+strings.ToUpper(engine.Params().ThemeName), ToneInfo)
	return m
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase { return m.phase }

// Level counts completed warps.
func (m *Machine) Level() int { return m.level }

// Symbol is the subject of the current level's monolith.
func (m *Machine) Symbol() Symbol { return SymbolFor(m.level) }

// Philosophy returns the answer typed so far.
func (m *Machine) Philosophy() string { return string(m.text) }

// Engine returns the driven flight engine.
func (m *Machine) Engine() *flight.Engine { return m.engine }

// Events returns the most recent n flight log entries.
func (m *Machine) Events(n int) []Entry { return m.events.Recent(n) }

// Closed reports whether Close has been called.
func (m *Machine) Closed() bool { return m.closed }

// Tick advances the journey by dt seconds.
func (m *Machine) Tick(dt float64) {
	if m.closed {
		return
	}
	m.clock += dt
	m.engine.Advance(dt)

	switch m.phase {
	case PhaseFlying:
		m.fly()
	case PhaseTeaching:
		m.teach()
	case PhaseWarping:
		m.warpTick(dt)
	}
}

// fly runs physics only while the pointer is captured. A click engages.
func (m *Machine) fly() {
	if !m.in.Captured() {
		m.in.ConsumeMouseDelta()
		if m.in.Clicked() {
			m.in.RequestCapture()
		}
		return
	}

	m.engine.Look(m.in.ConsumeMouseDelta())
	m.engine.ApplyInput(flight.ReadControls(m.in))
	if m.engine.Integrate() {
		m.reach()
	}
}

func (m *Machine) reach() {
	m.in.ReleaseCapture()
	m.engine.Settle()
	m.to(EventTargetReached)
	m.cues.Chime()
	m.events.Add("MONOLITH ACCESSED: "+strings.ToUpper(m.Symbol().Name), ToneInfo)
}

func (m *Machine) teach() {
	m.in.ConsumeMouseDelta()
	for _, r := range m.in.AppendChars(nil) {
		if unicode.IsPrint(r) && len(m.text) < maxPhilosophy {
			m.text = append(m.text, r)
		}
	}
	if m.in.Pressed(input.KeyErase) && len(m.text) > 0 {
		m.text = m.text[:len(m.text)-1]
	}
	if m.in.Pressed(input.KeySubmit) {
		if err := m.Submit(string(m.text)); err != nil {
			m.log.Debug("submit ignored: %v", err)
		}
	}
}

// Submit sends the answer to the generator and starts the warp. The
// request runs in its own goroutine; its outcome is collected by Tick.
func (m *Machine) Submit(philosophy string) error {
	if m.closed || m.phase != PhaseTeaching {
		return fmt.Errorf("%w: submit in %s", ErrWrongPhase, m.phase)
	}
	philosophy = strings.TrimSpace(philosophy)
	if philosophy == "" {
		return ErrEmptyPhilosophy
	}
	m.to(EventSubmit)
	m.parked = m.engine.Player().Pos

	symbol := m.Symbol().Name
	done := make(chan outcome, 1)
	m.pending = done
	m.arrived = nil

	ctx, gen := m.ctx, m.gen
	go func() {
		p, err := gen.Generate(ctx, philosophy, symbol)
		done <- outcome{params: p, err: err}
	}()

	m.log.Info("warp requested: symbol=%q", symbol)
	m.cues.StartHum()
	return nil
}

// warpTick plays the warp. The countdown starts once the generator answers.
func (m *Machine) warpTick(dt float64) {
	m.engine.Warp()

	if m.arrived == nil {
		select {
		case o := <-m.pending:
			if o.err != nil {
				m.abort(o.err)
				return
			}
			m.arrived = &o
			m.left = m.warp
		default:
		}
		return
	}

	m.left -= dt
	if m.left <= 0 {
		m.complete()
	}
}

func (m *Machine) complete() {
	p := m.arrived.params
	m.pending, m.arrived = nil, nil

	m.engine.SetParams(p)
	m.level++
	m.text = m.text[:0]
	m.to(EventWarpComplete)
	m.cues.StopHum()
	m.events.Add("SECTOR: "+strings.ToUpper(p.ThemeName), ToneInfo)
}

func (m *Machine) abort(err error) {
	m.pending, m.arrived = nil, nil

	m.log.Warn("warp failed, holding sector: %v", err)
	m.engine.Settle()
	m.engine.PlacePlayer(m.parked)
	m.engine.SetVelocity(geom.Vec3{})
	m.to(EventWarpFailed)
	m.cues.StopHum()
	m.events.Add("WARP FAILED: HOLDING SECTOR", ToneWarn)
}

func (m *Machine) to(ev Event) {
	next, err := Transition(m.phase, ev)
	if err != nil {
		m.log.Error("%v", err)
		return
	}
	m.log.Info("phase %s -> %s (%s)", m.phase, next, ev)
	m.phase = next
}

// Close stops the journey. A generator request still in flight is
// cancelled and its result discarded.
func (m *Machine) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.cancel()
	if m.phase == PhaseWarping {
		m.cues.StopHum()
	}
	m.pending, m.arrived = nil, nil
	m.in.ReleaseCapture()
}
