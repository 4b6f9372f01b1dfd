package journey

import (
	"context"
	"errors"
	"math"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/chaos-architect/astral_engine/internal/flight"
	"github.com/chaos-architect/astral_engine/internal/geom"
	"github.com/chaos-architect/astral_engine/internal/input"
	"github.com/chaos-architect/astral_engine/internal/render"
)

const frame = 1.0 / 60

var crimson = flight.LevelParams{
	ThemeName:      "The Crimson Void",
	FogColor:       "#200000",
	TerrainColor:   "#ff0000",
	TargetColor:    "#ffd700",
	IslandCount:    35,
	IslandSize:     90,
	ChaosFactor:    0.8,
	GeometryStyle:  flight.StylePyramid,
	PhysicsGravity: -0.1,
}

type cueCounter struct {
	chimes, starts, stops int
}

func (c *cueCounter) Chime()    { c.chimes++ }
func (c *cueCounter) StartHum() { c.starts++ }
func (c *cueCounter) StopHum()  { c.stops++ }

type call struct {
	philosophy, symbol string
}

// recorder is a Generator that answers with fixed values and remembers
// what it was asked.
type recorder struct {
	mu     sync.Mutex
	calls  []call
	params flight.LevelParams
	err    error
}

func (r *recorder) Generate(_ context.Context, philosophy, symbol string) (flight.LevelParams, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call{philosophy, symbol})
	return r.params, r.err
}

func (r *recorder) Calls() []call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.calls)
}

func newMachine(t *testing.T, gen Generator) (*Machine, *input.Fake, *cueCounter) {
	t.Helper()
	in := input.NewFake()
	in.Capture = true
	cues := &cueCounter{}
	engine := flight.NewEngine(flight.Primer(), geom.NewSource(7))
	m := New(engine, in, gen, WithCues(cues), WithWarpDuration(DefaultWarp))
	t.Cleanup(m.Close)
	return m, in, cues
}

// reachMonolith parks the craft on the target and ticks once.
func reachMonolith(t *testing.T, m *Machine) {
	t.Helper()
	e := m.Engine()
	e.PlacePlayer(e.World().Target)
	m.Tick(frame)
	if m.Phase() != PhaseTeaching {
		t.Fatalf("phase = %s, want TEACHING", m.Phase())
	}
}

// awaitOutcome ticks until the generator goroutine has been heard from.
func awaitOutcome(t *testing.T, m *Machine) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for m.Phase() == PhaseWarping && m.arrived == nil {
		if time.Now().After(deadline) {
			t.Fatal("generator outcome never collected")
		}
		time.Sleep(time.Millisecond)
		m.Tick(0)
	}
}

func TestTransition(t *testing.T) {
	tests := []struct {
		from Phase
		ev   Event
		want Phase
		ok   bool
	}{
		{PhaseFlying, EventTargetReached, PhaseTeaching, true},
		{PhaseFlying, EventSubmit, PhaseFlying, false},
		{PhaseFlying, EventWarpComplete, PhaseFlying, false},
		{PhaseFlying, EventWarpFailed, PhaseFlying, false},
		{PhaseTeaching, EventTargetReached, PhaseTeaching, false},
		{PhaseTeaching, EventSubmit, PhaseWarping, true},
		{PhaseTeaching, EventWarpComplete, PhaseTeaching, false},
		{PhaseTeaching, EventWarpFailed, PhaseTeaching, false},
		{PhaseWarping, EventTargetReached, PhaseWarping, false},
		{PhaseWarping, EventSubmit, PhaseWarping, false},
		{PhaseWarping, EventWarpComplete, PhaseFlying, true},
		{PhaseWarping, EventWarpFailed, PhaseFlying, true},
	}
	for _, tt := range tests {
		t.Run(tt.from.String()+"/"+tt.ev.String(), func(t *testing.T) {
			got, err := Transition(tt.from, tt.ev)
			if got != tt.want {
				t.Errorf("Transition = %s, want %s", got, tt.want)
			}
			if (err == nil) != tt.ok {
				t.Errorf("err = %v, want ok=%v", err, tt.ok)
			}
			if err != nil && !errors.Is(err, ErrWrongPhase) {
				t.Errorf("err = %v, want ErrWrongPhase", err)
			}
		})
	}
}

func TestTargetReachedFreezesPhysics(t *testing.T) {
	m, in, cues := newMachine(t, &recorder{})
	reachMonolith(t, m)

	if in.Captured() || in.Releases != 1 {
		t.Errorf("capture = %v releases = %d, want released once", in.Captured(), in.Releases)
	}
	if cues.chimes != 1 {
		t.Errorf("chimes = %d, want 1", cues.chimes)
	}

	before := m.Engine().Player()
	in.Capture = true
	in.Hold(input.KeyForward, input.KeyBoost)
	in.Move(200, 50)
	for i := 0; i < 30; i++ {
		m.Tick(frame)
	}
	after := m.Engine().Player()
	if after.Pos != before.Pos || after.TargetRot != before.TargetRot {
		t.Errorf("craft moved while TEACHING: %+v -> %+v", before, after)
	}
	if m.Phase() != PhaseTeaching {
		t.Errorf("phase = %s, want TEACHING", m.Phase())
	}
}

func TestIdleUntilClicked(t *testing.T) {
	m, in, _ := newMachine(t, &recorder{})
	in.Capture = false
	in.Hold(input.KeyForward)

	start := m.Engine().Player().Pos
	m.Tick(frame)
	if got := m.Engine().Player().Pos; got != start {
		t.Fatalf("craft moved while idle: %+v", got)
	}

	in.Click = true
	m.Tick(frame)
	if in.Requests != 1 || !in.Captured() {
		t.Fatalf("requests = %d captured = %v", in.Requests, in.Captured())
	}
	m.Tick(frame)
	if got := m.Engine().Player().Pos; got.Z <= start.Z {
		t.Errorf("craft did not move once engaged: z %v -> %v", start.Z, got.Z)
	}
}

func TestWarpSuccess(t *testing.T) {
	gen := &recorder{params: crimson}
	m, _, cues := newMachine(t, gen)
	reachMonolith(t, m)

	if err := m.Submit("  all is permitted "); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if m.Phase() != PhaseWarping || cues.starts != 1 {
		t.Fatalf("phase = %s hum starts = %d", m.Phase(), cues.starts)
	}

	awaitOutcome(t, m)
	for i := 0; i < 4; i++ {
		m.Tick(0.5)
	}
	if m.Phase() != PhaseWarping {
		t.Fatalf("phase = %s before the warp finished", m.Phase())
	}
	m.Tick(0.5)

	if m.Phase() != PhaseFlying {
		t.Fatalf("phase = %s, want FLYING", m.Phase())
	}
	if m.Level() != 1 {
		t.Errorf("level = %d, want 1", m.Level())
	}
	if got := m.Engine().Params(); got != crimson {
		t.Errorf("params = %+v, want %+v", got, crimson)
	}
	if m.Philosophy() != "" {
		t.Errorf("philosophy = %q, want cleared", m.Philosophy())
	}
	if p := m.Engine().Player(); p.Pos != flight.Spawn {
		t.Errorf("player at %+v, want spawn", p.Pos)
	}
	if cues.stops != 1 {
		t.Errorf("hum stops = %d, want 1", cues.stops)
	}
	if m.Symbol().Name != "Kia / The Void" {
		t.Errorf("next symbol = %q", m.Symbol().Name)
	}

	calls := gen.Calls()
	if len(calls) != 1 || calls[0] != (call{"all is permitted", "The Chaosphere"}) {
		t.Errorf("calls = %+v", calls)
	}
}

func TestWarpFailure(t *testing.T) {
	m, _, cues := newMachine(t, &recorder{err: errors.New("service unavailable")})
	reachMonolith(t, m)

	if err := m.Submit("nothing is true"); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	awaitOutcome(t, m)

	if m.Phase() != PhaseFlying {
		t.Fatalf("phase = %s, want FLYING", m.Phase())
	}
	if m.Level() != 0 {
		t.Errorf("level = %d, want 0", m.Level())
	}
	if got := m.Engine().Params(); got != flight.Primer() {
		t.Errorf("params = %+v, want primer", got)
	}
	if cues.starts != 1 || cues.stops != 1 {
		t.Errorf("hum starts/stops = %d/%d", cues.starts, cues.stops)
	}
	if e := m.Events(1); len(e) != 1 || e[0].Tone != ToneWarn {
		t.Errorf("last event = %+v, want a warning", e)
	}
}

func TestSlowWarpFailureReturnsToMonolith(t *testing.T) {
	release := make(chan struct{})
	gen := GeneratorFunc(func(ctx context.Context, _, _ string) (flight.LevelParams, error) {
		select {
		case <-release:
		case <-ctx.Done():
		}
		return flight.LevelParams{}, errors.New("gateway timeout")
	})
	m, _, _ := newMachine(t, gen)
	reachMonolith(t, m)

	if err := m.Submit("nothing is true"); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	for i := 0; i < 600; i++ {
		m.Tick(frame)
	}
	e := m.Engine()
	if d := e.Player().Pos.DistSq(e.World().Target); d < flight.RenderDistance*flight.RenderDistance {
		t.Fatalf("warp ramp left the craft %.0f from the target, want beyond render distance", math.Sqrt(d))
	}

	close(release)
	awaitOutcome(t, m)

	if m.Phase() != PhaseFlying {
		t.Fatalf("phase = %s, want FLYING", m.Phase())
	}
	p := e.Player()
	if d := p.Pos.DistSq(e.World().Target); d >= flight.TargetRadius*flight.TargetRadius {
		t.Errorf("craft %.0f from target after failed warp, want within %v", math.Sqrt(d), flight.TargetRadius)
	}
	if p.Vel != (geom.Vec3{}) {
		t.Errorf("velocity = %+v, want zero", p.Vel)
	}
	if e.WarpSpeed() != 0 || e.Shake() != 0 {
		t.Errorf("warp speed/shake = %v/%v, want 0/0", e.WarpSpeed(), e.Shake())
	}
}

func TestSubmitRejected(t *testing.T) {
	m, _, _ := newMachine(t, &recorder{})
	if err := m.Submit("too early"); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("submit while flying: err = %v", err)
	}

	reachMonolith(t, m)
	if err := m.Submit(" \t "); !errors.Is(err, ErrEmptyPhilosophy) {
		t.Errorf("blank submit: err = %v", err)
	}
	if m.Phase() != PhaseTeaching {
		t.Errorf("phase = %s, want TEACHING", m.Phase())
	}
}

func TestTypedAnswer(t *testing.T) {
	gen := &recorder{params: crimson}
	m, in, _ := newMachine(t, gen)
	reachMonolith(t, m)

	in.Typed = []rune("void\bx")
	m.Tick(frame)
	if got := m.Philosophy(); got != "voidx" {
		t.Fatalf("philosophy = %q, want %q", got, "voidx")
	}

	in.Press(input.KeyErase)
	m.Tick(frame)
	if got := m.Philosophy(); got != "void" {
		t.Fatalf("philosophy = %q, want %q", got, "void")
	}

	in.Press(input.KeySubmit)
	m.Tick(frame)
	if m.Phase() != PhaseWarping {
		t.Fatalf("phase = %s, want WARPING", m.Phase())
	}
	awaitOutcome(t, m)
	if calls := gen.Calls(); len(calls) != 1 || calls[0].philosophy != "void" {
		t.Errorf("calls = %+v", calls)
	}
}

func TestWarpRampsWhileWaiting(t *testing.T) {
	release := make(chan struct{})
	gen := GeneratorFunc(func(ctx context.Context, _, _ string) (flight.LevelParams, error) {
		select {
		case <-release:
			return crimson, nil
		case <-ctx.Done():
			return flight.LevelParams{}, ctx.Err()
		}
	})
	m, _, _ := newMachine(t, gen)
	defer close(release)
	reachMonolith(t, m)
	if err := m.Submit("gnosis"); err != nil {
		t.Fatal(err)
	}

	z := m.Engine().Player().Pos.Z
	for i := 0; i < 10; i++ {
		m.Tick(frame)
	}
	if m.Phase() != PhaseWarping {
		t.Fatalf("phase = %s, want WARPING while the request is outstanding", m.Phase())
	}
	if m.Engine().WarpSpeed() != 10*flight.WarpStep || m.Engine().Shake() != flight.WarpShake {
		t.Errorf("warp speed = %v shake = %v", m.Engine().WarpSpeed(), m.Engine().Shake())
	}
	if m.Engine().Player().Pos.Z <= z {
		t.Error("craft not moving during warp")
	}
}

func TestCloseDiscardsLateResult(t *testing.T) {
	cancelled := make(chan error, 1)
	gen := GeneratorFunc(func(ctx context.Context, _, _ string) (flight.LevelParams, error) {
		<-ctx.Done()
		cancelled <- ctx.Err()
		return crimson, nil
	})
	m, in, cues := newMachine(t, gen)
	reachMonolith(t, m)
	if err := m.Submit("egregore"); err != nil {
		t.Fatal(err)
	}

	m.Close()
	select {
	case err := <-cancelled:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("ctx err = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("generator never saw cancellation")
	}

	for i := 0; i < 300; i++ {
		m.Tick(frame)
	}
	if m.Level() != 0 || m.Engine().Params() != flight.Primer() {
		t.Errorf("late result applied: level=%d params=%+v", m.Level(), m.Engine().Params())
	}
	if !m.Closed() || cues.stops != 1 || in.Captured() {
		t.Errorf("closed=%v stops=%d captured=%v", m.Closed(), cues.stops, in.Captured())
	}
}

func TestSymbolFor(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{0, "The Chaosphere"},
		{1, "Kia / The Void"},
		{5, "Paradigm Shift"},
		{6, "The Chaosphere"},
		{13, "Kia / The Void"},
		{-1, "Paradigm Shift"},
	}
	for _, tt := range tests {
		if got := SymbolFor(tt.level).Name; got != tt.want {
			t.Errorf("SymbolFor(%d) = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestLogEvictsOldest(t *testing.T) {
	l := NewLog(2)
	l.Add("one", ToneInfo)
	l.Add("two", ToneInfo)
	l.Add("three", ToneWarn)

	got := l.Recent(5)
	if len(got) != 2 || got[0].Text != "two" || got[1].Text != "three" || got[1].Tone != ToneWarn {
		t.Errorf("Recent = %+v", got)
	}
	if l.Len() != 2 {
		t.Errorf("Len = %d, want 2", l.Len())
	}
}

func TestWrapText(t *testing.T) {
	size := float64(render.GlyphHeight)
	width := render.TextWidth("aaaa bbbb", size)

	got := wrapText("aaaa bbbb cccc dddddddddddd", width, size)
	want := []string{"aaaa bbbb", "cccc", "dddddddddddd"}
	if !slices.Equal(got, want) {
		t.Errorf("wrapText = %q, want %q", got, want)
	}
	if got := wrapText("   ", width, size); got != nil {
		t.Errorf("wrapText(blank) = %q, want nil", got)
	}
}

func TestDrawOverlays(t *testing.T) {
	release := make(chan struct{})
	gen := GeneratorFunc(func(ctx context.Context, _, _ string) (flight.LevelParams, error) {
		select {
		case <-release:
		case <-ctx.Done():
		}
		return crimson, nil
	})
	m, _, _ := newMachine(t, gen)
	defer close(release)
	rec := render.NewRecorder(1280, 720)

	m.Draw(rec)
	if !slices.Contains(rec.Texts(), "SECTOR: THE PRIMER") {
		t.Errorf("flying texts = %q", rec.Texts())
	}

	reachMonolith(t, m)
	rec.Reset()
	m.Draw(rec)
	texts := rec.Texts()
	for _, want := range []string{"MONOLITH ACCESSED", "SYMBOL: THE CHAOSPHERE"} {
		if !slices.Contains(texts, want) {
			t.Errorf("teaching texts = %q, missing %q", texts, want)
		}
	}
	if slices.Contains(texts, "SYSTEM IDLE") {
		t.Error("flight HUD drawn during TEACHING")
	}

	if err := m.Submit("servitor"); err != nil {
		t.Fatal(err)
	}
	rec.Reset()
	m.Draw(rec)
	if !slices.Contains(rec.Texts(), "GENERATING REALITY...") {
		t.Errorf("warping texts = %q", rec.Texts())
	}
}
