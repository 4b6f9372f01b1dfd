package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// bindings maps each control to the physical keys that drive it.
var bindings = [keyCount][]ebiten.Key{
	KeyForward:     {ebiten.KeyW, ebiten.KeyArrowUp},
	KeyBack:        {ebiten.KeyS, ebiten.KeyArrowDown},
	KeyStrafeLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	KeyStrafeRight: {ebiten.KeyD, ebiten.KeyArrowRight},
	KeyRise:        {ebiten.KeySpace},
	KeySink:        {ebiten.KeyControlLeft},
	KeyRollLeft:    {ebiten.KeyQ},
	KeyRollRight:   {ebiten.KeyE},
	KeyBoost:       {ebiten.KeyShiftLeft},
	KeySubmit:      {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
	KeyErase:       {ebiten.KeyBackspace},
	KeyToggleDome:  {ebiten.KeyTab},
	KeyLaunch:      {ebiten.KeyF},
	KeyEscape:      {ebiten.KeyEscape},
}

// Ebiten reads the Ebitengine input state. Poll must be called once at the
// start of every Update.
type Ebiten struct {
	held    [keyCount]bool
	pressed [keyCount]bool

	lastX, lastY int
	primed       bool
	dx, dy       float64
	wheel        float64
	down         bool
	clicked      bool
	chars        []rune
}

// NewEbiten creates an Ebitengine-backed source.
func NewEbiten() *Ebiten {
	return &Ebiten{}
}

// Poll samples the current frame's input.
func (e *Ebiten) Poll() {
	for k := Key(0); k < keyCount; k++ {
		e.held[k] = false
		e.pressed[k] = false
		for _, pk := range bindings[k] {
			if ebiten.IsKeyPressed(pk) {
				e.held[k] = true
			}
			if inpututil.IsKeyJustPressed(pk) {
				e.pressed[k] = true
			}
		}
	}

	x, y := ebiten.CursorPosition()
	if e.primed {
		e.dx += float64(x - e.lastX)
		e.dy += float64(y - e.lastY)
	}
	e.lastX, e.lastY, e.primed = x, y, true

	_, wy := ebiten.Wheel()
	e.wheel += wy

	e.down = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	e.clicked = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	e.chars = ebiten.AppendInputChars(e.chars[:0])
}

func (e *Ebiten) IsKeyDown(k Key) bool { return k < keyCount && e.held[k] }
func (e *Ebiten) Pressed(k Key) bool   { return k < keyCount && e.pressed[k] }
func (e *Ebiten) PointerDown() bool    { return e.down }
func (e *Ebiten) Clicked() bool        { return e.clicked }

func (e *Ebiten) ConsumeMouseDelta() (float64, float64) {
	dx, dy := e.dx, e.dy
	e.dx, e.dy = 0, 0
	return dx, dy
}

// ConsumeWheel returns accumulated wheel ticks, positive away from the user.
func (e *Ebiten) ConsumeWheel() float64 {
	w := e.wheel
	e.wheel = 0
	return w
}

func (e *Ebiten) Captured() bool {
	return ebiten.CursorMode() == ebiten.CursorModeCaptured
}

func (e *Ebiten) RequestCapture() {
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	// The cursor jumps when captured; drop the stale delta.
	e.primed = false
	e.dx, e.dy = 0, 0
}

func (e *Ebiten) ReleaseCapture() {
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
	e.primed = false
	e.dx, e.dy = 0, 0
}

func (e *Ebiten) AppendChars(dst []rune) []rune {
	return append(dst, e.chars...)
}
