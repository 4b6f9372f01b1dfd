// Package input abstracts the keyboard and pointer so the engines never touch
// platform listeners directly. The game loop owns a Source and hands it to
// whichever scene is active.
package input

// Key is a logical control, not a physical key code.
type Key uint8

const (
	KeyForward Key = iota
	KeyBack
	KeyStrafeLeft
	KeyStrafeRight
	KeyRise
	KeySink
	KeyRollLeft
	KeyRollRight
	KeyBoost
	KeySubmit
	KeyErase
	KeyToggleDome
	KeyLaunch
	KeyEscape

	keyCount
)

var keyNames = [keyCount]string{
	KeyForward:     "forward",
	KeyBack:        "back",
	KeyStrafeLeft:  "strafe-left",
	KeyStrafeRight: "strafe-right",
	KeyRise:        "rise",
	KeySink:        "sink",
	KeyRollLeft:    "roll-left",
	KeyRollRight:   "roll-right",
	KeyBoost:       "boost",
	KeySubmit:      "submit",
	KeyErase:       "erase",
	KeyToggleDome:  "toggle-dome",
	KeyLaunch:      "launch",
	KeyEscape:      "escape",
}

func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return "unknown"
}

// Source is the input capability handed to scenes.
//
// Held state (IsKeyDown, PointerDown) reflects the latest poll. Deltas and
// edges (ConsumeMouseDelta, ConsumeWheel, Pressed, Clicked) are drained by
// the first reader in a tick.
type Source interface {
	IsKeyDown(k Key) bool
	// Pressed reports whether k went down since the last poll.
	Pressed(k Key) bool
	ConsumeMouseDelta() (dx, dy float64)
	ConsumeWheel() float64
	PointerDown() bool
	// Clicked reports a primary-button press since the last poll.
	Clicked() bool

	Captured() bool
	RequestCapture()
	ReleaseCapture()

	// AppendChars appends text typed since the last poll.
	AppendChars(dst []rune) []rune
}
