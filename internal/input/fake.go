package input

// Fake is a scriptable Source for tests.
type Fake struct {
	Held     map[Key]bool
	Edges    map[Key]bool
	DX, DY   float64
	Wheel    float64
	Down     bool
	Click    bool
	Capture  bool
	Typed    []rune
	Requests int
	Releases int
}

// NewFake creates an empty fake.
func NewFake() *Fake {
	return &Fake{Held: map[Key]bool{}, Edges: map[Key]bool{}}
}

// Hold marks keys as held.
func (f *Fake) Hold(keys ...Key) {
	for _, k := range keys {
		f.Held[k] = true
	}
}

// Release clears held keys.
func (f *Fake) Release(keys ...Key) {
	for _, k := range keys {
		delete(f.Held, k)
	}
}

// Press queues a one-shot key edge.
func (f *Fake) Press(k Key) { f.Edges[k] = true }

// Move queues a pointer delta.
func (f *Fake) Move(dx, dy float64) {
	f.DX += dx
	f.DY += dy
}

func (f *Fake) IsKeyDown(k Key) bool { return f.Held[k] }

func (f *Fake) Pressed(k Key) bool {
	p := f.Edges[k]
	delete(f.Edges, k)
	return p
}

func (f *Fake) ConsumeMouseDelta() (float64, float64) {
	dx, dy := f.DX, f.DY
	f.DX, f.DY = 0, 0
	return dx, dy
}

func (f *Fake) ConsumeWheel() float64 {
	w := f.Wheel
	f.Wheel = 0
	return w
}

func (f *Fake) PointerDown() bool { return f.Down }

func (f *Fake) Clicked() bool {
	c := f.Click
	f.Click = false
	return c
}

func (f *Fake) Captured() bool { return f.Capture }

func (f *Fake) RequestCapture() {
	f.Requests++
	f.Capture = true
}

func (f *Fake) ReleaseCapture() {
	f.Releases++
	f.Capture = false
}

func (f *Fake) AppendChars(dst []rune) []rune {
	dst = append(dst, f.Typed...)
	f.Typed = f.Typed[:0]
	return dst
}
