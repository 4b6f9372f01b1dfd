package render

import "image/color"

// OpKind names a recorded draw call.
type OpKind uint8

const (
	OpFill OpKind = iota
	OpLine
	OpDisc
	OpGlow
	OpRect
	OpStrokeRect
	OpText
)

// Op is one draw call captured by a Recorder.
type Op struct {
	Kind   OpKind
	X0, Y0 float64
	X1, Y1 float64 // line end, or rect width/height
	R      float64 // radius, line width or text size
	Color  color.Color
	Text   string
}

// Recorder is a Canvas that stores calls instead of drawing them.
// It stands in for the window in tests and headless runs.
type Recorder struct {
	W, H int
	Ops  []Op
}

// NewRecorder creates a recorder with the given viewport size.
func NewRecorder(w, h int) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) Size() (int, int) { return r.W, r.H }

func (r *Recorder) Fill(clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFill, Color: clr})
}

func (r *Recorder) Line(x0, y0, x1, y1, width float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, X0: x0, Y0: y0, X1: x1, Y1: y1, R: width, Color: clr})
}

func (r *Recorder) Disc(cx, cy, rad float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpDisc, X0: cx, Y0: cy, R: rad, Color: clr})
}

func (r *Recorder) Glow(cx, cy, rad float64, clr color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpGlow, X0: cx, Y0: cy, R: rad, Color: clr})
}

func (r *Recorder) Rect(x, y, w, h float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, X0: x, Y0: y, X1: w, Y1: h, Color: clr})
}

func (r *Recorder) StrokeRect(x, y, w, h, width float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeRect, X0: x, Y0: y, X1: w, Y1: h, R: width, Color: clr})
}

func (r *Recorder) Text(x, y float64, s string, size float64, clr color.Color, align Align) {
	r.Ops = append(r.Ops, Op{Kind: OpText, X0: x, Y0: y, R: size, Color: clr, Text: s})
}

// Count returns how many ops of kind k were recorded.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Texts returns every string drawn, in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

// Reset drops recorded ops.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }
