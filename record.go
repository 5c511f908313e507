package cadence

// OpType identifies the kind of recorded draw operation.
type OpType uint8

const (
	OpClear OpType = iota
	OpLine
	OpPolyline
	OpRect
	OpCircle
	OpPolygon
	OpText
)

// Op is a single recorded draw call. Which fields are meaningful depends on
// Type: lines use X1..Y2, rects use X1, Y1, W, H, circles use X1, Y1, R,
// polylines and polygons use Points, text uses X1, Y1, Text.
type Op struct {
	Type           OpType
	X1, Y1, X2, Y2 float64
	W, H, R        float64
	Points         []Vec2
	Text           string
	Style          Style
	TextStyle      TextStyle
	ClearColor     Color
}

// RecordSurface is a Surface that captures draw calls instead of
// rasterizing them. Tests assert on the op stream; Replay forwards it to a
// real surface.
type RecordSurface struct {
	Ops []Op
}

// NewRecordSurface returns an empty recording surface.
func NewRecordSurface() *RecordSurface {
	return &RecordSurface{}
}

// Reset drops all recorded ops, keeping the backing array for reuse.
func (r *RecordSurface) Reset() {
	r.Ops = r.Ops[:0]
}

func (r *RecordSurface) Clear(c Color) {
	r.Ops = append(r.Ops, Op{Type: OpClear, ClearColor: c})
}

func (r *RecordSurface) Line(x1, y1, x2, y2 float64, st Style) {
	r.Ops = append(r.Ops, Op{Type: OpLine, X1: x1, Y1: y1, X2: x2, Y2: y2, Style: st})
}

func (r *RecordSurface) Polyline(pts []Vec2, st Style) {
	r.Ops = append(r.Ops, Op{Type: OpPolyline, Points: copyPoints(pts), Style: st})
}

func (r *RecordSurface) Rect(x, y, w, h float64, st Style) {
	r.Ops = append(r.Ops, Op{Type: OpRect, X1: x, Y1: y, W: w, H: h, Style: st})
}

func (r *RecordSurface) Circle(cx, cy, radius float64, st Style) {
	r.Ops = append(r.Ops, Op{Type: OpCircle, X1: cx, Y1: cy, R: radius, Style: st})
}

func (r *RecordSurface) Polygon(pts []Vec2, st Style) {
	r.Ops = append(r.Ops, Op{Type: OpPolygon, Points: copyPoints(pts), Style: st})
}

func (r *RecordSurface) Text(x, y float64, s string, st TextStyle) {
	r.Ops = append(r.Ops, Op{Type: OpText, X1: x, Y1: y, Text: s, TextStyle: st})
}

// copyPoints detaches recorded geometry from caller-owned buffers that may
// be reused for the next shape.
func copyPoints(pts []Vec2) []Vec2 {
	if len(pts) == 0 {
		return nil
	}
	out := make([]Vec2, len(pts))
	copy(out, pts)
	return out
}

// Replay forwards every recorded op to dst in order.
func (r *RecordSurface) Replay(dst Surface) {
	for i := range r.Ops {
		op := &r.Ops[i]
		switch op.Type {
		case OpClear:
			dst.Clear(op.ClearColor)
		case OpLine:
			dst.Line(op.X1, op.Y1, op.X2, op.Y2, op.Style)
		case OpPolyline:
			dst.Polyline(op.Points, op.Style)
		case OpRect:
			dst.Rect(op.X1, op.Y1, op.W, op.H, op.Style)
		case OpCircle:
			dst.Circle(op.X1, op.Y1, op.R, op.Style)
		case OpPolygon:
			dst.Polygon(op.Points, op.Style)
		case OpText:
			dst.Text(op.X1, op.Y1, op.Text, op.TextStyle)
		}
	}
}

// Count returns how many ops of the given type were recorded.
func (r *RecordSurface) Count(t OpType) int {
	n := 0
	for i := range r.Ops {
		if r.Ops[i].Type == t {
			n++
		}
	}
	return n
}

// Texts returns every recorded text string, in draw order.
func (r *RecordSurface) Texts() []string {
	var out []string
	for i := range r.Ops {
		if r.Ops[i].Type == OpText {
			out = append(out, r.Ops[i].Text)
		}
	}
	return out
}

// TextOps returns every text op, in draw order.
func (r *RecordSurface) TextOps() []Op {
	var out []Op
	for i := range r.Ops {
		if r.Ops[i].Type == OpText {
			out = append(out, r.Ops[i])
		}
	}
	return out
}

var _ Surface = (*RecordSurface)(nil)
