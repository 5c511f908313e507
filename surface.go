package cadence

// Surface is the drawing target for one frame. Coordinates are canvas
// units, 0..100 on both axes with the origin at the bottom left and y
// growing upward. Implementations map canvas units to their own device
// space; see [View].
//
// Calls draw in order, later calls over earlier ones. A Surface is used by
// one goroutine at a time.
type Surface interface {
	// Clear fills the whole surface with a color, discarding prior content.
	Clear(c Color)

	// Line draws a straight segment.
	Line(x1, y1, x2, y2 float64, st Style)

	// Polyline draws connected segments through the given points.
	// Fewer than two points draw nothing.
	Polyline(pts []Vec2, st Style)

	// Rect draws a rectangle. (x, y) is the bottom-left corner.
	Rect(x, y, w, h float64, st Style)

	// Circle draws a circle. The radius is in horizontal canvas units.
	Circle(cx, cy, r float64, st Style)

	// Polygon draws a closed polygon through the given points.
	// Fewer than three points draw nothing.
	Polygon(pts []Vec2, st Style)

	// Text draws a string anchored at (x, y) per the style's alignment.
	Text(x, y float64, s string, st TextStyle)
}

// Style controls how shapes and lines are drawn. Alpha multiplies the
// color's own alpha; a zero Alpha draws nothing, so every call site sets it
// explicitly.
type Style struct {
	Color Color
	Alpha float64
	// Width is the stroke width in points. Ignored for filled shapes.
	Width float64
	// Fill draws the shape solid instead of stroked.
	Fill bool
	// Dash is an on/off pattern in canvas units. Empty means solid.
	Dash []float64
}

// TextStyle controls how text is drawn. Size is the font size in points at
// reference resolution; surfaces scale it with the canvas.
type TextStyle struct {
	Color  Color
	Alpha  float64
	Size   float64
	Align  TextAlign
	VAlign VAlign
	Bold   bool
	// Mono selects the monospaced face, used for code.
	Mono bool
}

// applyAlpha returns c with its alpha multiplied by a.
func applyAlpha(c Color, a float64) Color {
	c.A = clamp01(c.A * a)
	return c
}
