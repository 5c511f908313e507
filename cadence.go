package cadence

import "image/color"

// CanvasSize is the logical canvas extent. Both axes run 0..100 with the
// origin at the bottom-left and Y increasing upward. Surfaces map this
// square to device pixels, letterboxed to preserve aspect.
const CanvasSize = 100.0

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication, where needed, occurs inside the surface implementations.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default draw color.
var ColorWhite = Color{1, 1, 1, 1}

// WithAlpha returns the color with its alpha multiplied by a, clamped to [0, 1].
func (c Color) WithAlpha(a float64) Color {
	c.A = clamp01(c.A * a)
	return c
}

// Lerp linearly interpolates between c and other by t in [0, 1].
func (c Color) Lerp(other Color, t float64) Color {
	t = clamp01(t)
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// toNRGBA converts to a straight-alpha 8-bit color.
func (c Color) toNRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// Vec2 is a 2D vector used for positions, offsets, and sizes throughout the API.
type Vec2 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Point3 is a point or direction in the 3D space consumed by [Camera3D].
type Point3 struct {
	X, Y, Z float64
}

// Rect is an axis-aligned rectangle in canvas coordinates (origin bottom-left).
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// TextAlign controls horizontal text anchoring around the given position.
type TextAlign uint8

const (
	AlignLeft   TextAlign = iota // position is the left edge of the text
	AlignCenter                  // position is the horizontal center (default for titles)
	AlignRight                   // position is the right edge of the text
)

// VAlign controls vertical text anchoring around the given position.
type VAlign uint8

const (
	VAlignBaseline VAlign = iota // position is the text baseline
	VAlignTop                    // position is the top of the text
	VAlignMiddle                 // position is the vertical center
	VAlignBottom                 // position is the bottom of the text
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
