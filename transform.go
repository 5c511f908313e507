package cadence

import "math"

// pointUnit converts a point size (text sizes, stroke widths) into canvas
// units. Chosen so a size-18 label reads as a subtitle and size-36 as a
// title on the 100-unit canvas.
const pointUnit = 0.15

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// View is the aspect-locked mapping from canvas coordinates to device
// pixels. The canvas square is scaled uniformly to the largest size that
// fits the device and centered, letterboxing the rest. Device space is
// y-down, canvas space y-up; the view's matrix folds the flip in.
type View struct {
	width  int
	height int
	scale  float64
	matrix [6]float64
	invert [6]float64
}

// NewView builds a view for a device of the given pixel size. Sizes below
// one pixel are clamped rather than rejected.
func NewView(width, height int) View {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	side := math.Min(float64(width), float64(height))
	scale := side / CanvasSize
	offsetX := (float64(width) - CanvasSize*scale) / 2
	offsetY := (float64(height) - CanvasSize*scale) / 2

	// Matrix layout: [a, b, c, d, tx, ty]
	//	| a  c  tx |
	//	| b  d  ty |
	//	| 0  0   1 |
	// d is negative: canvas y-up becomes device y-down.
	m := [6]float64{scale, 0, 0, -scale, offsetX, float64(height) - offsetY}
	return View{
		width:  width,
		height: height,
		scale:  scale,
		matrix: m,
		invert: invertAffine(m),
	}
}

// Size returns the device size in pixels.
func (v View) Size() (width, height int) {
	return v.width, v.height
}

// Matrix returns the canvas-to-device affine matrix.
func (v View) Matrix() [6]float64 {
	return v.matrix
}

// ToDevice converts a canvas point to device pixels.
func (v View) ToDevice(x, y float64) (px, py float64) {
	return transformPoint(v.matrix, x, y)
}

// ToCanvas converts a device pixel position back to canvas coordinates.
func (v View) ToCanvas(px, py float64) (x, y float64) {
	return transformPoint(v.invert, px, py)
}

// Pixels converts a length in canvas units to pixels.
func (v View) Pixels(units float64) float64 {
	return units * v.scale
}

// StrokePx converts a stroke width in points to pixels, never thinner
// than one pixel so hairlines survive small devices.
func (v View) StrokePx(width float64) float64 {
	px := width * pointUnit * v.scale
	if px < 1 {
		px = 1
	}
	return px
}

// FontPx converts a text size in points to a pixel height.
func (v View) FontPx(size float64) float64 {
	return size * pointUnit * v.scale
}

// multiplyAffine multiplies two 2D affine matrices: result = outer * inner.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ≈ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
