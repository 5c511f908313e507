package cadence

import (
	"image"
	"image/draw"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// ImageSurface renders frames into an *image.RGBA in software, using the
// golang.org/x/image vector rasterizer for shapes and the bundled Go fonts
// for text. It needs no window or GPU, which makes it the export backend
// and the reference implementation the other surfaces are checked against.
type ImageSurface struct {
	img   *image.RGBA
	view  View
	ras   vector.Rasterizer
	faces map[faceKey]font.Face
	path  []Vec2 // scratch, reused across calls
}

// NewImageSurface creates a software surface of the given pixel size.
func NewImageSurface(width, height int) *ImageSurface {
	v := NewView(width, height)
	w, h := v.Size()
	return &ImageSurface{
		img:   image.NewRGBA(image.Rect(0, 0, w, h)),
		view:  v,
		faces: make(map[faceKey]font.Face),
	}
}

// Image returns the backing image. Pixels are valid after any draw call;
// the image is reused across frames.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// View returns the canvas-to-pixel mapping used by this surface.
func (s *ImageSurface) View() View {
	return s.view
}

// Clear implements [Surface].
func (s *ImageSurface) Clear(c Color) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c.toNRGBA()), image.Point{}, draw.Src)
}

// Line implements [Surface].
func (s *ImageSurface) Line(x1, y1, x2, y2 float64, st Style) {
	s.Polyline([]Vec2{{x1, y1}, {x2, y2}}, st)
}

// Polyline implements [Surface].
func (s *ImageSurface) Polyline(pts []Vec2, st Style) {
	if len(pts) < 2 || st.Alpha <= 0 {
		return
	}
	if len(st.Dash) > 0 {
		s.dashed(pts, st)
		return
	}
	s.stroke(pts, st)
}

// Rect implements [Surface].
func (s *ImageSurface) Rect(x, y, w, h float64, st Style) {
	if st.Alpha <= 0 {
		return
	}
	pts := []Vec2{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
	s.Polygon(pts, st)
}

// Circle implements [Surface].
func (s *ImageSurface) Circle(cx, cy, r float64, st Style) {
	if st.Alpha <= 0 || r <= 0 {
		return
	}
	px, py := s.view.ToDevice(cx, cy)
	pr := s.view.Pixels(r)
	if st.Fill {
		s.beginPath()
		circlePath(&s.ras, px, py, pr, false)
		s.paint(st.Color, st.Alpha)
		return
	}
	// Stroke as an annulus: outer ring plus a reversed inner ring.
	half := s.view.StrokePx(st.Width) / 2
	s.beginPath()
	circlePath(&s.ras, px, py, pr+half, false)
	inner := pr - half
	if inner > 0 {
		circlePath(&s.ras, px, py, inner, true)
	}
	s.paint(st.Color, st.Alpha)
}

// Polygon implements [Surface].
func (s *ImageSurface) Polygon(pts []Vec2, st Style) {
	if len(pts) < 3 || st.Alpha <= 0 {
		return
	}
	if st.Fill {
		s.beginPath()
		px, py := s.view.ToDevice(pts[0].X, pts[0].Y)
		s.ras.MoveTo(float32(px), float32(py))
		for _, p := range pts[1:] {
			px, py = s.view.ToDevice(p.X, p.Y)
			s.ras.LineTo(float32(px), float32(py))
		}
		s.ras.ClosePath()
		s.paint(st.Color, st.Alpha)
		return
	}
	// Outline: close the ring and stroke it like a polyline.
	s.path = append(s.path[:0], pts...)
	s.path = append(s.path, pts[0])
	if len(st.Dash) > 0 {
		s.dashed(s.path, st)
	} else {
		s.stroke(s.path, st)
	}
}

// Text implements [Surface].
func (s *ImageSurface) Text(x, y float64, str string, st TextStyle) {
	if str == "" || st.Alpha <= 0 || st.Size <= 0 {
		return
	}
	face := s.face(st)
	if face == nil {
		return
	}
	px, py := s.view.ToDevice(x, y)

	width := font.MeasureString(face, str)
	switch st.Align {
	case AlignCenter:
		px -= fixedToFloat(width) / 2
	case AlignRight:
		px -= fixedToFloat(width)
	}

	m := face.Metrics()
	ascent := fixedToFloat(m.Ascent)
	descent := fixedToFloat(m.Descent)
	switch st.VAlign {
	case VAlignTop:
		py += ascent
	case VAlignMiddle:
		py += (ascent - descent) / 2
	case VAlignBottom:
		py -= descent
	}

	d := font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(applyAlpha(st.Color, st.Alpha).toNRGBA()),
		Face: face,
		Dot:  fixed.Point26_6{X: floatToFixed(px), Y: floatToFixed(py)},
	}
	d.DrawString(str)
}

// beginPath resets the rasterizer for a fresh shape.
func (s *ImageSurface) beginPath() {
	b := s.img.Bounds()
	s.ras.Reset(b.Dx(), b.Dy())
}

// paint rasterizes the accumulated path in the given color.
func (s *ImageSurface) paint(c Color, alpha float64) {
	src := image.NewUniform(applyAlpha(c, alpha).toNRGBA())
	s.ras.Draw(s.img, s.img.Bounds(), src, image.Point{})
}

// stroke draws a solid polyline as one quad per segment. Joints are butt
// joined; at the stroke widths the canvas uses the gaps stay sub-pixel.
func (s *ImageSurface) stroke(pts []Vec2, st Style) {
	half := s.view.StrokePx(st.Width) / 2
	s.beginPath()
	n := 0
	for i := 0; i < len(pts)-1; i++ {
		x1, y1 := s.view.ToDevice(pts[i].X, pts[i].Y)
		x2, y2 := s.view.ToDevice(pts[i+1].X, pts[i+1].Y)
		if segmentQuad(&s.ras, x1, y1, x2, y2, half) {
			n++
		}
	}
	if n > 0 {
		s.paint(st.Color, st.Alpha)
	}
}

// dashed draws a polyline as alternating on/off runs of the style's dash
// pattern, measured in canvas units along the path.
func (s *ImageSurface) dashed(pts []Vec2, st Style) {
	solid := st
	solid.Dash = nil
	walkDashes(pts, st.Dash, func(a, b Vec2) {
		s.stroke([]Vec2{a, b}, solid)
	})
}

// face returns a cached font face for the style, or nil when the bundled
// fonts are unusable.
func (s *ImageSurface) face(st TextStyle) font.Face {
	px := s.view.FontPx(st.Size)
	if px < 1 {
		px = 1
	}
	key := faceKey{halfPx: int(px*2 + 0.5), bold: st.Bold, mono: st.Mono}
	if f, ok := s.faces[key]; ok {
		return f
	}
	src := sourceFont(st.Bold, st.Mono)
	if src == nil {
		return nil
	}
	f, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    float64(key.halfPx) / 2,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		warnOncef("face", "create font face: %v", err)
		return nil
	}
	s.faces[key] = f
	return f
}

type faceKey struct {
	halfPx int
	bold   bool
	mono   bool
}

var (
	fontOnce    sync.Once
	fontRegular *opentype.Font
	fontBold    *opentype.Font
	fontMono    *opentype.Font
)

// sourceFont parses the bundled Go fonts on first use and picks the one
// matching the style. Mono wins over bold, matching how code blocks are
// styled.
func sourceFont(bold, mono bool) *opentype.Font {
	fontOnce.Do(func() {
		var err error
		if fontRegular, err = opentype.Parse(goregular.TTF); err != nil {
			warnOncef("font:regular", "parse bundled font: %v", err)
		}
		if fontBold, err = opentype.Parse(gobold.TTF); err != nil {
			warnOncef("font:bold", "parse bundled font: %v", err)
		}
		if fontMono, err = opentype.Parse(gomono.TTF); err != nil {
			warnOncef("font:mono", "parse bundled font: %v", err)
		}
	})
	switch {
	case mono:
		return fontMono
	case bold:
		return fontBold
	default:
		return fontRegular
	}
}

// segmentQuad adds the quad covering a segment stroked at the given half
// width, in device coordinates. Degenerate segments add nothing.
func segmentQuad(ras *vector.Rasterizer, x1, y1, x2, y2, half float64) bool {
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length < 1e-9 {
		return false
	}
	// Unit normal.
	nx, ny := -dy/length*half, dx/length*half
	ras.MoveTo(float32(x1+nx), float32(y1+ny))
	ras.LineTo(float32(x2+nx), float32(y2+ny))
	ras.LineTo(float32(x2-nx), float32(y2-ny))
	ras.LineTo(float32(x1-nx), float32(y1-ny))
	ras.ClosePath()
	return true
}

// circleMagic positions cubic control points so four arcs approximate a
// circle.
const circleMagic = 0.5519150244935105707435627

// circlePath adds a circle in device coordinates. reversed mirrors the
// sweep, flipping the winding so the circle cuts a hole out of an
// enclosing contour.
func circlePath(ras *vector.Rasterizer, cx, cy, rr float64, reversed bool) {
	k := circleMagic * rr
	right := cx + rr
	sy := 1.0
	if reversed {
		sy = -1
	}
	ras.MoveTo(float32(right), float32(cy))
	ras.CubeTo(
		float32(right), float32(cy+sy*k),
		float32(cx+k), float32(cy+sy*rr),
		float32(cx), float32(cy+sy*rr),
	)
	ras.CubeTo(
		float32(cx-k), float32(cy+sy*rr),
		float32(cx-rr), float32(cy+sy*k),
		float32(cx-rr), float32(cy),
	)
	ras.CubeTo(
		float32(cx-rr), float32(cy-sy*k),
		float32(cx-k), float32(cy-sy*rr),
		float32(cx), float32(cy-sy*rr),
	)
	ras.CubeTo(
		float32(cx+k), float32(cy-sy*rr),
		float32(right), float32(cy-sy*k),
		float32(right), float32(cy),
	)
	ras.ClosePath()
}

// walkDashes splits a polyline into the on runs of a dash pattern and
// hands each run's segments to emit. Pattern entries are canvas units;
// non-positive entries disable dashing.
func walkDashes(pts []Vec2, pattern []float64, emit func(a, b Vec2)) {
	total := 0.0
	for _, d := range pattern {
		if d <= 0 {
			// Broken pattern, draw solid.
			for i := 0; i < len(pts)-1; i++ {
				emit(pts[i], pts[i+1])
			}
			return
		}
		total += d
	}

	// Position along the repeating pattern; even indexes are "on".
	idx := 0
	remain := pattern[0]
	on := true
	for i := 0; i < len(pts)-1; i++ {
		a, b := pts[i], pts[i+1]
		segLen := math.Hypot(b.X-a.X, b.Y-a.Y)
		if segLen < 1e-12 {
			continue
		}
		pos := 0.0
		for pos < segLen {
			span := math.Min(remain, segLen-pos)
			if on {
				t0, t1 := pos/segLen, (pos+span)/segLen
				emit(
					Vec2{a.X + (b.X-a.X)*t0, a.Y + (b.Y-a.Y)*t0},
					Vec2{a.X + (b.X-a.X)*t1, a.Y + (b.Y-a.Y)*t1},
				)
			}
			pos += span
			remain -= span
			if remain <= 1e-12 {
				idx = (idx + 1) % len(pattern)
				remain = pattern[idx]
				on = !on
			}
		}
	}
}

// fixedToFloat converts a 26.6 fixed-point value to float64 pixels.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// floatToFixed converts float64 pixels to 26.6 fixed point.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
