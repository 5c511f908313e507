package cadence

import (
	"bytes"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// EbitenSurface renders frames onto an *ebiten.Image, the windowed playback
// backend used by [Player]. Bind the frame's target with SetTarget before
// drawing; the surface recomputes its view only when the target size
// changes.
type EbitenSurface struct {
	dst  *ebiten.Image
	view View
}

// NewEbitenSurface creates an unbound surface. Drawing before SetTarget is
// a no-op.
func NewEbitenSurface() *EbitenSurface {
	return &EbitenSurface{}
}

// SetTarget binds the surface to the given image, typically the screen
// passed to an Ebitengine Draw callback.
func (s *EbitenSurface) SetTarget(img *ebiten.Image) {
	s.dst = img
	if img == nil {
		return
	}
	b := img.Bounds()
	if w, h := s.view.Size(); w != b.Dx() || h != b.Dy() {
		s.view = NewView(b.Dx(), b.Dy())
	}
}

// View returns the canvas-to-pixel mapping for the current target.
func (s *EbitenSurface) View() View {
	return s.view
}

// Clear implements [Surface].
func (s *EbitenSurface) Clear(c Color) {
	if s.dst == nil {
		return
	}
	s.dst.Fill(c.toNRGBA())
}

// Line implements [Surface].
func (s *EbitenSurface) Line(x1, y1, x2, y2 float64, st Style) {
	s.Polyline([]Vec2{{x1, y1}, {x2, y2}}, st)
}

// Polyline implements [Surface].
func (s *EbitenSurface) Polyline(pts []Vec2, st Style) {
	if s.dst == nil || len(pts) < 2 || st.Alpha <= 0 {
		return
	}
	if len(st.Dash) > 0 {
		solid := st
		solid.Dash = nil
		walkDashes(pts, st.Dash, func(a, b Vec2) {
			s.strokeSegment(a, b, solid)
		})
		return
	}
	for i := 0; i < len(pts)-1; i++ {
		s.strokeSegment(pts[i], pts[i+1], st)
	}
}

func (s *EbitenSurface) strokeSegment(a, b Vec2, st Style) {
	x1, y1 := s.view.ToDevice(a.X, a.Y)
	x2, y2 := s.view.ToDevice(b.X, b.Y)
	vector.StrokeLine(s.dst,
		float32(x1), float32(y1), float32(x2), float32(y2),
		float32(s.view.StrokePx(st.Width)),
		applyAlpha(st.Color, st.Alpha).toNRGBA(), true)
}

// Rect implements [Surface].
func (s *EbitenSurface) Rect(x, y, w, h float64, st Style) {
	if s.dst == nil || st.Alpha <= 0 {
		return
	}
	// Device origin is the rect's top-left corner.
	px, py := s.view.ToDevice(x, y+h)
	pw := float32(s.view.Pixels(w))
	ph := float32(s.view.Pixels(h))
	clr := applyAlpha(st.Color, st.Alpha).toNRGBA()
	if st.Fill {
		vector.DrawFilledRect(s.dst, float32(px), float32(py), pw, ph, clr, true)
		return
	}
	if len(st.Dash) > 0 {
		s.Polyline([]Vec2{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}, {x, y}}, st)
		return
	}
	vector.StrokeRect(s.dst, float32(px), float32(py), pw, ph,
		float32(s.view.StrokePx(st.Width)), clr, true)
}

// Circle implements [Surface].
func (s *EbitenSurface) Circle(cx, cy, r float64, st Style) {
	if s.dst == nil || st.Alpha <= 0 || r <= 0 {
		return
	}
	px, py := s.view.ToDevice(cx, cy)
	pr := float32(s.view.Pixels(r))
	clr := applyAlpha(st.Color, st.Alpha).toNRGBA()
	if st.Fill {
		vector.DrawFilledCircle(s.dst, float32(px), float32(py), pr, clr, true)
		return
	}
	vector.StrokeCircle(s.dst, float32(px), float32(py), pr,
		float32(s.view.StrokePx(st.Width)), clr, true)
}

// Polygon implements [Surface].
func (s *EbitenSurface) Polygon(pts []Vec2, st Style) {
	if s.dst == nil || len(pts) < 3 || st.Alpha <= 0 {
		return
	}
	if !st.Fill {
		ring := make([]Vec2, 0, len(pts)+1)
		ring = append(ring, pts...)
		ring = append(ring, pts[0])
		s.Polyline(ring, st)
		return
	}

	var path vector.Path
	px, py := s.view.ToDevice(pts[0].X, pts[0].Y)
	path.MoveTo(float32(px), float32(py))
	for _, p := range pts[1:] {
		px, py = s.view.ToDevice(p.X, p.Y)
		path.LineTo(float32(px), float32(py))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	c := applyAlpha(st.Color, st.Alpha)
	// Vertex colors are premultiplied.
	cr := float32(c.R * c.A)
	cg := float32(c.G * c.A)
	cb := float32(c.B * c.A)
	ca := float32(c.A)
	for i := range vs {
		vs[i].SrcX = 0.5
		vs[i].SrcY = 0.5
		vs[i].ColorR = cr
		vs[i].ColorG = cg
		vs[i].ColorB = cb
		vs[i].ColorA = ca
	}
	op := &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  ebiten.FillRuleNonZero,
	}
	s.dst.DrawTriangles(vs, is, ensureWhitePixel(), op)
}

// Text implements [Surface].
func (s *EbitenSurface) Text(x, y float64, str string, st TextStyle) {
	if s.dst == nil || str == "" || st.Alpha <= 0 || st.Size <= 0 {
		return
	}
	src := goTextSource(st.Bold, st.Mono)
	if src == nil {
		return
	}
	face := &text.GoTextFace{Source: src, Size: s.view.FontPx(st.Size)}
	m := face.Metrics()
	lh := m.HAscent + m.HDescent + m.HLineGap
	w, h := text.Measure(str, face, lh)

	px, py := s.view.ToDevice(x, y)
	switch st.Align {
	case AlignCenter:
		px -= w / 2
	case AlignRight:
		px -= w
	}
	// text.Draw anchors at the block's top-left corner.
	switch st.VAlign {
	case VAlignBaseline:
		py -= m.HAscent
	case VAlignMiddle:
		py -= h / 2
	case VAlignBottom:
		py -= h
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(px, py)
	op.ColorScale.ScaleWithColor(applyAlpha(st.Color, st.Alpha).toNRGBA())
	op.LineSpacing = lh
	text.Draw(s.dst, str, face, op)
}

// --- Lazy singletons (no sync.Once; Ebitengine callbacks are single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image,
// the texture source for untextured polygon fills.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

var goTextSources [3]*text.GoTextFaceSource

// goTextSource returns the text/v2 source for the bundled Go font matching
// the style, parsing it on first use. Mono wins over bold, same as the
// software backend.
func goTextSource(bold, mono bool) *text.GoTextFaceSource {
	idx := 0
	ttf := goregular.TTF
	switch {
	case mono:
		idx, ttf = 2, gomono.TTF
	case bold:
		idx, ttf = 1, gobold.TTF
	}
	if goTextSources[idx] == nil {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
		if err != nil {
			warnOncef("gotextface", "parse bundled font: %v", err)
			return nil
		}
		goTextSources[idx] = src
	}
	return goTextSources[idx]
}
