package cadence

import (
	"github.com/gdamore/tcell/v2"
)

// TermSurface renders frames into a tcell terminal screen, the preview
// backend for machines without a display server. Shapes rasterize into a
// small software buffer shown as half-block characters, two pixels per
// cell, which keeps the canvas roughly square on typical cell geometry.
// Text is deferred and drawn as real terminal glyphs at Flush time so it
// stays readable; glyphs always sit above the block graphics.
type TermSurface struct {
	screen tcell.Screen
	buf    *ImageSurface
	texts  []termText
	cols   int
	rows   int
}

type termText struct {
	cellX, cellY int
	str          string
	color        Color
	alpha        float64
	bold         bool
}

// NewTermSurface wraps an initialized tcell screen. The caller owns the
// screen lifecycle: Init before, Fini after.
func NewTermSurface(screen tcell.Screen) *TermSurface {
	s := &TermSurface{screen: screen}
	s.Resize()
	return s
}

// Resize re-reads the screen size, typically from a tcell.EventResize.
func (s *TermSurface) Resize() {
	if s.screen == nil {
		return
	}
	cols, rows := s.screen.Size()
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	if cols == s.cols && rows == s.rows && s.buf != nil {
		return
	}
	s.cols, s.rows = cols, rows
	s.buf = NewImageSurface(cols, rows*2)
}

// View returns the canvas mapping onto the half-block pixel grid.
func (s *TermSurface) View() View {
	if s.buf == nil {
		return NewView(1, 1)
	}
	return s.buf.View()
}

// Clear implements [Surface].
func (s *TermSurface) Clear(c Color) {
	if s.buf == nil {
		return
	}
	s.buf.Clear(c)
	s.texts = s.texts[:0]
}

// Line implements [Surface].
func (s *TermSurface) Line(x1, y1, x2, y2 float64, st Style) {
	if s.buf == nil {
		return
	}
	s.buf.Line(x1, y1, x2, y2, boostWidth(st))
}

// Polyline implements [Surface].
func (s *TermSurface) Polyline(pts []Vec2, st Style) {
	if s.buf == nil {
		return
	}
	s.buf.Polyline(pts, boostWidth(st))
}

// Rect implements [Surface].
func (s *TermSurface) Rect(x, y, w, h float64, st Style) {
	if s.buf == nil {
		return
	}
	s.buf.Rect(x, y, w, h, boostWidth(st))
}

// Circle implements [Surface].
func (s *TermSurface) Circle(cx, cy, r float64, st Style) {
	if s.buf == nil {
		return
	}
	s.buf.Circle(cx, cy, r, boostWidth(st))
}

// Polygon implements [Surface].
func (s *TermSurface) Polygon(pts []Vec2, st Style) {
	if s.buf == nil {
		return
	}
	s.buf.Polygon(pts, boostWidth(st))
}

// boostWidth thickens strokes for the coarse terminal grid, where a
// point-scaled width would round below one block pixel.
func boostWidth(st Style) Style {
	if !st.Fill && st.Width < 8 {
		st.Width = 8
	}
	return st
}

// Text implements [Surface]. The string is drawn as terminal glyphs, one
// cell per rune, anchored by the style's horizontal alignment. Size and
// the mono flag have no effect on a cell grid.
func (s *TermSurface) Text(x, y float64, str string, st TextStyle) {
	if s.buf == nil || str == "" || st.Alpha <= 0 {
		return
	}
	px, py := s.buf.View().ToDevice(x, y)
	runes := []rune(str)
	cellX := int(px)
	switch st.Align {
	case AlignCenter:
		cellX -= len(runes) / 2
	case AlignRight:
		cellX -= len(runes)
	}
	s.texts = append(s.texts, termText{
		cellX: cellX,
		cellY: int(py) / 2,
		str:   str,
		color: st.Color,
		alpha: st.Alpha,
		bold:  st.Bold,
	})
}

// Flush converts the pixel buffer into half-block cells, overlays the
// deferred text, and shows the result.
func (s *TermSurface) Flush() {
	if s.screen == nil || s.buf == nil {
		return
	}
	img := s.buf.Image()
	for cy := 0; cy < s.rows; cy++ {
		for cx := 0; cx < s.cols; cx++ {
			upper := img.RGBAAt(cx, cy*2)
			lower := img.RGBAAt(cx, cy*2+1)
			st := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(upper.R), int32(upper.G), int32(upper.B))).
				Background(tcell.NewRGBColor(int32(lower.R), int32(lower.G), int32(lower.B)))
			s.screen.SetContent(cx, cy, '▀', nil, st)
		}
	}
	for _, t := range s.texts {
		s.drawGlyphs(t)
	}
	s.screen.Show()
}

// drawGlyphs writes one deferred text run. The glyph color is blended
// toward the underlying block pixel by the text alpha, so fading text
// sinks into the background instead of popping.
func (s *TermSurface) drawGlyphs(t termText) {
	img := s.buf.Image()
	cx := t.cellX
	for _, r := range t.str {
		if cx < 0 || cx >= s.cols || t.cellY < 0 || t.cellY >= s.rows {
			cx++
			continue
		}
		under := img.RGBAAt(cx, t.cellY*2)
		bg := Color{
			R: float64(under.R) / 255,
			G: float64(under.G) / 255,
			B: float64(under.B) / 255,
			A: 1,
		}
		fg := bg.Lerp(Color{t.color.R, t.color.G, t.color.B, 1}, clamp01(t.alpha*t.color.A))
		st := tcell.StyleDefault.
			Foreground(tcell.NewRGBColor(
				int32(clamp01(fg.R)*255),
				int32(clamp01(fg.G)*255),
				int32(clamp01(fg.B)*255),
			)).
			Background(tcell.NewRGBColor(int32(under.R), int32(under.G), int32(under.B))).
			Bold(t.bold)
		s.screen.SetContent(cx, t.cellY, r, nil, st)
		cx++
	}
}
