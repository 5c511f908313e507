package cadence

import (
	"math"
	"strconv"
)

// Slider track grays, darker than the theme's dim.
var (
	sliderTrack     = Color{R: 0x33 / 255.0, G: 0x33 / 255.0, B: 0x33 / 255.0, A: 1}
	sliderTrackEdge = Color{R: 0x55 / 255.0, G: 0x55 / 255.0, B: 0x55 / 255.0, A: 1}
)

// arcPoints samples an arc around (cx, cy) from a0 to a1 degrees,
// counterclockwise, into n+1 points.
func arcPoints(cx, cy, radius, a0, a1 float64, n int) []Vec2 {
	pts := make([]Vec2, n+1)
	for i := 0; i <= n; i++ {
		a := (a0 + (a1-a0)*float64(i)/float64(n)) * math.Pi / 180
		sin, cos := math.Sincos(a)
		pts[i] = Vec2{X: cx + radius*cos, Y: cy + radius*sin}
	}
	return pts
}

// wedgePoints is an arc closed through the center, for filled gauge slices.
func wedgePoints(cx, cy, radius, a0, a1 float64, n int) []Vec2 {
	return append(arcPoints(cx, cy, radius, a0, a1, n), Vec2{X: cx, Y: cy})
}

func drawSimilarityMeter(r *Renderer, s Surface, e *Element, ctx RenderContext) {
	radius := e.Radius * ctx.Scale
	current := e.Score * ctx.Progress

	// Semicircular gauge background.
	s.Polygon(wedgePoints(ctx.X, ctx.Y, radius, 0, 180, 24), Style{
		Color: r.theme.Color("bg_light"),
		Alpha: ctx.Alpha,
		Fill:  true,
	})
	s.Polygon(wedgePoints(ctx.X, ctx.Y, radius, 0, 180, 24), Style{
		Color: r.theme.Color("dim"),
		Alpha: ctx.Alpha,
		Width: 2,
	})

	// Fill sweeps from the left as the score counts up.
	fillAngle := 180 * (1 - current/100)
	colorName := "warning"
	switch {
	case current > 66:
		colorName = "success"
	case current > 33:
		colorName = "accent"
	}
	if fillAngle < 180 {
		s.Polygon(wedgePoints(ctx.X, ctx.Y, radius, fillAngle, 180, 24), Style{
			Color: r.theme.Color(colorName),
			Alpha: ctx.Alpha,
			Fill:  true,
		})
	}

	s.Text(ctx.X, ctx.Y-2, strconv.Itoa(int(current))+"%", TextStyle{
		Color:  ColorWhite,
		Alpha:  ctx.Alpha,
		Size:   12 * ctx.Scale,
		Align:  AlignCenter,
		VAlign: VAlignMiddle,
		Bold:   true,
	})
	if e.Label != "" {
		s.Text(ctx.X, ctx.Y-radius-2, e.Label, TextStyle{
			Color: r.theme.Color("text"),
			Alpha: ctx.Alpha,
			Size:  9 * ctx.Scale,
			Align: AlignCenter,
		})
	}
}

func drawProgressBar(r *Renderer, s Surface, e *Element, ctx RenderContext) {
	w := e.Width * ctx.Scale
	total := e.Total
	if total < 1 {
		total = 1
	}
	pct := e.Current / total * ctx.Progress
	barH := 4 * ctx.Scale

	s.Rect(ctx.X-w/2, ctx.Y-barH/2, w, barH, Style{
		Color: r.theme.Color("bg_light"),
		Alpha: ctx.Alpha,
		Fill:  true,
	})
	s.Rect(ctx.X-w/2, ctx.Y-barH/2, w, barH, Style{
		Color: r.theme.Color("dim"),
		Alpha: ctx.Alpha,
		Width: 1.5,
	})
	if pct > 0 {
		s.Rect(ctx.X-w/2, ctx.Y-barH/2, w*clamp01(pct), barH, Style{
			Color: r.theme.Color("success"),
			Alpha: ctx.Alpha,
			Fill:  true,
		})
	}
	if e.Label != "" {
		s.Text(ctx.X, ctx.Y+5, e.Label, TextStyle{
			Color: r.theme.Color("text"),
			Alpha: ctx.Alpha,
			Size:  9 * ctx.Scale,
			Align: AlignCenter,
		})
	}
}

func drawWeightComparison(r *Renderer, s Surface, e *Element, ctx RenderContext) {
	w, h := e.Width*ctx.Scale, e.Height*ctx.Scale
	before := e.Before
	if len(before) > 5 {
		before = before[:5]
	}
	if len(before) == 0 {
		return
	}
	after := e.After
	barH := h/float64(len(before)) - 1

	for i := range before {
		barAlpha := StaggerAlpha(ctx.Alpha, i, len(before), e.Stagger)
		if barAlpha <= 0 {
			continue
		}
		by := ctx.Y + h/2 - float64(i)*(barH+1) - barH/2
		bw := (w/2 - 2) * before[i] * ctx.Progress
		s.Rect(ctx.X-w/2, by-barH/2, bw, barH, Style{
			Color: r.theme.Color("warning"),
			Alpha: barAlpha * 0.8,
			Fill:  true,
		})
		if i < len(after) {
			aw := (w/2 - 2) * after[i] * ctx.Progress
			s.Rect(ctx.X+2, by-barH/2, aw, barH, Style{
				Color: r.theme.Color("success"),
				Alpha: barAlpha * 0.8,
				Fill:  true,
			})
		}
		if i < len(e.Labels) {
			s.Text(ctx.X, by, truncate(e.Labels[i], 8), TextStyle{
				Color:  r.theme.Color("text"),
				Alpha:  barAlpha,
				Size:   7 * ctx.Scale,
				Align:  AlignCenter,
				VAlign: VAlignMiddle,
			})
		}
	}
}

func drawParameterSlider(r *Renderer, s Surface, e *Element, ctx RenderContext) {
	w := e.Width * ctx.Scale
	pct := 0.5
	if e.MaxValue != e.MinValue {
		pct = (e.CurrentValue - e.MinValue) / (e.MaxValue - e.MinValue)
	}
	accent := r.theme.Color("accent")
	fill := w * pct * ctx.Progress

	s.Text(ctx.X, ctx.Y+5, truncate(e.Label, 15), TextStyle{
		Color: r.theme.Color("text"),
		Alpha: ctx.Alpha,
		Size:  10 * ctx.Scale,
		Align: AlignCenter,
		Bold:  true,
	})

	trackH := 2 * ctx.Scale
	s.Rect(ctx.X-w/2, ctx.Y-trackH/2, w, trackH, Style{Color: sliderTrack, Alpha: ctx.Alpha, Fill: true})
	s.Rect(ctx.X-w/2, ctx.Y-trackH/2, w, trackH, Style{Color: sliderTrackEdge, Alpha: ctx.Alpha, Width: 0.5})
	if fill > 0 {
		s.Rect(ctx.X-w/2, ctx.Y-trackH/2, fill, trackH, Style{Color: accent, Alpha: ctx.Alpha, Fill: true})
	}

	hx := ctx.X - w/2 + fill
	s.Circle(hx, ctx.Y, 1.5*ctx.Scale, Style{Color: ColorWhite, Alpha: ctx.Alpha, Fill: true})
	s.Circle(hx, ctx.Y, 1.5*ctx.Scale, Style{Color: accent, Alpha: ctx.Alpha, Width: 1.5})

	s.Text(ctx.X, ctx.Y-4, strconv.FormatFloat(e.CurrentValue, 'f', 2, 64), TextStyle{
		Color: accent,
		Alpha: ctx.Alpha,
		Size:  8 * ctx.Scale,
		Align: AlignCenter,
	})
}
