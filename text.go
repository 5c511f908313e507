package cadence

import "strconv"

// codeBG is the editor-style background behind code, darker than bg_light.
var codeBG = Color{R: 0x0d / 255.0, G: 0x11 / 255.0, B: 0x17 / 255.0, A: 1}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// splitLines splits code into lines after truncating to maxRunes, so long
// snippets degrade the same way regardless of line structure.
func splitLines(code string, maxRunes int) []string {
	code = truncate(code, maxRunes)
	var lines []string
	start := 0
	for i, c := range code {
		if c == '\n' {
			lines = append(lines, code[start:i])
			start = i + 1
		}
	}
	return append(lines, code[start:])
}

func drawText(r *Renderer, s Surface, e *Element, ctx RenderContext) {
	size := e.FontSize
	if size == 0 {
		size = 14
	}
	s.Text(ctx.X, ctx.Y, e.Text, TextStyle{
		Color:  r.color(e.Color, "text"),
		Alpha:  ctx.Alpha,
		Size:   size * ctx.Scale,
		Align:  AlignCenter,
		VAlign: VAlignMiddle,
		Bold:   e.Style == "title",
	})
}

func drawTypewriterText(r *Renderer, s Surface, e *Element, ctx RenderContext) {
	runes := []rune(e.Text)
	typeProgress := clamp01(ctx.Progress * e.Speed)
	visible := int(float64(len(runes)) * typeProgress)
	display := string(runes[:visible])
	if visible < len(runes) && e.ShowCursor {
		display += "|"
	}
	s.Text(ctx.X, ctx.Y, display, TextStyle{
		Color:  r.color(e.Color, "text"),
		Alpha:  clamp01(ctx.Alpha * 2),
		Size:   14 * ctx.Scale,
		Align:  AlignCenter,
		VAlign: VAlignMiddle,
		Mono:   true,
	})
}

func drawCounter(r *Renderer, s Surface, e *Element, ctx RenderContext) {
	value := e.Value * ctx.Progress
	display := e.Prefix + strconv.FormatFloat(value, 'f', e.Decimals, 64) + e.Suffix
	size := e.FontSize
	if size == 0 {
		size = 24
	}
	s.Text(ctx.X, ctx.Y, display, TextStyle{
		Color:  r.color(e.Color, "text"),
		Alpha:  ctx.Alpha,
		Size:   size * ctx.Scale,
		Align:  AlignCenter,
		VAlign: VAlignMiddle,
		Bold:   true,
	})
}

func drawCodeBlock(r *Renderer, s Surface, e *Element, ctx RenderContext) {
	w, h := e.Width*ctx.Scale, e.Height*ctx.Scale
	s.Rect(ctx.X-w/2, ctx.Y-h/2, w, h, Style{Color: codeBG, Alpha: ctx.Alpha, Fill: true})
	s.Rect(ctx.X-w/2, ctx.Y-h/2, w, h, Style{
		Color: r.theme.Color("dim"),
		Alpha: ctx.Alpha,
		Width: 1.5,
	})
	ty := ctx.Y + h/4
	for _, line := range splitLines(e.Code, 40) {
		s.Text(ctx.X-w/2+2, ty, line, TextStyle{
			Color: r.theme.Color("secondary"),
			Alpha: ctx.Alpha,
			Size:  9 * ctx.Scale,
			Align: AlignLeft,
			Mono:  true,
		})
		ty -= 2.5 * ctx.Scale
	}
}

func drawCodeExecution(r *Renderer, s Surface, e *Element, ctx RenderContext) {
	w, h := e.Width*ctx.Scale, e.Height*ctx.Scale

	// Code pane in the upper half.
	s.Rect(ctx.X-w/2, ctx.Y, w, h*0.5, Style{Color: codeBG, Alpha: ctx.Alpha, Fill: true})
	s.Rect(ctx.X-w/2, ctx.Y, w, h*0.5, Style{
		Color: r.theme.Color("dim"),
		Alpha: ctx.Alpha,
		Width: 1,
	})
	ty := ctx.Y + h*0.35
	for _, line := range splitLines(e.Code, 30) {
		s.Text(ctx.X-w/2+2, ty, line, TextStyle{
			Color: r.theme.Color("secondary"),
			Alpha: ctx.Alpha,
			Size:  8 * ctx.Scale,
			Align: AlignLeft,
			Mono:  true,
		})
		ty -= 2.2 * ctx.Scale
	}

	// Output pane fades in during the second half of the element's reveal.
	outAlpha := ctx.Alpha*2 - 0.5
	if outAlpha <= 0 {
		return
	}
	outAlpha = clamp01(outAlpha)
	s.Rect(ctx.X-w/2, ctx.Y-h*0.4, w, h*0.35, Style{
		Color: r.theme.Color("bg_light"),
		Alpha: outAlpha,
		Fill:  true,
	})
	s.Rect(ctx.X-w/2, ctx.Y-h*0.4, w, h*0.35, Style{
		Color: r.theme.Color("success"),
		Alpha: outAlpha,
		Width: 1.5,
	})
	s.Text(ctx.X-w/2+2, ctx.Y-h*0.25, truncate(e.Output, 25), TextStyle{
		Color: r.theme.Color("success"),
		Alpha: outAlpha,
		Size:  8 * ctx.Scale,
		Align: AlignLeft,
		Mono:  true,
	})
}
