package cadence

import (
	"math"
	"strconv"
)

// flowColorCycle is the default edge color sequence for flow steps without
// an explicit color.
var flowColorCycle = []string{"warning", "primary", "success", "accent"}

func drawFlow(r *Renderer, s Surface, e *Element, ctx RenderContext) {
	w := e.Width * ctx.Scale
	steps := e.Steps
	if len(steps) > 6 {
		steps = steps[:6]
	}
	if len(steps) == 0 {
		return
	}
	gap := 3 * ctx.Scale
	stepW := w/float64(len(steps)) - gap
	stepH := 12 * ctx.Scale

	for i := range steps {
		step := &steps[i]
		stepAlpha := StaggerAlpha(ctx.Alpha, i, len(steps), e.Stagger)
		if stepAlpha <= 0 {
			continue
		}
		sx := ctx.X - w/2 + float64(i)*(stepW+gap) + stepW/2
		colorRef := step.Color
		if colorRef == "" {
			colorRef = flowColorCycle[i%len(flowColorCycle)]
		}
		color := r.color(colorRef, "primary")

		s.Rect(sx-stepW/2, ctx.Y-stepH/2, stepW, stepH, Style{
			Color: r.theme.Color("bg_light"),
			Alpha: stepAlpha,
			Fill:  true,
		})
		s.Rect(sx-stepW/2, ctx.Y-stepH/2, stepW, stepH, Style{
			Color: color,
			Alpha: stepAlpha,
			Width: 2,
		})

		title := step.Label()
		if title == "" {
			title = "Step " + strconv.Itoa(i+1)
		}
		s.Text(sx, ctx.Y+1, truncate(title, 12), TextStyle{
			Color:  color,
			Alpha:  stepAlpha,
			Size:   9 * ctx.Scale,
			Align:  AlignCenter,
			VAlign: VAlignMiddle,
			Bold:   true,
		})
		if step.Subtitle != "" {
			s.Text(sx, ctx.Y-3, truncate(step.Subtitle, 15), TextStyle{
				Color:  r.theme.Color("dim"),
				Alpha:  stepAlpha * 0.8,
				Size:   7 * ctx.Scale,
				Align:  AlignCenter,
				VAlign: VAlignMiddle,
			})
		}

		if i < len(steps)-1 {
			ax := sx + stepW/2 + 0.5
			drawArrowLine(s, ax, ctx.Y, ax+2, ctx.Y, 1.5, 1.2,
				r.theme.Color("dim"), stepAlpha*0.7)
		}
	}
}

func drawGrid(r *Renderer, s Surface, e *Element, ctx RenderContext) {
	w, h := e.Width*ctx.Scale, e.Height*ctx.Scale
	cols, rows := e.Cols, e.Rows
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	cellW := e.CellWidth * ctx.Scale
	if cellW == 0 {
		cellW = w/float64(cols) - 2*ctx.Scale
	}
	cellH := e.CellHeight * ctx.Scale
	if cellH == 0 {
		cellH = h/float64(rows) - 2*ctx.Scale
	}
	gap := 2 * ctx.Scale

	idx := 0
	total := cols * rows
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cellAlpha := StaggerAlpha(ctx.Alpha, idx, total, e.Stagger)
			if cellAlpha <= 0 {
				idx++
				continue
			}
			cx := ctx.X - w/2 + float64(col)*(cellW+gap) + cellW/2 + 1
			cy := ctx.Y + h/2 - float64(row)*(cellH+gap) - cellH/2 - 1

			s.Rect(cx-cellW/2, cy-cellH/2, cellW, cellH, Style{
				Color: r.theme.Color("bg_light"),
				Alpha: cellAlpha,
				Fill:  true,
			})
			s.Rect(cx-cellW/2, cy-cellH/2, cellW, cellH, Style{
				Color: r.theme.Color("primary"),
				Alpha: cellAlpha,
				Width: 1.5,
			})
			if idx < len(e.Items) {
				item := &e.Items[idx]
				s.Text(cx, cy+2, truncate(item.Label(), 12), TextStyle{
					Color: r.theme.Color("text"),
					Alpha: cellAlpha,
					Size:  8 * ctx.Scale,
					Align: AlignCenter,
					Bold:  true,
				})
				if item.Description != "" {
					s.Text(cx, cy-2, truncate(item.Description, 12), TextStyle{
						Color: r.theme.Color("dim"),
						Alpha: cellAlpha * 0.8,
						Size:  7 * ctx.Scale,
						Align: AlignCenter,
					})
				}
			}
			idx++
		}
	}
}

func drawArrow(r *Renderer, s Surface, e *Element, ctx RenderContext) {
	dx, dy := ctx.X-e.Position.X, ctx.Y-e.Position.Y
	sx, sy := e.Start.X+dx, e.Start.Y+dy
	tx := sx + (e.End.X-e.Start.X)*ctx.Progress
	ty := sy + (e.End.Y-e.Start.Y)*ctx.Progress

	width := e.Width
	if width == 0 {
		width = 2
	}
	headLen := e.HeadSize * 0.2
	drawArrowLine(s, sx, sy, tx, ty, width, headLen, r.color(e.Color, "primary"), ctx.Alpha)
}

func drawArcArrow(r *Renderer, s Surface, e *Element, ctx RenderContext) {
	dx, dy := ctx.X-e.Position.X, ctx.Y-e.Position.Y
	start := Vec2{X: e.Start.X + dx, Y: e.Start.Y + dy}
	tip := Vec2{
		X: start.X + (e.End.X-e.Start.X)*ctx.Progress,
		Y: start.Y + (e.End.Y-e.Start.Y)*ctx.Progress,
	}

	chordX, chordY := tip.X-start.X, tip.Y-start.Y
	chordLen := math.Hypot(chordX, chordY)
	color := r.color(e.Color, "primary")
	width := e.Width
	if width == 0 {
		width = 2
	}
	if chordLen < 1e-9 {
		return
	}

	// Control point offset perpendicular to the chord; the arc flattens as
	// the tip grows out from the start.
	rad := e.ArcHeight / 50
	if e.Direction == "down" {
		rad = -rad
	}
	perpX, perpY := -chordY/chordLen, chordX/chordLen
	control := Vec2{
		X: (start.X+tip.X)/2 + perpX*rad*chordLen,
		Y: (start.Y+tip.Y)/2 + perpY*rad*chordLen,
	}

	const segments = 24
	pts := make([]Vec2, segments+1)
	for i := 0; i <= segments; i++ {
		pts[i] = quadBezier(start, control, tip, float64(i)/segments)
	}
	s.Polyline(pts, Style{Color: color, Alpha: ctx.Alpha, Width: width})

	// Head along the end tangent.
	tangent := Vec2{X: tip.X - control.X, Y: tip.Y - control.Y}
	headLen := e.HeadSize * 0.2
	if headLen == 0 {
		headLen = 2
	}
	drawArrowHead(s, tip, tangent, headLen, color, ctx.Alpha)
}

func drawParticleFlow(r *Renderer, s Surface, e *Element, ctx RenderContext) {
	dx, dy := ctx.X-e.Position.X, ctx.Y-e.Position.Y
	n := e.NumParticles
	if n <= 0 {
		return
	}
	accent := r.theme.Color("accent")

	// Particles sweep along the path during the reveal, then keep drifting
	// on global time.
	phase := ctx.Progress*2 + ctx.Global*0.25*e.Speed
	for i := 0; i < n; i++ {
		t := math.Mod(float64(i)/float64(n)+phase, 1)
		px := e.Start.X + (e.End.X-e.Start.X)*t + dx
		py := e.Start.Y + (e.End.Y-e.Start.Y)*t + dy
		py += math.Sin(float64(i)*1.5) * e.Spread * 5
		wave := math.Sin(t * math.Pi)
		size := (0.4 + wave*0.3) * ctx.Scale
		pAlpha := (0.3 + wave*0.7) * ctx.Alpha
		if pAlpha <= 0 {
			continue
		}
		s.Circle(px, py, size, Style{Color: accent, Alpha: clamp01(pAlpha), Fill: true})
	}
}

func drawNeuralNetwork(r *Renderer, s Surface, e *Element, ctx RenderContext) {
	w, h := e.Width*ctx.Scale, e.Height*ctx.Scale
	layers := e.Layers
	if len(layers) == 0 {
		return
	}
	sp := w / float64(len(layers)+1)
	primary := r.theme.Color("primary")

	// Node layout per visible layer; reveal is always layer by layer.
	visible := make([][]Vec2, 0, len(layers))
	for li, n := range layers {
		layerAlpha := StaggerAlpha(ctx.Alpha, li, len(layers), true)
		if layerAlpha <= 0 {
			continue
		}
		lx := ctx.X - w/2 + float64(li+1)*sp
		ns := h / float64(n+1)
		nodes := make([]Vec2, 0, n)
		for ni := 0; ni < n; ni++ {
			ny := ctx.Y - h/2 + float64(ni+1)*ns
			nodes = append(nodes, Vec2{X: lx, Y: ny})
		}
		visible = append(visible, nodes)

		if li < len(e.LayerLabels) {
			s.Text(lx, ctx.Y-h/2-2, truncate(e.LayerLabels[li], 10), TextStyle{
				Color: r.theme.Color("dim"),
				Alpha: layerAlpha,
				Size:  6 * ctx.Scale,
				Align: AlignCenter,
			})
		}
	}

	// Connections under the nodes.
	if e.ShowConnections && len(visible) > 1 {
		dim := r.theme.Color("dim")
		for li := 0; li < len(visible)-1; li++ {
			connAlpha := StaggerAlpha(ctx.Alpha, li, len(layers)-1, true) * 0.3
			if connAlpha <= 0 {
				continue
			}
			for _, a := range visible[li] {
				for _, b := range visible[li+1] {
					s.Line(a.X, a.Y, b.X, b.Y, Style{Color: dim, Alpha: connAlpha, Width: 0.5})
				}
			}
		}
	}

	for li, nodes := range visible {
		layerAlpha := StaggerAlpha(ctx.Alpha, li, len(layers), true)
		for _, p := range nodes {
			s.Circle(p.X, p.Y, 1.5*ctx.Scale, Style{Color: primary, Alpha: layerAlpha, Fill: true})
			s.Circle(p.X, p.Y, 1.5*ctx.Scale, Style{Color: ColorWhite, Alpha: layerAlpha, Width: 0.5})
		}
	}
}

// drawArrowLine draws a stroked shaft with a filled triangular head at the
// tip. Zero-length arrows draw nothing.
func drawArrowLine(s Surface, x1, y1, x2, y2, width, headLen float64, c Color, alpha float64) {
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length < 1e-9 || alpha <= 0 {
		return
	}
	if headLen > length {
		headLen = length
	}
	ux, uy := dx/length, dy/length
	baseX, baseY := x2-ux*headLen, y2-uy*headLen
	s.Line(x1, y1, baseX, baseY, Style{Color: c, Alpha: alpha, Width: width})
	drawArrowHead(s, Vec2{X: x2, Y: y2}, Vec2{X: dx, Y: dy}, headLen, c, alpha)
}

// drawArrowHead draws a filled triangle at tip pointing along dir.
func drawArrowHead(s Surface, tip, dir Vec2, headLen float64, c Color, alpha float64) {
	length := math.Hypot(dir.X, dir.Y)
	if length < 1e-9 || headLen <= 0 {
		return
	}
	ux, uy := dir.X/length, dir.Y/length
	px, py := -uy, ux
	base := Vec2{X: tip.X - ux*headLen, Y: tip.Y - uy*headLen}
	halfW := headLen * 0.4
	s.Polygon([]Vec2{
		tip,
		{X: base.X + px*halfW, Y: base.Y + py*halfW},
		{X: base.X - px*halfW, Y: base.Y - py*halfW},
	}, Style{Color: c, Alpha: alpha, Fill: true})
}

// quadBezier evaluates a quadratic bezier at t.
func quadBezier(p0, c, p1 Vec2, t float64) Vec2 {
	u := 1 - t
	return Vec2{
		X: u*u*p0.X + 2*u*t*c.X + t*t*p1.X,
		Y: u*u*p0.Y + 2*u*t*c.Y + t*t*p1.Y,
	}
}
