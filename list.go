package cadence

func drawBulletList(r *Renderer, s Surface, e *Element, ctx RenderContext) {
	items := e.Items
	if len(items) > 6 {
		items = items[:6]
	}
	spacing := e.Spacing * ctx.Scale
	for j := range items {
		itemAlpha := StaggerAlpha(ctx.Alpha, j, len(items), e.Stagger)
		if itemAlpha <= 0 {
			continue
		}
		s.Text(ctx.X-12, ctx.Y+8-float64(j)*spacing, "• "+items[j].Label(), TextStyle{
			Color: r.theme.Color("text"),
			Alpha: itemAlpha,
			Size:  10 * ctx.Scale,
			Align: AlignLeft,
		})
	}
}

func drawChecklist(r *Renderer, s Surface, e *Element, ctx RenderContext) {
	items := e.Items
	if len(items) > 5 {
		items = items[:5]
	}
	spacing := e.Spacing * ctx.Scale
	success := r.theme.Color("success")
	for j := range items {
		itemAlpha := StaggerAlpha(ctx.Alpha, j, len(items), e.Stagger)
		if itemAlpha <= 0 {
			continue
		}
		iy := ctx.Y + 6 - float64(j)*spacing
		s.Rect(ctx.X-12, iy-1.5, 3, 3, Style{Color: success, Alpha: itemAlpha, Fill: true})
		s.Text(ctx.X-7, iy, truncate(items[j].Label(), 20), TextStyle{
			Color: r.theme.Color("text"),
			Alpha: itemAlpha,
			Size:  10 * ctx.Scale,
			Align: AlignLeft,
		})
	}
}

func drawTimeline(r *Renderer, s Surface, e *Element, ctx RenderContext) {
	w := e.Width * ctx.Scale
	events := e.Events
	if len(events) > 5 {
		events = events[:5]
	}

	s.Line(ctx.X-w/2, ctx.Y, ctx.X+w/2, ctx.Y, Style{
		Color: r.theme.Color("dim"),
		Alpha: ctx.Alpha,
		Width: 2,
	})
	if len(events) == 0 {
		return
	}

	spacing := w / float64(len(events))
	for i := range events {
		ev := &events[i]
		evAlpha := StaggerAlpha(ctx.Alpha, i, len(events), e.Stagger)
		if evAlpha <= 0 {
			continue
		}
		ex := ctx.X - w/2 + (float64(i)+0.5)*spacing
		s.Circle(ex, ctx.Y, 1.5*ctx.Scale, Style{
			Color: r.theme.Color("primary"),
			Alpha: evAlpha,
			Fill:  true,
		})
		s.Circle(ex, ctx.Y, 1.5*ctx.Scale, Style{Color: ColorWhite, Alpha: evAlpha, Width: 1})
		s.Text(ex, ctx.Y+4, truncate(ev.Label(), 10), TextStyle{
			Color: r.theme.Color("text"),
			Alpha: evAlpha,
			Size:  7 * ctx.Scale,
			Align: AlignCenter,
		})
		s.Text(ex, ctx.Y-4, truncate(ev.Date, 6), TextStyle{
			Color: r.theme.Color("dim"),
			Alpha: evAlpha,
			Size:  6 * ctx.Scale,
			Align: AlignCenter,
		})
	}
}
