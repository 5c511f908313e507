package cadence

import "strings"

func drawBox(r *Renderer, s Surface, e *Element, ctx RenderContext) {
	w, h := e.Width*ctx.Scale, e.Height*ctx.Scale
	edge := r.color(e.Color, "primary")
	s.Rect(ctx.X-w/2, ctx.Y-h/2, w, h, Style{
		Color: r.theme.Color("bg_light"),
		Alpha: ctx.Alpha,
		Fill:  true,
	})
	s.Rect(ctx.X-w/2, ctx.Y-h/2, w, h, Style{Color: edge, Alpha: ctx.Alpha, Width: 2})
	if e.Title != "" {
		s.Text(ctx.X, ctx.Y+h/4, e.Title, TextStyle{
			Color: edge,
			Alpha: ctx.Alpha,
			Size:  11 * ctx.Scale,
			Align: AlignCenter,
			Bold:  true,
		})
	}
	if e.Text != "" {
		s.Text(ctx.X, ctx.Y-h/6, truncate(e.Text, 50), TextStyle{
			Color: r.theme.Color("text"),
			Alpha: ctx.Alpha,
			Size:  9 * ctx.Scale,
			Align: AlignCenter,
		})
	}
}

func drawComparison(r *Renderer, s Surface, e *Element, ctx RenderContext) {
	w, h := e.Width*ctx.Scale, e.Height*ctx.Scale
	warning := r.theme.Color("warning")
	success := r.theme.Color("success")

	s.Rect(ctx.X-w/2, ctx.Y-h/2, w/2-2, h, Style{
		Color: r.theme.Color("bg_light"),
		Alpha: ctx.Alpha,
		Fill:  true,
	})
	s.Rect(ctx.X-w/2, ctx.Y-h/2, w/2-2, h, Style{Color: warning, Alpha: ctx.Alpha, Width: 2})
	s.Rect(ctx.X+2, ctx.Y-h/2, w/2-2, h, Style{
		Color: r.theme.Color("bg_light"),
		Alpha: ctx.Alpha,
		Fill:  true,
	})
	s.Rect(ctx.X+2, ctx.Y-h/2, w/2-2, h, Style{Color: success, Alpha: ctx.Alpha, Width: 2})

	s.Text(ctx.X-w/4, ctx.Y, truncate(e.LeftTitle, 10), TextStyle{
		Color: warning,
		Alpha: ctx.Alpha,
		Size:  10 * ctx.Scale,
		Align: AlignCenter,
		Bold:  true,
	})
	s.Text(ctx.X+w/4, ctx.Y, truncate(e.RightTitle, 10), TextStyle{
		Color: success,
		Alpha: ctx.Alpha,
		Size:  10 * ctx.Scale,
		Align: AlignCenter,
		Bold:  true,
	})
}

func drawConversation(r *Renderer, s Surface, e *Element, ctx RenderContext) {
	w, h := e.Width*ctx.Scale, e.Height*ctx.Scale
	messages := e.Messages
	if len(messages) > 5 {
		messages = messages[:5]
	}
	if len(messages) == 0 {
		return
	}

	msgH := h/float64(len(messages)) - 2
	if limit := 10 * ctx.Scale; msgH > limit {
		msgH = limit
	}
	userColor := r.color(e.UserColor, "primary")
	assistantColor := r.color(e.AssistantColor, "secondary")

	for i := range messages {
		msg := &messages[i]
		mAlpha := StaggerAlpha(ctx.Alpha, i, len(messages), e.Stagger)
		if mAlpha <= 0 {
			continue
		}
		my := ctx.Y + h/2 - float64(i)*(msgH+2) - msgH/2 - 1
		isUser := msg.Role == "user" || msg.Role == "Input"
		msgW := w * 0.7
		mx := ctx.X + (w/2 - msgW/2 - 2)
		color := assistantColor
		if isUser {
			mx = ctx.X - (w/2 - msgW/2 - 2)
			color = userColor
		}

		s.Rect(mx-msgW/2, my-msgH/2, msgW, msgH, Style{
			Color: color,
			Alpha: mAlpha * 0.4,
			Fill:  true,
		})

		name := msg.Name
		if name == "" {
			name = capitalize(msg.Role)
		}
		s.Text(mx-msgW/2+2, my+msgH/2-1.5, truncate(name, 10), TextStyle{
			Color: color,
			Alpha: mAlpha,
			Size:  6 * ctx.Scale,
			Align: AlignLeft,
			Bold:  true,
		})
		s.Text(mx, my-1, truncate(msg.Content, 35), TextStyle{
			Color:  r.theme.Color("text"),
			Alpha:  mAlpha,
			Size:   8 * ctx.Scale,
			Align:  AlignCenter,
			VAlign: VAlignMiddle,
		})
	}
}

func drawStackedBoxes(r *Renderer, s Surface, e *Element, ctx RenderContext) {
	baseWidth := e.BaseWidth
	if baseWidth == 0 {
		baseWidth = e.Width
	}
	baseWidth *= ctx.Scale
	boxHeight := e.BoxHeight * ctx.Scale
	items := e.Items
	if len(items) > 6 {
		items = items[:6]
	}

	for i := range items {
		item := &items[i]
		bAlpha := StaggerAlpha(ctx.Alpha, i, len(items), e.Stagger)
		if bAlpha <= 0 {
			continue
		}
		boxW := baseWidth - float64(i)*e.WidthDecrease*ctx.Scale
		by := ctx.Y + (float64(len(items))/2-float64(i)-0.5)*e.Spacing*ctx.Scale
		color := r.color(item.Color, "primary")

		s.Rect(ctx.X-boxW/2, by-boxHeight/2, boxW, boxHeight, Style{
			Color: r.theme.Color("bg_light"),
			Alpha: bAlpha,
			Fill:  true,
		})
		s.Rect(ctx.X-boxW/2, by-boxHeight/2, boxW, boxHeight, Style{
			Color: color,
			Alpha: bAlpha,
			Width: 2,
		})
		s.Text(ctx.X, by+1, truncate(item.Label(), 20), TextStyle{
			Color:  color,
			Alpha:  bAlpha,
			Size:   9 * ctx.Scale,
			Align:  AlignCenter,
			VAlign: VAlignMiddle,
			Bold:   true,
		})
		if item.Description != "" {
			s.Text(ctx.X, by-2.5, truncate(item.Description, 25), TextStyle{
				Color:  r.theme.Color("dim"),
				Alpha:  bAlpha * 0.8,
				Size:   7 * ctx.Scale,
				Align:  AlignCenter,
				VAlign: VAlignMiddle,
			})
		}
	}
}

// capitalize uppercases the first letter, for role names without an
// explicit display name.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
