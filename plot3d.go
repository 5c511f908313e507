package cadence

// panelBG is the plot panel background, a shade bluer than the canvas bg.
var panelBG = Color{R: 0x0d / 255.0, G: 0x0d / 255.0, B: 0x14 / 255.0, A: 1}

// plotAxisLen is the world-unit length of the drawn axis guides.
const plotAxisLen = 4.0

// plotCamera builds the projection camera for a 3D plot element, honoring
// auto rotation.
func plotCamera(e *Element, ctx RenderContext, w, h float64) Camera3D {
	scale := w
	if h < w {
		scale = h
	}
	cam := Camera3D{
		Elev:   e.CameraElev,
		Azim:   e.CameraAzim,
		Scale:  scale / 12,
		Center: Vec2{X: ctx.X, Y: ctx.Y},
	}
	if e.RotateCamera {
		cam = cam.Rotated(ctx.Global, e.RotationSpeed)
	}
	return cam
}

// drawPlotPanel draws the shared chrome of the 3D plots: the panel and the
// projected axis guides. X is warning, depth-Y primary, up-Z success.
func drawPlotPanel(r *Renderer, s Surface, cam Camera3D, ctx RenderContext, w, h float64) {
	s.Rect(ctx.X-w/2, ctx.Y-h/2, w, h, Style{Color: panelBG, Alpha: ctx.Alpha, Fill: true})
	s.Rect(ctx.X-w/2, ctx.Y-h/2, w, h, Style{
		Color: r.theme.Color("dim"),
		Alpha: ctx.Alpha,
		Width: 1.5,
	})

	origin, _ := cam.Project(Point3{})
	axes := []struct {
		end   Point3
		color string
	}{
		{Point3{X: plotAxisLen}, "warning"},
		{Point3{Y: plotAxisLen}, "primary"},
		{Point3{Z: plotAxisLen}, "success"},
	}
	for _, ax := range axes {
		end, _ := cam.Project(ax.end)
		s.Line(origin.X, origin.Y, end.X, end.Y, Style{
			Color: r.theme.Color(ax.color),
			Alpha: ctx.Alpha,
			Width: 1.5,
		})
	}
}

func drawScatter3D(r *Renderer, s Surface, e *Element, ctx RenderContext) {
	w, h := e.Width*ctx.Scale, e.Height*ctx.Scale
	cam := plotCamera(e, ctx, w, h)
	drawPlotPanel(r, s, cam, ctx, w, h)

	points := e.Points
	if len(points) > 10 {
		points = points[:10]
	}
	if len(points) == 0 {
		return
	}

	world := make([]Point3, len(points))
	for i, pt := range points {
		world[i] = Point3{X: pt.X, Y: pt.Y, Z: pt.Z}
	}

	// Painter order: far points first, near points over them. The reveal
	// stagger follows declaration order, not depth order.
	for _, p := range cam.ProjectAll(world) {
		pAlpha := StaggerAlpha(ctx.Alpha, p.Index, len(points), true)
		if pAlpha <= 0 {
			continue
		}
		c := r.color(points[p.Index].Color, "accent")
		s.Circle(p.Pos.X, p.Pos.Y, 1*ctx.Scale, Style{Color: c, Alpha: pAlpha, Fill: true})
		s.Circle(p.Pos.X, p.Pos.Y, 1*ctx.Scale, Style{Color: ColorWhite, Alpha: pAlpha, Width: 0.5})
	}
}

func drawVector3D(r *Renderer, s Surface, e *Element, ctx RenderContext) {
	w, h := e.Width*ctx.Scale, e.Height*ctx.Scale
	cam := plotCamera(e, ctx, w, h)
	drawPlotPanel(r, s, cam, ctx, w, h)

	vectors := e.Vectors
	if len(vectors) > 6 {
		vectors = vectors[:6]
	}
	if len(vectors) == 0 {
		return
	}

	// Tips at full extent, for the painter sort; each vector grows from the
	// origin as its stagger alpha rises.
	tips := make([]Point3, len(vectors))
	for i, v := range vectors {
		tips[i] = Point3{X: v.X, Y: v.Y, Z: v.Z}
	}
	origin, _ := cam.Project(Point3{})

	for _, p := range cam.ProjectAll(tips) {
		v := &vectors[p.Index]
		vAlpha := StaggerAlpha(ctx.Alpha, p.Index, len(vectors), true)
		if vAlpha <= 0 {
			continue
		}
		tip, _ := cam.Project(Point3{X: v.X * vAlpha, Y: v.Y * vAlpha, Z: v.Z * vAlpha})
		c := r.color(v.Color, "accent")
		drawArrowLine(s, origin.X, origin.Y, tip.X, tip.Y, 2, 1.5*ctx.Scale, c, vAlpha)
		if v.Label != "" && vAlpha >= 1 {
			s.Text(tip.X, tip.Y+1.5, v.Label, TextStyle{
				Color: c,
				Alpha: vAlpha,
				Size:  6 * ctx.Scale,
				Align: AlignCenter,
			})
		}
	}
}
