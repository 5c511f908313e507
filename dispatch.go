package cadence

// DrawFunc renders one element onto a surface. Implementations read the
// element and the composed context; they must not mutate the element.
type DrawFunc func(r *Renderer, s Surface, e *Element, ctx RenderContext)

// Renderer draws steps onto surfaces. It holds the theme and the element
// type registry. A Renderer is safe for concurrent use once configured;
// Register must not be called while rendering.
type Renderer struct {
	theme *Theme
	draw  map[string]DrawFunc

	// ShowTitle draws the step title at the top of the frame.
	ShowTitle bool
	// ShowPhaseMarkers draws the phase ruler and progress line at the
	// bottom of the frame.
	ShowPhaseMarkers bool
}

// NewRenderer creates a renderer with every built-in element type
// registered. A nil theme means the default dark theme.
func NewRenderer(theme *Theme) *Renderer {
	if theme == nil {
		theme = DefaultTheme()
	}
	return &Renderer{
		theme:     theme,
		draw:      builtinDrawFuncs(),
		ShowTitle: true,
	}
}

// Theme returns the renderer's theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}

// Register adds or replaces the draw function for an element type.
// Registering nil removes the type, sending it to the generic fallback.
func (r *Renderer) Register(typ string, fn DrawFunc) {
	if fn == nil {
		delete(r.draw, typ)
		return
	}
	r.draw[typ] = fn
}

// color resolves a color reference against the theme with a named fallback.
func (r *Renderer) color(ref, fallback string) Color {
	return r.theme.ColorOr(ref, fallback)
}

// builtinDrawFuncs returns the draw registry for the built-in element types.
func builtinDrawFuncs() map[string]DrawFunc {
	return map[string]DrawFunc{
		"text":              drawText,
		"typewriter_text":   drawTypewriterText,
		"counter":           drawCounter,
		"code_block":        drawCodeBlock,
		"code_execution":    drawCodeExecution,
		"box":               drawBox,
		"comparison":        drawComparison,
		"conversation":      drawConversation,
		"bullet_list":       drawBulletList,
		"checklist":         drawChecklist,
		"timeline":          drawTimeline,
		"flow":              drawFlow,
		"grid":              drawGrid,
		"stacked_boxes":     drawStackedBoxes,
		"arrow":             drawArrow,
		"arc_arrow":         drawArcArrow,
		"particle_flow":     drawParticleFlow,
		"neural_network":    drawNeuralNetwork,
		"similarity_meter":  drawSimilarityMeter,
		"progress_bar":      drawProgressBar,
		"weight_comparison": drawWeightComparison,
		"parameter_slider":  drawParameterSlider,
		"scatter_3d":        drawScatter3D,
		"vector_3d":         drawVector3D,
		"qr_code":           drawQRCode,
	}
}

// drawGeneric is the fallback for unregistered element types: a dashed
// placeholder box with the type name.
func drawGeneric(r *Renderer, s Surface, e *Element, ctx RenderContext) {
	w, h := e.Width, e.Height
	if w == 0 {
		w = 15
	}
	if h == 0 {
		h = 10
	}
	w *= ctx.Scale
	h *= ctx.Scale
	s.Rect(ctx.X-w/2, ctx.Y-h/2, w, h, Style{
		Color: r.color("bg_light", "bg_light"),
		Alpha: ctx.Alpha,
		Fill:  true,
	})
	s.Rect(ctx.X-w/2, ctx.Y-h/2, w, h, Style{
		Color: r.color("dim", "dim"),
		Alpha: ctx.Alpha,
		Width: 1.5,
		Dash:  []float64{1.5, 1.5},
	})
	label := e.Type
	if len(label) > 10 {
		label = label[:10]
	}
	s.Text(ctx.X, ctx.Y, label, TextStyle{
		Color: r.color("dim", "dim"),
		Alpha: ctx.Alpha,
		Size:  9 * ctx.Scale,
		Align: AlignCenter,
	})
}
