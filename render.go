package cadence

import (
	"errors"
	"math"
	"time"
)

// errNilSurface is returned when a render call is handed a nil Surface.
// It is the only error the renderer produces; bad step data degrades to
// placeholders and warnings instead.
var errNilSurface = errors.New("cadence: render to nil surface")

// phaseMarks is the phase ruler drawn along the bottom of the frame when
// ShowPhaseMarkers is on.
var phaseMarks = []struct {
	name  string
	start float64
}{
	{"imm", 0.0},
	{"early", 0.2},
	{"mid", 0.4},
	{"late", 0.6},
	{"final", 0.8},
}

// Render draws one step at the given progress. Progress runs 0..1 over the
// step's animation and also drives continuous effects, so scrubbing to the
// same progress always yields the same frame.
func (r *Renderer) Render(dst Surface, step *Step, progress float64) error {
	return r.RenderAt(dst, step, progress, progress)
}

// RenderAt draws one step with the effect clock decoupled from animation
// progress. Progress runs 0..1 over the step's animation; global is
// wall-clock seconds driving continuous effects and camera rotation, so a
// finished step keeps moving while it holds.
func (r *Renderer) RenderAt(dst Surface, step *Step, progress, global float64) error {
	return r.RenderTransition(dst, step, progress, global, NoTransition)
}

// RenderTransition draws one step with a step transition applied. The
// transition offsets and fades the step's content as a whole; pass
// NoTransition outside of transitions.
func (r *Renderer) RenderTransition(dst Surface, step *Step, progress, global float64, tr TransitionState) error {
	if dst == nil {
		return errNilSurface
	}
	progress = clamp01(progress)

	var start time.Time
	var stats frameStats
	if debugEnabled {
		start = time.Now()
	}

	dst.Clear(r.theme.Color("bg"))

	if step == nil {
		warnOncef("step:nil", "rendering nil step as empty")
		step = &Step{}
	} else if step.Elements == nil {
		warnOncef("step:"+step.Name, "step %q has no elements", step.Name)
	}

	if r.ShowTitle && step.Title != "" {
		dst.Text(50+tr.OffsetX, 96+tr.OffsetY, step.Title, TextStyle{
			Color:  r.theme.Color("primary"),
			Alpha:  tr.Alpha,
			Size:   18 * tr.Scale,
			Align:  AlignCenter,
			VAlign: VAlignTop,
			Bold:   true,
		})
	}

	for i := range step.Elements {
		e := &step.Elements[i]
		ctx := Compose(e, Progress(e, progress), global, tr)
		if ctx.Alpha <= 0 {
			stats.skippedCount++
			continue
		}
		fn, ok := r.draw[e.Type]
		if !ok {
			warnOncef("type:"+e.Type, "unknown element type %q, drawing placeholder", e.Type)
			fn = drawGeneric
		}
		fn(r, dst, e, ctx)
		stats.elementCount++
	}

	if r.ShowPhaseMarkers {
		r.drawPhaseMarkers(dst, progress)
	}

	if debugEnabled {
		stats.drawTime = time.Since(start)
		if rs, ok := dst.(*RecordSurface); ok {
			stats.opCount = len(rs.Ops)
		}
		debugLogFrame(stats)
	}
	return nil
}

// drawPhaseMarkers draws the phase ruler: a tick and label per phase, lit
// once progress passes the phase start, and a progress line underneath.
func (r *Renderer) drawPhaseMarkers(s Surface, progress float64) {
	accent := r.theme.Color("accent")
	dim := r.theme.Color("dim")
	for _, ph := range phaseMarks {
		x := 10 + ph.start*80
		c := dim
		if progress >= ph.start {
			c = accent
		}
		s.Line(x, 2, x, 5, Style{Color: c, Alpha: 1, Width: 2})
		s.Text(x, 1, ph.name, TextStyle{Color: c, Alpha: 1, Size: 7, Align: AlignCenter})
	}
	s.Line(10, 3.5, 10+80*progress, 3.5, Style{
		Color: r.theme.Color("primary"),
		Alpha: 1,
		Width: 3,
	})
}

// RenderLanding draws a deck's title screen. The tagline pulses with
// global time to invite a key press.
func (r *Renderer) RenderLanding(dst Surface, d *Deck, global float64) error {
	if dst == nil {
		return errNilSurface
	}
	dst.Clear(r.theme.Color("bg"))
	if d == nil {
		warnOncef("landing:nil", "rendering landing for nil deck")
		return nil
	}

	landing := d.Landing
	title := landing.Title
	if title == "" {
		title = d.Title
	}
	edge := landing.PrimaryColor
	if edge == "" {
		edge = "primary"
	}

	dst.Rect(10, 60, 80, 28, Style{Color: r.theme.Color("bg_light"), Alpha: 0.95, Fill: true})
	dst.Rect(10, 60, 80, 28, Style{Color: r.color(edge, "primary"), Alpha: 0.95, Width: 4})
	dst.Text(50, 78, title, TextStyle{
		Color:  r.color(edge, "primary"),
		Alpha:  1,
		Size:   36,
		Align:  AlignCenter,
		VAlign: VAlignMiddle,
		Bold:   true,
	})
	if landing.Subtitle != "" {
		dst.Text(50, 66, landing.Subtitle, TextStyle{
			Color:  r.theme.Color("text"),
			Alpha:  0.85,
			Size:   18,
			Align:  AlignCenter,
			VAlign: VAlignMiddle,
		})
	}
	if landing.Welcome != "" {
		dst.Text(50, 45, landing.Welcome, TextStyle{
			Color:  r.theme.Color("secondary"),
			Alpha:  0.9,
			Size:   16,
			Align:  AlignCenter,
			VAlign: VAlignMiddle,
		})
	}
	if landing.Tagline != "" {
		pulse := 0.7 + 0.3*math.Sin(global*2*math.Pi*0.5)
		dst.Text(50, 22, landing.Tagline, TextStyle{
			Color:  r.theme.Color("accent"),
			Alpha:  clamp01(pulse),
			Size:   14,
			Align:  AlignCenter,
			VAlign: VAlignMiddle,
		})
	}
	if landing.Footer != "" {
		dst.Text(50, 6, landing.Footer, TextStyle{
			Color:  r.theme.Color("dim"),
			Alpha:  0.8,
			Size:   9,
			Align:  AlignCenter,
			VAlign: VAlignMiddle,
		})
	}
	return nil
}
