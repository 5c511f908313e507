package cadence

import "math"

// Entry animation names accepted by the Entry field of [Element]. Directional
// entries slide the element in from offscreen toward its resting position;
// zoom grows it in place.
const (
	EntryNone   = "none"
	EntryLeft   = "left"
	EntryRight  = "right"
	EntryTop    = "top"
	EntryBottom = "bottom"
	EntryZoom   = "zoom"
)

// Continuous effect names accepted by the Effect field of [Element]. Effects
// start only after the element has fully arrived.
const (
	EffectNone      = "none"
	EffectPulse     = "pulse"
	EffectBreathing = "breathing"
)

// Step transition names accepted by the Transition field of [Step].
const (
	TransitionNone       = "none"
	TransitionFade       = "fade"
	TransitionSlideLeft  = "slide_left"
	TransitionSlideRight = "slide_right"
	TransitionSlideUp    = "slide_up"
	TransitionSlideDown  = "slide_down"
	TransitionZoom       = "zoom"
)

var transitionNames = []string{
	TransitionNone, TransitionFade,
	TransitionSlideLeft, TransitionSlideRight, TransitionSlideUp, TransitionSlideDown,
	TransitionZoom,
}

// TransitionNames returns the supported step transition names. The returned
// slice MUST NOT be mutated.
func TransitionNames() []string {
	return transitionNames
}

// entryDistance is how far a directional entry animation starts from the
// element's resting position, in canvas units.
const entryDistance = 30.0

// zoomEntryScale is the starting scale of a zoom entry animation.
const zoomEntryScale = 0.3

// slideDistance is the initial displacement of a slide step transition, in
// canvas units.
const slideDistance = 60.0

// zoomTransitionScale is the starting scale of a zoom step transition.
const zoomTransitionScale = 0.5

// RenderContext is the fully composed draw state for one element for one
// frame. It is ephemeral: recomputed on every render call and never stored.
type RenderContext struct {
	Progress float64 // eased local progress; briefly exceeds 1 under elastic easing
	Alpha    float64 // final alpha in [0, 1], step transition included
	Scale    float64 // final scale multiplier
	X, Y     float64 // resolved canvas position
	Global   float64 // global clock, for recipes with their own motion
}

// TransitionState is the step-level transition contribution shared by every
// element of a step for one frame. The renderer computes it once per call.
// A zero value suppresses all drawing; use [NoTransition] when no step
// transition is active.
type TransitionState struct {
	OffsetX, OffsetY float64
	Alpha, Scale     float64
}

// NoTransition is the identity transition state.
var NoTransition = TransitionState{Alpha: 1, Scale: 1}

// StepTransition computes the transition state for the named step transition
// kind at transition progress tp. The motion uses a cubic ease-out so steps
// settle quickly and glide into place. Unknown kinds behave as none.
func StepTransition(kind string, tp float64) TransitionState {
	t := easeOutCubic(clamp01(tp))
	st := NoTransition
	switch kind {
	case TransitionFade:
		st.Alpha = t
	case TransitionSlideLeft:
		// Content glides leftward into place, entering from the right.
		st.OffsetX = slideDistance * (1 - t)
	case TransitionSlideRight:
		st.OffsetX = -slideDistance * (1 - t)
	case TransitionSlideUp:
		st.OffsetY = -slideDistance * (1 - t)
	case TransitionSlideDown:
		st.OffsetY = slideDistance * (1 - t)
	case TransitionZoom:
		st.Scale = zoomTransitionScale + (1-zoomTransitionScale)*t
	}
	return st
}

// Compose combines base position, entry animation, continuous effect, and
// the step transition into the final draw state for one element, in that
// fixed order. elemProgress is the eased local progress from [Progress];
// global is the global progress driving phase-locked periodic effects.
//
// Compose is idempotent and side-effect-free: identical inputs always yield
// an identical context, which is what makes scrubbing the timeline in either
// direction safe.
func Compose(e *Element, elemProgress, global float64, tr TransitionState) RenderContext {
	ctx := RenderContext{
		Progress: elemProgress,
		Alpha:    clamp01(elemProgress),
		Scale:    1,
		X:        e.Position.X,
		Y:        e.Position.Y,
		Global:   global,
	}

	// Entry animation, active until the element has fully arrived.
	if elemProgress < 1 {
		factor := 1 - elemProgress
		switch e.Entry {
		case EntryLeft:
			ctx.X -= entryDistance * factor
		case EntryRight:
			ctx.X += entryDistance * factor
		case EntryTop:
			ctx.Y += entryDistance * factor
		case EntryBottom:
			ctx.Y -= entryDistance * factor
		case EntryZoom:
			ctx.Scale = zoomEntryScale + (1-zoomEntryScale)*elemProgress
		}
	}

	// Continuous effects run only once the element is fully visible, and are
	// keyed to the global progress so same-frequency elements stay phase
	// locked to each other.
	if ctx.Alpha >= 1 {
		switch e.Effect {
		case EffectPulse:
			ctx.Scale *= 1 + 0.1*sinWave(global, e.Frequency*2)
		case EffectBreathing:
			ctx.Scale *= 1 + 0.05*sinWave(global, e.Frequency*0.5)
		}
	}

	// The step transition composes multiplicatively on top of the element's
	// own alpha and scale; it never replaces them.
	ctx.X += tr.OffsetX
	ctx.Y += tr.OffsetY
	ctx.Alpha = clamp01(ctx.Alpha * tr.Alpha)
	ctx.Scale *= tr.Scale

	return ctx
}

// sinWave evaluates a unit sine wave of the given frequency over the 0..1
// progress domain.
func sinWave(t, freq float64) float64 {
	return math.Sin(t * 2 * math.Pi * freq)
}
