package cadence

import "math"

// easingFunc maps normalized time t in [0, 1] to an eased value. Elastic
// overshoots 1 mid-curve; that overshoot is part of the motion and is only
// ever clamped when the value feeds an alpha.
type easingFunc func(t float64) float64

// Canonical easing names accepted by [Ease] and by the Easing field of
// [Element]. Any other name resolves to the identity curve.
const (
	EasingLinear     = "linear"
	EasingIn         = "ease_in"
	EasingOut        = "ease_out"
	EasingInOut      = "ease_in_out"
	EasingInCubic    = "ease_in_cubic"
	EasingOutCubic   = "ease_out_cubic"
	EasingElasticOut = "elastic_out"
	EasingBounceOut  = "bounce_out"
)

var easings = map[string]easingFunc{
	EasingLinear:     easeLinear,
	EasingIn:         easeIn,
	EasingOut:        easeOut,
	EasingInOut:      easeInOut,
	EasingInCubic:    easeInCubic,
	EasingOutCubic:   easeOutCubic,
	EasingElasticOut: easeElasticOut,
	EasingBounceOut:  easeBounceOut,
}

// easingNames lists the canonical names in a stable order for validation
// and editor tooling.
var easingNames = []string{
	EasingLinear, EasingIn, EasingOut, EasingInOut,
	EasingInCubic, EasingOutCubic, EasingElasticOut, EasingBounceOut,
}

// EasingNames returns the supported easing names. The returned slice MUST NOT
// be mutated.
func EasingNames() []string {
	return easingNames
}

// Ease applies the named curve to t. Unknown names fall back to the identity
// curve rather than erroring, so decks written against a newer set of curves
// still play.
func Ease(name string, t float64) float64 {
	if fn, ok := easings[name]; ok {
		return fn(t)
	}
	return t
}

func easeLinear(t float64) float64 { return t }

func easeIn(t float64) float64 { return t * t }

func easeOut(t float64) float64 { return 1 - (1-t)*(1-t) }

// easeInOut is the smoothstep polynomial.
func easeInOut(t float64) float64 { return t * t * (3 - 2*t) }

func easeInCubic(t float64) float64 { return t * t * t }

func easeOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// easeElasticOut is a damped sine overshoot with period 0.3. The endpoints
// are pinned so a finished animation lands exactly on 1.
func easeElasticOut(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	const p = 0.3
	const s = p / 4
	return math.Pow(2, -10*t)*math.Sin((t-s)*(2*math.Pi)/p) + 1
}

// easeBounceOut is a four-segment piecewise parabola mimicking a ball
// settling after three bounces.
func easeBounceOut(t float64) float64 {
	const n1 = 7.5625
	const d1 = 2.75
	switch {
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	default:
		t -= 2.625 / d1
		return n1*t*t + 0.984375
	}
}
