package cadence

// Animation phase names accepted by the Phase field of [Element]. Each phase
// is a window within the 0..1 progress range; elements appear during their
// window and hold at full progress after it.
const (
	PhaseImmediate = "immediate"
	PhaseEarly     = "early"
	PhaseMiddle    = "middle"
	PhaseLate      = "late"
	PhaseFinal     = "final"
)

// phaseWindows maps each named phase to its base window. The five windows
// tile 0..1 in 0.2 increments.
var phaseWindows = map[string][2]float64{
	PhaseImmediate: {0.0, 0.2},
	PhaseEarly:     {0.2, 0.4},
	PhaseMiddle:    {0.4, 0.6},
	PhaseLate:      {0.6, 0.8},
	PhaseFinal:     {0.8, 1.0},
}

var phaseNames = []string{PhaseImmediate, PhaseEarly, PhaseMiddle, PhaseLate, PhaseFinal}

// PhaseNames returns the phase names in timeline order. The returned slice
// MUST NOT be mutated.
func PhaseNames() []string {
	return phaseNames
}

// delayTick is the timeline shift contributed by one unit of Element.Delay.
// Delay units are abstract ticks worth 5% of the timeline each, keeping all
// timing inside a single 0..1 progress pass rather than in seconds.
const delayTick = 0.05

// minWindow floors the divisor when an element's window collapses to zero
// length.
const minWindow = 0.01

// phaseWindow returns the base window for a named phase. Unknown names get
// the early window, the same slot elements land in when no phase is set.
func phaseWindow(name string) (start, end float64) {
	if w, ok := phaseWindows[name]; ok {
		return w[0], w[1]
	}
	return phaseWindows[PhaseEarly][0], phaseWindows[PhaseEarly][1]
}

// elementWindow returns the element's effective window after applying Delay
// and Duration to its phase's base window. start may exceed 1, in which case
// the element never appears during this step; that is valid timing, not an
// error.
func elementWindow(e *Element) (start, end float64) {
	base0, base1 := phaseWindow(e.Phase)
	start = base0 + e.Delay*delayTick
	end = start + (base1-base0)*e.Duration
	if end > 1 {
		end = 1
	}
	return start, end
}

// Progress computes the eased local progress of e for a global progress
// value: 0 before the element's window, 1 after it, eased in between.
// Pure; equal inputs always yield equal outputs, so scrubbing backward is
// safe. The raw (pre-stagger, pre-transition) alpha of an element equals
// this value; [Compose] is the only place it is further multiplied.
func Progress(e *Element, progress float64) float64 {
	start, end := elementWindow(e)
	if progress < start {
		return 0
	}
	if progress >= end {
		return 1
	}
	den := end - start
	if den < minWindow {
		den = minWindow
	}
	return Ease(e.Easing, (progress-start)/den)
}
