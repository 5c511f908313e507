package cadence

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// defaultTransitionSeconds is how long a step transition plays when the
// player switches steps.
const defaultTransitionSeconds = 0.6

// transitionTween runs the clock of one step transition. The tween ramps
// transition progress linearly from 0 to 1; [StepTransition] shapes the
// motion curve from that progress. Call Update(dt) each tick and State()
// to get the frame's transition contribution.
//
// There is no global animation manager; the owner calls Update itself.
type transitionTween struct {
	kind  string
	tween *gween.Tween
	tp    float64
	Done  bool
}

// newTransitionTween starts a step transition of the named kind. Duration
// is in seconds; values at or below zero finish on the first update.
func newTransitionTween(kind string, duration float32) *transitionTween {
	if duration <= 0 {
		duration = 1e-3
	}
	return &transitionTween{
		kind:  kind,
		tween: gween.New(0, 1, duration, ease.Linear),
	}
}

// Update advances the transition clock by dt seconds.
func (t *transitionTween) Update(dt float32) {
	if t == nil || t.Done {
		return
	}
	val, finished := t.tween.Update(dt)
	t.tp = float64(val)
	t.Done = finished
}

// State returns the transition contribution for the current clock. A nil
// or finished tween is the identity.
func (t *transitionTween) State() TransitionState {
	if t == nil || t.Done {
		return NoTransition
	}
	return StepTransition(t.kind, t.tp)
}

// snapTween glides a scalar toward a target with a cubic ease-out, writing
// through the field pointer on every update. The player uses snaps to keep
// scrubbing smooth instead of jumping playback progress.
type snapTween struct {
	tween *gween.Tween
	field *float64
	Done  bool
}

// newSnapTween starts a glide of *field to the target value over duration
// seconds, starting from the field's current value.
func newSnapTween(field *float64, to float64, duration float32) *snapTween {
	if duration <= 0 {
		duration = 1e-3
	}
	return &snapTween{
		tween: gween.New(float32(*field), float32(to), duration, ease.OutCubic),
		field: field,
	}
}

// Update advances the glide by dt seconds and writes the current value.
func (s *snapTween) Update(dt float32) {
	if s == nil || s.Done {
		return
	}
	val, finished := s.tween.Update(dt)
	*s.field = float64(val)
	s.Done = finished
}
