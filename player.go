package cadence

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// snapSeconds is the glide time of scrub snaps (Home/End, skip-to-end).
const snapSeconds = 0.35

// keyLatch turns held keys into one-tick press events. The player polls
// keys itself instead of pulling in an input helper package.
type keyLatch struct {
	held map[ebiten.Key]bool
}

// anyJust reports whether any of the keys went down this tick. Every key in
// the list is polled so the held state stays current even when an earlier
// key already matched.
func (k *keyLatch) anyJust(keys ...ebiten.Key) bool {
	if k.held == nil {
		k.held = make(map[ebiten.Key]bool)
	}
	just := false
	for _, key := range keys {
		pressed := ebiten.IsKeyPressed(key)
		if pressed && !k.held[key] {
			just = true
		}
		k.held[key] = pressed
	}
	return just
}

// Player plays a deck in an Ebitengine window. It implements [ebiten.Game];
// use [Run] unless the deck is embedded in a larger game.
//
// Controls:
//
//	Space / Right / Enter   finish the step, then next step
//	B / Left                previous step (landing screen from the first)
//	R                       replay the current step
//	P                       pause / resume
//	Home / End              glide to the start / end of the step
//	M                       toggle phase markers
//	D                       toggle the FPS overlay
//	F                       toggle fullscreen
//	H                       print controls
//	Q / Escape              quit
//
// Steps auto-play on entry: one engine tick advances one animation frame,
// so a 60 frame step plays in one second at the default tick rate. Finished
// steps hold their final state while continuous effects keep moving.
type Player struct {
	deck     *Deck
	opts     PlayerOptions
	renderer *Renderer
	surface  *EbitenSurface

	step     int
	progress float64
	playing  bool
	landing  bool
	global   float64 // monotone seconds, never resets

	trans   *transitionTween
	snap    *snapTween
	keys    keyLatch
	overlay fpsOverlay
	showFPS bool
}

// NewPlayer builds a player for the deck. The deck's color overrides are
// applied over the default theme.
func NewPlayer(deck *Deck, opts PlayerOptions) *Player {
	if deck == nil {
		deck = &Deck{}
	}
	opts = opts.withDefaults()
	if opts.Title == "" {
		opts.Title = deck.Title
	}
	if opts.Title == "" {
		opts.Title = "cadence"
	}

	r := NewRenderer(DefaultTheme().WithOverrides(deck.ColorOverrides))
	r.ShowPhaseMarkers = opts.PhaseMarkers

	p := &Player{
		deck:     deck,
		opts:     opts,
		renderer: r,
		surface:  NewEbitenSurface(),
		showFPS:  opts.ShowFPS,
	}

	start, startSet := 0, false
	if opts.StartStep != "" {
		if i := deck.StepIndex(opts.StartStep); i >= 0 {
			start, startSet = i, true
		} else {
			warnOncef("start:"+opts.StartStep, "start step %q not found, starting at the beginning", opts.StartStep)
		}
	}
	if p.hasLanding() && !opts.SkipLanding && !startSet {
		p.landing = true
	} else {
		p.enterStep(start)
	}
	return p
}

// Renderer returns the player's renderer, for registering custom element
// types or toggling overlays before playback starts.
func (p *Player) Renderer() *Renderer {
	return p.renderer
}

func (p *Player) hasLanding() bool {
	return p.deck.Landing != (Landing{})
}

// currentStep returns the step being played, or nil for an empty deck.
func (p *Player) currentStep() *Step {
	if p.step < 0 || p.step >= len(p.deck.Steps) {
		return nil
	}
	return &p.deck.Steps[p.step]
}

// enterStep jumps to step i at progress 0 and starts its transition.
func (p *Player) enterStep(i int) {
	if i < 0 || i >= len(p.deck.Steps) {
		return
	}
	p.step = i
	p.progress = 0
	p.playing = true
	p.snap = nil

	kind := p.deck.Steps[i].Transition
	if kind == "" {
		kind = p.opts.Transition
	}
	if kind == "" || kind == TransitionNone {
		p.trans = nil
	} else {
		p.trans = newTransitionTween(kind, float32(p.opts.TransitionSeconds))
	}
}

// advance finishes the current step's animation, or moves to the next step
// once it has finished.
func (p *Player) advance() {
	if p.progress < 1 {
		p.playing = false
		p.snap = newSnapTween(&p.progress, 1, snapSeconds)
		return
	}
	if p.step+1 < len(p.deck.Steps) {
		p.enterStep(p.step + 1)
	}
}

// retreat replays the previous step, or returns to the landing screen from
// the first one.
func (p *Player) retreat() {
	if p.step > 0 {
		p.enterStep(p.step - 1)
		return
	}
	if p.hasLanding() {
		p.landing = true
		p.playing = false
		p.snap = nil
		p.trans = nil
	}
}

// glideTo scrubs the step's progress to target with a short glide.
func (p *Player) glideTo(target float64) {
	p.playing = false
	p.snap = newSnapTween(&p.progress, target, snapSeconds)
}

func (p *Player) handleKeys() error {
	if p.keys.anyJust(ebiten.KeyQ, ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if p.keys.anyJust(ebiten.KeyF) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if p.keys.anyJust(ebiten.KeyH) {
		printControls()
	}
	if p.keys.anyJust(ebiten.KeyD) {
		p.showFPS = !p.showFPS
	}
	if p.keys.anyJust(ebiten.KeyM) {
		p.renderer.ShowPhaseMarkers = !p.renderer.ShowPhaseMarkers
	}

	// Poll everything up front so no key's edge is lost to an earlier match.
	var (
		next   = p.keys.anyJust(ebiten.KeySpace, ebiten.KeyArrowRight, ebiten.KeyEnter)
		prev   = p.keys.anyJust(ebiten.KeyB, ebiten.KeyArrowLeft)
		replay = p.keys.anyJust(ebiten.KeyR)
		pause  = p.keys.anyJust(ebiten.KeyP)
		home   = p.keys.anyJust(ebiten.KeyHome)
		end    = p.keys.anyJust(ebiten.KeyEnd)
	)

	if p.landing {
		if next {
			p.landing = false
			p.enterStep(0)
		}
		return nil
	}

	switch {
	case next:
		p.advance()
	case prev:
		p.retreat()
	case replay:
		p.progress = 0
		p.playing = true
		p.snap = nil
	case pause:
		if p.playing {
			p.playing = false
		} else if p.progress < 1 {
			p.playing = true
		}
	case home:
		p.glideTo(0)
	case end:
		p.glideTo(1)
	}
	return nil
}

// frameStepSize is the progress advance of one tick, mapping one engine
// tick to one animation frame of the current step.
func (p *Player) frameStepSize() float64 {
	step := p.currentStep()
	if step == nil || step.Frames <= 1 {
		return 1
	}
	return 1 / float64(step.Frames-1)
}

func (p *Player) status() string {
	if p.landing {
		return "landing"
	}
	step := p.currentStep()
	if step == nil {
		return "empty deck"
	}
	name := step.Name
	if name == "" {
		name = "step"
	}
	return fmt.Sprintf("%s (%d/%d) %3.0f%%", name, p.step+1, len(p.deck.Steps), p.progress*100)
}

// Update advances the playback clock by one tick.
func (p *Player) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	p.global += dt

	if err := p.handleKeys(); err != nil {
		return err
	}

	p.trans.Update(float32(dt))
	if p.trans != nil && p.trans.Done {
		p.trans = nil
	}
	p.snap.Update(float32(dt))
	if p.snap != nil && p.snap.Done {
		p.snap = nil
	}

	if !p.landing && p.playing && p.snap == nil {
		p.progress += p.frameStepSize()
		if p.progress >= 1 {
			p.progress = 1
			p.playing = false
		}
	}

	p.overlay.Update(dt, p.status())
	return nil
}

// Draw renders the current frame to the screen.
func (p *Player) Draw(screen *ebiten.Image) {
	p.surface.SetTarget(screen)
	if p.landing {
		p.renderer.RenderLanding(p.surface, p.deck, p.global)
	} else {
		p.renderer.RenderTransition(p.surface, p.currentStep(), p.progress, p.global, p.trans.State())
	}
	if p.showFPS {
		p.overlay.Draw(screen)
	}
}

// Layout uses the window size as the render size; the surface letterboxes
// the canvas into whatever it gets.
func (p *Player) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// printControls writes the key bindings to stdout, same text the H key
// prints.
func printControls() {
	fmt.Println("controls: SPACE next | B prev | R replay | P pause | HOME/END scrub | M markers | D fps | F fullscreen | H help | Q quit")
}

// Play opens a window and plays the deck, blocking until the window closes
// or the user quits.
func (p *Player) Play() error {
	ebiten.SetWindowTitle(p.opts.Title)
	ebiten.SetWindowSize(p.opts.Width, p.opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if p.opts.Fullscreen {
		ebiten.SetFullscreen(true)
	}
	printControls()
	if err := ebiten.RunGame(p); err != nil {
		return fmt.Errorf("cadence: run player: %w", err)
	}
	return nil
}

// Run plays the deck in a window. See [Player] for the controls; build the
// player yourself to register custom element types first.
func Run(deck *Deck, opts PlayerOptions) error {
	return NewPlayer(deck, opts).Play()
}
