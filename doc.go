// Package cadence renders slide-deck style animated presentations driven
// by a single progress scalar.
//
// A deck is a list of steps; each step declares its elements (text, boxes,
// lists, diagrams, 3D scatters and more) with timing fields instead of
// code: an animation phase, duration, delay, easing curve, entry animation
// and continuous effect. One progress value in [0, 1] drives every
// element's appearance, motion and disappearance, so a frame is a pure
// function of the deck and the progress and scrubbing backward replays
// exactly.
//
// # Quick start
//
// Load a deck and play it in a window:
//
//	deck, err := cadence.ReadDeck("talk.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := cadence.Run(deck, cadence.PlayerOptions{Title: "My Talk"}); err != nil {
//		log.Fatal(err)
//	}
//
// For full control, implement [ebiten.Game] yourself around [Player], or
// render single frames with no window at all:
//
//	r := cadence.NewRenderer(nil)
//	surf := cadence.NewImageSurface(1280, 800)
//	r.Render(surf, &deck.Steps[0], 0.5) // the first step, half way through
//
// # Timing model
//
// Each element belongs to one of five phases splitting the 0..1 progress
// range: immediate, early, middle, late, final. Delay shifts the window
// start in ticks worth 5% of the timeline each, duration scales the window
// length, and the easing curve shapes the local progress. [Progress]
// computes the eased local progress for one element; [Compose] folds in
// the entry animation, continuous effect and step transition to produce
// the final position, alpha and scale. Multi-item elements reveal their
// items one after another with [StaggerAlpha].
//
// # Surfaces
//
// Rendering targets the [Surface] interface with canvas coordinates 0..100
// on both axes, y up. Four implementations ship: [EbitenSurface] for
// windows, [ImageSurface] for software rendering and PNG export,
// [TermSurface] for terminals via [tcell], and [RecordSurface], which
// captures draw ops for tests.
//
// # Apps
//
// [Run] opens a playback window with keyboard navigation. [Exporter]
// writes every frame of a deck as numbered PNGs for video assembly.
// [Script] scrubs a deck through JSON checkpoints for headless regression
// testing.
//
// [tcell]: https://github.com/gdamore/tcell
package cadence
