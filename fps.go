package cadence

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay is the player's corner readout: frame rates plus a playback
// status line, drawn with ebitenutil.DebugPrint. The text only reformats
// every ~0.5 seconds so the numbers are readable instead of flickering.
type fpsOverlay struct {
	text    string
	elapsed float64
}

// Update refreshes the overlay text. status describes the player state,
// e.g. "step 2/7 intro 43%".
func (f *fpsOverlay) Update(dt float64, status string) {
	f.elapsed += dt
	if f.text != "" && f.elapsed < 0.5 {
		return
	}
	f.elapsed = 0
	f.text = fmt.Sprintf("FPS %.1f TPS %.1f\n%s", ebiten.ActualFPS(), ebiten.ActualTPS(), status)
}

// Draw prints the overlay in the screen's top-left corner.
func (f *fpsOverlay) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, f.text)
}
