package sprout

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay draws the current FPS and TPS in the top-left corner.
// The readout refreshes every ~0.5 seconds to stay legible.
type fpsOverlay struct {
	img *ebiten.Image
	acc float64
}

func newFPSOverlay() *fpsOverlay {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	f := &fpsOverlay{img: ebiten.NewImage(100, 32)}
	f.refresh()
	return f
}

// update accumulates frame time and refreshes the readout twice a second.
func (f *fpsOverlay) update(dt float64) {
	f.acc += dt
	if f.acc < 0.5 {
		return
	}
	f.acc = 0
	f.refresh()
}

func (f *fpsOverlay) refresh() {
	f.img.Clear()
	// Semi-transparent background for readability
	f.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(f.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f",
		ebiten.ActualFPS(), ebiten.ActualTPS()))
}

func (f *fpsOverlay) draw(screen *ebiten.Image) {
	screen.DrawImage(f.img, nil)
}
