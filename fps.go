package herofx

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often the counter text is redrawn, in seconds.
const fpsRefresh = 0.5

// fpsWidget shows the current FPS and TPS in the top-left corner.
// It uses a small private image and ebitenutil.DebugPrint for rendering.
type fpsWidget struct {
	img     *ebiten.Image
	elapsed float64
	dirty   bool
}

func newFPSWidget() *fpsWidget {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	return &fpsWidget{img: ebiten.NewImage(100, 32), dirty: true}
}

// update counts time and marks the text stale every fpsRefresh seconds.
func (w *fpsWidget) update(dt float64) {
	w.elapsed += dt
	if w.elapsed < fpsRefresh {
		return
	}
	w.elapsed = 0
	w.dirty = true
}

func (w *fpsWidget) draw(screen *ebiten.Image) {
	if w.dirty {
		w.img.Clear()
		w.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(w.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
		w.dirty = false
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(8, 8)
	screen.DrawImage(w.img, op)
}

func (w *fpsWidget) dispose() {
	w.img.Deallocate()
}
