package herofx

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// Fixed disables window resizing. The site is resizable by default.
	Fixed bool
}

// Run opens a window and drives app until the window closes. It closes
// app on return.
func Run(app *App, cfg RunConfig) error {
	defer app.Close()

	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	if !cfg.Fixed {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	app.SetShowFPS(cfg.ShowFPS)
	return ebiten.RunGame(app)
}
