package herofx

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	navFontSize   = 15
	titleFontSize = 44
)

// App is the hero site as an ebiten.Game: the liquid gradient behind every
// page, the collision text on Home, a title on every other page, the bottom
// nav bar and the glass-wave transition on top.
type App struct {
	cfg   Config
	fonts *FontSet
	rng   *rand.Rand

	registry *SurfaceRegistry
	gradient *LiquidGradient
	overlay  *Overlay
	nav      *Navigator
	navbar   *NavBar
	pong     *Pong // mounted only while Home is active

	uiFont    *TTFFont
	titleFont *TTFFont
	fps       *fpsWidget

	w, h   int
	forced struct{ w, h int } // size set by a test script, overrides the window

	configPath string
	watcher    *ConfigWatcher

	runner          *TestRunner
	screenshotQueue []string

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	debug bool
	stats debugStats
}

// NewApp builds the site for a w×h viewport. A nil rng is seeded randomly.
func NewApp(cfg Config, w, h int, rng *rand.Rand) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	fonts, err := NewFontSet()
	if err != nil {
		return nil, err
	}
	uiFont, err := LoadTTFFont(goregular.TTF, navFontSize)
	if err != nil {
		return nil, err
	}
	titleFont, err := LoadTTFFont(goregular.TTF, titleFontSize)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:           cfg,
		fonts:         fonts,
		rng:           rng,
		registry:      NewSurfaceRegistry(),
		uiFont:        uiFont,
		titleFont:     titleFont,
		ScreenshotDir: "screenshots",
	}
	a.gradient = NewLiquidGradient(w, h)
	a.registry.Register(GradientQuery, a.gradient)

	a.overlay, err = NewOverlay(a.registry, cfg.Overlay, w, h)
	if err != nil {
		return nil, err
	}
	a.nav = NewNavigator(cfg.Nav, a.overlay)
	a.nav.OnNavigate = a.navigated
	a.overlay.OnComplete = a.nav.Complete
	a.navbar = NewNavBar(a.nav, uiFont)

	if err := a.mountPong(0, 0); err != nil {
		return nil, err
	}
	a.resize(w, h)
	return a, nil
}

// Update implements ebiten.Game.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		a.SetShowFPS(a.fps == nil)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) && a.pong != nil {
		a.pong.SkipIntro()
	}
	a.step(1.0 / float64(ebiten.TPS()))
	return nil
}

// step advances every component by dt seconds.
func (a *App) step(dt float64) {
	var t0 time.Time
	if a.debug {
		t0 = time.Now()
	}

	a.applyReloads()
	if a.runner != nil {
		a.runner.step(a)
	}
	a.gradient.Update(dt)
	a.navbar.Update()
	a.nav.Update(dt)
	a.overlay.Update(dt)
	if a.pong != nil {
		a.pong.Update(dt)
	}
	if a.fps != nil {
		a.fps.update(dt)
	}

	if a.debug {
		a.stats.updateTime = time.Since(t0)
	}
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if a.debug {
		t0 = time.Now()
	}

	a.gradient.Render()
	a.gradient.Draw(screen)
	if a.pong != nil {
		a.pong.Draw(screen)
	} else {
		a.drawTitle(screen)
	}
	a.navbar.Draw(screen)
	a.overlay.Draw(screen)
	if a.fps != nil {
		a.fps.draw(screen)
	}
	a.flushScreenshots(screen)

	if a.debug {
		a.stats.drawTime = time.Since(t0)
		if a.pong != nil {
			a.stats.hitCells = CountHit(a.pong.Cells())
			a.stats.totalCells = len(a.pong.Cells())
		} else {
			a.stats.hitCells, a.stats.totalCells = 0, 0
		}
		a.stats.progress = a.overlay.Progress()
		a.stats.navLocked = a.nav.Locked()
		a.debugLog(a.stats)
	}
}

// Layout implements ebiten.Game. The viewport follows the window unless a
// test script has pinned its size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := outsideWidth, outsideHeight
	if a.forced.w > 0 && a.forced.h > 0 {
		w, h = a.forced.w, a.forced.h
	}
	if w != a.w || h != a.h {
		a.resize(w, h)
	}
	return w, h
}

// Resize pins the viewport to w×h regardless of the window size.
func (a *App) Resize(w, h int) {
	a.forced.w, a.forced.h = w, h
	a.resize(w, h)
}

func (a *App) resize(w, h int) {
	a.w, a.h = w, h
	a.gradient.Resize(w, h)
	a.overlay.Resize(w, h)
	a.navbar.Layout(w, h)
	if a.pong != nil {
		if err := a.pong.Resize(w, h); err != nil {
			logger.Printf("pong: resize %dx%d: %v", w, h, err)
		}
	}
}

// navigated swaps the page content. The hero animation lives only on Home.
func (a *App) navigated(from, to int) {
	if from == 0 && a.pong != nil {
		a.pong.Dispose()
		a.pong = nil
	}
	if to == 0 {
		if err := a.mountPong(a.w, a.h); err != nil {
			logger.Printf("pong: %v", err)
		}
	}
}

func (a *App) mountPong(w, h int) error {
	p := NewPong(a.cfg.Pong, a.cfg.Layout, a.fonts, a.rng)
	if w > 0 && h > 0 {
		if err := p.Resize(w, h); err != nil {
			return fmt.Errorf("herofx: mount hero: %w", err)
		}
	}
	a.pong = p
	return nil
}

func (a *App) drawTitle(screen *ebiten.Image) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(a.w)/2, float64(a.h)*0.4)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleAlpha(0.9)
	text.Draw(screen, a.nav.ActiveItem().Label, a.titleFont.Face(), op)
}

// WatchConfig reloads the config from path whenever it changes on disk.
func (a *App) WatchConfig(path string) error {
	w, err := NewConfigWatcher(filepath.Dir(path))
	if err != nil {
		return fmt.Errorf("herofx: watch %s: %w", path, err)
	}
	a.configPath = filepath.Clean(path)
	a.watcher = w
	return nil
}

// applyReloads drains the watcher without blocking and applies the newest
// config. A config that fails to load or validate is logged and skipped.
func (a *App) applyReloads() {
	if a.watcher == nil {
		return
	}
	changed := false
	for {
		select {
		case name := <-a.watcher.Events:
			if filepath.Clean(name) == a.configPath {
				changed = true
			}
			continue
		case err := <-a.watcher.Errors:
			logger.Printf("config: watch: %v", err)
			continue
		default:
		}
		break
	}
	if !changed {
		return
	}
	cfg, err := LoadConfig(a.configPath)
	if err != nil {
		logger.Printf("config: reload: %v", err)
		return
	}
	if err := a.ApplyConfig(cfg); err != nil {
		logger.Printf("config: reload: %v", err)
		return
	}
	logger.Printf("config: reloaded %s", a.configPath)
}

// ApplyConfig swaps in a new config. Overlay timing applies from the next
// transition; the hero animation restarts from its intro. The navigation
// items are fixed at startup.
func (a *App) ApplyConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := a.overlay.Configure(cfg.Overlay); err != nil {
		return err
	}
	a.nav.SetSafetyUnlock(cfg.Nav.SafetyUnlock)
	a.cfg.Overlay = cfg.Overlay
	a.cfg.Nav.SafetyUnlock = cfg.Nav.SafetyUnlock
	a.cfg.Pong = cfg.Pong
	a.cfg.Layout = cfg.Layout
	if a.pong != nil {
		a.pong.Dispose()
		a.pong = nil
		return a.mountPong(a.w, a.h)
	}
	return nil
}

// SetDebug enables per-frame timing stats through the package logger.
func (a *App) SetDebug(enabled bool) { a.debug = enabled }

// SetShowFPS toggles the FPS counter.
func (a *App) SetShowFPS(show bool) {
	switch {
	case show && a.fps == nil:
		a.fps = newFPSWidget()
	case !show && a.fps != nil:
		a.fps.dispose()
		a.fps = nil
	}
}

// SetTestRunner attaches a scripted test run. Its steps execute at the
// start of every Update.
func (a *App) SetTestRunner(r *TestRunner) { a.runner = r }

// Config returns the active config.
func (a *App) Config() Config { return a.cfg }

// Navigator returns the page navigator.
func (a *App) Navigator() *Navigator { return a.nav }

// NavBar returns the bottom navigation bar.
func (a *App) NavBar() *NavBar { return a.navbar }

// Overlay returns the transition overlay.
func (a *App) Overlay() *Overlay { return a.overlay }

// Pong returns the hero animation, or nil when Home is not active.
func (a *App) Pong() *Pong { return a.pong }

// Size returns the current viewport size.
func (a *App) Size() (int, int) { return a.w, a.h }

// Close stops the config watcher and frees GPU resources.
func (a *App) Close() error {
	var err error
	if a.watcher != nil {
		err = a.watcher.Close()
		a.watcher = nil
	}
	a.overlay.Dispose()
	if a.pong != nil {
		a.pong.Dispose()
		a.pong = nil
	}
	a.registry.Unregister(GradientQuery, a.gradient)
	a.gradient.Dispose()
	a.SetShowFPS(false)
	return err
}
