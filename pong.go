package herofx

import (
	"image"
	"image/color"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Phase is the state of the collision text animation.
type Phase uint8

const (
	PhaseIntro    Phase = iota // scripted handwriting reveal
	PhaseSettling              // full text shown, ball not yet launched
	PhasePlaying               // ball erodes the text
)

func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhaseSettling:
		return "settling"
	case PhasePlaying:
		return "playing"
	}
	return "unknown"
}

// Pong is the hero text animation: a handwriting intro followed by a ball
// that erases the text cell by cell.
type Pong struct {
	cfg    PongConfig
	layout LayoutConfig
	fonts  *FontSet
	rng    *rand.Rand

	w, h     int
	lines    []TextLine
	view     ViewTransform
	cellSize int
	coverage *image.RGBA
	cells    []Cell
	ball     Ball
	physics  Physics

	phase     Phase
	phaseTime float64
	intro     *Intro

	pool     renderTexturePool
	textImg  *ebiten.Image // uploaded lazily from coverage
	layer    *Layer
	lastHits int
}

// NewPong creates the animation. It is empty until the first Resize.
// A nil rng is seeded randomly.
func NewPong(cfg PongConfig, layout LayoutConfig, fonts *FontSet, rng *rand.Rand) *Pong {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	p := &Pong{
		cfg:    cfg,
		layout: layout,
		fonts:  fonts,
		rng:    rng,
	}
	p.intro = NewIntro(DefaultIntroScript, nil, cfg.IntroDuration, fonts, &p.pool)
	return p
}

// Resize rebuilds everything for a w×h viewport: layout, occupancy grid
// and ball. Erosion progress is lost; the phase and intro clock are kept.
func (p *Pong) Resize(w, h int) error {
	lines, view, err := BuildLines(p.layout, w, h, p.fonts)
	if err != nil {
		return err
	}
	coverage, err := RasterizeLines(lines, w, h, p.fonts)
	if err != nil {
		return err
	}

	p.w, p.h = w, h
	p.lines = lines
	p.view = view
	p.cellSize = CellSize(p.cfg, view.Scale)
	p.coverage = coverage
	p.cells = BuildGrid(coverage, p.cellSize, p.cfg.AlphaThreshold)
	p.physics = NewPhysics(p.cfg, p.rng)
	p.resetBall()
	p.lastHits = 0

	if p.textImg != nil {
		p.textImg.Deallocate()
		p.textImg = nil
	}
	if p.layer != nil {
		p.layer.Resize(w, h)
	}
	p.intro.Relayout(lines)
	p.pool.Drain()
	return nil
}

func (p *Pong) resetBall() {
	speed := p.cfg.BallSpeed * p.view.Scale
	radius := p.cfg.BallRadiusCells * float64(p.cellSize)
	if radius < p.cfg.BallMinRadius {
		radius = p.cfg.BallMinRadius
	}
	p.ball = Ball{X: -50, Y: -50, DX: speed * 1.4, DY: speed, Radius: radius}
}

// Update advances the phase clock by dt seconds and, while playing, runs
// one physics tick.
func (p *Pong) Update(dt float64) {
	p.phaseTime += dt
	switch p.phase {
	case PhaseIntro:
		p.intro.Update(dt)
		if p.intro.Done() {
			p.enter(PhaseSettling)
		}
	case PhaseSettling:
		if p.phaseTime >= p.cfg.PlayDelay {
			p.enter(PhasePlaying)
		}
	case PhasePlaying:
		if p.w > 0 && p.h > 0 {
			p.lastHits = p.physics.Step(&p.ball, p.cells, float64(p.w), float64(p.h))
		}
	}
}

func (p *Pong) enter(ph Phase) {
	p.phase = ph
	p.phaseTime = 0
	if ph != PhaseIntro {
		p.intro.Release()
	}
}

// SkipIntro jumps straight to the settling phase. It has no effect once
// the intro is over.
func (p *Pong) SkipIntro() {
	if p.phase == PhaseIntro {
		p.enter(PhaseSettling)
	}
}

// Draw renders the current phase onto screen.
func (p *Pong) Draw(screen *ebiten.Image) {
	if p.coverage == nil {
		return
	}
	if p.phase == PhaseIntro {
		p.intro.Draw(screen)
		return
	}

	if p.textImg == nil {
		p.textImg = ebiten.NewImageFromImage(p.coverage)
	}
	if p.layer == nil {
		p.layer = NewLayer(p.w, p.h)
	}
	p.layer.Clear()
	p.layer.DrawImageAt(p.textImg, 0, 0, BlendNormal)
	for i := range p.cells {
		if p.cells[i].Hit {
			p.layer.FillRect(p.cells[i].Rect(), ColorWhite, BlendErase)
		}
	}
	screen.DrawImage(p.layer.Image(), nil)

	if p.phase == PhasePlaying {
		b := &p.ball
		vector.FillCircle(screen, float32(b.X), float32(b.Y), float32(b.Radius), color.White, true)
	}
}

// Dispose frees every GPU image the animation holds.
func (p *Pong) Dispose() {
	p.intro.Release()
	p.pool.Drain()
	if p.textImg != nil {
		p.textImg.Deallocate()
		p.textImg = nil
	}
	if p.layer != nil {
		p.layer.Dispose()
		p.layer = nil
	}
}

// Phase returns the current phase.
func (p *Pong) Phase() Phase { return p.phase }

// Cells returns the occupancy grid. The slice is live.
func (p *Pong) Cells() []Cell { return p.cells }

// Ball returns a copy of the ball.
func (p *Pong) Ball() Ball { return p.ball }

// Lines returns the laid-out text lines.
func (p *Pong) Lines() []TextLine { return p.lines }

// CellSize returns the occupancy cell edge in pixels.
func (p *Pong) CellSize() int { return p.cellSize }

// Scale returns the view-box scale of the current layout.
func (p *Pong) Scale() float64 { return p.view.Scale }

// Coverage returns the rasterized text the grid was built from.
func (p *Pong) Coverage() *image.RGBA { return p.coverage }

// Intro returns the intro script player.
func (p *Pong) Intro() *Intro { return p.intro }

// LastHits returns the number of cells struck by the latest tick.
func (p *Pong) LastHits() int { return p.lastHits }
