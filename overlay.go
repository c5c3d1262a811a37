package herofx

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// Player is the only capability the navigation layer gets from the
// overlay.
type Player interface {
	Play()
}

// Overlay is the full-screen glass-wave transition. It reveals a live
// surface through an expanding refracting circle, then fades out.
//
// Update and Draw must be called every frame whether or not a transition
// is running.
type Overlay struct {
	registry *SurfaceRegistry
	cfg      OverlayConfig
	ease     ease.TweenFunc
	fadeEase ease.TweenFunc

	uniforms  GlassUniforms
	opacity   float64
	animating bool
	timeline  *Timeline

	// OnComplete fires once at the end of every transition.
	OnComplete func()

	vertices   [4]ebiten.Vertex
	indices    []uint16
	shaderOp   ebiten.DrawTrianglesShaderOptions
	uniformMap map[string]any
	resF32     [2]float32
	texF32     [2]float32
	failed     bool
}

// NewOverlay creates an overlay for a w×h viewport that looks up its live
// source in reg.
func NewOverlay(reg *SurfaceRegistry, cfg OverlayConfig, w, h int) (*Overlay, error) {
	o := &Overlay{
		registry:   reg,
		opacity:    1,
		indices:    []uint16{0, 1, 2, 1, 3, 2},
		uniformMap: make(map[string]any, 3),
	}
	if err := o.Configure(cfg); err != nil {
		return nil, err
	}
	o.uniformMap["Resolution"] = o.resF32[:]
	o.uniformMap["TextureSize"] = o.texF32[:]
	o.Resize(w, h)
	return o, nil
}

// Configure replaces the timing settings. It takes effect on the next Play.
func (o *Overlay) Configure(cfg OverlayConfig) error {
	fn, err := EaseByName(cfg.Ease)
	if err != nil {
		return fmt.Errorf("herofx: overlay ease: %w", err)
	}
	fade, err := EaseByName(cfg.FadeEase)
	if err != nil {
		return fmt.Errorf("herofx: overlay fade ease: %w", err)
	}
	o.cfg = cfg
	o.ease = fn
	o.fadeEase = fade
	return nil
}

// Play starts a transition. It does nothing while one is running, and logs
// and returns when the configured source is not on screen.
func (o *Overlay) Play() {
	if o.animating {
		return
	}
	src, err := o.registry.Lookup(o.cfg.Source)
	if err != nil {
		logger.Printf("overlay: %v", err)
		return
	}

	snap := newLiveSnapshot(src)
	w, h := snap.Size()
	o.uniforms.Source = snap
	o.uniforms.TextureSize = Vec2{X: float64(w), Y: float64(h)}
	o.uniforms.Progress = 0
	o.opacity = 1
	o.animating = true

	if o.timeline != nil {
		o.timeline.Kill()
	}
	o.timeline = NewTimeline(
		TweenFromTo(&o.uniforms.Progress, 0, 1, float32(o.cfg.Duration), o.ease),
		TweenFromTo(&o.opacity, 1, 0, float32(o.cfg.FadeDuration), o.fadeEase),
	)
	o.timeline.OnComplete = o.finish
}

func (o *Overlay) finish() {
	snap := o.uniforms.Source
	o.uniforms.Progress = 0
	o.uniforms.Source = nil
	o.opacity = 1
	if snap != nil {
		snap.Release()
	}
	o.timeline = nil
	o.animating = false
	if o.OnComplete != nil {
		o.OnComplete()
	}
}

// Update advances the transition by dt seconds and keeps the live snapshot
// refreshing.
func (o *Overlay) Update(dt float64) {
	if o.uniforms.Source != nil {
		o.uniforms.Source.MarkDirty()
	}
	if o.timeline != nil {
		o.timeline.Update(float32(dt))
	}
}

// Draw composites the overlay onto screen. Idle frames are transparent and
// skip the draw call.
func (o *Overlay) Draw(screen *ebiten.Image) {
	snap := o.uniforms.Source
	if snap == nil || o.uniforms.Progress < ProgressEpsilon || o.opacity <= 0 {
		return
	}
	tex := snap.Texture()
	tw, th := snap.Size()
	if tex == nil || tw == 0 || th == 0 {
		return
	}
	shader, err := ensureGlassShader()
	if err != nil {
		if !o.failed {
			logger.Printf("overlay: glass shader disabled: %v", err)
			o.failed = true
		}
		return
	}

	o.uniforms.TextureSize = Vec2{X: float64(tw), Y: float64(th)}
	o.texF32 = [2]float32{float32(tw), float32(th)}
	o.uniformMap["Progress"] = float32(o.uniforms.Progress)

	b := tex.Bounds()
	w, h := float32(o.uniforms.Resolution.X), float32(o.uniforms.Resolution.Y)
	sx0, sy0 := float32(b.Min.X), float32(b.Min.Y)
	sx1, sy1 := float32(b.Max.X), float32(b.Max.Y)
	a := float32(o.opacity)
	o.vertices[0] = ebiten.Vertex{DstX: 0, DstY: 0, SrcX: sx0, SrcY: sy0}
	o.vertices[1] = ebiten.Vertex{DstX: w, DstY: 0, SrcX: sx1, SrcY: sy0}
	o.vertices[2] = ebiten.Vertex{DstX: 0, DstY: h, SrcX: sx0, SrcY: sy1}
	o.vertices[3] = ebiten.Vertex{DstX: w, DstY: h, SrcX: sx1, SrcY: sy1}
	for i := range o.vertices {
		o.vertices[i].ColorR = a
		o.vertices[i].ColorG = a
		o.vertices[i].ColorB = a
		o.vertices[i].ColorA = a
	}

	o.shaderOp.Images[0] = tex
	o.shaderOp.Uniforms = o.uniformMap
	screen.DrawTrianglesShader(o.vertices[:], o.indices, shader, &o.shaderOp)
}

// Resize updates the viewport size. A running transition continues.
func (o *Overlay) Resize(w, h int) {
	o.uniforms.Resolution = Vec2{X: float64(w), Y: float64(h)}
	o.resF32 = [2]float32{float32(w), float32(h)}
}

// Animating reports whether a transition is running.
func (o *Overlay) Animating() bool { return o.animating }

// Progress returns the current mask progress.
func (o *Overlay) Progress() float64 { return o.uniforms.Progress }

// Opacity returns the current overlay opacity.
func (o *Overlay) Opacity() float64 { return o.opacity }

// Uniforms returns a copy of the current shader inputs.
func (o *Overlay) Uniforms() GlassUniforms { return o.uniforms }

// Dispose stops any running transition without firing OnComplete and drops
// the live source.
func (o *Overlay) Dispose() {
	if o.timeline != nil {
		o.timeline.Kill()
		o.timeline = nil
	}
	if o.uniforms.Source != nil {
		o.uniforms.Source.Release()
		o.uniforms.Source = nil
	}
	o.uniforms.Progress = 0
	o.animating = false
}
