package herofx

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// GradientQuery is the lookup query the liquid gradient registers under.
const GradientQuery = ".liquid-canvas-wrapper canvas"

// DefaultPalette is the three-color blend of the liquid gradient.
var DefaultPalette = [3]Color{
	{R: 0.06, G: 0.09, B: 0.28, A: 1},
	{R: 0.42, G: 0.16, B: 0.62, A: 1},
	{R: 0.05, G: 0.55, B: 0.66, A: 1},
}

const gradientShaderSrc = `//kage:unit pixels
package main

var Time float
var Resolution vec2
var ColorA vec3
var ColorB vec3
var ColorC vec3

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	uv := (dstPos.xy - imageDstOrigin()) / Resolution
	t := Time * 0.15
	px := uv.x * 3
	py := uv.y * 3
	px += sin(py*1.3+t*2) * 0.6
	py += cos(px*1.1-t*1.7) * 0.6
	w := 0.5 + 0.5*sin(px+py+t)
	k := 0.5 + 0.5*cos(px*0.7-py*1.2-t*1.3)
	c := mix(mix(ColorA, ColorB, w), ColorC, k*0.6)
	return vec4(c, 1)
}
`

var (
	gradientShader    *ebiten.Shader
	gradientShaderErr error
)

func ensureGradientShader() (*ebiten.Shader, error) {
	if gradientShader == nil && gradientShaderErr == nil {
		gradientShader, gradientShaderErr = ebiten.NewShader([]byte(gradientShaderSrc))
	}
	return gradientShader, gradientShaderErr
}

// GradientColor is the CPU version of the gradient shader at normalized
// position (u, v) and time t seconds.
func GradientColor(t, u, v float64, pal [3]Color) (r, g, b float64) {
	t *= 0.15
	px, py := u*3, v*3
	px += math.Sin(py*1.3+t*2) * 0.6
	py += math.Cos(px*1.1-t*1.7) * 0.6
	w := 0.5 + 0.5*math.Sin(px+py+t)
	k := (0.5 + 0.5*math.Cos(px*0.7-py*1.2-t*1.3)) * 0.6
	mixc := func(a, b, c float64) float64 {
		return lerp(lerp(a, b, w), c, k)
	}
	return mixc(pal[0].R, pal[1].R, pal[2].R),
		mixc(pal[0].G, pal[1].G, pal[2].G),
		mixc(pal[0].B, pal[1].B, pal[2].B)
}

// GradientSampler samples the gradient at a fixed time. It stands in for
// the live surface when rendering transition frames offline.
type GradientSampler struct {
	Time    float64
	Palette [3]Color
}

// Sample implements Sampler.
func (s GradientSampler) Sample(u, v float64) (float64, float64, float64) {
	return GradientColor(s.Time, clamp01(u), clamp01(v), s.Palette)
}

// LiquidGradient is the animated background behind every page and the
// live source of the transition overlay.
type LiquidGradient struct {
	Palette [3]Color

	layer    *Layer
	time     float64
	uniforms map[string]any
	resF32   [2]float32
	colF32   [3][3]float32
	shaderOp ebiten.DrawRectShaderOptions
	failed   bool
}

// NewLiquidGradient creates a w×h gradient surface.
func NewLiquidGradient(w, h int) *LiquidGradient {
	g := &LiquidGradient{
		Palette:  DefaultPalette,
		layer:    NewLayer(w, h),
		uniforms: make(map[string]any, 5),
	}
	g.uniforms["Resolution"] = g.resF32[:]
	g.uniforms["ColorA"] = g.colF32[0][:]
	g.uniforms["ColorB"] = g.colF32[1][:]
	g.uniforms["ColorC"] = g.colF32[2][:]
	return g
}

// Update advances the flow by dt seconds.
func (g *LiquidGradient) Update(dt float64) {
	g.time += dt
}

// Time returns the elapsed flow time in seconds.
func (g *LiquidGradient) Time() float64 { return g.time }

// Render redraws the gradient into its own image. Call once per frame
// before anything samples Frame.
func (g *LiquidGradient) Render() {
	dst := g.layer.Image()
	shader, err := ensureGradientShader()
	if err != nil {
		if !g.failed {
			logger.Printf("gradient: shader disabled, using flat fill: %v", err)
			g.failed = true
		}
		dst.Fill(g.Palette[0].toRGBA())
		return
	}
	g.resF32 = [2]float32{float32(g.layer.Width()), float32(g.layer.Height())}
	for i, c := range g.Palette {
		g.colF32[i] = [3]float32{float32(c.R), float32(c.G), float32(c.B)}
	}
	g.uniforms["Time"] = float32(g.time)
	g.shaderOp.Uniforms = g.uniforms
	dst.DrawRectShader(g.layer.Width(), g.layer.Height(), shader, &g.shaderOp)
}

// Draw copies the current frame onto screen.
func (g *LiquidGradient) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.layer.Image(), nil)
}

// Resize reallocates the surface. The flow time is kept.
func (g *LiquidGradient) Resize(w, h int) {
	g.layer.Resize(w, h)
}

// Frame implements LiveSource.
func (g *LiquidGradient) Frame() *ebiten.Image {
	return g.layer.Image()
}

// Dispose frees the surface.
func (g *LiquidGradient) Dispose() {
	g.layer.Dispose()
}
