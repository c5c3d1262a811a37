package herofx

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Filter is the interface for visual effects applied to a rendered image.
type Filter interface {
	// Apply renders src into dst with the filter effect.
	Apply(src, dst *ebiten.Image)
	// Padding returns the extra pixels needed around the source to accommodate
	// the effect. Zero means no padding.
	Padding() int
}

// --- Kage shader sources ---
// All shaders use //kage:unit pixels. Ebitengine uses premultiplied alpha;
// shaders output premultiplied colors.

const inkOutlineShaderSrc = `//kage:unit pixels
package main

var InkColor vec4
var Threshold float

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	c := imageSrc0At(src)
	if c.a <= Threshold {
		return vec4(0)
	}
	// Keep only pixels with a cardinal neighbor below the threshold.
	if imageSrc0At(src + vec2(1, 0)).a <= Threshold ||
		imageSrc0At(src + vec2(-1, 0)).a <= Threshold ||
		imageSrc0At(src + vec2(0, 1)).a <= Threshold ||
		imageSrc0At(src + vec2(0, -1)).a <= Threshold {
		return InkColor
	}
	return vec4(0)
}
`

// --- Lazy shader compilation. The frame loop is single-threaded. ---

var inkOutlineShader *ebiten.Shader

func ensureInkOutlineShader() *ebiten.Shader {
	if inkOutlineShader == nil {
		s, err := ebiten.NewShader([]byte(inkOutlineShaderSrc))
		if err != nil {
			panic("herofx: failed to compile ink outline shader: " + err.Error())
		}
		inkOutlineShader = s
	}
	return inkOutlineShader
}

// --- InkOutlineFilter ---

// InkOutlineFilter keeps only the rim pixels of the source's coverage and
// paints them in a flat ink color. The intro uses it as the pen stroke that
// traces a glyph before its fill fades in.
type InkOutlineFilter struct {
	Color      Color
	Threshold  float64 // coverage at or below this counts as empty
	uniforms   map[string]any
	colorF32   [4]float32 // persistent buffer
	colorSlice []float32  // persistent slice header
	shaderOp   ebiten.DrawRectShaderOptions
}

// NewInkOutlineFilter creates an outline filter with the given ink color.
func NewInkOutlineFilter(c Color) *InkOutlineFilter {
	f := &InkOutlineFilter{
		Color:     c,
		Threshold: 0.1,
		uniforms:  make(map[string]any, 2),
	}
	f.colorSlice = f.colorF32[:]
	f.uniforms["InkColor"] = f.colorSlice
	return f
}

// Apply draws the outline of src into dst.
func (f *InkOutlineFilter) Apply(src, dst *ebiten.Image) {
	shader := ensureInkOutlineShader()
	// Premultiply the ink color for the shader (write in-place, no alloc).
	f.colorF32[0] = float32(f.Color.R * f.Color.A)
	f.colorF32[1] = float32(f.Color.G * f.Color.A)
	f.colorF32[2] = float32(f.Color.B * f.Color.A)
	f.colorF32[3] = float32(f.Color.A)
	// Scalar float32 boxing is unavoidable with Ebitengine's uniform API.
	f.uniforms["Threshold"] = float32(f.Threshold)
	bounds := src.Bounds()
	f.shaderOp.Images[0] = src
	f.shaderOp.Uniforms = f.uniforms
	dst.DrawRectShader(bounds.Dx(), bounds.Dy(), shader, &f.shaderOp)
}

// Padding returns 0; the outline stays inside the source coverage.
func (f *InkOutlineFilter) Padding() int { return 0 }
