package herofx

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// glassShaderSrc is the transition overlay. It expects a full-viewport quad
// whose source region is the whole live texture and whose vertex color is
// the overlay opacity. Textures are sampled bilinearly with edge clamping.
const glassShaderSrc = `//kage:unit pixels
package main

var Progress float
var Resolution vec2
var TextureSize vec2

func coverUV(uv vec2) vec2 {
	s := Resolution / TextureSize
	scale := max(s.x, s.y)
	scaled := TextureSize * scale
	offset := (Resolution - scaled) * 0.5
	return (uv*Resolution - offset) / scaled
}

func texel(p vec2) vec4 {
	size := imageSrc0Size()
	q := clamp(p, vec2(0.5), size-vec2(0.5))
	return imageSrc0At(imageSrc0Origin() + q)
}

func sampleSrc(uv vec2) vec4 {
	p := uv*imageSrc0Size() - vec2(0.5)
	f := fract(p)
	b := floor(p) + vec2(0.5)
	c00 := texel(b)
	c10 := texel(b + vec2(1, 0))
	c01 := texel(b + vec2(0, 1))
	c11 := texel(b + vec2(1, 1))
	return mix(mix(c00, c10, f.x), mix(c01, c11, f.x), f.y)
}

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	if Progress < 0.001 {
		return vec4(0)
	}
	pixel := dstPos.xy - imageDstOrigin()
	uv := coverUV(pixel / Resolution)

	radius := Progress * length(Resolution) * 0.85
	centre := Resolution * 0.5
	dist := length(pixel - centre)
	nd := dist / max(radius, 0.001)

	mask := 1 - smoothstep(radius-3, radius+3, dist)
	if mask < 0.001 {
		return vec4(0)
	}

	refr := 0.08 * pow(smoothstep(0.3, 1.0, nd), 1.5)
	dir := vec2(0)
	if dist > 0 {
		dir = (pixel - centre) / dist
	}
	duv := uv - dir*refr

	t := Progress * 5
	duv += vec2(sin(t+nd*10), cos(t*0.8+nd*8)) * 0.015 * nd * mask

	ca := 0.02 * pow(smoothstep(0.3, 1.0, nd), 1.2)
	rgb := vec3(
		sampleSrc(duv+dir*ca*1.2).r,
		sampleSrc(duv+dir*ca*0.2).g,
		sampleSrc(duv-dir*ca*0.8).b,
	)

	rim := smoothstep(0.92, 1.0, nd) * (1 - smoothstep(1.0, 1.02, nd))
	rgb += vec3(rim * 0.12)

	if Progress > 0.95 {
		clean := sampleSrc(uv).rgb
		rgb = mix(rgb, clean, (Progress-0.95)/0.05)
	}
	rgb = clamp(rgb, vec3(0), vec3(1))
	return vec4(rgb*mask, mask) * color
}
`

var (
	glassShader    *ebiten.Shader
	glassShaderErr error
)

// ensureGlassShader compiles the glass shader once. A compile failure is
// remembered and returned on every later call.
func ensureGlassShader() (*ebiten.Shader, error) {
	if glassShader == nil && glassShaderErr == nil {
		glassShader, glassShaderErr = ebiten.NewShader([]byte(glassShaderSrc))
	}
	return glassShader, glassShaderErr
}

// GlassUniforms is the per-frame input of the glass shader.
type GlassUniforms struct {
	Source      *LiveSnapshot // nil when idle
	Progress    float64
	Resolution  Vec2 // viewport size in pixels
	TextureSize Vec2 // live source size in pixels
}

// Sampler reads a source surface at normalized coordinates, v growing
// downward. Colors are premultiplied, as ebiten textures are.
type Sampler interface {
	Sample(u, v float64) (r, g, b float64)
}

// ShadeGlass is the CPU reference of the glass shader. It returns the color
// of the pixel centered at (px, py) with A set to the mask coverage.
func ShadeGlass(u GlassUniforms, s Sampler, px, py float64) Color {
	w, h := u.Resolution.X, u.Resolution.Y
	m := Mask(u.Progress, px, py, w, h)
	if m == 0 {
		return Color{}
	}
	uvx, uvy := coverUV(px/w, py/h, u.Resolution, u.TextureSize)

	radius := MaskRadius(u.Progress, w, h)
	dx, dy := px-w/2, py-h/2
	dist := math.Hypot(dx, dy)
	nd := dist / math.Max(radius, 0.001)

	refr := 0.08 * math.Pow(smoothstep(0.3, 1, nd), 1.5)
	var dirX, dirY float64
	if dist > 0 {
		dirX, dirY = dx/dist, dy/dist
	}
	du := uvx - dirX*refr
	dv := uvy - dirY*refr

	t := u.Progress * 5
	wob := 0.015 * nd * m
	du += math.Sin(t+nd*10) * wob
	dv += math.Cos(t*0.8+nd*8) * wob

	ca := 0.02 * math.Pow(smoothstep(0.3, 1, nd), 1.2)
	r, _, _ := s.Sample(du+dirX*ca*1.2, dv+dirY*ca*1.2)
	_, g, _ := s.Sample(du+dirX*ca*0.2, dv+dirY*ca*0.2)
	_, _, b := s.Sample(du-dirX*ca*0.8, dv-dirY*ca*0.8)

	rim := smoothstep(0.92, 1, nd) * (1 - smoothstep(1, 1.02, nd)) * 0.12
	r, g, b = r+rim, g+rim, b+rim

	if u.Progress > SettleStart {
		cr, cg, cb := s.Sample(uvx, uvy)
		k := (u.Progress - SettleStart) / (1 - SettleStart)
		r, g, b = lerp(r, cr, k), lerp(g, cg, k), lerp(b, cb, k)
	}
	return Color{R: clamp01(r), G: clamp01(g), B: clamp01(b), A: m}
}

// RenderGlass shades every pixel of dst on the CPU. opacity scales the
// result the way the overlay's fade does.
func RenderGlass(dst *image.RGBA, u GlassUniforms, s Sampler, opacity float64) {
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := ShadeGlass(u, s, float64(x-b.Min.X)+0.5, float64(y-b.Min.Y)+0.5)
			c.A *= opacity
			dst.SetRGBA(x, y, c.toRGBA())
		}
	}
}

// coverUV maps viewport uv to texture uv so the texture keeps its aspect
// ratio and is cropped to fill the viewport.
func coverUV(u, v float64, res, tex Vec2) (float64, float64) {
	if tex.X <= 0 || tex.Y <= 0 {
		return u, v
	}
	scale := math.Max(res.X/tex.X, res.Y/tex.Y)
	sw, sh := tex.X*scale, tex.Y*scale
	ox, oy := (res.X-sw)/2, (res.Y-sh)/2
	return (u*res.X - ox) / sw, (v*res.Y - oy) / sh
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// ImageSampler samples an image bilinearly with edge clamping, matching the
// shader's texel lookup.
type ImageSampler struct {
	Img image.Image
}

// Sample implements Sampler.
func (s ImageSampler) Sample(u, v float64) (r, g, b float64) {
	bounds := s.Img.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())
	px := u*w - 0.5
	py := v*h - 0.5
	x0, y0 := math.Floor(px), math.Floor(py)
	fx, fy := px-x0, py-y0

	at := func(x, y float64) (float64, float64, float64) {
		ix := bounds.Min.X + int(math.Max(0, math.Min(w-1, x)))
		iy := bounds.Min.Y + int(math.Max(0, math.Min(h-1, y)))
		cr, cg, cb, _ := s.Img.At(ix, iy).RGBA()
		return float64(cr) / 0xffff, float64(cg) / 0xffff, float64(cb) / 0xffff
	}
	r00, g00, b00 := at(x0, y0)
	r10, g10, b10 := at(x0+1, y0)
	r01, g01, b01 := at(x0, y0+1)
	r11, g11, b11 := at(x0+1, y0+1)
	r = lerp(lerp(r00, r10, fx), lerp(r01, r11, fx), fy)
	g = lerp(lerp(g00, g10, fx), lerp(g01, g11, fx), fy)
	b = lerp(lerp(b00, b10, fx), lerp(b01, b11, fx), fy)
	return r, g, b
}
