package herofx

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Layer is a persistent offscreen canvas the size of the viewport. The pong
// animation composites text and erased cells into one so erasing never
// touches the cached text image itself.
type Layer struct {
	image *ebiten.Image
	w, h  int
}

// NewLayer creates an offscreen canvas of the given size.
func NewLayer(w, h int) *Layer {
	return &Layer{
		image: ebiten.NewImage(max(w, 1), max(h, 1)),
		w:     w,
		h:     h,
	}
}

// Image returns the underlying *ebiten.Image for direct manipulation.
func (l *Layer) Image() *ebiten.Image {
	return l.image
}

// Width returns the layer width in pixels.
func (l *Layer) Width() int {
	return l.w
}

// Height returns the layer height in pixels.
func (l *Layer) Height() int {
	return l.h
}

// Clear fills the layer with transparent black.
func (l *Layer) Clear() {
	l.image.Clear()
}

// DrawImageAt draws src at the given position with the specified blend mode.
func (l *Layer) DrawImageAt(src *ebiten.Image, x, y float64, blend BlendMode) {
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(x, y)
	op.Blend = blend.EbitenBlend()
	l.image.DrawImage(src, &op)
}

// FillRect fills a rectangle with c using the blend mode. With BlendErase
// the color's alpha sets how much coverage is removed.
func (l *Layer) FillRect(r Rect, c Color, blend BlendMode) {
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(r.Width, r.Height)
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
	op.Blend = blend.EbitenBlend()
	l.image.DrawImage(whitePixel(), &op)
}

// Resize deallocates the old image and creates a new one at the given
// dimensions. A same-size resize is a no-op.
func (l *Layer) Resize(width, height int) {
	if l.image != nil && l.w == width && l.h == height {
		return
	}
	if l.image != nil {
		l.image.Deallocate()
	}
	l.image = ebiten.NewImage(max(width, 1), max(height, 1))
	l.w = width
	l.h = height
}

// Dispose deallocates the underlying image. The Layer should not be used
// after calling Dispose.
func (l *Layer) Dispose() {
	if l.image != nil {
		l.image.Deallocate()
		l.image = nil
	}
}

// whitePixelImg is a 1x1 white image scaled up for solid fills.
var whitePixelImg *ebiten.Image

func whitePixel() *ebiten.Image {
	if whitePixelImg == nil {
		whitePixelImg = ebiten.NewImage(1, 1)
		whitePixelImg.Fill(ColorWhite.toRGBA())
	}
	return whitePixelImg
}
