package herofx

import "math"

// ViewTransform maps view-box coordinates into canvas pixels with a
// preserve-aspect "contain" fit: uniform scale, centered, letterboxed on
// the long axis.
type ViewTransform struct {
	Scale      float64
	OffX, OffY float64
}

// FitView computes the contain transform of a viewW×viewH box into a
// canvasW×canvasH canvas.
func FitView(viewW, viewH, canvasW, canvasH float64) ViewTransform {
	scale := math.Min(canvasW/viewW, canvasH/viewH)
	return ViewTransform{
		Scale: scale,
		OffX:  (canvasW - viewW*scale) / 2,
		OffY:  (canvasH - viewH*scale) / 2,
	}
}

// X maps a view-box x coordinate to canvas pixels.
func (v ViewTransform) X(x float64) float64 { return x*v.Scale + v.OffX }

// Y maps a view-box y coordinate to canvas pixels.
func (v ViewTransform) Y(y float64) float64 { return y*v.Scale + v.OffY }

// Size maps a view-box length to canvas pixels.
func (v ViewTransform) Size(s float64) float64 { return s * v.Scale }
