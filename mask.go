package herofx

import "math"

// Glass mask constants shared by the Kage shader and the CPU reference.
const (
	ProgressEpsilon = 0.001 // below this progress the overlay is transparent
	RadiusFactor    = 0.85  // full-progress radius as a fraction of the diagonal
	EdgeBand        = 3.0   // anti-aliasing half-band in pixels
	SettleStart     = 0.95  // progress at which the distortion fades out
)

// MaskRadius returns the circle radius at progress for a w×h viewport.
func MaskRadius(progress, w, h float64) float64 {
	return progress * math.Hypot(w, h) * RadiusFactor
}

// Mask returns the glass circle coverage in [0, 1] at pixel position (x, y).
// Pass pixel centers to match the shader.
func Mask(progress, x, y, w, h float64) float64 {
	if progress < ProgressEpsilon {
		return 0
	}
	r := MaskRadius(progress, w, h)
	dist := math.Hypot(x-w/2, y-h/2)
	m := 1 - smoothstep(r-EdgeBand, r+EdgeBand, dist)
	if m < ProgressEpsilon {
		return 0
	}
	return m
}

func smoothstep(e0, e1, x float64) float64 {
	t := clamp01((x - e0) / (e1 - e0))
	return t * t * (3 - 2*t)
}
