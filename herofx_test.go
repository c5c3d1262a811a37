package herofx

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestColorToRGBAPremultiplies(t *testing.T) {
	tests := []struct {
		in   Color
		want color.RGBA
	}{
		{Color{1, 1, 1, 1}, color.RGBA{255, 255, 255, 255}},
		{Color{1, 0.5, 0, 0.5}, color.RGBA{128, 64, 0, 128}},
		{Color{2, -1, 0, 1}, color.RGBA{255, 0, 0, 255}},
		{Color{}, color.RGBA{}},
	}
	for _, tt := range tests {
		if got := tt.in.toRGBA(); got != tt.want {
			t.Errorf("%+v.toRGBA() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRectContainsEdges(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	tests := []struct {
		x, y float64
		want bool
	}{
		{10, 20, true},
		{40, 60, true},
		{25, 40, true},
		{9.9, 30, false},
		{20, 60.1, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestBlendModeMapping(t *testing.T) {
	tests := []struct {
		mode BlendMode
		want ebiten.Blend
	}{
		{BlendNormal, ebiten.BlendSourceOver},
		{BlendAdd, ebiten.BlendLighter},
		{BlendErase, ebiten.BlendDestinationOut},
		{BlendNone, ebiten.BlendCopy},
	}
	for _, tt := range tests {
		if got := tt.mode.EbitenBlend(); got != tt.want {
			t.Errorf("mode %d: got %+v", tt.mode, got)
		}
	}
}
