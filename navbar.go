package herofx

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	navButtonHeight = 36.0
	navPadding      = 16.0
	navGap          = 8.0
	navMargin       = 24.0
)

var (
	navFill       = color.RGBA{255, 255, 255, 16}
	navFillHover  = color.RGBA{255, 255, 255, 32}
	navFillActive = color.RGBA{255, 255, 255, 56}
	navBorder     = color.RGBA{255, 255, 255, 64}
)

// NavBar is the bottom navigation row. Clicking a button asks the
// Navigator to go to its page.
type NavBar struct {
	nav   *Navigator
	font  *TTFFont
	rects []Rect
	input pointerInput
}

// NewNavBar creates a nav bar for nav labelled with font.
func NewNavBar(nav *Navigator, font *TTFFont) *NavBar {
	b := &NavBar{nav: nav, font: font}
	b.input = newPointerInput(b.HitTest, func(i int) { b.nav.GoTo(i) })
	return b
}

// Layout places the buttons centered along the bottom of a w×h viewport.
// A row wider than the viewport is squeezed to fit.
func (b *NavBar) Layout(w, h int) {
	items := b.nav.Items()
	b.rects = b.rects[:0]
	if len(items) == 0 {
		return
	}
	widths := make([]float64, len(items))
	total := navGap * float64(len(items)-1)
	for i, it := range items {
		lw, _ := b.font.MeasureString(it.Label)
		widths[i] = lw + 2*navPadding
		total += widths[i]
	}

	scale := 1.0
	if avail := float64(w) - 2*navGap; total > avail && avail > 0 {
		scale = avail / total
	}
	x := (float64(w) - total*scale) / 2
	y := float64(h) - navMargin - navButtonHeight
	for _, bw := range widths {
		b.rects = append(b.rects, Rect{X: x, Y: y, Width: bw * scale, Height: navButtonHeight})
		x += (bw + navGap) * scale
	}
}

// HitTest returns the index of the button under (x, y), or -1.
func (b *NavBar) HitTest(x, y float64) int {
	for i, r := range b.rects {
		if r.Contains(x, y) {
			return i
		}
	}
	return noTarget
}

// Rects returns the button rectangles from the last Layout.
func (b *NavBar) Rects() []Rect { return b.rects }

// Update processes one frame of pointer input.
func (b *NavBar) Update() {
	b.input.update()
}

// Draw renders the buttons, highlighting the active page and the hovered
// button.
func (b *NavBar) Draw(screen *ebiten.Image) {
	active := b.nav.Active()
	for i, r := range b.rects {
		fill := navFill
		switch {
		case i == active:
			fill = navFillActive
		case i == b.input.hover:
			fill = navFillHover
		}
		x, y, w, h := float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height)
		vector.FillRect(screen, x, y, w, h, fill, true)
		vector.StrokeRect(screen, x, y, w, h, 1, navBorder, true)

		op := &text.DrawOptions{}
		op.GeoM.Translate(r.X+r.Width/2, r.Y+r.Height/2)
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		if i != active {
			op.ColorScale.ScaleAlpha(0.7)
		}
		text.Draw(screen, b.nav.Items()[i].Label, b.font.Face(), op)
	}
}
