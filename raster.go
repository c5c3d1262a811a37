package herofx

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// LinePart selects one drawable piece of a TextLine.
type LinePart uint8

const (
	PartText   LinePart = iota // the main text
	PartCombo                  // the paired text, if any
	PartStrike                 // the strike-through, if any
)

// capSegments is the number of segments per round cap of a strike.
const capSegments = 8

// RasterizeLines draws every line, with its combo text and strike-through,
// into a new w×h premultiplied RGBA buffer. The alpha channel doubles as the
// monochrome coverage buffer the occupancy grid samples.
func RasterizeLines(lines []TextLine, w, h int, fonts *FontSet) (*image.RGBA, error) {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range lines {
		for _, part := range []LinePart{PartText, PartCombo, PartStrike} {
			if err := DrawLinePart(dst, &lines[i], part, 1, fonts); err != nil {
				return nil, err
			}
		}
	}
	return dst, nil
}

// DrawLinePart draws one part of l into dst in canvas coordinates; dst may
// be a sub-rectangle buffer whose bounds are in canvas space. progress
// shortens a strike-through from its left end; text ignores it.
func DrawLinePart(dst draw.Image, l *TextLine, part LinePart, progress float64, fonts *FontSet) error {
	ink := inkColor(l.Alpha)
	switch part {
	case PartText, PartCombo:
		s, cx := l.Text, l.X
		if part == PartCombo {
			if !l.HasCombo() {
				return nil
			}
			s, cx = l.ComboText, l.ComboX
		}
		face, err := fonts.Face(l.Font, l.FontSize)
		if err != nil {
			return err
		}
		drawCentered(dst, face, s, cx, l.Y, ink)
	case PartStrike:
		if !l.HasStrike || progress <= 0 {
			return nil
		}
		x2 := l.StrikeX1 + (l.StrikeX2-l.StrikeX1)*math.Min(progress, 1)
		fillCapsule(dst, l.StrikeX1, x2, l.Y, l.StrikeWidth()/2, ink)
	}
	return nil
}

// PartBounds returns the canvas-space pixel rectangle covered by a part,
// padded by one pixel for anti-aliasing. Empty parts return an empty rect.
func PartBounds(l *TextLine, part LinePart, fonts *FontSet) (image.Rectangle, error) {
	switch part {
	case PartText, PartCombo:
		s, cx := l.Text, l.X
		if part == PartCombo {
			if !l.HasCombo() {
				return image.Rectangle{}, nil
			}
			s, cx = l.ComboText, l.ComboX
		}
		face, err := fonts.Face(l.Font, l.FontSize)
		if err != nil {
			return image.Rectangle{}, err
		}
		b, adv := font.BoundString(face, s)
		ox := cx - fixedToFloat(adv)/2
		oy := middleBaseline(face, l.Y)
		return image.Rect(
			int(math.Floor(ox+fixedToFloat(b.Min.X)))-1,
			int(math.Floor(oy+fixedToFloat(b.Min.Y)))-1,
			int(math.Ceil(ox+fixedToFloat(b.Max.X)))+1,
			int(math.Ceil(oy+fixedToFloat(b.Max.Y)))+1,
		), nil
	case PartStrike:
		if !l.HasStrike {
			return image.Rectangle{}, nil
		}
		r := l.StrikeWidth() / 2
		return image.Rect(
			int(math.Floor(l.StrikeX1-r))-1,
			int(math.Floor(l.Y-r))-1,
			int(math.Ceil(l.StrikeX2+r))+1,
			int(math.Ceil(l.Y+r))+1,
		), nil
	}
	return image.Rectangle{}, nil
}

func inkColor(alpha float64) color.NRGBA {
	return color.NRGBA{R: 255, G: 255, B: 255, A: uint8(clamp01(alpha)*255 + 0.5)}
}

// drawCentered draws s horizontally centered on cx with its em box
// vertically centered on cy.
func drawCentered(dst draw.Image, face font.Face, s string, cx, cy float64, c color.Color) {
	w := MeasureString(face, s)
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot: fixed.Point26_6{
			X: floatToFixed(cx - w/2),
			Y: floatToFixed(middleBaseline(face, cy)),
		},
	}
	d.DrawString(s)
}

// fillCapsule fills a horizontal round-capped bar from x1 to x2 at y.
func fillCapsule(dst draw.Image, x1, x2, y, r float64, c color.Color) {
	b := dst.Bounds()
	if b.Empty() {
		return
	}
	ox, oy := float64(b.Min.X), float64(b.Min.Y)
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	pt := func(x, y float64) (float32, float32) {
		return float32(x - ox), float32(y - oy)
	}

	// Right cap from top to bottom, then left cap from bottom to top.
	z.MoveTo(pt(x1, y-r))
	for i := 0; i <= capSegments; i++ {
		a := -math.Pi/2 + math.Pi*float64(i)/capSegments
		z.LineTo(pt(x2+r*math.Cos(a), y+r*math.Sin(a)))
	}
	for i := 0; i <= capSegments; i++ {
		a := math.Pi/2 + math.Pi*float64(i)/capSegments
		z.LineTo(pt(x1+r*math.Cos(a), y+r*math.Sin(a)))
	}
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}
