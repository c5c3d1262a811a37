package herofx

import (
	"fmt"
	"math"
)

// boxPad widens a line's bounding box horizontally.
const boxPad = 10

// TextLine is one hero line in canvas pixels. The bounding box serves
// layout only; collisions use the occupancy grid.
type TextLine struct {
	Name     string
	Text     string
	X, Y     float64 // anchor: horizontal center, vertical middle
	FontSize float64
	Font     FontFamily
	Alpha    float64

	// Optional paired text drawn on the same row, e.g. "hate" next to a
	// struck-out "love".
	ComboText string
	ComboX    float64

	// Optional strike-through from StrikeX1 to StrikeX2 at Y.
	StrikeX1, StrikeX2 float64
	HasStrike          bool

	Left, Right, Top, Bottom float64
}

// HasCombo reports whether the line carries paired text.
func (l *TextLine) HasCombo() bool { return l.ComboText != "" }

// StrikeWidth is the stroke width of the strike-through.
func (l *TextLine) StrikeWidth() float64 {
	return math.Max(1.5, l.FontSize*0.06)
}

// Bounds returns the layout box as a Rect.
func (l *TextLine) Bounds() Rect {
	return Rect{X: l.Left, Y: l.Top, Width: l.Right - l.Left, Height: l.Bottom - l.Top}
}

// BuildLines maps the layout into a canvasW×canvasH canvas and measures
// each line's bounding box.
func BuildLines(layout LayoutConfig, canvasW, canvasH int, fonts *FontSet) ([]TextLine, ViewTransform, error) {
	view := FitView(layout.ViewWidth, layout.ViewHeight, float64(canvasW), float64(canvasH))

	lines := make([]TextLine, 0, len(layout.Lines))
	for _, spec := range layout.Lines {
		cl := TextLine{
			Name:     spec.Name,
			Text:     spec.Text,
			X:        view.X(spec.X),
			Y:        view.Y(spec.Y),
			FontSize: view.Size(spec.Size),
			Font:     spec.Font,
			Alpha:    spec.Alpha,
		}
		if spec.Combo != nil {
			cl.ComboText = spec.Combo.Text
			cl.ComboX = view.X(spec.Combo.X)
		}
		if spec.Strike != nil {
			cl.StrikeX1 = view.X(spec.Strike.X1)
			cl.StrikeX2 = view.X(spec.Strike.X2)
			cl.HasStrike = true
		}

		face, err := fonts.Face(cl.Font, cl.FontSize)
		if err != nil {
			return nil, view, fmt.Errorf("herofx: layout line %q: %w", spec.Name, err)
		}
		tw := MeasureString(face, cl.Text)
		left := cl.X - tw/2
		right := cl.X + tw/2
		if cl.HasCombo() {
			cw := MeasureString(face, cl.ComboText)
			left = math.Min(left, cl.ComboX-cw/2)
			right = math.Max(right, cl.ComboX+cw/2)
		}
		cl.Left = left - boxPad
		cl.Right = right + boxPad
		cl.Top = cl.Y - cl.FontSize*0.75
		cl.Bottom = cl.Y + cl.FontSize*0.75

		lines = append(lines, cl)
	}
	return lines, view, nil
}

// CellSize returns the occupancy cell edge for a view scale.
func CellSize(cfg PongConfig, scale float64) int {
	return max(cfg.CellMin, int(math.Round(cfg.CellBase*scale)))
}
