package herofx

import (
	"testing"
)

func lineByName(t *testing.T, lines []TextLine, name string) *TextLine {
	t.Helper()
	for i := range lines {
		if lines[i].Name == name {
			return &lines[i]
		}
	}
	t.Fatalf("line %q not found", name)
	return nil
}

func TestBuildLinesBaseViewport(t *testing.T) {
	fonts := testFonts(t)
	lines, view, err := BuildLines(DefaultLayout(), 1000, 600, fonts)
	if err != nil {
		t.Fatalf("BuildLines: %v", err)
	}
	assertNear(t, "Scale", view.Scale, 1)
	if got := CellSize(DefaultConfig().Pong, view.Scale); got != 4 {
		t.Errorf("CellSize = %d, want 4", got)
	}
	if len(lines) != 5 {
		t.Fatalf("len(lines) = %d, want 5", len(lines))
	}

	name := lineByName(t, lines, "name")
	assertNear(t, "name.X", name.X, 500)
	assertNear(t, "name.Y", name.Y, 230)
	assertNear(t, "name.FontSize", name.FontSize, 100)
	assertNear(t, "name.Top", name.Top, 155)
	assertNear(t, "name.Bottom", name.Bottom, 305)

	face, _ := fonts.Face(FontCursive, 100)
	tw := MeasureString(face, "Ch Varun")
	assertNear(t, "name.Left", name.Left, 500-tw/2-10)
	assertNear(t, "name.Right", name.Right, 500+tw/2+10)
}

func TestBuildLinesScalesWithViewport(t *testing.T) {
	fonts := testFonts(t)
	tests := []struct {
		w, h      int
		scale     float64
		cell      int
		nameX     float64
		nameTop   float64
		labelSize float64
	}{
		{2000, 1200, 2, 8, 1000, 310, 36},
		{500, 300, 0.5, 3, 250, 77.5, 9},
		{1200, 600, 1, 4, 600, 155, 18},  // letterboxed left and right
		{1000, 800, 1, 4, 500, 255, 18},  // letterboxed top and bottom
		{300, 180, 0.3, 3, 150, 46.5, 5.4},
	}
	for _, tt := range tests {
		lines, view, err := BuildLines(DefaultLayout(), tt.w, tt.h, fonts)
		if err != nil {
			t.Fatalf("%dx%d: %v", tt.w, tt.h, err)
		}
		assertNear(t, "Scale", view.Scale, tt.scale)
		if got := CellSize(DefaultConfig().Pong, view.Scale); got != tt.cell {
			t.Errorf("%dx%d CellSize = %d, want %d", tt.w, tt.h, got, tt.cell)
		}
		name := lineByName(t, lines, "name")
		assertNear(t, "name.X", name.X, tt.nameX)
		assertNear(t, "name.Top", name.Top, tt.nameTop)
		assertNear(t, "label.FontSize", lineByName(t, lines, "label").FontSize, tt.labelSize)
	}
}

func TestBuildLinesComboAndStrike(t *testing.T) {
	fonts := testFonts(t)
	lines, _, err := BuildLines(DefaultLayout(), 1000, 600, fonts)
	if err != nil {
		t.Fatal(err)
	}
	love := lineByName(t, lines, "love")
	if !love.HasCombo() || love.ComboText != "hate" {
		t.Fatalf("love combo = %q", love.ComboText)
	}
	assertNear(t, "ComboX", love.ComboX, 535)
	if !love.HasStrike {
		t.Fatal("love should carry a strike")
	}
	assertNear(t, "StrikeX1", love.StrikeX1, 443)
	assertNear(t, "StrikeX2", love.StrikeX2, 497)
	assertNear(t, "StrikeWidth", love.StrikeWidth(), 1.68)

	face, _ := fonts.Face(FontCursive, 28)
	hw := MeasureString(face, "hate")
	assertNear(t, "love.Right", love.Right, 535+hw/2+10)
	lw := MeasureString(face, "love")
	assertNear(t, "love.Left", love.Left, 470-lw/2-10)

	if lineByName(t, lines, "label").HasCombo() {
		t.Error("label should not carry a combo")
	}
}

func TestBuildLinesUnknownFont(t *testing.T) {
	layout := DefaultLayout()
	layout.Lines[0].Font = "gothic"
	if _, _, err := BuildLines(layout, 1000, 600, testFonts(t)); err == nil {
		t.Error("expected an error for an unknown font family")
	}
}

func TestTextLineBounds(t *testing.T) {
	l := TextLine{Left: 10, Right: 30, Top: 5, Bottom: 25}
	if got := l.Bounds(); got != (Rect{X: 10, Y: 5, Width: 20, Height: 20}) {
		t.Errorf("Bounds = %+v", got)
	}
	small := TextLine{FontSize: 10}
	assertNear(t, "min strike width", small.StrikeWidth(), 1.5)
}
