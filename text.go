package herofx

import (
	"bytes"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FontFamily names one of the two type faces of the hero layout.
type FontFamily string

const (
	FontCursive FontFamily = "cursive" // italic display face for names and accents
	FontSans    FontFamily = "sans"    // plain face for labels and quotes
)

// --- FontSet ---

type faceKey struct {
	family FontFamily
	size   float64
}

// FontSet parses the embedded Go fonts once and caches sized faces. Faces
// are used for CPU rasterization, so measurements and pixels agree exactly
// between the occupancy grid and what is drawn on screen.
type FontSet struct {
	fonts map[FontFamily]*opentype.Font
	faces map[faceKey]font.Face
}

// NewFontSet parses the built-in faces: Go Italic for FontCursive and Go
// Regular for FontSans.
func NewFontSet() (*FontSet, error) {
	italic, err := opentype.Parse(goitalic.TTF)
	if err != nil {
		return nil, fmt.Errorf("herofx: parse cursive font: %w", err)
	}
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("herofx: parse sans font: %w", err)
	}
	return &FontSet{
		fonts: map[FontFamily]*opentype.Font{
			FontCursive: italic,
			FontSans:    regular,
		},
		faces: make(map[faceKey]font.Face),
	}, nil
}

// Face returns a face of the given family at size pixels. Sizes are rounded
// to a quarter pixel so a resize storm does not grow the cache unbounded.
func (fs *FontSet) Face(family FontFamily, size float64) (font.Face, error) {
	size = math.Round(size*4) / 4
	if size <= 0 {
		size = 0.25
	}
	key := faceKey{family, size}
	if f, ok := fs.faces[key]; ok {
		return f, nil
	}
	src, ok := fs.fonts[family]
	if !ok {
		return nil, fmt.Errorf("herofx: unknown font family %q", family)
	}
	f, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("herofx: new %s face at %v: %w", family, size, err)
	}
	fs.faces[key] = f
	return f, nil
}

// MeasureString returns the advance width of s in pixels.
func MeasureString(face font.Face, s string) float64 {
	return fixedToFloat(font.MeasureString(face, s))
}

// middleBaseline returns the baseline y that vertically centers the em box
// on cy, matching a "middle" text baseline.
func middleBaseline(face font.Face, cy float64) float64 {
	m := face.Metrics()
	return cy + (fixedToFloat(m.Ascent)-fixedToFloat(m.Descent))/2
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

// --- TTFFont ---

// TTFFont wraps Ebitengine's text/v2 for UI labels drawn straight to the
// screen, such as the navigation bar.
type TTFFont struct {
	face *text.GoTextFace
	size float64
	lh   float64 // cached line height
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("herofx: failed to parse TTF data: %w", err)
	}

	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}

	m := face.Metrics()
	return &TTFFont{
		face: face,
		size: size,
		lh:   m.HAscent + m.HDescent + m.HLineGap,
	}, nil
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// Face returns the underlying GoTextFace for direct Ebitengine text/v2 rendering.
func (f *TTFFont) Face() *text.GoTextFace {
	return f.face
}
