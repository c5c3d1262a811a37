package herofx

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// IntroStep scripts the handwriting reveal of one line part. The stroke is
// an ink outline wiped in from the left; the fill then fades in over it.
// For a strike-through the stroke is its drawn length and the fill is its
// opacity.
type IntroStep struct {
	Line           string // TextLine.Name
	Part           LinePart
	StrokeDelay    float64
	StrokeDuration float64
	StrokeEase     ease.TweenFunc
	FillDelay      float64
	FillDuration   float64
	FillEase       ease.TweenFunc
}

// DefaultIntroScript writes the hero text in the order a hand would.
var DefaultIntroScript = []IntroStep{
	{Line: "name", Part: PartText, StrokeDelay: 0.3, StrokeDuration: 2.0, StrokeEase: ease.InOutSine, FillDelay: 2.1, FillDuration: 0.6, FillEase: ease.OutSine},
	{Line: "label", Part: PartText, StrokeDelay: 1.8, StrokeDuration: 0.8, StrokeEase: ease.InOutSine, FillDelay: 2.5, FillDuration: 0.4, FillEase: ease.OutSine},
	{Line: "love", Part: PartText, StrokeDelay: 2.3, StrokeDuration: 0.6, StrokeEase: ease.InOutSine, FillDelay: 2.8, FillDuration: 0.4, FillEase: ease.OutSine},
	{Line: "love", Part: PartCombo, StrokeDelay: 2.5, StrokeDuration: 0.6, StrokeEase: ease.InOutSine, FillDelay: 3.0, FillDuration: 0.4, FillEase: ease.OutSine},
	{Line: "love", Part: PartStrike, StrokeDelay: 3.2, StrokeDuration: 0.3, StrokeEase: ease.OutSine, FillDelay: 3.2, FillDuration: 0.1, FillEase: ease.Linear},
	{Line: "q1", Part: PartText, StrokeDelay: 3.0, StrokeDuration: 1.0, StrokeEase: ease.InOutSine, FillDelay: 3.8, FillDuration: 0.4, FillEase: ease.OutSine},
	{Line: "q2", Part: PartText, StrokeDelay: 3.4, StrokeDuration: 1.0, StrokeEase: ease.InOutSine, FillDelay: 4.2, FillDuration: 0.4, FillEase: ease.OutSine},
}

type introElement struct {
	step   IntroStep
	line   int // index into Intro.lines, -1 when the line is missing
	stroke float64
	fill   float64
	tweens [2]*TweenGroup

	origin  image.Point
	size    image.Point
	fillImg *ebiten.Image
	outline *ebiten.Image // pooled, at least size
}

// Intro plays the scripted reveal. Its clock keeps running across layout
// changes; only the images are rebuilt.
type Intro struct {
	elements []introElement
	lines    []TextLine
	elapsed  float64
	duration float64

	fonts    *FontSet
	pool     *renderTexturePool
	filter   *InkOutlineFilter
	prepared bool
}

// NewIntro builds the reveal for script over lines. Steps naming a line
// that is not in the layout are kept but never drawn.
func NewIntro(script []IntroStep, lines []TextLine, duration float64, fonts *FontSet, pool *renderTexturePool) *Intro {
	in := &Intro{
		elements: make([]introElement, len(script)),
		duration: duration,
		fonts:    fonts,
		pool:     pool,
		filter:   NewInkOutlineFilter(ColorWhite),
	}
	for i, st := range script {
		e := &in.elements[i]
		e.step = st
		e.tweens[0] = TweenFromTo(&e.stroke, 0, 1, float32(st.StrokeDuration), easeOr(st.StrokeEase)).
			WithDelay(float32(st.StrokeDelay))
		e.tweens[1] = TweenFromTo(&e.fill, 0, 1, float32(st.FillDuration), easeOr(st.FillEase)).
			WithDelay(float32(st.FillDelay))
	}
	in.Relayout(lines)
	return in
}

func easeOr(fn ease.TweenFunc) ease.TweenFunc {
	if fn == nil {
		return ease.Linear
	}
	return fn
}

// Relayout points the elements at a new set of lines and drops the cached
// images. Reveal progress is kept.
func (in *Intro) Relayout(lines []TextLine) {
	in.releaseImages()
	in.lines = lines
	for i := range in.elements {
		e := &in.elements[i]
		e.line = -1
		for j := range lines {
			if lines[j].Name == e.step.Line {
				e.line = j
				break
			}
		}
	}
}

// Update advances the script by dt seconds.
func (in *Intro) Update(dt float64) {
	in.elapsed += dt
	for i := range in.elements {
		for _, tw := range in.elements[i].tweens {
			tw.Update(float32(dt))
		}
	}
}

// Done reports whether the script's total duration has passed.
func (in *Intro) Done() bool { return in.elapsed >= in.duration }

// Elapsed returns the seconds played so far.
func (in *Intro) Elapsed() float64 { return in.elapsed }

// Reveal returns the stroke and fill progress of the first step matching
// line and part.
func (in *Intro) Reveal(line string, part LinePart) (stroke, fill float64, ok bool) {
	for i := range in.elements {
		e := &in.elements[i]
		if e.step.Line == line && e.step.Part == part {
			return e.stroke, e.fill, true
		}
	}
	return 0, 0, false
}

// Draw renders the current reveal onto screen.
func (in *Intro) Draw(screen *ebiten.Image) {
	if !in.prepared {
		in.prepare(screen.Bounds())
	}
	for i := range in.elements {
		e := &in.elements[i]
		if e.fillImg == nil || e.stroke <= 0 {
			continue
		}
		sw := int(e.stroke*float64(e.size.X) + 0.5)
		if sw <= 0 {
			continue
		}
		var op ebiten.DrawImageOptions
		op.GeoM.Translate(float64(e.origin.X), float64(e.origin.Y))

		if e.step.Part == PartStrike {
			if e.fill <= 0 {
				continue
			}
			op.ColorScale.ScaleAlpha(float32(e.fill))
			screen.DrawImage(e.fillImg.SubImage(image.Rect(0, 0, sw, e.size.Y)).(*ebiten.Image), &op)
			continue
		}

		if e.outline != nil {
			screen.DrawImage(e.outline.SubImage(image.Rect(0, 0, sw, e.size.Y)).(*ebiten.Image), &op)
		}
		if e.fill > 0 {
			op.ColorScale.ScaleAlpha(float32(e.fill))
			screen.DrawImage(e.fillImg, &op)
		}
	}
}

// prepare rasterizes every element into its own image and traces its
// outline into a pooled image.
func (in *Intro) prepare(canvas image.Rectangle) {
	in.prepared = true
	for i := range in.elements {
		e := &in.elements[i]
		if e.line < 0 {
			continue
		}
		l := &in.lines[e.line]
		r, err := PartBounds(l, e.step.Part, in.fonts)
		if err != nil {
			logger.Printf("intro: %s: %v", l.Name, err)
			continue
		}
		r = r.Intersect(canvas)
		if r.Empty() {
			continue
		}
		buf := image.NewRGBA(r)
		if err := DrawLinePart(buf, l, e.step.Part, 1, in.fonts); err != nil {
			logger.Printf("intro: %s: %v", l.Name, err)
			continue
		}
		e.origin = r.Min
		e.size = r.Size()
		e.fillImg = ebiten.NewImageFromImage(buf)

		if e.step.Part == PartStrike {
			continue
		}
		e.outline = in.pool.Acquire(e.size.X, e.size.Y)
		view := e.outline.SubImage(image.Rect(0, 0, e.size.X, e.size.Y)).(*ebiten.Image)
		in.filter.Color = ColorWhite.WithAlpha(l.Alpha)
		in.filter.Apply(e.fillImg, view)
	}
}

func (in *Intro) releaseImages() {
	for i := range in.elements {
		e := &in.elements[i]
		if e.fillImg != nil {
			e.fillImg.Deallocate()
			e.fillImg = nil
		}
		if e.outline != nil {
			in.pool.Release(e.outline)
			e.outline = nil
		}
	}
	in.prepared = false
}

// Release frees every image the intro holds.
func (in *Intro) Release() {
	in.releaseImages()
}
