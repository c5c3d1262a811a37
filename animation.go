package herofx

import (
	"fmt"
	"strings"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields simultaneously. Create one via
// TweenTo or TweenFromTo and call Update(dt) each frame. The group writes the
// eased values straight into the target fields.
//
// Owners call Update themselves; there is no global animation manager.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	delay  float32
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. While a start delay is pending the fields are left untouched.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.delay > 0 {
		g.delay -= dt
		if g.delay > 0 {
			return
		}
		// Spend only the part of dt that remains after the delay.
		dt = -g.delay
		g.delay = 0
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// WithDelay postpones the start of the group by d seconds and returns g.
func (g *TweenGroup) WithDelay(d float32) *TweenGroup {
	g.delay = d
	return g
}

// TweenTo creates a TweenGroup that animates *field from its current value
// to the target over the specified duration using the easing function.
func TweenTo(field *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return TweenFromTo(field, *field, to, duration, fn)
}

// TweenFromTo creates a TweenGroup that animates *field from an explicit
// start value. The field is first written by the first Update that runs
// past the delay.
func TweenFromTo(field *float64, from, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(from), float32(to), duration, fn)
	g.fields[0] = field
	return g
}

// Timeline plays tween groups one after another and fires OnComplete once
// when the last group finishes.
type Timeline struct {
	stages     []*TweenGroup
	current    int
	done       bool
	OnComplete func()
}

// NewTimeline builds a timeline from the given stages, played in order.
func NewTimeline(stages ...*TweenGroup) *Timeline {
	return &Timeline{stages: stages}
}

// Update advances the active stage by dt seconds. When a stage finishes the
// next one starts on the following call.
func (t *Timeline) Update(dt float32) {
	if t.done {
		return
	}
	if t.current < len(t.stages) {
		st := t.stages[t.current]
		st.Update(dt)
		if st.Done {
			t.current++
		}
	}
	if t.current >= len(t.stages) {
		t.done = true
		if t.OnComplete != nil {
			t.OnComplete()
		}
	}
}

// Stage returns the index of the stage currently playing.
func (t *Timeline) Stage() int { return t.current }

// Done reports whether every stage has finished.
func (t *Timeline) Done() bool { return t.done }

// Kill stops the timeline without firing OnComplete.
func (t *Timeline) Kill() {
	t.done = true
}

// easings maps the curve names used in config files to gween functions.
// GSAP's powerN curves are polynomials of degree N+1.
var easings = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"power1.in":    ease.InQuad,
	"power1.out":   ease.OutQuad,
	"power1.inout": ease.InOutQuad,
	"power2.in":    ease.InCubic,
	"power2.out":   ease.OutCubic,
	"power2.inout": ease.InOutCubic,
	"power3.in":    ease.InQuart,
	"power3.out":   ease.OutQuart,
	"power3.inout": ease.InOutQuart,
	"easein":       ease.InSine,
	"easeout":      ease.OutSine,
	"easeinout":    ease.InOutSine,
}

// EaseByName resolves a curve name such as "power2.inOut" or "easeOut".
// Names are case-insensitive.
func EaseByName(name string) (ease.TweenFunc, error) {
	fn, ok := easings[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("herofx: unknown easing %q", name)
	}
	return fn, nil
}
