package herofx

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

const frameDT = 1.0 / 60

func newTestOverlay(t *testing.T, withSource bool) (*Overlay, *stubSource) {
	t.Helper()
	reg := NewSurfaceRegistry()
	src := &stubSource{img: ebiten.NewImage(64, 32)}
	t.Cleanup(src.img.Deallocate)
	if withSource {
		reg.Register(GradientQuery, src)
	}
	o, err := NewOverlay(reg, DefaultConfig().Overlay, 1000, 600)
	if err != nil {
		t.Fatalf("NewOverlay: %v", err)
	}
	return o, src
}

func runFrames(o *Overlay, n int) {
	for range n {
		o.Update(frameDT)
	}
}

func TestOverlayPlayWithoutSource(t *testing.T) {
	var buf bytes.Buffer
	prev := logger
	SetLogger(log.New(&buf, "", 0))
	defer func() { logger = prev }()

	o, _ := newTestOverlay(t, false)
	completions := 0
	o.OnComplete = func() { completions++ }

	o.Play()
	runFrames(o, 180)

	if o.Animating() {
		t.Error("overlay should not animate without a source")
	}
	if o.Progress() != 0 || o.Uniforms().Source != nil {
		t.Errorf("state touched: progress=%v source=%v", o.Progress(), o.Uniforms().Source)
	}
	if completions != 0 {
		t.Errorf("completions = %d, want 0", completions)
	}
	if !strings.Contains(buf.String(), "not found") {
		t.Errorf("expected a warning, got %q", buf.String())
	}
}

func TestOverlayPlayIgnoredWhileAnimating(t *testing.T) {
	o, _ := newTestOverlay(t, true)
	completions := 0
	o.OnComplete = func() { completions++ }

	o.Play()
	runFrames(o, 30)
	progress := o.Progress()
	snap := o.Uniforms().Source
	if progress <= 0 || progress >= 1 {
		t.Fatalf("progress after 0.5s = %v, want in (0,1)", progress)
	}

	o.Play()
	if o.Progress() != progress {
		t.Errorf("second Play changed progress %v -> %v", progress, o.Progress())
	}
	if o.Uniforms().Source != snap || snap.Released() {
		t.Error("second Play replaced or released the live snapshot")
	}

	runFrames(o, 180)
	if completions != 1 {
		t.Errorf("completions = %d, want 1", completions)
	}
}

func TestOverlayCompletionResetsState(t *testing.T) {
	o, _ := newTestOverlay(t, true)
	completions := 0
	o.OnComplete = func() { completions++ }

	o.Play()
	if !o.Animating() || o.Opacity() != 1 {
		t.Fatalf("after Play animating=%v opacity=%v", o.Animating(), o.Opacity())
	}
	snap := o.Uniforms().Source

	sawFullProgress, sawFade := false, false
	for range 180 {
		o.Update(frameDT)
		if o.Progress() == 1 {
			sawFullProgress = true
		}
		if o.Animating() && o.Opacity() < 1 {
			sawFade = true
		}
	}
	if !sawFullProgress || !sawFade {
		t.Errorf("sawFullProgress=%v sawFade=%v", sawFullProgress, sawFade)
	}
	if completions != 1 {
		t.Fatalf("completions = %d, want 1", completions)
	}
	if o.Progress() != 0 || o.Uniforms().Source != nil || o.Animating() || o.Opacity() != 1 {
		t.Errorf("after completion progress=%v source=%v animating=%v opacity=%v",
			o.Progress(), o.Uniforms().Source, o.Animating(), o.Opacity())
	}
	if !snap.Released() {
		t.Error("snapshot should be released on completion")
	}

	runFrames(o, 60)
	if completions != 1 || o.Progress() != 0 {
		t.Errorf("later frames: completions=%d progress=%v", completions, o.Progress())
	}
}

func TestOverlayReplayAfterCompletion(t *testing.T) {
	o, _ := newTestOverlay(t, true)
	completions := 0
	o.OnComplete = func() { completions++ }

	o.Play()
	runFrames(o, 180)
	o.Play()
	if !o.Animating() {
		t.Fatal("Play after completion should start a new transition")
	}
	runFrames(o, 180)
	if completions != 2 {
		t.Errorf("completions = %d, want 2", completions)
	}
}

func TestOverlayUpdateMarksSnapshotDirty(t *testing.T) {
	o, src := newTestOverlay(t, true)
	o.Play()
	snap := o.Uniforms().Source
	reads := src.reads

	o.Update(frameDT)
	if !snap.dirty {
		t.Fatal("Update should mark the live snapshot dirty")
	}
	snap.Texture()
	if src.reads != reads+1 {
		t.Errorf("reads = %d, want %d", src.reads, reads+1)
	}
}

func TestOverlayResizeKeepsAnimation(t *testing.T) {
	o, _ := newTestOverlay(t, true)
	o.Play()
	runFrames(o, 20)
	p := o.Progress()

	o.Resize(640, 480)
	if got := o.Uniforms().Resolution; got != (Vec2{X: 640, Y: 480}) {
		t.Errorf("Resolution = %+v", got)
	}
	if o.resF32 != [2]float32{640, 480} {
		t.Errorf("resolution uniform = %v", o.resF32)
	}
	if !o.Animating() || o.Progress() != p {
		t.Error("Resize should not disturb the running transition")
	}
	o.Update(frameDT)
	if o.Progress() <= p {
		t.Error("transition should keep advancing after Resize")
	}
}

func TestOverlayDisposeSilent(t *testing.T) {
	o, _ := newTestOverlay(t, true)
	fired := false
	o.OnComplete = func() { fired = true }
	o.Play()
	snap := o.Uniforms().Source
	runFrames(o, 10)

	o.Dispose()
	runFrames(o, 180)
	if fired {
		t.Error("Dispose should not fire OnComplete")
	}
	if !snap.Released() || o.Animating() {
		t.Errorf("released=%v animating=%v", snap.Released(), o.Animating())
	}
}

func TestNewOverlayRejectsUnknownEase(t *testing.T) {
	cfg := DefaultConfig().Overlay
	cfg.Ease = "bounce.sideways"
	if _, err := NewOverlay(NewSurfaceRegistry(), cfg, 10, 10); err == nil {
		t.Error("expected an error for an unknown ease")
	}
}

func TestOverlayIsPlayer(t *testing.T) {
	var _ Player = (*Overlay)(nil)
}
