package herofx

import "testing"

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "navigate", "path": "/about"},
			{"action": "wait", "frames": 3},
			{"action": "resize", "width": 800, "height": 480},
			{"action": "navigate", "index": 0}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Path != "/about" || runner.steps[1].Index != nil {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Action != "wait" || runner.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
	if runner.steps[3].Width != 800 || runner.steps[3].Height != 480 {
		t.Error("step 3 mismatch")
	}
	if runner.steps[4].Index == nil || *runner.steps[4].Index != 0 {
		t.Error("step 4 mismatch")
	}
}

func TestLoadTestScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `not json`},
		{"empty", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "drag"}]}`},
		{"resize without size", `{"steps": [{"action": "resize", "width": 100}]}`},
		{"navigate without target", `{"steps": [{"action": "navigate"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadTestScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func loadRunner(t *testing.T, a *App, script string) *TestRunner {
	t.Helper()
	runner, err := LoadTestScript([]byte(script))
	if err != nil {
		t.Fatal(err)
	}
	a.SetTestRunner(runner)
	return runner
}

func TestRunnerStepNavigate(t *testing.T) {
	a := newTestApp(t)
	runner := loadRunner(t, a, `{"steps": [{"action": "navigate", "path": "/blogs"}]}`)

	// navigate queues press+release on the button.
	runner.step(a)
	if a.navbar.Pending() != 2 {
		t.Fatalf("expected 2 queued events, got %d", a.navbar.Pending())
	}
	if runner.Done() {
		t.Error("runner should not be done while inject queue has events")
	}

	a.navbar.Update()
	a.navbar.Update()
	if a.nav.Active() != 3 {
		t.Errorf("active = %d, want 3", a.nav.Active())
	}

	runner.step(a)
	if !runner.Done() {
		t.Error("runner should be done after all steps executed and queue drained")
	}
}

func TestRunnerStepWait(t *testing.T) {
	a := newTestApp(t)
	runner := loadRunner(t, a, `{"steps": [{"action": "wait", "frames": 3}, {"action": "screenshot", "label": "x"}]}`)

	runner.step(a) // wait starts, counts as frame 1
	runner.step(a) // frame 2
	runner.step(a) // frame 3
	if len(a.screenshotQueue) != 0 {
		t.Fatal("screenshot taken before the wait ended")
	}
	runner.step(a)
	if len(a.screenshotQueue) != 1 || a.screenshotQueue[0] != "x" {
		t.Errorf("queue = %v, want [x]", a.screenshotQueue)
	}
	if !runner.Done() {
		t.Error("runner should be done")
	}
}

func TestRunnerStepResize(t *testing.T) {
	a := newTestApp(t)
	runner := loadRunner(t, a, `{"steps": [{"action": "resize", "width": 800, "height": 480}]}`)
	runner.step(a)

	if w, h := a.Size(); w != 800 || h != 480 {
		t.Errorf("size = %dx%d, want 800x480", w, h)
	}
	if w, h := a.Layout(1280, 720); w != 800 || h != 480 {
		t.Errorf("Layout = %dx%d, pinned size should win", w, h)
	}
	if a.pong.CellSize() != 3 {
		t.Errorf("pong cell = %d, want 3", a.pong.CellSize())
	}
}

func TestRunnerStepPlayAndSkip(t *testing.T) {
	a := newTestApp(t)
	runner := loadRunner(t, a, `{"steps": [{"action": "play"}, {"action": "skip_intro"}]}`)
	runner.step(a)
	if !a.overlay.Animating() {
		t.Error("play should start the overlay")
	}
	runner.step(a)
	if a.pong.Phase() != PhaseSettling {
		t.Errorf("phase = %v, want settling", a.pong.Phase())
	}
}

func TestRunnerUnknownPathSkipped(t *testing.T) {
	a := newTestApp(t)
	prev := logger
	SetLogger(nil)
	defer func() { logger = prev }()

	runner := loadRunner(t, a, `{"steps": [{"action": "navigate", "path": "/nope"}]}`)
	runner.step(a)
	if a.navbar.Pending() != 0 || !runner.Done() {
		t.Errorf("pending=%d done=%v", a.navbar.Pending(), runner.Done())
	}
}
