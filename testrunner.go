package herofx

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Path   string  `json:"path,omitempty"`
	Index  *int    `json:"index,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Width  int     `json:"width,omitempty"`
	Height int     `json:"height,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences navigation clicks, resizes, transitions and
// screenshots across frames for automated visual testing. Attach to an App
// via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

var knownActions = map[string]bool{
	"screenshot": true,
	"click":      true,
	"navigate":   true,
	"resize":     true,
	"wait":       true,
	"play":       true,
	"skip_intro": true,
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to an App via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("herofx: parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("herofx: parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("herofx: parse test script: step %d: unknown action %q", i, st.Action)
		}
		if st.Action == "resize" && (st.Width <= 0 || st.Height <= 0) {
			return nil, fmt.Errorf("herofx: parse test script: step %d: resize needs width and height", i)
		}
		if st.Action == "navigate" && st.Path == "" && st.Index == nil {
			return nil, fmt.Errorf("herofx: parse test script: step %d: navigate needs path or index", i)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from App.Update.
func (r *TestRunner) step(a *App) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if a.navbar.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		a.Screenshot(st.Label)
	case "click":
		a.navbar.InjectClick(st.X, st.Y)
	case "navigate":
		i := a.nav.IndexOf(st.Path)
		if st.Index != nil {
			i = *st.Index
		}
		if i < 0 {
			logger.Printf("test runner: no nav item for %q", st.Path)
			break
		}
		a.navbar.ClickItem(i)
	case "resize":
		a.Resize(st.Width, st.Height)
	case "play":
		a.overlay.Play()
	case "skip_intro":
		if a.pong != nil {
			a.pong.SkipIntro()
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && a.navbar.Pending() == 0 {
		r.done = true
	}
}
