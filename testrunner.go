package folio

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoSteps is returned by LoadTestScript for a script without steps.
var ErrNoSteps = errors.New("no steps")

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Scroll int     `json:"scroll,omitempty"`
	Key    string  `json:"key,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"screenshot": true,
	"click":      true,
	"move":       true,
	"scroll":     true,
	"key":        true,
	"wait":       true,
}

// TestRunner sequences injected input events and screenshots across frames
// for automated visual testing. Attach to a Window via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Window via SetTestRunner.
//
//	{"steps": [
//	  {"action": "scroll", "scroll": 900},
//	  {"action": "wait", "frames": 30},
//	  {"action": "click", "x": 320, "y": 240},
//	  {"action": "key", "key": "escape"},
//	  {"action": "screenshot", "label": "closed"}
//	]}
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("folio: parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("folio: parse test script: %w", ErrNoSteps)
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("folio: parse test script: step %d: unknown action %q", i, st.Action)
		}
		if st.Action == "key" && ParseKey(st.Key) == KeyOther {
			return nil, fmt.Errorf("folio: parse test script: step %d: unknown key %q", i, st.Key)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the window. The runner's step
// method is called from Window.Update before injected input is processed.
func (w *Window) SetTestRunner(runner *TestRunner) {
	w.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Window.Update.
func (r *TestRunner) step(w *Window) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(w.injectQueue) > 0 {
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
		w.Screenshot(st.Label)
	case "click":
		w.InjectClick(st.X, st.Y)
	case "move":
		w.InjectMove(st.X, st.Y)
	case "scroll":
		w.InjectScroll(st.Scroll)
	case "key":
		w.InjectKey(ParseKey(st.Key))
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(w.injectQueue) == 0 {
		r.done = true
	}
}

// Screenshot queues a labeled screenshot request. The rendering layer drains
// the queue with TakeScreenshotRequests after drawing a frame.
func (w *Window) Screenshot(label string) {
	w.screenshotQueue = append(w.screenshotQueue, label)
}

// TakeScreenshotRequests returns and clears the queued screenshot labels.
func (w *Window) TakeScreenshotRequests() []string {
	if len(w.screenshotQueue) == 0 {
		return nil
	}
	out := w.screenshotQueue
	w.screenshotQueue = nil
	return out
}
