package neogui

import (
	"encoding/json"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// scriptStep is a single action in a frame script.
type scriptStep struct {
	Action string     `json:"action"`
	Label  string     `json:"label,omitempty"`
	Key    ebiten.Key `json:"key,omitempty"`
	Frames int        `json:"frames,omitempty"`
}

type frameScript struct {
	Steps []scriptStep `json:"steps"`
}

// TestRunner replays a scripted sequence of key presses, releases, waits and
// screenshots, one step per frame, for automated visual checks. Held keys
// are merged into the active input buffer every frame until released.
//
// Script format:
//
//	{"steps": [
//	  {"action": "press", "key": "Space"},
//	  {"action": "wait", "frames": 3},
//	  {"action": "screenshot", "label": "pressed"},
//	  {"action": "release", "key": "Space"}
//	]}
type TestRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	held      [KeyCount]bool
	done      bool
}

// LoadTestScript parses a JSON frame script.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script frameScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "press", "release":
			if st.Key < 0 || int(st.Key) >= KeyCount {
				return nil, fmt.Errorf("parse test script: step %d: key %v outside input buffer", i, st.Key)
			}
		case "wait", "screenshot":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a runner; Run advances it once per tick after
// capturing the keyboard.
func (ui *UI) SetTestRunner(r *TestRunner) {
	ui.runner = r
}

// Done reports whether every step has run.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame and merges held keys into the
// active input buffer.
func (r *TestRunner) step(ui *UI) {
	defer r.apply(ui.Input())

	if r.done {
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
	case "press":
		r.held[st.Key] = true
	case "release":
		r.held[st.Key] = false
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "screenshot":
		ui.Screenshot(st.Label)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}

func (r *TestRunner) apply(in *InputState) {
	for k, down := range r.held {
		if down {
			in.KeyDown[k] = true
		}
	}
}
