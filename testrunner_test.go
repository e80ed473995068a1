package neogui

import (
	"fmt"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func scriptKey(k ebiten.Key) string {
	return fmt.Sprintf("%q", k.String())
}

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "press", "key": ` + scriptKey(ebiten.KeySpace) + `},
			{"action": "wait", "frames": 3},
			{"action": "release", "key": ` + scriptKey(ebiten.KeySpace) + `}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Action != "press" || runner.steps[1].Key != ebiten.KeySpace {
		t.Errorf("step 1 mismatch: %+v", runner.steps[1])
	}
	if runner.steps[2].Action != "wait" || runner.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
}

func TestLoadTestScript_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `not json`},
		{"empty", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "click"}]}`},
		{"unknown key", `{"steps": [{"action": "press", "key": "NoSuchKey"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadTestScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRunnerStep_PressHoldRelease(t *testing.T) {
	ui := NewUI()
	data := []byte(`{"steps": [
		{"action": "press", "key": ` + scriptKey(ebiten.KeyA) + `},
		{"action": "wait", "frames": 2},
		{"action": "release", "key": ` + scriptKey(ebiten.KeyA) + `}
	]}`)
	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatal(err)
	}
	ui.SetTestRunner(runner)

	// Each tick mirrors Run: flip, clear as if no physical key is down, step.
	tick := func() *InputState {
		in := ui.FlipInput()
		in.Reset()
		runner.step(ui)
		return in
	}

	want := []bool{true, true, true, false}
	for i, w := range want {
		if got := tick().Down(ebiten.KeyA); got != w {
			t.Errorf("frame %d: A down = %v, want %v", i, got, w)
		}
	}
	if !runner.Done() {
		t.Error("runner should be done")
	}
}

func TestRunnerStep_Screenshot(t *testing.T) {
	ui := NewUI()
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "screenshot", "label": "shot"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	runner.step(ui)
	if len(ui.screenshotQueue) != 1 || ui.screenshotQueue[0] != "shot" {
		t.Errorf("queue = %v", ui.screenshotQueue)
	}
	if !runner.Done() {
		t.Error("runner should be done after its last step")
	}
	runner.step(ui)
	if len(ui.screenshotQueue) != 1 {
		t.Error("finished runner queued another screenshot")
	}
}

func TestRunnerStep_Wait(t *testing.T) {
	ui := NewUI()
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "screenshot", "label": "after"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	for i := range 3 {
		runner.step(ui)
		if len(ui.screenshotQueue) != 0 {
			t.Fatalf("screenshot taken during wait frame %d", i)
		}
	}
	runner.step(ui)
	if len(ui.screenshotQueue) != 1 {
		t.Error("screenshot not taken after wait")
	}
}
