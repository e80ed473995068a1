package neogui

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// tickWith flips the input buffers, fills the active one with the given held
// keys the way CaptureKeys would, and runs one game tick.
func tickWith(g *game, held ...ebiten.Key) error {
	in := g.ui.FlipInput()
	in.Reset()
	for _, k := range held {
		in.Set(k, true)
	}
	return g.tick()
}

func TestTick_UpdateSeesEachPressOnce(t *testing.T) {
	ui := NewUI()
	presses := 0
	g := &game{ui: ui, cfg: RunConfig{Update: func(ui *UI) error {
		if pressedThisTick(ui, ebiten.KeySpace) {
			presses++
		}
		return nil
	}}}

	// Held across three ticks, with several draws between each tick.
	for range 3 {
		if err := tickWith(g, ebiten.KeySpace); err != nil {
			t.Fatal(err)
		}
		for range 3 {
			ui.BeginFrame()
			buildScenario(ui)
			ui.EndFrame(640, 480)
		}
	}
	if presses != 1 {
		t.Errorf("presses = %d, want 1 for one held key", presses)
	}

	tickWith(g)
	tickWith(g, ebiten.KeySpace)
	if presses != 2 {
		t.Errorf("presses = %d, want 2 after release and press", presses)
	}
}

func TestTick_ToggleFullscreen(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		ticks   [][]ebiten.Key
		want    int
	}{
		{"held", true, [][]ebiten.Key{{ebiten.KeyF}, {ebiten.KeyF}, {ebiten.KeyF}}, 1},
		{"pressed twice", true, [][]ebiten.Key{{ebiten.KeyF}, {}, {ebiten.KeyF}}, 2},
		{"other key", true, [][]ebiten.Key{{ebiten.KeyG}}, 0},
		{"disabled", false, [][]ebiten.Key{{ebiten.KeyF}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toggles := 0
			g := &game{
				ui:               NewUI(),
				cfg:              RunConfig{ToggleFullscreen: tt.enabled},
				toggleFullscreen: func() { toggles++ },
			}
			for _, held := range tt.ticks {
				if err := tickWith(g, held...); err != nil {
					t.Fatal(err)
				}
			}
			if toggles != tt.want {
				t.Errorf("toggles = %d, want %d", toggles, tt.want)
			}
		})
	}
}

func TestTick_ExitOnEscape(t *testing.T) {
	g := &game{ui: NewUI(), cfg: RunConfig{ExitOnEscape: true}}
	if err := tickWith(g); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := tickWith(g, ebiten.KeyEscape); !errors.Is(err, ebiten.Termination) {
		t.Errorf("err = %v, want ebiten.Termination", err)
	}

	g.cfg.ExitOnEscape = false
	if err := tickWith(g, ebiten.KeyEscape); err != nil {
		t.Errorf("escape ended the loop with ExitOnEscape unset: %v", err)
	}
}

func TestTick_UpdateError(t *testing.T) {
	stop := errors.New("stop")
	g := &game{ui: NewUI(), cfg: RunConfig{Update: func(*UI) error { return stop }}}
	if err := tickWith(g); !errors.Is(err, stop) {
		t.Errorf("err = %v, want %v", err, stop)
	}
}

func TestTick_ScriptedKeysReachUpdate(t *testing.T) {
	ui := NewUI()
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "press", "key": ` + scriptKey(ebiten.KeySpace) + `}]}`))
	if err != nil {
		t.Fatal(err)
	}
	ui.SetTestRunner(runner)

	var seen bool
	g := &game{ui: ui, cfg: RunConfig{Update: func(ui *UI) error {
		seen = pressedThisTick(ui, ebiten.KeySpace)
		return nil
	}}}
	if err := tickWith(g); err != nil {
		t.Fatal(err)
	}
	if !seen {
		t.Error("scripted press not visible to the update hook")
	}
}
