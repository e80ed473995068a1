package neogui

import "github.com/hajimehoshi/ebiten/v2"

// KeyCount is the number of key slots in an InputState.
const KeyCount = 256

// InputState is one snapshot of key-down state, indexed by ebiten.Key.
type InputState struct {
	KeyDown [KeyCount]bool
}

// Down reports whether key is held in this snapshot. Keys outside the buffer
// are never down.
func (s *InputState) Down(key ebiten.Key) bool {
	if key < 0 || int(key) >= KeyCount {
		return false
	}
	return s.KeyDown[key]
}

// Set records key as held or released. Keys outside the buffer are ignored.
func (s *InputState) Set(key ebiten.Key, down bool) {
	if key < 0 || int(key) >= KeyCount {
		return
	}
	s.KeyDown[key] = down
}

// Reset releases every key.
func (s *InputState) Reset() {
	s.KeyDown = [KeyCount]bool{}
}

// inputBuffer holds the active snapshot and the one before it so hosts can
// detect presses and releases by comparison.
type inputBuffer struct {
	index  int
	states [2]InputState
}

// FlipInput swaps the input buffers and returns the newly active one for the
// host to fill. The buffer still holds the state from two flips ago. The
// previously active buffer stays readable through PreviousInput until the
// next flip.
func (ui *UI) FlipInput() *InputState {
	ui.input.index ^= 1
	return &ui.input.states[ui.input.index]
}

// Input returns the active input buffer.
func (ui *UI) Input() *InputState {
	return &ui.input.states[ui.input.index]
}

// PreviousInput returns the buffer that was active before the last flip.
func (ui *UI) PreviousInput() *InputState {
	return &ui.input.states[ui.input.index^1]
}

// CaptureKeys overwrites s with the current ebiten keyboard state.
func CaptureKeys(s *InputState) {
	s.Reset()
	for k := ebiten.Key(0); k <= ebiten.KeyMax && int(k) < KeyCount; k++ {
		if ebiten.IsKeyPressed(k) {
			s.KeyDown[k] = true
		}
	}
}
