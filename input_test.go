package neogui

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestInputState_SetDown(t *testing.T) {
	var s InputState
	s.Set(ebiten.KeySpace, true)
	if !s.Down(ebiten.KeySpace) {
		t.Error("space should be down")
	}
	if s.Down(ebiten.KeyA) {
		t.Error("A should be up")
	}
	s.Set(ebiten.KeySpace, false)
	if s.Down(ebiten.KeySpace) {
		t.Error("space should be released")
	}
}

func TestInputState_OutOfRange(t *testing.T) {
	var s InputState
	s.Set(ebiten.Key(KeyCount), true)
	s.Set(ebiten.Key(-1), true)
	if s.Down(ebiten.Key(KeyCount)) || s.Down(ebiten.Key(-1)) {
		t.Error("keys outside the buffer must never be down")
	}
}

func TestInputState_Reset(t *testing.T) {
	var s InputState
	for k := range KeyCount {
		s.KeyDown[k] = true
	}
	s.Reset()
	for k := range KeyCount {
		if s.KeyDown[k] {
			t.Fatalf("key %d still down after Reset", k)
		}
	}
}

func TestFlipInput_Alternates(t *testing.T) {
	ui := NewUI()
	first := ui.Input()

	active := ui.FlipInput()
	if active == first {
		t.Fatal("FlipInput returned the same buffer")
	}
	if ui.Input() != active {
		t.Error("Input() should return the buffer FlipInput returned")
	}
	if ui.PreviousInput() != first {
		t.Error("PreviousInput() should return the old active buffer")
	}
	if ui.FlipInput() != first {
		t.Error("second flip should return to the first buffer")
	}
}

func TestFlipInput_DetectsPress(t *testing.T) {
	ui := NewUI()

	in := ui.FlipInput()
	in.Reset()
	in.Set(ebiten.KeyEnter, true)

	in = ui.FlipInput()
	in.Reset()
	in.Set(ebiten.KeyEnter, true)

	pressed := ui.Input().Down(ebiten.KeyEnter) && !ui.PreviousInput().Down(ebiten.KeyEnter)
	if pressed {
		t.Error("held key reported as a new press")
	}

	in = ui.FlipInput()
	in.Reset()
	released := !ui.Input().Down(ebiten.KeyEnter) && ui.PreviousInput().Down(ebiten.KeyEnter)
	if !released {
		t.Error("release not detected")
	}
}

func TestFlipInput_SurvivesBeginFrame(t *testing.T) {
	ui := NewUI()
	ui.FlipInput().Set(ebiten.KeyQ, true)
	ui.BeginFrame()
	if !ui.Input().Down(ebiten.KeyQ) {
		t.Error("BeginFrame must not clear input")
	}
}
