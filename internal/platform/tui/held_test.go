package tui

import (
	"testing"

	"github.com/vovakirdan/zombie-arcade/internal/core"
)

func sample(h *heldInput, now int) core.InputFrame {
	f := core.NewInputFrame()
	h.frame(now, &f)
	return f
}

func TestHeldInputWindow(t *testing.T) {
	h := newHeldInput(120)
	if h.window != 18 {
		t.Fatalf("window = %d ticks, expected 18 at 120 Hz", h.window)
	}

	h.press(10, core.KeyLeft)
	if !sample(h, 10).Held(core.KeyLeft) || !sample(h, 28).Held(core.KeyLeft) {
		t.Error("key should stay held through the window")
	}
	if sample(h, 29).Held(core.KeyLeft) {
		t.Error("key should release after the window")
	}
}

func TestHeldInputRepeatExtends(t *testing.T) {
	h := newHeldInput(120)
	for now := 0; now < 100; now += 4 {
		h.press(now, core.KeyUp)
		if !sample(h, now+1).Held(core.KeyUp) {
			t.Fatalf("auto-repeat should keep the key held at tick %d", now+1)
		}
	}
}

func TestHeldInputOpposites(t *testing.T) {
	h := newHeldInput(120)
	h.press(0, core.KeyRight, core.KeySprint)
	h.press(1, core.KeyLeft)

	f := sample(h, 2)
	if f.Held(core.KeyRight) {
		t.Error("pressing left should release right")
	}
	if !f.Held(core.KeyLeft) {
		t.Error("left should be held")
	}
	if f.Held(core.KeySprint) {
		t.Error("an unshifted direction ends the sprint")
	}
}

func TestHeldInputFire(t *testing.T) {
	h := newHeldInput(120)
	h.pointer = core.V(5, 6)

	if sample(h, 0).ButtonHeld(core.ButtonPrimary) {
		t.Fatal("nothing pressed yet")
	}

	h.pressFire(3)
	f := sample(h, 4)
	if p, ok := f.PressedAt(core.ButtonPrimary); !ok || p != core.V(5, 6) {
		t.Errorf("fire key should hold the button at the pointer, got %v %v", p, ok)
	}
	if f.Pointer != core.V(5, 6) {
		t.Errorf("pointer = %v", f.Pointer)
	}

	h.pressMouse()
	if !sample(h, 100).ButtonHeld(core.ButtonPrimary) {
		t.Error("mouse button should hold until released")
	}

	h.reset()
	if sample(h, 100).ButtonHeld(core.ButtonPrimary) || h.pointer != core.V(5, 6) {
		t.Error("reset should release buttons and keep the pointer")
	}
}

func TestHeldInputKeepsPressPosition(t *testing.T) {
	h := newHeldInput(120)
	h.pointer = core.V(10, 20)
	h.pressMouse()

	// Dragging moves the pointer but not the press position.
	h.pointer = core.V(300, 40)
	f := sample(h, 1)
	if p, ok := f.PressedAt(core.ButtonPrimary); !ok || p != core.V(10, 20) {
		t.Errorf("PressedAt() = %v %v, expected the press at (10, 20)", p, ok)
	}
	if f.Pointer != core.V(300, 40) {
		t.Errorf("pointer = %v, expected the current position", f.Pointer)
	}

	h.mouse = false
	h.pointer = core.V(50, 60)
	h.pressFire(2)
	if p, _ := sample(h, 3).PressedAt(core.ButtonPrimary); p != core.V(50, 60) {
		t.Errorf("fire key press position = %v, expected (50, 60)", p)
	}
}
