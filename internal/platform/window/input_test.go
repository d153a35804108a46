package window

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/zombie-arcade/internal/core"
)

type fakeInput struct {
	held  map[ebiten.Key]bool
	just  map[ebiten.Key]bool
	mouse bool
	x, y  int
}

func (f fakeInput) KeyPressed(k ebiten.Key) bool           { return f.held[k] }
func (f fakeInput) KeyJustPressed(k ebiten.Key) bool       { return f.just[k] }
func (f fakeInput) MousePressed(b ebiten.MouseButton) bool { return f.mouse && b == ebiten.MouseButtonLeft }
func (f fakeInput) Cursor() (int, int)                     { return f.x, f.y }

func keys(ks ...ebiten.Key) map[ebiten.Key]bool {
	m := make(map[ebiten.Key]bool, len(ks))
	for _, k := range ks {
		m[k] = true
	}
	return m
}

func TestReadFrameKeys(t *testing.T) {
	tests := []struct {
		name     string
		in       fakeInput
		held     []core.Key
		released []core.Key
		actions  []core.Action
	}{
		{
			name:     "wasd",
			in:       fakeInput{held: keys(ebiten.KeyW, ebiten.KeyD)},
			held:     []core.Key{core.KeyUp, core.KeyRight},
			released: []core.Key{core.KeyDown, core.KeyLeft, core.KeySprint},
		},
		{
			name:     "arrows with sprint",
			in:       fakeInput{held: keys(ebiten.KeyArrowLeft, ebiten.KeyShiftRight)},
			held:     []core.Key{core.KeyLeft, core.KeySprint},
			released: []core.Key{core.KeyRight},
		},
		{
			name: "weapon keys",
			in:   fakeInput{held: keys(ebiten.KeyDigit2)},
			held: []core.Key{core.KeyWeapon2},
		},
		{
			name:    "pause and restart",
			in:      fakeInput{just: keys(ebiten.KeyEscape, ebiten.KeyR)},
			actions: []core.Action{core.ActionPause, core.ActionRestart},
		},
		{
			name:     "held pause key does not repeat",
			in:       fakeInput{held: keys(ebiten.KeyP)},
			released: []core.Key{core.KeyUp},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := readFrame(tt.in)
			for _, k := range tt.held {
				if !f.Held(k) {
					t.Errorf("%v should be held", k)
				}
			}
			for _, k := range tt.released {
				if f.Held(k) {
					t.Errorf("%v should be released", k)
				}
			}
			for _, a := range tt.actions {
				if !f.Has(a) {
					t.Errorf("action %v missing", a)
				}
			}
			if len(tt.actions) == 0 && f.Has(core.ActionPause) {
				t.Error("no action expected")
			}
		})
	}
}

func TestReadFramePointer(t *testing.T) {
	f := readFrame(fakeInput{x: 300, y: 120})
	if f.Pointer != core.V(300, 120) {
		t.Errorf("pointer = %v", f.Pointer)
	}
	if f.ButtonHeld(core.ButtonPrimary) {
		t.Error("button should be up")
	}

	f = readFrame(fakeInput{x: 10, y: 20, mouse: true})
	if p, ok := f.PressedAt(core.ButtonPrimary); !ok || p != core.V(10, 20) {
		t.Errorf("left button should fire at the cursor, got %v %v", p, ok)
	}

	f = readFrame(fakeInput{x: 5, y: 6, held: keys(ebiten.KeySpace)})
	if !f.ButtonHeld(core.ButtonPrimary) {
		t.Error("space should fire")
	}
}
