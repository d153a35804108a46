package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/zombie-arcade/internal/core"
)

// inputSource is the slice of ebiten's input API the window reads.
type inputSource interface {
	KeyPressed(k ebiten.Key) bool
	KeyJustPressed(k ebiten.Key) bool
	MousePressed(b ebiten.MouseButton) bool
	Cursor() (int, int)
}

type ebitenInput struct{}

func (ebitenInput) KeyPressed(k ebiten.Key) bool           { return ebiten.IsKeyPressed(k) }
func (ebitenInput) KeyJustPressed(k ebiten.Key) bool       { return inpututil.IsKeyJustPressed(k) }
func (ebitenInput) MousePressed(b ebiten.MouseButton) bool { return ebiten.IsMouseButtonPressed(b) }
func (ebitenInput) Cursor() (int, int)                     { return ebiten.CursorPosition() }

var heldKeys = []struct {
	key  core.Key
	keys []ebiten.Key
}{
	{core.KeyUp, []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}},
	{core.KeyDown, []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}},
	{core.KeyLeft, []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}},
	{core.KeyRight, []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}},
	{core.KeySprint, []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight}},
	{core.KeyWeapon1, []ebiten.Key{ebiten.KeyDigit1}},
	{core.KeyWeapon2, []ebiten.Key{ebiten.KeyDigit2}},
}

var actionKeys = []struct {
	action core.Action
	keys   []ebiten.Key
}{
	{core.ActionPause, []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}},
	{core.ActionRestart, []ebiten.Key{ebiten.KeyR}},
}

// readFrame samples one tick of input. The logical screen is the arena, so
// cursor positions are already world coordinates.
func readFrame(src inputSource) core.InputFrame {
	f := core.NewInputFrame()

	for _, b := range heldKeys {
		for _, k := range b.keys {
			if src.KeyPressed(k) {
				f.Hold(b.key)
				break
			}
		}
	}
	for _, b := range actionKeys {
		for _, k := range b.keys {
			if src.KeyJustPressed(k) {
				f.Set(b.action)
				break
			}
		}
	}

	x, y := src.Cursor()
	f.Pointer = core.V(float64(x), float64(y))
	if src.MousePressed(ebiten.MouseButtonLeft) || src.KeyPressed(ebiten.KeySpace) {
		f.Press(core.ButtonPrimary, f.Pointer)
	}
	return f
}
