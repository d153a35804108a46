package tui

import (
	"time"

	"github.com/vovakirdan/zombie-arcade/internal/core"
)

// HoldWindow is how long a key counts as held after its last press or
// auto-repeat. Terminals report presses only, never releases.
const HoldWindow = 150 * time.Millisecond

// heldInput emulates held keys from a stream of key presses.
// Each press extends the key's expiry tick; the key reads as held until then.
type heldInput struct {
	window  int // ticks
	keys    map[core.Key]int
	fire    int
	pointer core.Vec2
	pressed core.Vec2 // pointer at the last button press
	mouse   bool      // left button down
}

func newHeldInput(tickRate int) *heldInput {
	if tickRate <= 0 {
		tickRate = core.DefaultTickRate
	}
	window := int(HoldWindow * time.Duration(tickRate) / time.Second)
	return &heldInput{
		window: max(window, 1),
		keys:   make(map[core.Key]int),
		fire:   -1,
	}
}

// press holds keys until now+window. A direction press releases its
// opposite so turning around is immediate.
func (h *heldInput) press(now int, keys ...core.Key) {
	sprint := false
	for _, k := range keys {
		if k == core.KeySprint {
			sprint = true
		}
		if o := opposite(k); o != core.KeyNone {
			delete(h.keys, o)
		}
		h.keys[k] = now + h.window
	}
	// An unshifted movement key ends a sprint.
	if !sprint && isDirection(keys) {
		delete(h.keys, core.KeySprint)
	}
}

func isDirection(keys []core.Key) bool {
	for _, k := range keys {
		switch k {
		case core.KeyUp, core.KeyDown, core.KeyLeft, core.KeyRight:
			return true
		}
	}
	return false
}

// pressFire holds the button for one window, as if clicked at the pointer.
func (h *heldInput) pressFire(now int) {
	h.fire = now + h.window
	h.pressed = h.pointer
}

func (h *heldInput) pressMouse() {
	h.mouse = true
	h.pressed = h.pointer
}

// frame fills in the keys and buttons held at tick now and drops expired keys.
func (h *heldInput) frame(now int, f *core.InputFrame) {
	for k, until := range h.keys {
		if until < now {
			delete(h.keys, k)
			continue
		}
		f.Hold(k)
	}
	f.Pointer = h.pointer
	if h.mouse || h.fire >= now {
		f.Press(core.ButtonPrimary, h.pressed)
	}
}

// reset releases everything except the pointer position.
func (h *heldInput) reset() {
	clear(h.keys)
	h.fire = -1
	h.mouse = false
}
