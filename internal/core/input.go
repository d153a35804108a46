package core

// Action represents a semantic game action, abstracted from physical key presses.
// Actions are edge-triggered: they fire on the tick the key was pressed.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - menu navigation
	ActionDown           // S, Down arrow - menu navigation
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P, Escape - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Key is a logical key that is sampled as held or released every tick.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySprint
	KeyWeapon1
	KeyWeapon2
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeySprint:
		return "Sprint"
	case KeyWeapon1:
		return "Weapon1"
	case KeyWeapon2:
		return "Weapon2"
	default:
		return "None"
	}
}

// Button is a pointer button.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
)

// InputFrame is the input state for one simulation tick.
// Positions are in world coordinates; the platform converts from
// screen space before handing the frame to the game.
type InputFrame struct {
	// Actions that were triggered this frame.
	Actions map[Action]bool

	// Held logical keys.
	Keys map[Key]bool

	// Held pointer buttons, keyed to the position of their last press.
	Buttons map[Button]Vec2

	// Pointer is the current pointer position.
	Pointer Vec2
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Keys:    make(map[Key]bool),
		Buttons: make(map[Button]Vec2),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Hold marks a key as held for this frame.
func (f *InputFrame) Hold(k Key) {
	if f.Keys == nil {
		f.Keys = make(map[Key]bool)
	}
	f.Keys[k] = true
}

// Held returns true if the key is held this frame.
func (f InputFrame) Held(k Key) bool {
	return f.Keys[k]
}

// Press marks a pointer button as held, pressed at p.
func (f *InputFrame) Press(b Button, p Vec2) {
	if f.Buttons == nil {
		f.Buttons = make(map[Button]Vec2)
	}
	f.Buttons[b] = p
}

// ButtonHeld returns true if the pointer button is held this frame.
func (f InputFrame) ButtonHeld(b Button) bool {
	_, ok := f.Buttons[b]
	return ok
}

// PressedAt returns where a held button was last pressed.
func (f InputFrame) PressedAt(b Button) (Vec2, bool) {
	p, ok := f.Buttons[b]
	return p, ok
}

// Clear resets all input for the next frame. The pointer position is kept.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	clear(f.Keys)
	clear(f.Buttons)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Keys {
		clone.Keys[k] = v
	}
	for k, v := range f.Buttons {
		clone.Buttons[k] = v
	}
	clone.Pointer = f.Pointer
	return clone
}
