package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/zombie-arcade/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game input.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// KeyBinding is what a single key message means to a game.
type KeyBinding struct {
	Action core.Action // edge-triggered action, may be ActionNone
	Keys   []core.Key  // keys to hold, may be empty
	Fire   bool        // holds the primary pointer button
	Quit   bool
}

// MapKey translates a key message into a binding.
// Shifted movement keys (WASD typed as capitals, shift+arrows) sprint.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) KeyBinding {
	switch key := msg.String(); key {
	case "ctrl+c", "q":
		return KeyBinding{Action: core.ActionQuit, Quit: true}

	case "w", "up":
		return KeyBinding{Keys: []core.Key{core.KeyUp}}
	case "s", "down":
		return KeyBinding{Keys: []core.Key{core.KeyDown}}
	case "a", "left":
		return KeyBinding{Keys: []core.Key{core.KeyLeft}}
	case "d", "right":
		return KeyBinding{Keys: []core.Key{core.KeyRight}}

	case "W", "shift+up":
		return KeyBinding{Keys: []core.Key{core.KeyUp, core.KeySprint}}
	case "S", "shift+down":
		return KeyBinding{Keys: []core.Key{core.KeyDown, core.KeySprint}}
	case "A", "shift+left":
		return KeyBinding{Keys: []core.Key{core.KeyLeft, core.KeySprint}}
	case "D", "shift+right":
		return KeyBinding{Keys: []core.Key{core.KeyRight, core.KeySprint}}

	case "1":
		return KeyBinding{Keys: []core.Key{core.KeyWeapon1}}
	case "2":
		return KeyBinding{Keys: []core.Key{core.KeyWeapon2}}
	case " ":
		return KeyBinding{Fire: true}

	case "enter":
		return KeyBinding{Action: core.ActionConfirm}
	case "b":
		return KeyBinding{Action: core.ActionBack}
	case "p", "esc":
		return KeyBinding{Action: core.ActionPause}
	case "r":
		return KeyBinding{Action: core.ActionRestart}
	}

	return KeyBinding{}
}

// opposite returns the direction that cancels k, or KeyNone.
func opposite(k core.Key) core.Key {
	switch k {
	case core.KeyUp:
		return core.KeyDown
	case core.KeyDown:
		return core.KeyUp
	case core.KeyLeft:
		return core.KeyRight
	case core.KeyRight:
		return core.KeyLeft
	case core.KeyWeapon1:
		return core.KeyWeapon2
	case core.KeyWeapon2:
		return core.KeyWeapon1
	}
	return core.KeyNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
