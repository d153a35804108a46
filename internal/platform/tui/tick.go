// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Terminals redraw at most this often. Simulation steps that fall between
// two redraws run back to back on the next tick.
const (
	maxFrameRate = 60
	maxCatchUp   = 8
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// ticker converts wall-clock tick messages into a whole number of
// fixed-length simulation steps.
type ticker struct {
	step time.Duration
	last time.Time
	debt time.Duration
}

func newTicker(tickRate int) *ticker {
	return &ticker{step: time.Second / time.Duration(max(tickRate, 1))}
}

// due returns how many steps to run for a tick sent at now. A tick without
// a timestamp, or the first one, runs exactly one step. After a long stall
// the backlog is dropped instead of replayed.
func (t *ticker) due(now time.Time) int {
	if now.IsZero() || t.last.IsZero() || !now.After(t.last) {
		t.last = now
		t.debt = 0
		return 1
	}

	t.debt += now.Sub(t.last)
	t.last = now

	n := int(t.debt / t.step)
	t.debt -= time.Duration(n) * t.step
	if n > maxCatchUp {
		n = maxCatchUp
		t.debt = 0
	}
	return n
}

// reset forgets the previous tick, e.g. after a restart.
func (t *ticker) reset() {
	t.last = time.Time{}
	t.debt = 0
}

// cmd schedules the next tick no faster than the terminal frame rate.
func (t *ticker) cmd() tea.Cmd {
	interval := max(t.step, time.Second/maxFrameRate)
	return tea.Tick(interval, func(now time.Time) tea.Msg {
		return TickMsg(now)
	})
}
