package window

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/zombie-arcade/internal/core"
	"github.com/vovakirdan/zombie-arcade/internal/games/zombies"
	"github.com/vovakirdan/zombie-arcade/internal/storage"
)

func newTestWindow(t *testing.T, store *storage.Store) *Window {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg := core.RuntimeConfig{TickRate: core.DefaultTickRate, Seed: 7}
	return New(zombies.New(), store, cfg, nil, nil, log.New(io.Discard))
}

// playUntilLost idles until a zombie reaches the player.
func playUntilLost(t *testing.T, w *Window) {
	t.Helper()
	for i := 0; i < 20000 && !w.state.GameOver; i++ {
		w.step(core.NewInputFrame())
	}
	if !w.state.GameOver {
		t.Fatal("an idle player should be caught")
	}
}

func TestWindowLayoutIsArena(t *testing.T) {
	w := newTestWindow(t, nil)

	width, height := w.Layout(640, 480)
	arena := w.game.World().Arena()
	if width != int(arena.W) || height != int(arena.H) {
		t.Errorf("Layout() = %dx%d, expected the arena %vx%v", width, height, arena.W, arena.H)
	}
}

func TestWindowPause(t *testing.T) {
	w := newTestWindow(t, nil)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	w.step(pause)
	if !w.state.Paused {
		t.Fatal("P should pause")
	}

	ticks := w.game.Stats().Ticks
	w.step(core.NewInputFrame())
	if w.game.Stats().Ticks != ticks {
		t.Error("a paused run should not advance")
	}
}

func TestWindowSavesRunOnceAndRestarts(t *testing.T) {
	ctx := context.Background()
	store, err := storage.Open(ctx, filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	w := newTestWindow(t, store)
	playUntilLost(t, w)
	ticks := w.game.Stats().Ticks

	// Further idle ticks after the loss must not save again.
	w.step(core.NewInputFrame())
	w.step(core.NewInputFrame())

	runs, err := store.RecentRuns(ctx, w.game.ID(), 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, expected 1", len(runs))
	}
	if runs[0].Ticks != ticks {
		t.Errorf("run ticks = %d, expected %d", runs[0].Ticks, ticks)
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	w.step(restart)
	if w.state.GameOver || w.game.Stats().Ticks != 0 {
		t.Errorf("restart should begin a fresh run, state = %+v stats = %+v", w.state, w.game.Stats())
	}

	playUntilLost(t, w)
	runs, _ = store.RecentRuns(ctx, w.game.ID(), 10)
	if len(runs) != 2 {
		t.Errorf("saved %d runs after the second loss, expected 2", len(runs))
	}
}

func TestWindowRestartIgnoredWhilePlaying(t *testing.T) {
	w := newTestWindow(t, nil)
	for i := 0; i < 10; i++ {
		w.step(core.NewInputFrame())
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	w.step(restart)
	if got := w.game.Stats().Ticks; got != 11 {
		t.Errorf("ticks = %d, restart should only apply after a loss", got)
	}
}
