// Package zombies implements a top-down zombie survival shooter.
// The player walks a fixed arena, shoots toward the pointer and loses when
// a zombie reaches them.
package zombies

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/zombie-arcade/internal/assets"
	"github.com/vovakirdan/zombie-arcade/internal/audio"
	"github.com/vovakirdan/zombie-arcade/internal/config"
	"github.com/vovakirdan/zombie-arcade/internal/core"
	"github.com/vovakirdan/zombie-arcade/internal/registry"
)

const (
	gameID    = "zombies"
	gameTitle = "Zombie Arena"
)

var (
	settingsMu       sync.RWMutex
	configPath       string
	difficultyPreset config.DifficultyPreset
	catalog          *assets.Catalog
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	difficultyPreset = config.ParsePreset(preset)
}

// SetCatalog replaces the sprite catalog used by new games.
func SetCatalog(c *assets.Catalog) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	catalog = c
}

func settings() (string, config.DifficultyPreset, *assets.Catalog) {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return configPath, difficultyPreset, catalog
}

// Game adapts a World to the arcade platform.
type Game struct {
	world    *World
	cfg      config.ZombiesConfig
	runtime  core.RuntimeConfig
	sink     audio.Sink
	paused   bool
	viewport core.Viewport
}

// New creates a new zombie arena game instance.
func New() *Game {
	return &Game{sink: audio.Nop{}}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return gameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return gameTitle
}

// SetSink routes sound cues, now and across resets.
func (g *Game) SetSink(s audio.Sink) {
	if s == nil {
		s = audio.Nop{}
	}
	g.sink = s
	if g.world != nil {
		g.world.SetSink(s)
	}
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false

	path, preset, cat := settings()

	cfg, err := config.LoadZombies(path)
	if err != nil {
		cfg = config.DefaultZombiesConfig()
	}
	if preset != "" {
		config.ApplyZombiesPreset(&cfg, preset)
	}
	g.cfg = cfg

	if cat == nil {
		cat = mustDefaultCatalog()
	}

	g.world = NewWorld(cfg, cat, runtime.Seed)
	g.world.SetSink(g.sink)
	g.viewport = g.fitViewport(runtime.ScreenW, runtime.ScreenH)
}

var (
	defaultCatalogOnce sync.Once
	defaultCatalog     *assets.Catalog
)

// mustDefaultCatalog loads the embedded glyphs, which ship with the binary.
func mustDefaultCatalog() *assets.Catalog {
	defaultCatalogOnce.Do(func() {
		c, err := assets.Default()
		if err != nil {
			panic(fmt.Sprintf("zombies: embedded sprites: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// World returns the running world.
func (g *Game) World() *World {
	return g.world
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world.Lost() {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.world.Step(in)
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.world.Player().Kills(),
		GameOver: g.world.Lost(),
		Paused:   g.paused,
	}
}

// Stats returns the current run statistics.
func (g *Game) Stats() core.RunStats {
	if g.world == nil {
		return core.RunStats{}
	}
	return core.RunStats{
		Kills: g.world.Player().Kills(),
		Shots: g.world.Shots(),
		Ticks: g.world.Ticks(),
	}
}

// arenaFrame is the bordered area below the HUD row.
func arenaFrame(screenW, screenH int) core.Rect {
	return core.NewRect(0, ArenaTop, screenW, screenH-ArenaTop)
}

func (g *Game) fitViewport(screenW, screenH int) core.Viewport {
	return core.FitViewport(arenaFrame(screenW, screenH).Inset(1), g.cfg.Arena.Width, g.cfg.Arena.Height)
}

// CellToWorld maps a screen cell to the arena point at its centre.
func (g *Game) CellToWorld(x, y int) core.Vec2 {
	return g.viewport.ToWorld(x, y)
}

// Register the game with the registry
func init() {
	registry.Register(gameID, func() registry.Game {
		return New()
	})
}
