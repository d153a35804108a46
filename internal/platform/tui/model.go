package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/zombie-arcade/internal/audio"
	"github.com/vovakirdan/zombie-arcade/internal/core"
	"github.com/vovakirdan/zombie-arcade/internal/registry"
	"github.com/vovakirdan/zombie-arcade/internal/storage"
)

// Model is the Bubble Tea model for running one arcade game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	logger     *log.Logger
	keyMapper  *KeyMapper
	held       *heldInput
	ticker     *ticker
	actions    core.InputFrame // edge-triggered actions since the last tick
	tick       int
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
// Games that emit sound have their cues logged at debug level.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	cfg = cfg.WithDefaults()
	if logger == nil {
		logger = log.Default()
	}
	if e, ok := game.(audio.Emitter); ok {
		e.SetSink(audio.LogSink{Logger: logger})
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		logger:    logger,
		keyMapper: NewKeyMapper(),
		held:      newHeldInput(cfg.TickRate),
		ticker:    newTicker(cfg.TickRate),
		actions:   core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return m.ticker.cmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		// The game refits its viewport on render; the run keeps going.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	b := m.keyMapper.MapKey(msg)
	if b.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	switch b.Action {
	case core.ActionNone:
	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			return m, nil
		}
	case core.ActionPause:
		// Esc on a paused or finished game leaves it.
		if msg.String() == "esc" && (m.gameState.GameOver || m.gameState.Paused) {
			m.backToMenu = true
			return m, nil
		}
		m.actions.Set(b.Action)
	default:
		m.actions.Set(b.Action)
	}

	if len(b.Keys) > 0 {
		m.held.press(m.tick, b.Keys...)
	}
	if b.Fire {
		m.held.pressFire(m.tick)
	}
	return m, nil
}

// handleMouse tracks the pointer and the left button.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if pm, ok := m.game.(registry.PointerMapper); ok {
		m.held.pointer = pm.CellToWorld(msg.X, msg.Y)
	}

	if msg.Button == tea.MouseButtonLeft {
		switch msg.Action {
		case tea.MouseActionPress:
			m.held.pressMouse()
		case tea.MouseActionRelease:
			m.held.mouse = false
		}
	} else if msg.Action == tea.MouseActionRelease {
		m.held.mouse = false
	}
	return m, nil
}

// handleTick runs the simulation steps due by now. Edge-triggered actions
// apply to the first of them.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	// Check for restart
	if m.actions.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.actions.Clear()
		m.held.reset()
		m.ticker.reset()
		return m, m.ticker.cmd()
	}

	for range m.ticker.due(now) {
		frame := m.actions.Clone()
		m.held.frame(m.tick, &frame)
		m.actions.Clear()

		m.gameState = m.game.Step(frame).State
		m.tick++
		if m.gameState.GameOver {
			break
		}
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveResult()
		m.scoreSaved = true
	}
	return m, m.ticker.cmd()
}

// saveResult records the finished run. Storage failures are logged only.
func (m Model) saveResult() {
	if m.store == nil {
		return
	}
	ctx := context.Background()

	if m.gameState.Score > 0 {
		if _, err := m.store.SaveScore(ctx, m.game.ID(), m.gameState.Score); err != nil {
			m.logger.Warn("could not save score", "game", m.game.ID(), "error", err)
		}
	}

	if rr, ok := m.game.(registry.RunReporter); ok {
		run, err := m.store.SaveRun(ctx, m.game.ID(), rr.Stats())
		if err != nil {
			m.logger.Warn("could not save run", "game", m.game.ID(), "error", err)
			return
		}
		m.logger.Debug("run saved", "id", run.ID, "kills", run.Kills,
			"survived", run.Survived(m.config.TickRate))
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot: no home directory", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot: cannot create directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot: cannot write", "path", path, "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
// Leaving the game (Esc/B after a loss) ends the program.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := standalone{NewModel(game, store, cfg, logger)}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}

// standalone quits instead of returning to a menu.
type standalone struct {
	Model
}

func (s standalone) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := s.Model.Update(msg)
	if m, ok := next.(Model); ok {
		s.Model = m
	}
	if s.BackToMenu() {
		return s, tea.Quit
	}
	return s, cmd
}
