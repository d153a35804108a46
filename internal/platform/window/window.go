// Package window runs a game in a desktop window with ebiten: sprites are
// drawn at world scale, sound cues go to a channel mixer and the mouse aims.
package window

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/zombie-arcade/internal/assets"
	"github.com/vovakirdan/zombie-arcade/internal/audio"
	"github.com/vovakirdan/zombie-arcade/internal/core"
	"github.com/vovakirdan/zombie-arcade/internal/games/zombies"
	"github.com/vovakirdan/zombie-arcade/internal/storage"
)

var background = color.RGBA{0x14, 0x16, 0x1a, 0xff}

// Options configure Run.
type Options struct {
	// AssetsDir holds sounds/*.wav. Empty means no sound.
	AssetsDir string
	Logger    *log.Logger
}

// Window is the ebiten.Game driving one zombie arena.
type Window struct {
	game     *zombies.Game
	store    *storage.Store
	runtime  core.RuntimeConfig
	settings *SettingsManager
	mixer    *Mixer
	input    inputSource
	logger   *log.Logger
	frames   map[*assets.Frame]*ebiten.Image
	state    core.GameState
	saved    bool
}

// New creates a window around game and starts a run. The mixer becomes the
// game's sound sink.
func New(game *zombies.Game, store *storage.Store, cfg core.RuntimeConfig, settings *SettingsManager, mixer *Mixer, logger *log.Logger) *Window {
	if logger == nil {
		logger = log.Default()
	}
	if settings == nil {
		settings = NewSettingsManager(nil, logger)
	}
	if mixer == nil {
		mixer = NewMixer(nil, nil, settings, logger)
	}
	cfg = cfg.WithDefaults()

	game.SetSink(mixer)
	game.Reset(cfg)

	return &Window{
		game:     game,
		store:    store,
		runtime:  cfg,
		settings: settings,
		mixer:    mixer,
		input:    ebitenInput{},
		logger:   logger,
		frames:   make(map[*assets.Frame]*ebiten.Image),
		state:    game.State(),
	}
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	if w.input.KeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if w.input.KeyJustPressed(ebiten.KeyF11) {
		w.settings.SetFullscreen(!w.settings.Settings().Fullscreen)
		ebiten.SetFullscreen(w.settings.Settings().Fullscreen)
		w.saveSettings()
	}
	if w.input.KeyJustPressed(ebiten.KeyM) {
		w.settings.ToggleMute()
		w.saveSettings()
	}

	w.step(readFrame(w.input))
	return nil
}

// step advances the run by one tick of input.
func (w *Window) step(in core.InputFrame) {
	if w.state.GameOver && in.Has(core.ActionRestart) {
		w.runtime.Seed = time.Now().UnixNano()
		w.game.Reset(w.runtime)
		w.state = w.game.State()
		w.saved = false
		return
	}

	w.state = w.game.Step(in).State
	w.mixer.SetMusicPlaying(!w.state.GameOver && !w.state.Paused)

	if w.state.GameOver && !w.saved {
		w.saveResult()
		w.saved = true
	}
}

// saveResult records the finished run. Storage failures are logged only.
func (w *Window) saveResult() {
	if w.store == nil {
		return
	}
	ctx := context.Background()
	id := w.game.ID()

	if w.state.Score > 0 {
		if _, err := w.store.SaveScore(ctx, id, w.state.Score); err != nil {
			w.logger.Warn("could not save score", "game", id, "error", err)
		}
	}
	run, err := w.store.SaveRun(ctx, id, w.game.Stats())
	if err != nil {
		w.logger.Warn("could not save run", "game", id, "error", err)
		return
	}
	w.logger.Debug("run saved", "id", run.ID, "kills", run.Kills, "survived", run.Survived(w.runtime.TickRate))
}

func (w *Window) saveSettings() {
	if err := w.settings.Save(); err != nil {
		w.logger.Warn("could not save settings", "error", err)
	}
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	w.game.World().Draw(&imageCanvas{dst: screen, cache: w.frames})
	w.drawHUD(screen)
}

func (w *Window) drawHUD(screen *ebiten.Image) {
	world := w.game.World()
	p := world.Player()
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("Kills: %d  Weapon: %s [1/2]  Zombies: %d", p.Kills(), p.Weapon().Name, world.Enemies().Len()),
		8, 4)

	arena := world.Arena()
	cx, cy := int(arena.W/2)-60, int(arena.H/2)-16
	switch {
	case w.state.GameOver:
		ebitenutil.DebugPrintAt(screen, "YOU DIED", cx+36, cy)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Kills: %d  |  R to restart", p.Kills()), cx-24, cy+20)
	case w.state.Paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED", cx+42, cy)
		ebitenutil.DebugPrintAt(screen, "Press P to resume", cx+12, cy+20)
	}
}

// Layout implements ebiten.Game. The logical screen is the arena.
func (w *Window) Layout(_, _ int) (int, int) {
	arena := w.game.World().Arena()
	return int(arena.W), int(arena.H)
}

// Run opens a window and plays until it is closed or Q is pressed.
func Run(game *zombies.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	settings := OpenSettings(logger)
	actx := ebaudio.NewContext(SampleRate)

	var clips map[audio.SoundID][]byte
	if opts.AssetsDir != "" {
		var err error
		clips, err = LoadClips(os.DirFS(opts.AssetsDir), SampleRate)
		if err != nil {
			logger.Warn("sounds disabled", "dir", opts.AssetsDir, "error", err)
			clips = nil
		} else {
			logger.Debug("sounds loaded", "count", len(clips))
		}
	}

	w := New(game, store, cfg, settings, NewMixer(actx, clips, settings, logger), logger)

	width, height := w.Layout(0, 0)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(w.runtime.TickRate)
	ebiten.SetFullscreen(settings.Settings().Fullscreen)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
