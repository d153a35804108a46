package main

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/zombie-arcade/internal/assets"
	"github.com/vovakirdan/zombie-arcade/internal/config"
	"github.com/vovakirdan/zombie-arcade/internal/core"
	"github.com/vovakirdan/zombie-arcade/internal/games/zombies"
	"github.com/vovakirdan/zombie-arcade/internal/platform/tui"
	"github.com/vovakirdan/zombie-arcade/internal/platform/window"
	"github.com/vovakirdan/zombie-arcade/internal/registry"
	"github.com/vovakirdan/zombie-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWindow     bool
	flagAssets     string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: zombies).

Controls:
  WASD/Arrows     - Move
  Shift+direction - Sprint
  1 / 2           - Pistol / machine gun
  Mouse / Space   - Fire toward the pointer
  P/Esc           - Pause
  R               - Restart (after death)
  Q/Ctrl+C        - Quit

Window only:
  F11             - Toggle fullscreen
  M               - Mute

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, constant spawn rate (default)

Assets:
  --assets points at a directory with playerRunning/, zombieWalk/ and
  bullet/ frame sets (.png or .txt) and sounds/*.wav for the window.

Examples:
  arcade play
  arcade play zombies --difficulty hard
  arcade play --window --assets ./assets
  arcade play --config ./my-zombies.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Play in a desktop window instead of the terminal")
	playCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory with sprite sets and sounds")
}

// applyGameFlags hands --config, --difficulty and --assets to the games
// before any of them is created. A bad preset or an incomplete sprite
// directory stops the program here, before any simulation runs.
func applyGameFlags() {
	if _, err := config.LookupPreset(flagDifficulty); err != nil {
		logger.Error("invalid --difficulty", "error", err)
		os.Exit(1)
	}
	zombies.SetConfigPath(flagConfig)
	zombies.SetDifficultyPreset(flagDifficulty)

	if flagAssets == "" {
		return
	}
	cat, err := assets.LoadDir(flagAssets)
	if err != nil {
		logger.Fatal("missing sprite set", "dir", flagAssets, "error", err)
	}
	zombies.SetCatalog(cat)
}

// terminalConfig builds the runtime config from the global flags and the
// current terminal size.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the score database. Games still run without one.
func openStore(ctx context.Context) *storage.Store {
	store, err := storage.Open(ctx, flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	if v, err := store.Version(ctx); err == nil {
		logger.Debug("scores database ready", "path", flagDBPath, "schema", v)
	}
	return store
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := defaultGame
	if len(args) == 1 {
		gameID = args[0]
	}

	applyGameFlags()

	game, err := registry.Create(gameID)
	if errors.Is(err, registry.ErrUnknownGame) {
		logger.Error("unknown game, run 'arcade list' to see available games", "game", gameID)
		os.Exit(1)
	}
	if err != nil {
		logger.Fatal("cannot create game", "game", gameID, "error", err)
	}

	store := openStore(cmd.Context())
	cfg := terminalConfig()

	var runErr error
	if flagWindow {
		zg, ok := game.(*zombies.Game)
		if !ok {
			logger.Error("game has no window frontend", "game", gameID)
			os.Exit(1)
		}
		runErr = window.Run(zg, store, cfg, window.Options{AssetsDir: flagAssets, Logger: logger})
	} else {
		runErr = tui.Run(game, store, cfg, logger)
	}

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("game stopped", "error", runErr)
		os.Exit(1)
	}
}
