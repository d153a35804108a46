package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/zombie-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game ends, press B or Esc to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Scoreboard
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 60
  arcade menu --difficulty hard --db ./scores.db`,
	Run: runMenu,
}

func init() {
	// --config, --difficulty and --assets mean the same as for play.
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	menuCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory with sprite sets")
}

func runMenu(cmd *cobra.Command, _ []string) {
	applyGameFlags()

	store := openStore(cmd.Context())
	if store != nil {
		defer store.Close()
	}

	if err := tui.RunSession(store, terminalConfig(), logger); err != nil {
		logger.Error("menu stopped", "error", err)
	}
}
