package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/zombie-arcade/internal/registry"
	"github.com/vovakirdan/zombie-arcade/internal/storage"
)

var (
	flagRuns  int
	flagLimit int
	flagBest  bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores and recent runs for a game",
	Long: `Display the top kill counts and the most recent runs for the
specified game (default: zombies).

Examples:
  arcade scores
  arcade scores zombies --runs 20
  arcade scores --limit 0      # every recorded score
  arcade scores --best         # longest-surviving runs instead of recent ones
  arcade scores --clear        # forget all scores and runs`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRuns, "runs", 5, "Number of runs to show")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of high scores to show (0 = all)")
	scoresCmd.Flags().BoolVar(&flagBest, "best", false, "List the best runs instead of the most recent")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every score and run of the game")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := defaultGame
	if len(args) == 1 {
		gameID = args[0]
	}

	info, ok := registry.Lookup(gameID)
	if !ok {
		logger.Error("unknown game, run 'arcade list' to see available games", "game", gameID)
		os.Exit(1)
	}

	ctx := cmd.Context()
	store, err := storage.Open(ctx, flagDBPath)
	if err != nil {
		logger.Fatal("cannot open scores database", "path", flagDBPath, "error", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(ctx, gameID); err != nil {
			logger.Fatal("cannot clear scores", "game", gameID, "error", err)
		}
		fmt.Printf("Cleared all scores for %s.\n", info.Title)
		return
	}

	var scores []storage.ScoreEntry
	if flagLimit <= 0 {
		scores, err = store.AllScores(ctx, gameID)
	} else {
		scores, err = store.TopScores(ctx, gameID, flagLimit)
	}
	if err != nil {
		logger.Error("cannot read scores", "error", err)
		return
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Kills", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if st, err := store.GetGameStats(ctx, gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d   Average: %.1f   Scored runs: %d\n", st.HighScore, st.AvgScore, st.GamesCount)
	}

	title, load := "Recent runs", store.RecentRuns
	if flagBest {
		title, load = "Best runs", store.BestRuns
	}
	runs, err := load(ctx, gameID, flagRuns)
	if err != nil {
		logger.Warn("cannot read runs", "error", err)
		return
	}
	if len(runs) == 0 {
		return
	}

	fmt.Println()
	fmt.Println(title)
	fmt.Println()
	fmt.Printf("  %-6s  %-6s  %-10s  %s\n", "Kills", "Shots", "Survived", "Date")
	fmt.Printf("  %-6s  %-6s  %-10s  %s\n", "-----", "-----", "--------", "----")
	for _, run := range runs {
		fmt.Printf("  %-6d  %-6d  %-10s  %s\n", run.Kills, run.Shots,
			run.Survived(flagFPS).Round(100*time.Millisecond), run.CreatedAt.Format("2006-01-02 15:04"))
	}
}
