package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/zombie-arcade/internal/registry"
	"github.com/vovakirdan/zombie-arcade/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every game registered in the arcade with how often it was played and its best kill count.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	ctx := cmd.Context()
	stats := map[string]*storage.GameStats{}
	if store := openStore(ctx); store != nil {
		if all, err := store.GetAllGamesStats(ctx); err == nil {
			stats = all
		} else {
			logger.Warn("cannot read game stats", "error", err)
		}
		store.Close()
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	idW, titleW := len("ID"), len("Title")
	for _, g := range games {
		idW = max(idW, len(g.ID))
		titleW = max(titleW, len(g.Title))
	}

	fmt.Printf("  %-*s  %-*s  %-6s  %s\n", idW, "ID", titleW, "Title", "Plays", "Best")
	fmt.Printf("  %-*s  %-*s  %-6s  %s\n", idW, "--", titleW, "-----", "-----", "----")

	for _, g := range games {
		plays, best := "-", "-"
		if st, ok := stats[g.ID]; ok {
			plays, best = fmt.Sprint(st.GamesCount), fmt.Sprint(st.HighScore)
		}
		fmt.Printf("  %-*s  %-*s  %-6s  %s\n", idW, g.ID, titleW, g.Title, plays, best)
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game.")
}
