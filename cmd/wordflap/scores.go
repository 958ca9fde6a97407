package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordflap/internal/config"
	"github.com/vovakirdan/wordflap/internal/leaderboard"
	"github.com/vovakirdan/wordflap/internal/platform/tui"
	"github.com/vovakirdan/wordflap/internal/registry"
	"github.com/vovakirdan/wordflap/internal/storage"
)

var flagPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the persisted top-10 leaderboard.

With a SQLite store (--store ending in .db) the interactive view also
shows per-pack run statistics.

Examples:
  wordflap scores
  wordflap scores --plain
  wordflap scores --store ~/.wordflap/scores.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print the leaderboard instead of opening the table view")
}

func runScores(_ *cobra.Command, _ []string) {
	logger, logFile := newLogger(flagLogPath, flagDebug)
	defer logFile.Close()

	store := openStore(flagStore, logger)
	defer closeStore(store)

	if flagPlain {
		if err := printScores(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			os.Exit(1)
		}
		return
	}

	rc := runtimeConfig(config.DefaultWordflapConfig())
	if _, err := tui.RunScoreboard(store, rc.ScreenW, rc.ScreenH); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printScores(store leaderboard.Store) error {
	entries, err := store.Load()
	if err != nil {
		return err
	}

	fmt.Println("Leaderboard")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'wordflap play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %s\n", "Rank", "Name", "Score")
	fmt.Printf("  %-4s  %-6s  %s\n", "----", "----", "-----")
	for i, e := range entries {
		fmt.Printf("  %-4d  %-6s  %d\n", i+1, e.Name, e.Score)
	}

	db, ok := store.(*storage.SQLiteStore)
	if !ok {
		return nil
	}

	// Run history is only kept by the SQLite store
	fmt.Println()
	fmt.Printf("  %-10s  %-5s  %-5s  %s\n", "Pack", "Runs", "Best", "Last played")
	for _, p := range registry.List() {
		stats, err := db.Stats(p.ID)
		if err != nil {
			return err
		}
		if stats.Runs == 0 {
			continue
		}
		fmt.Printf("  %-10s  %-5d  %-5d  %s\n", p.ID, stats.Runs, stats.HighScore, stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
