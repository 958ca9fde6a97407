package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordflap/internal/platform/tui"
	"github.com/vovakirdan/wordflap/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a word pack and play",
	Long: `Start Word Flap in interactive menu mode.

Use arrow keys or j/k to pick a word pack, Enter to play it.
After a session ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate packs
  Enter/Space  - Play the selected pack
  Tab          - Show the leaderboard
  Q            - Quit

Examples:
  wordflap menu
  wordflap menu --fps 30
  wordflap menu --store ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	// Shares --config and --difficulty with play
	menuCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "Path to custom config file (YAML)")
	menuCmd.Flags().StringVarP(&flagDifficulty, "difficulty", "d", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, logFile := newLogger(flagLogPath, flagDebug)
	defer logFile.Close()

	cfg, err := loadConfig(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store := openStore(flagStore, logger)
	defer closeStore(store)

	rc := runtimeConfig(cfg)
	current := registry.DefaultPack

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(rc, current)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Keep any size change seen by the menu
		rc.ScreenW = menuResult.Config.ScreenW
		rc.ScreenH = menuResult.Config.ScreenH

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, rc.ScreenW, rc.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		if menuResult.PackID == "" {
			break
		}
		current = menuResult.PackID

		pack, err := registry.Get(current)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		if err := playSession(cfg, rc, pack, pack.ID, store, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			break
		}
	}
}
