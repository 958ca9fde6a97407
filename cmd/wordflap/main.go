// wordflap is a terminal word-catching game: flap a bird through a stream
// of drifting words and catch them before they scroll away.
//
// Usage:
//
//	wordflap play            - Play a session
//	wordflap menu            - Pick a word pack interactively
//	wordflap scores          - Show the leaderboard
//	wordflap packs           - List built-in word packs
//	wordflap config          - Print the default configuration
//
// Global flags:
//
//	--fps <rate>     - Render rate (default: 60)
//	--seed <value>   - RNG seed for reproducible sessions
//	--store <path>   - Leaderboard path; a .db suffix selects SQLite
//	--log <path>     - Log file (default: ~/.wordflap/wordflap.log)
//	--debug          - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagStore   string
	flagLogPath string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordflap",
	Short: "Word Flap - catch drifting words in your terminal",
	Long: `Word Flap is a terminal game. Flap the bird into the words scrolling
across the screen. Every caught word scores and raises the multiplier.
Let too many words slip past in a row and the run is over.

Available commands:
  play     - Play a session directly
  menu     - Interactive word pack picker
  scores   - View the leaderboard
  packs    - List built-in word packs
  config   - Print the default configuration

Examples:
  wordflap play
  wordflap play --pack space --difficulty hard
  wordflap menu
  wordflap scores --store ~/.wordflap/scores.db`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Render rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "~/.wordflap/leaderboard.txt", "Leaderboard path (.db uses SQLite)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.wordflap/wordflap.log", "Log file path")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(packsCmd)
	rootCmd.AddCommand(configCmd)
}
