package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/wordflap/internal/assets"
	"github.com/vovakirdan/wordflap/internal/config"
	"github.com/vovakirdan/wordflap/internal/core"
	"github.com/vovakirdan/wordflap/internal/games/wordflap"
	"github.com/vovakirdan/wordflap/internal/leaderboard"
	"github.com/vovakirdan/wordflap/internal/platform/tui"
	"github.com/vovakirdan/wordflap/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagPack       string
	flagWords      string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a Word Flap session",
	Long: `Start a session directly.

Controls:
  Space/Up   - Flap
  Enter      - Restart after a run, or submit your initials
  Tab        - Toggle the leaderboard
  Ctrl+S     - Save a screenshot
  Q/Esc      - Quit

Configuration:
  Default settings are embedded in the binary. Override them by placing
  a wordflap.yaml file in ~/.wordflap/configs/, or pass --config for a custom file.

Difficulty presets:
  easy    - Slow words, five misses allowed
  normal  - Default progression
  hard    - Fast words, two misses allowed
  fixed   - No progression between waves

Examples:
  wordflap play
  wordflap play --pack space
  wordflap play --words ./my-words.txt --seed 42
  wordflap play --difficulty hard --fps 30`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "Path to custom config file (YAML)")
	playCmd.Flags().StringVarP(&flagDifficulty, "difficulty", "d", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVarP(&flagPack, "pack", "p", registry.DefaultPack, "Built-in word pack")
	playCmd.Flags().StringVarP(&flagWords, "words", "w", "", "Read words from a text file instead of a pack")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, logFile := newLogger(flagLogPath, flagDebug)
	defer logFile.Close()

	cfg, err := loadConfig(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	source, pack, err := resolveSource(flagPack, flagWords)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'wordflap packs' to see available packs.")
		os.Exit(1)
	}

	store := openStore(flagStore, logger)
	rc := runtimeConfig(cfg)

	runErr := playSession(cfg, rc, source, pack, store, logger)
	closeStore(store)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// loadConfig reads the layered configuration and applies the --difficulty preset.
func loadConfig(logger *log.Logger) (config.WordflapConfig, error) {
	cfg, err := config.LoadWordflap(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return cfg, fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyWordflapPreset(&cfg, preset)
	}

	logger.Debug("config loaded",
		"tick_rate", cfg.Physics.TickRate,
		"miss_limit", cfg.Rules.MissLimit,
		"difficulty", cfg.Difficulty.Enabled,
	)
	return cfg, nil
}

// resolveSource returns the word source and the label its runs are recorded under.
func resolveSource(packID, wordsPath string) (wordflap.WordSource, string, error) {
	if wordsPath != "" {
		return wordflap.FileSource{Path: wordsPath}, "file", nil
	}
	p, err := registry.Get(packID)
	if err != nil {
		return nil, "", err
	}
	return p, p.ID, nil
}

// runtimeConfig sizes the playfield to the current terminal, keeping the
// 80x24 default when the size cannot be read.
func runtimeConfig(cfg config.WordflapConfig) core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	if cfg.Physics.TickRate > 0 {
		rc.TickRate = cfg.Physics.TickRate
	}
	rc.Seed = flagSeed
	return rc
}

func playSession(cfg config.WordflapConfig, rc core.RuntimeConfig, source wordflap.WordSource, pack string, store leaderboard.Store, logger *log.Logger) error {
	game := wordflap.New(wordflap.Options{
		Config: cfg,
		Source: source,
		Pack:   pack,
		Store:  store,
		Assets: assets.NewCache(logger),
		Logger: logger,
	})

	logger.Info("session starting", "pack", pack, "width", rc.ScreenW, "height", rc.ScreenH, "seed", rc.Seed)
	return tui.Run(game, rc, tui.Options{
		FPS:    flagFPS,
		Logger: logger,
	})
}
