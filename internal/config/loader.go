package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadWordflap loads the game configuration.
// Search order: customPath -> ~/.wordflap/configs/wordflap.yaml -> ./configs/wordflap.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides the
// keys it sets.
func LoadWordflap(customPath string) (WordflapConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultWordflapConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return DefaultWordflapConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("wordflap.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/wordflap.yaml"); err == nil {
		if cfg, err := decode(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode(defaultWordflapYAML)
	if err != nil {
		return DefaultWordflapConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode parses YAML over the hardcoded defaults and repairs values the
// simulation cannot run with.
func decode(data []byte) (WordflapConfig, error) {
	cfg := DefaultWordflapConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	normalize(&cfg)
	return cfg, nil
}

func normalize(cfg *WordflapConfig) {
	def := DefaultWordflapConfig()
	if cfg.Physics.TickRate <= 0 {
		cfg.Physics.TickRate = def.Physics.TickRate
	}
	if cfg.Player.Width <= 0 || cfg.Player.Height <= 0 {
		cfg.Player.Width, cfg.Player.Height = def.Player.Width, def.Player.Height
	}
	if cfg.Obstacles.Height <= 0 {
		cfg.Obstacles.Height = def.Obstacles.Height
	}
	if cfg.Obstacles.Interval <= 0 {
		cfg.Obstacles.Interval = def.Obstacles.Interval
	}
	if cfg.Rules.MissLimit <= 0 {
		cfg.Rules.MissLimit = def.Rules.MissLimit
	}
	if cfg.Leaderboard.Size <= 0 {
		cfg.Leaderboard.Size = def.Leaderboard.Size
	}
	if cfg.Leaderboard.NameLength <= 0 {
		cfg.Leaderboard.NameLength = def.Leaderboard.NameLength
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wordflap", "configs", filename)
}

// ApplyWordflapPreset modifies the config based on a difficulty preset.
func ApplyWordflapPreset(cfg *WordflapConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust the miss allowance with the preset
	switch preset {
	case DifficultyEasy:
		cfg.Rules.MissLimit = 5
	case DifficultyHard:
		cfg.Rules.MissLimit = 2
	}
}
