package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML WordflapConfig
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	if fromYAML != DefaultWordflapConfig() {
		t.Errorf("embedded YAML and DefaultWordflapConfig() differ:\n%+v\n%+v", fromYAML, DefaultWordflapConfig())
	}
}

func TestLoadCustomPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("rules:\n  base_award: 25\nphysics:\n  gravity: 0.1\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadWordflap(path)
	if err != nil {
		t.Fatalf("LoadWordflap() failed: %v", err)
	}

	if cfg.Rules.BaseAward != 25 {
		t.Errorf("BaseAward = %d, expected 25", cfg.Rules.BaseAward)
	}
	if cfg.Physics.Gravity != 0.1 {
		t.Errorf("Gravity = %f, expected 0.1", cfg.Physics.Gravity)
	}
	// Untouched keys keep their defaults
	if cfg.Rules.MissLimit != 3 {
		t.Errorf("MissLimit = %d, expected default 3", cfg.Rules.MissLimit)
	}
}

func TestLoadCustomMissingFile(t *testing.T) {
	cfg, err := LoadWordflap(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing custom config")
	}
	if cfg != DefaultWordflapConfig() {
		t.Error("a failed load should still return usable defaults")
	}
}

func TestLoadCustomRepairsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := []byte("physics:\n  tick_rate: 0\nleaderboard:\n  size: -1\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadWordflap(path)
	if err != nil {
		t.Fatalf("LoadWordflap() failed: %v", err)
	}
	if cfg.Physics.TickRate != 60 || cfg.Leaderboard.Size != 10 {
		t.Errorf("invalid values not repaired: tick_rate=%d size=%d", cfg.Physics.TickRate, cfg.Leaderboard.Size)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		enabled   bool
		level     float64
		missLimit int
	}{
		{DifficultyEasy, true, 0.0, 5},
		{DifficultyNormal, true, 0.3, 3},
		{DifficultyHard, true, 0.7, 2},
		{DifficultyFixed, false, 0.0, 3},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultWordflapConfig()
			ApplyWordflapPreset(&cfg, tc.preset)

			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("InitialLevel = %f, expected %f", cfg.Difficulty.InitialLevel, tc.level)
			}
			if cfg.Rules.MissLimit != tc.missLimit {
				t.Errorf("MissLimit = %d, expected %d", cfg.Rules.MissLimit, tc.missLimit)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("hard should parse")
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown preset should parse to empty")
	}
}

func TestDifficultyProgression(t *testing.T) {
	cfg := DefaultWordflapConfig().Difficulty
	d := NewDifficultyManager(cfg)

	if d.Level(0) != 0 {
		t.Errorf("Level(0) = %f, expected 0", d.Level(0))
	}
	if d.Level(cfg.Progression.MaxAt) != 1 {
		t.Errorf("Level(max) = %f, expected 1", d.Level(cfg.Progression.MaxAt))
	}
	if d.Level(100) != 1 {
		t.Error("Level should clamp at 1")
	}

	if got := d.Speed(0.3, 0); got != 0.3 {
		t.Errorf("Speed at wave 0 = %f, expected 0.3", got)
	}
	if got := d.Speed(0.3, cfg.Progression.MaxAt); got != 0.6 {
		t.Errorf("Speed at max = %f, expected 0.6", got)
	}
	if got := d.Interval(1.0, cfg.Progression.MaxAt); got != 0.6 {
		t.Errorf("Interval at max = %f, expected 0.6", got)
	}
}

func TestDifficultyFixed(t *testing.T) {
	cfg := DefaultWordflapConfig()
	ApplyWordflapPreset(&cfg, DifficultyFixed)
	d := NewDifficultyManager(cfg.Difficulty)

	if d.IsEnabled() {
		t.Error("fixed preset should disable progression")
	}
	if d.Speed(0.3, 50) != 0.3 {
		t.Error("fixed preset speed should not scale with waves")
	}
}
