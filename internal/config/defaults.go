package config

import (
	_ "embed"
)

//go:embed defaults/wordflap.yaml
var defaultWordflapYAML []byte

// DefaultWordflapConfig returns the hardcoded default configuration.
// It mirrors defaults/wordflap.yaml and is the last fallback.
func DefaultWordflapConfig() WordflapConfig {
	return WordflapConfig{
		Physics: Physics{
			Gravity:  0.035,
			Impulse:  -0.55,
			TickRate: 60,
		},
		Player: Player{
			X:      10,
			StartY: 0.35,
			Width:  3,
			Height: 1,
		},
		Obstacles: Obstacles{
			Speed:     0.3,
			Interval:  1.2,
			TopMargin: 2,
			Height:    1,
		},
		Playfield: Playfield{
			GroundHeight: 2,
			CloudSpeed:   0.05,
			GroundSpeed:  0.3,
			CloudDensity: 0.04,
		},
		Rules: Rules{
			BaseAward:      10,
			Penalty:        1,
			MissLimit:      3,
			CeilingDamping: 0.3,
			FloorDamping:   0.5,
		},
		Leaderboard: LeaderboardConfig{
			Size:       10,
			NameLength: 3,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "wave",
				MaxAt: 8,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.0,
				IntervalReduction: 0.4,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultWordflapYAML
}
