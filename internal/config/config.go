// Package config provides YAML-based game configuration loading and
// difficulty management for Word Flap.
package config

// WordflapConfig contains all configuration for the game. Values are read
// once at construction; nothing here changes while a game is running.
type WordflapConfig struct {
	Physics     Physics           `yaml:"physics"`
	Player      Player            `yaml:"player"`
	Obstacles   Obstacles         `yaml:"obstacles"`
	Playfield   Playfield         `yaml:"playfield"`
	Rules       Rules             `yaml:"rules"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
	Assets      Assets            `yaml:"assets"`
	Difficulty  DifficultyConfig  `yaml:"difficulty"`
}

// Physics defines the flight model. Gravity and impulse are expressed per
// reference tick (1/60 s) and scaled by the real step duration.
type Physics struct {
	Gravity  float64 `yaml:"gravity"`   // Downward acceleration per tick
	Impulse  float64 `yaml:"impulse"`   // Vertical velocity set by a flap (negative = up)
	TickRate int     `yaml:"tick_rate"` // Simulation steps per second
}

// Player defines the bird's hitbox and start column.
type Player struct {
	X      float64 `yaml:"x"`
	StartY float64 `yaml:"start_y"` // Fraction of the playfield height
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Obstacles defines the word stream.
type Obstacles struct {
	Speed     float64 `yaml:"speed"`      // Cells per tick, leftward
	Interval  float64 `yaml:"interval"`   // Seconds between scheduled spawns
	TopMargin float64 `yaml:"top_margin"` // Rows kept free at the top
	Height    float64 `yaml:"height"`     // Obstacle hitbox height in rows
}

// Playfield defines the bands around the flight area.
type Playfield struct {
	GroundHeight int     `yaml:"ground_height"`
	CloudSpeed   float64 `yaml:"cloud_speed"`  // Background scroll, cells per tick
	GroundSpeed  float64 `yaml:"ground_speed"` // Ground scroll, cells per tick
	CloudDensity float64 `yaml:"cloud_density"`
}

// Rules defines scoring and terminal conditions.
type Rules struct {
	BaseAward      int     `yaml:"base_award"`
	Penalty        int     `yaml:"penalty"` // Boundary bump penalty, never multiplied
	MissLimit      int     `yaml:"miss_limit"`
	CeilingDamping float64 `yaml:"ceiling_damping"`
	FloorDamping   float64 `yaml:"floor_damping"`
}

// LeaderboardConfig bounds the persisted leaderboard.
type LeaderboardConfig struct {
	Size       int `yaml:"size"`
	NameLength int `yaml:"name_length"`
}

// Assets lists optional sprite files. Empty paths use built-in sprites.
type Assets struct {
	Bird  string `yaml:"bird"`
	Cloud string `yaml:"cloud"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a session.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "wave" or "none"
	MaxAt int    `yaml:"max_at"` // Wave at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Added to speed at max difficulty
	IntervalReduction float64 `yaml:"interval_reduction"` // Fraction of the interval removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
