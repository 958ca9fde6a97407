package config

import "github.com/vovakirdan/wordflap/internal/core"

// DifficultyManager calculates per-wave obstacle parameters.
// Speed and spacing are fixed for the lifetime of one batch of words; the
// level only moves when a new wave is loaded.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: core.ClampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty level (0.0 to 1.0) for a wave (0-based).
func (d *DifficultyManager) Level(wave int) float64 {
	if !d.IsEnabled() || d.cfg.Progression.Type != "wave" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := core.ClampF(float64(wave)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the obstacle speed for a wave.
func (d *DifficultyManager) Speed(baseSpeed float64, wave int) float64 {
	return baseSpeed * (1.0 + d.Level(wave)*d.cfg.Scaling.SpeedMultiplier)
}

// Interval returns the spawn interval in seconds for a wave.
func (d *DifficultyManager) Interval(baseInterval float64, wave int) float64 {
	reduction := core.ClampF(d.Level(wave)*d.cfg.Scaling.IntervalReduction, 0.0, 0.9)
	result := baseInterval * (1.0 - reduction)
	if result < 0.25 { // Minimum readable spacing
		result = 0.25
	}
	return result
}
