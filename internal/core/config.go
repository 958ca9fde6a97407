package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to size the playfield and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState summarizes the current game for the platform layer.
// Returned by State() so the platform never reaches into game internals.
type GameState struct {
	Score      int    // Current score
	Best       int    // Best score on the loaded leaderboard
	Multiplier int    // Current streak multiplier
	Misses     int    // Consecutive misses so far
	Wave       int    // 0-based wave number
	Screen     string // Name of the active screen state
	GameOver   bool   // Whether the run has ended
	NameEntry  bool   // Whether letters are being collected
	Quit       bool   // Whether the player asked to leave
}
