package wordflap

import "github.com/vovakirdan/wordflap/internal/leaderboard"

// Snapshot captures the game state for overlays, determinism testing and
// the platform status line.
type Snapshot struct {
	Tick       uint64
	Screen     Screen
	Score      int
	Final      int
	Multiplier int
	Misses     int
	MissLimit  int
	Wave       int
	Best       int
	BodyX      float64
	BodyY      float64
	VelY       float64
	Pending    int // Obstacles not yet consumed or expired
	Name       string
	NameLength int
	Board      []leaderboard.Entry // Revealed only during name entry
	Rank       int                 // Rank of the last committed name, 0 if none
	Ranked     bool                // Final score would enter the leaderboard
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:       g.tick,
		Screen:     g.screen,
		Score:      g.ledger.Value(),
		Final:      g.ledger.Final(),
		Multiplier: g.ledger.Multiplier(),
		Misses:     g.rules.Misses(),
		MissLimit:  g.cfg.Rules.MissLimit,
		Wave:       g.wave,
		Best:       g.best,
		BodyX:      g.body.Pos.X,
		BodyY:      g.body.Pos.Y,
		VelY:       g.body.Vel.Y,
		Pending:    g.stream.Len(),
		Name:       g.name.String(),
		NameLength: g.name.Size(),
		Rank:       g.lastRank,
		Ranked:     g.ranked,
	}
	if g.board != nil && g.screen == ScreenEnteringName {
		s.Board = g.board.Entries()
	}
	return s
}
