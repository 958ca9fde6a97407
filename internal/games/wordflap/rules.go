package wordflap

import (
	"github.com/vovakirdan/wordflap/internal/config"
)

// offPlayfield is where the body is parked after the run ends.
const offPlayfield = -1000.0

// Outcome reports what one evaluation did.
type Outcome struct {
	Consumed  []string // Labels caught this tick
	Missed    []string // Labels that slipped past this tick
	Penalties int      // Boundary bumps this tick
	Terminal  bool     // The miss limit was reached
}

// Rules evaluates collisions and boundaries once per simulated tick.
type Rules struct {
	cfg    config.Rules
	ground float64 // Row of the ground line; the body may not reach below it
	misses int
}

// NewRules creates a rules engine for a playfield whose ground line is at
// the given row.
func NewRules(cfg config.Rules, ground float64) *Rules {
	return &Rules{cfg: cfg, ground: ground}
}

// Misses returns the current run of consecutive misses.
func (r *Rules) Misses() int {
	return r.misses
}

// Reset clears the miss counter.
func (r *Rules) Reset() {
	r.misses = 0
}

// Evaluate checks every active obstacle against the body, then the body
// against the ceiling and ground. Removals are gathered from one snapshot
// and applied together after the scan.
func (r *Rules) Evaluate(body *Body, stream *Stream, ledger *Ledger) Outcome {
	var out Outcome
	var retire []int

	bounds := body.Bounds()
	for _, i := range stream.Active() {
		o := stream.At(i)

		switch {
		case bounds.Intersects(o.Bounds()):
			ledger.Award(r.cfg.BaseAward)
			ledger.BumpMultiplier()
			r.misses = 0
			retire = append(retire, i)
			out.Consumed = append(out.Consumed, o.Label)

		case o.Right() <= bounds.X:
			ledger.ResetMultiplier()
			r.misses++
			retire = append(retire, i)
			out.Missed = append(out.Missed, o.Label)

			if r.misses >= r.cfg.MissLimit {
				stream.Retire(retire)
				body.SetPosition(body.Pos.X, offPlayfield)
				body.SetVelocity(0, 0)
				ledger.ResetMultiplier()
				ledger.Freeze()
				out.Terminal = true
				return out
			}
		}
	}
	stream.Retire(retire)

	if body.Pos.Y < 0 {
		body.Pos.Y = 0
		body.Vel.Y = -body.Vel.Y * r.cfg.CeilingDamping
		ledger.Penalize(r.cfg.Penalty)
		out.Penalties++
	}
	if body.Bounds().Bottom() >= r.ground {
		body.Pos.Y = r.ground - body.Size.Y
		body.Vel.Y = -body.Vel.Y * r.cfg.FloorDamping
		ledger.Penalize(r.cfg.Penalty)
		out.Penalties++
	}

	return out
}
