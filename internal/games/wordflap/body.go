// Package wordflap implements a word-collecting flappy game.
// The player keeps a bird airborne and flies into words drifting in from the
// right. Each word caught raises the streak multiplier; each word missed
// resets it, and three misses in a row end the run.
package wordflap

import (
	"time"

	"github.com/vovakirdan/wordflap/internal/config"
	"github.com/vovakirdan/wordflap/internal/core"
)

// referenceStep is the tick length that physics and speed constants are
// tuned for. Real steps are scaled against it.
const referenceStep = time.Second / 60

// tickRate converts a step duration into reference ticks.
func tickRate(dt time.Duration) float64 {
	return float64(dt) / float64(referenceStep)
}

// Body is the player-controlled bird.
type Body struct {
	Pos     core.Vec2
	Vel     core.Vec2
	Size    core.Vec2
	Gravity float64 // Added to Vel.Y every reference tick while enabled
	Impulse float64 // Vel.Y after a flap (negative = up)
}

// NewBody creates a body from the physics and player settings.
func NewBody(phys config.Physics, p config.Player) *Body {
	return &Body{
		Size:    core.Vec2{X: p.Width, Y: p.Height},
		Gravity: phys.Gravity,
		Impulse: phys.Impulse,
	}
}

// Flap overwrites the vertical velocity with the impulse.
func (b *Body) Flap() {
	b.Vel.Y = b.Impulse
}

// Advance integrates one step. Gravity is applied first, then velocity.
func (b *Body) Advance(dt time.Duration, gravity bool) {
	rate := tickRate(dt)
	if gravity {
		b.Vel.Y += b.Gravity * rate
	}
	b.Pos = b.Pos.Add(b.Vel.Scale(rate))
}

// Bounds returns the body's collision rectangle.
func (b *Body) Bounds() core.Rect {
	return core.NewRect(b.Pos.X, b.Pos.Y, b.Size.X, b.Size.Y)
}

// SetPosition moves the body without touching its velocity.
func (b *Body) SetPosition(x, y float64) {
	b.Pos = core.Vec2{X: x, Y: y}
}

// SetVelocity replaces the body's velocity.
func (b *Body) SetVelocity(x, y float64) {
	b.Vel = core.Vec2{X: x, Y: y}
}
