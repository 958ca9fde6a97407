// Package loop implements the fixed-timestep frame loop: a clock that
// supplies wall time and an accumulator that turns elapsed wall time into
// a whole number of simulation steps.
package loop

import "time"

// Clock supplies the current wall time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real monotonic clock.
type SystemClock struct{}

// Now returns the current time with monotonic clock reading.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a controllable clock for tests and replays.
type ManualClock struct {
	current time.Time
}

// NewManualClock creates a clock frozen at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{current: start}
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Time {
	return c.current
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}
