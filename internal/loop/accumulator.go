package loop

import "time"

// MaxFrame caps the wall time a single poll may contribute. A stalled
// terminal (suspended process, slow remote session) would otherwise queue an
// unbounded burst of catch-up steps.
const MaxFrame = 250 * time.Millisecond

// Accumulator converts variable frame durations into fixed simulation steps.
// Elapsed wall time is added to a bank; every whole step's worth of time in
// the bank is paid out as one step and the remainder carries over.
type Accumulator struct {
	clock Clock
	step  time.Duration
	bank  time.Duration
	last  time.Time
}

// NewAccumulator creates an accumulator paying out steps of the given
// duration. Non-positive steps fall back to 60 Hz.
func NewAccumulator(clock Clock, step time.Duration) *Accumulator {
	if step <= 0 {
		step = time.Second / 60
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &Accumulator{
		clock: clock,
		step:  step,
		last:  clock.Now(),
	}
}

// StepForRate returns the step duration for a tick rate in Hz.
func StepForRate(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// Step returns the fixed step duration.
func (a *Accumulator) Step() time.Duration {
	return a.step
}

// Poll reads the clock, banks the elapsed time and returns the number of
// whole steps to simulate now. It may return zero or several.
func (a *Accumulator) Poll() int {
	now := a.clock.Now()
	elapsed := now.Sub(a.last)
	a.last = now
	return a.Add(elapsed)
}

// Add banks an explicit elapsed duration and returns the whole steps due.
func (a *Accumulator) Add(elapsed time.Duration) int {
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > MaxFrame {
		elapsed = MaxFrame
	}
	a.bank += elapsed

	n := 0
	for a.bank >= a.step {
		a.bank -= a.step
		n++
	}
	return n
}

// Reset drops banked time and restarts measuring from now.
func (a *Accumulator) Reset() {
	a.bank = 0
	a.last = a.clock.Now()
}
