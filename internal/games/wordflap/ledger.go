package wordflap

// Ledger holds the score and streak multiplier. Only the rules engine and
// the session reset mutate it.
type Ledger struct {
	value      int
	multiplier int
	final      int
	frozen     bool
}

// NewLedger creates a ledger at zero with multiplier 1.
func NewLedger() *Ledger {
	l := &Ledger{}
	l.Reset()
	return l
}

// Award adds base scaled by the current multiplier.
func (l *Ledger) Award(base int) {
	l.value += base * l.multiplier
}

// Penalize subtracts an unscaled amount.
func (l *Ledger) Penalize(amount int) {
	l.value -= amount
}

// BumpMultiplier extends the streak.
func (l *Ledger) BumpMultiplier() {
	l.multiplier++
}

// ResetMultiplier ends the streak.
func (l *Ledger) ResetMultiplier() {
	l.multiplier = 1
}

// Freeze records the final score of a run and returns it.
func (l *Ledger) Freeze() int {
	l.final = l.value
	l.frozen = true
	return l.final
}

// Reset starts a new run.
func (l *Ledger) Reset() {
	l.value = 0
	l.multiplier = 1
	l.final = 0
	l.frozen = false
}

// Value returns the running score.
func (l *Ledger) Value() int { return l.value }

// Multiplier returns the current streak multiplier.
func (l *Ledger) Multiplier() int { return l.multiplier }

// Final returns the score recorded by Freeze.
func (l *Ledger) Final() int { return l.final }

// Frozen reports whether the run has ended.
func (l *Ledger) Frozen() bool { return l.frozen }
