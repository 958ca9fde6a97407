package wordflap

import (
	"math/rand"
	"testing"
)

func TestLedgerStreak(t *testing.T) {
	l := NewLedger()
	const base = 10

	for i := 0; i < 3; i++ {
		l.Award(base)
		l.BumpMultiplier()
	}

	if l.Value() != base*1+base*2+base*3 {
		t.Errorf("Value() = %d, expected %d", l.Value(), base*6)
	}
	if l.Multiplier() != 4 {
		t.Errorf("Multiplier() = %d, expected 4", l.Multiplier())
	}

	l.ResetMultiplier()
	l.ResetMultiplier()
	if l.Multiplier() != 1 {
		t.Errorf("Multiplier() = %d after reset, expected 1", l.Multiplier())
	}
}

func TestLedgerPenaltyUnscaled(t *testing.T) {
	l := NewLedger()
	l.BumpMultiplier()
	l.BumpMultiplier()
	l.Penalize(1)

	if l.Value() != -1 {
		t.Errorf("Value() = %d, expected -1", l.Value())
	}
}

func TestLedgerFreezeAndReset(t *testing.T) {
	l := NewLedger()
	l.Award(7)
	if l.Freeze() != 7 || l.Final() != 7 || !l.Frozen() {
		t.Error("Freeze should record the running value")
	}

	l.Reset()
	if l.Value() != 0 || l.Multiplier() != 1 || l.Final() != 0 || l.Frozen() {
		t.Errorf("Reset left state behind: %+v", *l)
	}
}

func TestLedgerMultiplierNeverBelowOne(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	l := NewLedger()

	for i := 0; i < 500; i++ {
		switch rng.Intn(3) {
		case 0:
			l.BumpMultiplier()
		case 1:
			l.ResetMultiplier()
		case 2:
			l.Award(1)
		}
		if l.Multiplier() < 1 {
			t.Fatalf("multiplier dropped to %d", l.Multiplier())
		}
	}
}
