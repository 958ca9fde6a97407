package leaderboard

import (
	"math/rand"
	"testing"
)

func isSortedDesc(entries []Entry) bool {
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Score < entries[i].Score {
			return false
		}
	}
	return true
}

func TestNewBoardSortsAndTruncates(t *testing.T) {
	var entries []Entry
	for i := 0; i < 15; i++ {
		entries = append(entries, Entry{Name: "AAA", Score: i * 10})
	}

	b := NewBoard(10, entries)
	if b.Len() != 10 {
		t.Fatalf("Len() = %d, expected 10", b.Len())
	}
	if !isSortedDesc(b.Entries()) {
		t.Errorf("entries not sorted: %v", b.Entries())
	}
	if b.Best() != 140 {
		t.Errorf("Best() = %d, expected 140", b.Best())
	}
}

func TestBoardAddKeepsInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := NewBoard(DefaultSize, nil)

	for i := 0; i < 200; i++ {
		b.Add("ZZZ", rng.Intn(1000)-100)

		if b.Len() > DefaultSize {
			t.Fatalf("board grew to %d entries", b.Len())
		}
		if !isSortedDesc(b.Entries()) {
			t.Fatalf("board not sorted after add %d: %v", i, b.Entries())
		}
	}
}

func TestBoardAddRank(t *testing.T) {
	b := NewBoard(3, []Entry{{"AAA", 30}, {"BBB", 20}, {"CCC", 10}})

	if rank := b.Add("DDD", 25); rank != 2 {
		t.Errorf("rank = %d, expected 2", rank)
	}
	if rank := b.Add("EEE", 5); rank != 0 {
		t.Errorf("rank = %d, expected 0 for a score below the cut", rank)
	}

	got := b.Entries()
	want := []Entry{{"AAA", 30}, {"DDD", 25}, {"BBB", 20}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, expected %+v", i, got[i], want[i])
		}
	}
}

func TestBoardTiesKeepOlderFirst(t *testing.T) {
	b := NewBoard(3, []Entry{{"OLD", 50}})

	if rank := b.Add("NEW", 50); rank != 2 {
		t.Errorf("tied newcomer rank = %d, expected 2", rank)
	}
	if b.Entries()[0].Name != "OLD" {
		t.Error("older entry should stay ahead on ties")
	}
}

func TestBoardQualifies(t *testing.T) {
	b := NewBoard(2, []Entry{{"AAA", 10}})
	if !b.Qualifies(-5) {
		t.Error("any score qualifies while the board has room")
	}

	b.Add("BBB", 20)
	if b.Qualifies(10) {
		t.Error("a score equal to the last entry should not qualify")
	}
	if !b.Qualifies(11) {
		t.Error("a score above the last entry should qualify")
	}
}

func TestBoardEntriesIsCopy(t *testing.T) {
	b := NewBoard(3, []Entry{{"AAA", 10}})
	e := b.Entries()
	e[0].Score = 999

	if b.Best() != 10 {
		t.Error("Entries() should not expose internal state")
	}
}
