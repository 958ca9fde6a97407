package wordflap

import (
	"math/rand"
	"testing"
	"time"
)

func newTestStream(seed int64) *Stream {
	return NewStream(rand.New(rand.NewSource(seed)), StreamConfig{
		SpawnX:   80,
		MinY:     2,
		MaxY:     21,
		Height:   1,
		Speed:    0.5,
		Interval: 1.2,
	})
}

func TestStreamLoadSchedule(t *testing.T) {
	s := newTestStream(1)
	s.Load([]string{"GO", "RUST", "ZIG", "C"})

	if s.Len() != 4 {
		t.Fatalf("Len() = %d, expected 4", s.Len())
	}

	prev := 0.0
	for i, o := range s.Obstacles() {
		if o.Schedule <= prev {
			t.Errorf("obstacle %d schedule %f not after %f", i, o.Schedule, prev)
		}
		prev = o.Schedule

		if o.Pos.X != 80 {
			t.Errorf("obstacle %d spawned at x=%f, expected 80", i, o.Pos.X)
		}
		if o.Pos.Y < 2 || o.Pos.Y > 21 {
			t.Errorf("obstacle %d y=%f outside [2, 21]", i, o.Pos.Y)
		}
		if o.Active() {
			t.Errorf("obstacle %d active before its schedule", i)
		}
	}

	if w := s.At(1).Size.X; w != 4 {
		t.Errorf("width of RUST = %f, expected 4", w)
	}
}

func TestStreamActivatesOnSchedule(t *testing.T) {
	s := newTestStream(1)
	s.Load([]string{"ONE", "TWO"})

	// 1.2 seconds at 60 steps per second
	for i := 0; i < 71; i++ {
		s.Advance(referenceStep)
	}
	if len(s.Active()) != 0 {
		t.Fatal("nothing should be active before 1.2s")
	}

	s.Advance(referenceStep)
	s.Advance(referenceStep)
	if got := s.Active(); len(got) != 1 || got[0] != 0 {
		t.Fatalf("Active() = %v, expected [0]", got)
	}

	before := s.At(0).Pos.X
	s.Advance(referenceStep)
	if after := s.At(0).Pos.X; after != before-0.5 {
		t.Errorf("active obstacle moved to %f, expected %f", after, before-0.5)
	}
	if s.At(1).Pos.X != 80 {
		t.Error("pending obstacle should not move")
	}
}

func TestStreamDropsOffscreen(t *testing.T) {
	s := newTestStream(1)
	s.Load([]string{"AB", "CD"})
	s.obstacles[0].Remaining = 0
	s.obstacles[0].Pos.X = -1.9

	if gone := s.Advance(referenceStep); gone != 1 {
		t.Errorf("Advance() dropped %d, expected 1", gone)
	}
	if s.Len() != 1 || s.At(0).Label != "CD" {
		t.Errorf("unexpected obstacles left: %+v", s.Obstacles())
	}
}

func TestStreamRetire(t *testing.T) {
	s := newTestStream(1)
	s.Load([]string{"A", "B", "C", "D", "E"})

	s.Retire([]int{0, 2, 3})

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", s.Len())
	}
	if s.At(0).Label != "B" || s.At(1).Label != "E" {
		t.Errorf("wrong survivors: %s %s", s.At(0).Label, s.At(1).Label)
	}

	s.Retire(nil)
	if s.Len() != 2 {
		t.Error("empty retire should be a no-op")
	}
}

func TestStreamConsumeExpirePreserveOrder(t *testing.T) {
	s := newTestStream(1)
	s.Load([]string{"A", "B", "C"})

	if o := s.Consume(1); o.Label != "B" {
		t.Errorf("Consume(1) = %s", o.Label)
	}
	if o := s.Expire(0); o.Label != "A" {
		t.Errorf("Expire(0) = %s", o.Label)
	}
	if s.Len() != 1 || s.At(0).Label != "C" {
		t.Error("remaining obstacle should be C")
	}
}

func TestStreamResetRebuilds(t *testing.T) {
	s := newTestStream(9)
	s.Load([]string{"ALPHA", "BETA", "GAMMA"})
	first := append([]Obstacle(nil), s.Obstacles()...)

	for i := 0; i < 200; i++ {
		s.Advance(referenceStep)
	}
	s.Consume(0)
	s.Reset()

	if s.Len() != 3 {
		t.Fatalf("Reset should restore the full batch, got %d", s.Len())
	}
	changed := false
	for i, o := range s.Obstacles() {
		if o.Schedule != first[i].Schedule || o.Remaining != o.Schedule || o.Pos.X != 80 {
			t.Errorf("obstacle %d not rescheduled: %+v", i, o)
		}
		if o.Pos.Y != first[i].Pos.Y {
			changed = true
		}
	}
	if !changed {
		t.Error("Reset should draw fresh vertical positions")
	}
}

func TestStreamSetPace(t *testing.T) {
	s := newTestStream(1)
	s.Load([]string{"A", "B"})
	s.SetPace(1.0, 0.5)

	if s.At(1).Schedule != 2.4 {
		t.Error("SetPace should not touch the current batch")
	}

	s.Reset()
	if s.At(1).Schedule != 1.0 || s.At(0).Speed != 1.0 {
		t.Errorf("new pace not applied: %+v", s.At(1))
	}
}

func TestStreamDeterministic(t *testing.T) {
	words := []string{"one", "two", "three", "four"}
	a := newTestStream(77)
	b := newTestStream(77)
	a.Load(words)
	b.Load(words)

	for i := 0; i < 300; i++ {
		a.Advance(time.Second / 60)
		b.Advance(time.Second / 60)
	}
	for i := range a.Obstacles() {
		if a.At(i) != b.At(i) {
			t.Fatalf("streams diverged at %d: %+v vs %+v", i, a.At(i), b.At(i))
		}
	}
}
