package core

import "testing"

func TestInputFramePreservesOrder(t *testing.T) {
	f := NewInputFrame()
	f.PushLetter('A')
	f.Push(ActionBackspace)
	f.PushLetter('B')

	want := []Event{
		{Action: ActionLetter, Rune: 'A'},
		{Action: ActionBackspace},
		{Action: ActionLetter, Rune: 'B'},
	}
	if len(f.Events) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(f.Events))
	}
	for i := range want {
		if f.Events[i] != want[i] {
			t.Errorf("event %d = %+v, expected %+v", i, f.Events[i], want[i])
		}
	}
}

func TestInputFramePushKeyAndClear(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Fatal("new frame should be empty")
	}

	f.PushKey(ActionQuit, 'q')
	if f.Empty() || f.Events[0] != (Event{Action: ActionQuit, Rune: 'q'}) {
		t.Errorf("events = %v, expected quit carrying 'q'", f.Events)
	}

	f.Clear()
	if !f.Empty() {
		t.Error("Clear should drop all events")
	}
}

func TestActionString(t *testing.T) {
	if ActionLeaderboard.String() != "Leaderboard" {
		t.Errorf("unexpected name %q", ActionLeaderboard.String())
	}
	if Action(99).String() != "Unknown" {
		t.Error("out of range action should be Unknown")
	}
}
