package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wordflap/internal/core"
	"github.com/vovakirdan/wordflap/internal/loop"
)

// fakeGame records what the model asks of it.
type fakeGame struct {
	cfg    core.RuntimeConfig
	steps  int
	dt     time.Duration
	events []core.Event
	state  core.GameState
	quitOn core.Action // Dispatching this action sets State().Quit
}

func (g *fakeGame) Reset(cfg core.RuntimeConfig) { g.cfg = cfg }

func (g *fakeGame) Dispatch(in core.InputFrame) {
	g.events = append(g.events, in.Events...)
	for _, ev := range in.Events {
		if g.quitOn != core.ActionNone && ev.Action == g.quitOn {
			g.state.Quit = true
		}
	}
}

func (g *fakeGame) Step(dt time.Duration) {
	g.steps++
	g.dt = dt
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) State() core.GameState { return g.state }

func newTestModel(g *fakeGame, clock loop.Clock) Model {
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 100, Seed: 7}
	return NewModel(g, cfg, Options{FPS: 30, Clock: clock})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelResetsGameBelowHelpLine(t *testing.T) {
	g := &fakeGame{}
	newTestModel(g, loop.NewManualClock(time.Unix(0, 0)))

	if g.cfg.ScreenW != 40 || g.cfg.ScreenH != 12-helpHeight {
		t.Errorf("game sized %dx%d", g.cfg.ScreenW, g.cfg.ScreenH)
	}
	if g.cfg.Seed != 7 {
		t.Errorf("seed = %d, expected 7", g.cfg.Seed)
	}
}

func TestModelTickRunsWholeSteps(t *testing.T) {
	clock := loop.NewManualClock(time.Unix(0, 0))
	g := &fakeGame{}
	m := newTestModel(g, clock)

	clock.Advance(35 * time.Millisecond)
	m = update(t, m, TickMsg{})
	if g.steps != 3 {
		t.Errorf("steps = %d after 35ms at 100Hz, expected 3", g.steps)
	}
	if g.dt != 10*time.Millisecond {
		t.Errorf("step dt = %v, expected 10ms", g.dt)
	}

	clock.Advance(5 * time.Millisecond)
	update(t, m, TickMsg{})
	if g.steps != 4 {
		t.Errorf("remainder should carry over, steps = %d", g.steps)
	}
}

func TestModelDispatchesKeysInOrder(t *testing.T) {
	clock := loop.NewManualClock(time.Unix(0, 0))
	g := &fakeGame{}
	m := newTestModel(g, clock)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg{})

	want := []core.Action{core.ActionLeaderboard, core.ActionConfirm, core.ActionRestart}
	if len(g.events) != len(want) {
		t.Fatalf("events = %v", g.events)
	}
	for i, a := range want {
		if g.events[i].Action != a {
			t.Errorf("event %d = %s, expected %s", i, g.events[i].Action, a)
		}
	}

	// The frame is cleared after dispatch
	update(t, m, TickMsg{})
	if len(g.events) != len(want) {
		t.Error("events were dispatched twice")
	}
}

func TestModelQueuesLettersAfterTabInOneFrame(t *testing.T) {
	g := &fakeGame{state: core.GameState{GameOver: true}}
	m := newTestModel(g, loop.NewManualClock(time.Unix(0, 0)))

	for _, k := range []tea.KeyMsg{{Type: tea.KeyTab}, runeKey('a'), runeKey('q')} {
		next, cmd := m.Update(k)
		if cmd != nil {
			t.Fatalf("%q should not quit before the game sees it", k.String())
		}
		m = next.(Model)
	}

	_, cmd := m.Update(TickMsg{})
	want := []core.Event{
		{Action: core.ActionLeaderboard},
		{Action: core.ActionLetter, Rune: 'a'},
		{Action: core.ActionQuit, Rune: 'q'},
	}
	if len(g.events) != len(want) {
		t.Fatalf("events = %v, expected %v", g.events, want)
	}
	for i := range want {
		if g.events[i] != want[i] {
			t.Errorf("event %d = %+v, expected %+v", i, g.events[i], want[i])
		}
	}
	if cmd == nil {
		t.Error("the frame loop should keep ticking")
	}
}

func TestModelQuitsWhenGameAsks(t *testing.T) {
	g := &fakeGame{quitOn: core.ActionQuit}
	m := newTestModel(g, loop.NewManualClock(time.Unix(0, 0)))

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	next, _ := m.Update(TickMsg{})
	if next.(Model).View() != "" {
		t.Error("model should quit once the game reports it")
	}
}

func TestModelQuit(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, loop.NewManualClock(time.Unix(0, 0)))

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelViewAndResize(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, loop.NewManualClock(time.Unix(0, 0)))

	if !strings.Contains(m.View(), "fake") {
		t.Error("view should contain the rendered game")
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 6})
	if m.screen.Width() != 20 || m.screen.Height() != 6-helpHeight {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
	if g.cfg.ScreenW != 40 {
		t.Error("resize should not reset the playfield")
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.SetColored(1, 1, 'x', core.ColorRed)

	out := RenderScreen(s)
	if !strings.Contains(out, "abc") || !strings.Contains(out, "x") {
		t.Errorf("RenderScreen lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
}
