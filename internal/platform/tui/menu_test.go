package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wordflap/internal/core"
	"github.com/vovakirdan/wordflap/internal/registry"
)

func TestMenuCursorStaysInRange(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, registry.DefaultPack)
	last := len(m.items) - 1

	press := func(k tea.KeyMsg, n int) {
		for i := 0; i < n; i++ {
			next, _ := m.Update(k)
			m = next.(MenuModel)
		}
	}

	press(tea.KeyMsg{Type: tea.KeyUp}, len(m.items)+2)
	if m.cursor != 0 {
		t.Errorf("cursor = %d after moving past the top, expected 0", m.cursor)
	}

	press(tea.KeyMsg{Type: tea.KeyDown}, len(m.items)+2)
	if m.cursor != last {
		t.Errorf("cursor = %d after moving past the bottom, expected %d", m.cursor, last)
	}
}
