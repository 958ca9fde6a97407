package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wordflap/internal/core"
)

// GameKeyMap defines the key bindings used while playing.
type GameKeyMap struct {
	Flap        key.Binding
	Restart     key.Binding
	Leaderboard key.Binding
	Backspace   key.Binding
	Screenshot  key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding // Quits immediately, even while a name is being typed
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.Restart, k.Leaderboard, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Flap, k.Restart, k.Leaderboard},
		{k.Backspace, k.Screenshot, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" ", "space", "up"),
			key.WithHelp("space/up", "flap"),
		),
		Restart: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "restart/save"),
		),
		Leaderboard: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "leaderboard"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("bksp", "erase"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game input events.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the bindings, for the help view.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKeyToFrame appends the event for a key to the frame. Keys are not
// interpreted against the screen here: letters keep their rune alongside any
// bound action, and the game sorts them out when the frame is dispatched.
// Returns true only for ctrl+c, which quits from every screen.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	if key.Matches(msg, km.keys.ForceQuit) {
		return true
	}

	r, _ := letter(msg)
	switch {
	case key.Matches(msg, km.keys.Quit):
		frame.PushKey(core.ActionQuit, r)
	case key.Matches(msg, km.keys.Flap):
		frame.Push(core.ActionConfirm)
	case key.Matches(msg, km.keys.Restart):
		frame.Push(core.ActionRestart)
	case key.Matches(msg, km.keys.Leaderboard):
		frame.Push(core.ActionLeaderboard)
	case key.Matches(msg, km.keys.Backspace):
		frame.Push(core.ActionBackspace)
	case r != 0:
		frame.PushLetter(r)
	}
	return false
}

// letter extracts a single A-Z letter from a key press.
func letter(msg tea.KeyMsg) (rune, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 || msg.Alt {
		return 0, false
	}
	r := msg.Runes[0]
	if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
		return r, true
	}
	return 0, false
}

// MenuKeyMap defines the key bindings for the pack picker.
type MenuKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	Scoreboard key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Scoreboard, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"), // vim-style k for up
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"), // vim-style j for down
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("enter", "play"),
		),
		Scoreboard: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
