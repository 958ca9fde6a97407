package wordflap

import "unicode"

// Screen is the authoritative UI state. It decides what input does and
// which overlays are drawn.
type Screen int

const (
	ScreenStart Screen = iota
	ScreenPlaying
	ScreenGameOver
	ScreenEnteringName
	ScreenLeaderboard // Overlay identity only; never accepts input
)

// String returns the screen name.
func (s Screen) String() string {
	switch s {
	case ScreenStart:
		return "start"
	case ScreenPlaying:
		return "playing"
	case ScreenGameOver:
		return "game_over"
	case ScreenEnteringName:
		return "entering_name"
	case ScreenLeaderboard:
		return "leaderboard"
	default:
		return "unknown"
	}
}

// NameBuffer collects a fixed-length name. Once full, each new letter
// evicts the oldest one.
type NameBuffer struct {
	letters []rune
	size    int
}

// NewNameBuffer creates a buffer holding up to size letters.
func NewNameBuffer(size int) *NameBuffer {
	if size <= 0 {
		size = 3
	}
	return &NameBuffer{letters: make([]rune, 0, size), size: size}
}

// Push adds a letter, uppercased. Anything outside A-Z is ignored.
func (n *NameBuffer) Push(r rune) {
	r = unicode.ToUpper(r)
	if r < 'A' || r > 'Z' {
		return
	}
	if len(n.letters) == n.size {
		copy(n.letters, n.letters[1:])
		n.letters = n.letters[:n.size-1]
	}
	n.letters = append(n.letters, r)
}

// Backspace removes the last letter.
func (n *NameBuffer) Backspace() {
	if len(n.letters) > 0 {
		n.letters = n.letters[:len(n.letters)-1]
	}
}

// Clear empties the buffer.
func (n *NameBuffer) Clear() {
	n.letters = n.letters[:0]
}

// Full reports whether the buffer holds exactly size letters.
func (n *NameBuffer) Full() bool {
	return len(n.letters) == n.size
}

// Len returns the number of letters held.
func (n *NameBuffer) Len() int {
	return len(n.letters)
}

// Size returns the required name length.
func (n *NameBuffer) Size() int {
	return n.size
}

func (n *NameBuffer) String() string {
	return string(n.letters)
}
