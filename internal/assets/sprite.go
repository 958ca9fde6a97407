// Package assets loads the text sprites the game draws and caches them by
// path so every consumer shares one read-only copy.
package assets

import (
	"strings"
	"unicode/utf8"
)

// Sprite is a block of text art. Spaces are transparent when drawn.
type Sprite struct {
	Lines  []string
	Width  int
	Height int
}

// ParseSprite builds a sprite from text, dropping trailing blank lines and
// a trailing carriage return on each line.
func ParseSprite(text string) Sprite {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	s := Sprite{Lines: lines, Height: len(lines)}
	for _, l := range lines {
		if w := utf8.RuneCountInString(l); w > s.Width {
			s.Width = w
		}
	}
	return s
}

// Empty reports whether the sprite has nothing to draw.
func (s Sprite) Empty() bool {
	return s.Width == 0 || s.Height == 0
}

// Built-in sprites used when no file is configured or a file fails to load.
var (
	DefaultBird  = ParseSprite("~@>")
	DefaultCloud = ParseSprite(" .--. \n(    )\n `--' ")
)
