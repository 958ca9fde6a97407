package wordflap

import (
	"fmt"
	"os"
	"strings"

	"github.com/vovakirdan/wordflap/internal/registry"
)

// WordSource supplies the words for a session. registry.Pack satisfies it.
type WordSource interface {
	Words() ([]string, error)
}

// FileSource reads whitespace-delimited words from a text file.
type FileSource struct {
	Path string
}

// Words reads and splits the file.
func (f FileSource) Words() ([]string, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("wordflap: cannot read words: %w", err)
	}
	return strings.Fields(string(data)), nil
}

// defaultSource is the built-in pack used when nothing else works.
func defaultSource() WordSource {
	p, err := registry.Get(registry.DefaultPack)
	if err != nil {
		return staticSource{"GO", "FLAP", "WORD"}
	}
	return p
}

type staticSource []string

func (s staticSource) Words() ([]string, error) {
	return append([]string(nil), s...), nil
}
