// Package registry provides a global registry of word packs.
// Built-in packs register themselves in init(), allowing the CLI to list
// and select them without hardcoded dependencies.
package registry

import (
	"embed"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Pack is a named list of words used as an obstacle source.
type Pack struct {
	ID    string
	Title string
	words []string
}

// Words returns a copy of the pack's words.
func (p Pack) Words() ([]string, error) {
	out := make([]string, len(p.words))
	copy(out, p.words)
	return out, nil
}

// Len returns the number of words in the pack.
func (p Pack) Len() int {
	return len(p.words)
}

// PackInfo contains metadata about a registered pack.
type PackInfo struct {
	ID    string
	Title string
	Words int
}

// DefaultPack is the pack used when none is selected.
const DefaultPack = "classic"

var (
	packs = make(map[string]Pack)
	mu    sync.RWMutex
)

//go:embed packs/*.txt
var builtin embed.FS

func init() {
	mustRegisterBuiltin("classic", "Classic Words")
	mustRegisterBuiltin("gophers", "Gopher Jargon")
	mustRegisterBuiltin("space", "Deep Space")
}

func mustRegisterBuiltin(id, title string) {
	data, err := builtin.ReadFile("packs/" + id + ".txt")
	if err != nil {
		panic(fmt.Sprintf("registry: missing built-in pack %q: %v", id, err))
	}
	Register(id, title, strings.Fields(string(data)))
}

// Register adds a word pack to the registry.
// Panics if a pack with the same ID is already registered.
func Register(id, title string, words []string) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := packs[id]; exists {
		panic(fmt.Sprintf("registry: pack %q already registered", id))
	}

	packs[id] = Pack{ID: id, Title: title, words: append([]string(nil), words...)}
}

// List returns information about all registered packs, sorted by ID.
func List() []PackInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PackInfo, 0, len(packs))
	for id, p := range packs {
		result = append(result, PackInfo{
			ID:    id,
			Title: p.Title,
			Words: len(p.words),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the pack with the given ID.
// Returns an error if the pack ID is not registered.
func Get(id string) (Pack, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := packs[id]
	if !ok {
		return Pack{}, fmt.Errorf("registry: unknown pack %q", id)
	}
	return p, nil
}

// Exists checks if a pack with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := packs[id]
	return ok
}
