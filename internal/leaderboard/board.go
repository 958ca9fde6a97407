// Package leaderboard keeps the bounded, score-ordered list of best runs and
// persists it through a Store.
package leaderboard

import (
	"os"
	"path/filepath"
	"sort"
)

// DefaultSize is the number of entries kept.
const DefaultSize = 10

// Entry is a single leaderboard record.
type Entry struct {
	Name  string
	Score int
}

// Store loads and saves the full leaderboard. Save overwrites whatever was
// stored before. Order on disk is not significant; Board re-sorts on load.
type Store interface {
	Load() ([]Entry, error)
	Save(entries []Entry) error
}

// Board is a leaderboard sorted by descending score and truncated to size.
type Board struct {
	entries []Entry
	size    int
}

// NewBoard builds a board from entries in any order.
func NewBoard(size int, entries []Entry) *Board {
	if size <= 0 {
		size = DefaultSize
	}
	b := &Board{
		entries: append(make([]Entry, 0, len(entries)+1), entries...),
		size:    size,
	}
	b.normalize()
	return b
}

// Add inserts a record, re-sorts and truncates. It returns the 1-based rank
// the record landed on, or 0 if it did not make the cut.
func (b *Board) Add(name string, score int) int {
	b.entries = append(b.entries, Entry{Name: name, Score: score})
	idx := len(b.entries) - 1

	// Stable sort keeps older records ahead of new ties
	sort.SliceStable(b.entries, func(i, j int) bool {
		return b.entries[i].Score > b.entries[j].Score
	})
	for i := len(b.entries) - 1; i >= 0; i-- {
		if b.entries[i].Name == name && b.entries[i].Score == score {
			idx = i
			break
		}
	}
	b.truncate()

	if idx >= len(b.entries) {
		return 0
	}
	return idx + 1
}

// Qualifies reports whether score would make it onto the board.
func (b *Board) Qualifies(score int) bool {
	if len(b.entries) < b.size {
		return true
	}
	return score > b.entries[len(b.entries)-1].Score
}

// Entries returns a copy of the records, best first.
func (b *Board) Entries() []Entry {
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Len returns the number of records.
func (b *Board) Len() int {
	return len(b.entries)
}

// Size returns the capacity.
func (b *Board) Size() int {
	return b.size
}

// Best returns the top score, or 0 for an empty board.
func (b *Board) Best() int {
	if len(b.entries) == 0 {
		return 0
	}
	return b.entries[0].Score
}

func (b *Board) normalize() {
	sort.SliceStable(b.entries, func(i, j int) bool {
		return b.entries[i].Score > b.entries[j].Score
	})
	b.truncate()
}

func (b *Board) truncate() {
	if len(b.entries) > b.size {
		b.entries = b.entries[:b.size]
	}
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}
