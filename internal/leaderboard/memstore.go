package leaderboard

// MemoryStore keeps the leaderboard in memory only. The CLI falls back to it
// when the configured store cannot be opened.
type MemoryStore struct {
	entries []Entry
	saves   int
}

// NewMemoryStore creates a store pre-filled with entries.
func NewMemoryStore(entries ...Entry) *MemoryStore {
	return &MemoryStore{entries: append([]Entry(nil), entries...)}
}

// Load returns a copy of the stored entries.
func (s *MemoryStore) Load() ([]Entry, error) {
	return append([]Entry(nil), s.entries...), nil
}

// Save replaces the stored entries.
func (s *MemoryStore) Save(entries []Entry) error {
	s.entries = append([]Entry(nil), entries...)
	s.saves++
	return nil
}

// Saves returns how many times Save was called.
func (s *MemoryStore) Saves() int {
	return s.saves
}

var _ Store = (*MemoryStore)(nil)
