package storage

import "github.com/vovakirdan/tui-2048/internal/t2048"

// MemoryStore keeps the high score for the lifetime of the process.
type MemoryStore struct {
	value int
	saved bool
}

// NewMemoryStore returns a store that starts with value already saved.
// A zero value means nothing is stored.
func NewMemoryStore(value int) *MemoryStore {
	return &MemoryStore{value: value, saved: value > 0}
}

// Load implements t2048.HighScoreStore.
func (m *MemoryStore) Load() (int, error) {
	if !m.saved {
		return 0, ErrNoHighScore
	}
	return m.value, nil
}

// Save implements t2048.HighScoreStore.
func (m *MemoryStore) Save(score int) error {
	m.value = score
	m.saved = true
	return nil
}

var _ t2048.HighScoreStore = (*MemoryStore)(nil)
