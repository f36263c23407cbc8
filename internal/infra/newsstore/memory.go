package newsstore

import (
	"sync"

	"bakery-preorder/internal/domain/news"
)

// MemoryStore holds preview overrides that shadow the file-backed lists,
// the way the site's local storage shadowed the fetched JSON. Overrides
// live only for the process lifetime.
type MemoryStore struct {
	mu        sync.RWMutex
	overrides map[news.Kind][]news.Entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{overrides: make(map[news.Kind][]news.Entry)}
}

func (s *MemoryStore) Get(kind news.Kind) ([]news.Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries, ok := s.overrides[kind]
	if !ok {
		return nil, false
	}
	out := make([]news.Entry, len(entries))
	copy(out, entries)
	return out, true
}

func (s *MemoryStore) Set(kind news.Kind, entries []news.Entry) {
	stored := make([]news.Entry, len(entries))
	copy(stored, entries)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[kind] = stored
}

func (s *MemoryStore) Clear(kind news.Kind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.overrides, kind)
}
