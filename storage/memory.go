package storage

import (
	"encoding/json"
	"sync"
)

// MemoryStore is an in-process Store used by tests and as a last-resort
// fallback. Values round-trip through JSON so it behaves like the real store.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (s *MemoryStore) Load(key string, out any) error {
	s.mu.RLock()
	raw, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return ErrNotFound
	}
	return nil
}

func (s *MemoryStore) Save(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[key] = string(raw)
	s.mu.Unlock()
	return nil
}
