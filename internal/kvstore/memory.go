package kvstore

import (
	"context"
	"sync"
)

// MemoryStore is a map-backed Store. It backs tests and the degraded mode the
// server falls into when Redis is unreachable at startup.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string][]byte),
	}
}

func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.entries[key]
	if !ok {
		return nil, false, nil
	}
	// Copy so callers can't mutate the stored value
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

func (s *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.entries[key] = stored
	return nil
}
