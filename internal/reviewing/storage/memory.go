package storage

import (
	"context"
	"slices"
	"sync"
)

// MemoryStore keeps values for as long as the process lives.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string][]byte),
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	if key == "" {
		return nil, false, ErrNoKey
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}

	return slices.Clone(value), true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	if key == "" {
		return ErrNoKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Callers are free to reuse their buffer after Set returns.
	s.data[key] = slices.Clone(value)

	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
