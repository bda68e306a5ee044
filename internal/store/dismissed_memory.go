package store

import (
	"context"
	"sync"
)

// MemoryDismissalStore is the single-device fallback and the test double.
type MemoryDismissalStore struct {
	mu  sync.RWMutex
	ids map[string]struct{}
}

func NewMemoryDismissalStore() *MemoryDismissalStore {
	return &MemoryDismissalStore{ids: make(map[string]struct{})}
}

func (s *MemoryDismissalStore) Get(ctx context.Context) (map[string]struct{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]struct{}, len(s.ids))
	for id := range s.ids {
		out[id] = struct{}{}
	}
	return out, nil
}

func (s *MemoryDismissalStore) Set(ctx context.Context, ids map[string]struct{}) error {
	copied := make(map[string]struct{}, len(ids))
	for id := range ids {
		copied[id] = struct{}{}
	}
	s.mu.Lock()
	s.ids = copied
	s.mu.Unlock()
	return nil
}
