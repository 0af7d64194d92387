package favorites

import (
	"context"
	"sync"
)

// KVStore durably keeps favorites sets under string keys.
type KVStore interface {
	// Load returns the set stored under key. The boolean is false when nothing was saved yet.
	Load(ctx context.Context, key string) (Set, bool, error)

	// Save replaces the set stored under key.
	Save(ctx context.Context, key string, set Set) error
}

// MemoryStore implements KVStore in process memory.
type MemoryStore struct {
	mu   sync.RWMutex
	sets map[string][]int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sets: make(map[string][]int64)}
}

func (m *MemoryStore) Load(_ context.Context, key string) (Set, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids, ok := m.sets[key]
	if !ok {
		return Set{}, false, nil
	}
	return NewSet(ids...), true, nil
}

func (m *MemoryStore) Save(_ context.Context, key string, set Set) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sets[key] = set.IDs()
	return nil
}
