package store

import (
	"context"
	"sync"

	"github.com/abgdnv/storefront/internal/catalog"
	serrors "github.com/abgdnv/storefront/internal/errors"
)

// InMemory implements ItemStore over a fixed slice.
type InMemory struct {
	mu    sync.RWMutex
	items []catalog.Item
	byID  map[int64]int
}

// NewInMemoryStore creates a store holding items in the given order.
func NewInMemoryStore(items []catalog.Item) *InMemory {
	s := &InMemory{}
	s.Replace(items)
	return s
}

// NewSeededStore creates a store holding the named mock catalog.
func NewSeededStore(seed string) (*InMemory, error) {
	items, err := Seed(seed)
	if err != nil {
		return nil, err
	}
	return NewInMemoryStore(items), nil
}

// Replace swaps the whole collection.
func (s *InMemory) Replace(items []catalog.Item) {
	items = cloneItems(items)
	byID := make(map[int64]int, len(items))
	for i, item := range items {
		byID[item.ID] = i
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	s.byID = byID
}

// FindAll retrieves all items in featured order.
func (s *InMemory) FindAll(_ context.Context) ([]catalog.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneItems(s.items), nil
}

// FindByID retrieves an item by its ID.
func (s *InMemory) FindByID(_ context.Context, id int64) (*catalog.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return nil, serrors.ErrItemNotFound
	}
	item := cloneItems(s.items[i : i+1])[0]
	return &item, nil
}
