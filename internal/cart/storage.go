package cart

import (
	"context"
	"slices"
	"sync"
)

// Storage persists cart snapshots. The store depends on this capability, not
// on a concrete backend, so recalculation logic is testable without one.
type Storage interface {
	Load(ctx context.Context) ([]Item, error)
	Save(ctx context.Context, items []Item) error
}

// MemoryStorage keeps snapshots in memory. Used in tests and as a fallback
// when no durable backend is configured.
type MemoryStorage struct {
	mu    sync.Mutex
	items []Item
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (m *MemoryStorage) Load(ctx context.Context) ([]Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.items), nil
}

func (m *MemoryStorage) Save(ctx context.Context, items []Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = slices.Clone(items)
	return nil
}
