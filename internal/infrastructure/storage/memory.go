package storage

import (
	"context"
	"sync"

	"github.com/webportal/portal-client/internal/core/domain"
)

// MemoryStore keeps the session record in memory. Used by tests and by
// runs that should not leave a record behind.
type MemoryStore struct {
	mu    sync.Mutex
	actor *domain.Actor
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(_ context.Context) (*domain.Actor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.actor == nil {
		return nil, domain.ErrNoRecord
	}
	actor := *m.actor
	return &actor, nil
}

func (m *MemoryStore) Save(_ context.Context, actor domain.Actor) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.actor = &actor
	return nil
}

func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.actor = nil
	return nil
}
