// Package directory provides the backend-side user directory served over
// the /users endpoints.
package directory

import (
	"context"
	"sort"
	"sync"

	"github.com/webportal/portal-client/internal/core/domain"
)

// Memory is an in-memory user directory. The mock backend is a stand-in
// for a remote API, so a seeded map is the whole persistence story.
type Memory struct {
	mu     sync.RWMutex
	users  map[int]domain.User
	nextID int
}

// NewMemory builds a directory holding the given users.
func NewMemory(seed []domain.User) *Memory {
	users := make(map[int]domain.User, len(seed))
	next := 1
	for _, u := range seed {
		users[u.ID] = u
		if u.ID >= next {
			next = u.ID + 1
		}
	}
	return &Memory{users: users, nextID: next}
}

// SeedUsers is a small fixture in the shape of a public demo directory.
func SeedUsers() []domain.User {
	return []domain.User{
		{ID: 1, Name: "Leanne Graham", Email: "leanne@example.com", Phone: "1-770-736-8031", Website: "hildegard.org", Company: domain.Company{Name: "Romaguera-Crona"}},
		{ID: 2, Name: "Ervin Howell", Email: "ervin@example.com", Phone: "010-692-6593", Website: "anastasia.net", Company: domain.Company{Name: "Deckow-Crist"}},
		{ID: 3, Name: "Clementine Bauch", Email: "clementine@example.com", Phone: "1-463-123-4447", Website: "ramiro.info", Company: domain.Company{Name: "Romaguera-Jacobson"}},
	}
}

func (m *Memory) List(_ context.Context) ([]domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *Memory) Get(_ context.Context, id int) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (m *Memory) Create(_ context.Context, user domain.User) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = user
	return &user, nil
}

func (m *Memory) Update(_ context.Context, id int, user domain.User) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return nil, domain.ErrUserNotFound
	}
	user.ID = id
	m.users[id] = user
	return &user, nil
}

func (m *Memory) Delete(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}
