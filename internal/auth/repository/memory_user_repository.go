// Package repository provides in-memory storage for users and audit logs.
// All state is volatile: it is built from seed data at process start and
// discarded at exit.
package repository

import (
	"context"
	"sync"

	authDomain "github.com/slalombuild/capabilities/internal/auth/domain"
)

// MemoryUserRepository implements User storage over a map keyed by email.
// Users are loaded once at construction and never mutated afterwards, so the
// store is read-mostly with an RWMutex guarding concurrent access.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]*authDomain.User
}

// GetByEmail retrieves a user by email using exact, case-sensitive matching.
// Returns a copy so callers cannot mutate stored state. Returns
// ErrUserNotFound if no user has that email.
func (m *MemoryUserRepository) GetByEmail(ctx context.Context, email string) (*authDomain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[email]
	if !ok {
		return nil, authDomain.ErrUserNotFound
	}

	copied := *user
	return &copied, nil
}

// NewMemoryUserRepository creates a user repository holding the given seed users.
func NewMemoryUserRepository(users []*authDomain.User) *MemoryUserRepository {
	store := make(map[string]*authDomain.User, len(users))
	for _, user := range users {
		copied := *user
		store[user.Email] = &copied
	}

	return &MemoryUserRepository{users: store}
}
