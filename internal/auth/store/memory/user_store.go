package memory

import (
	"context"
	"sync"

	"github.com/bkunyiha/auth-service/internal/auth/domain"
)

// UserStore keeps accounts in a map guarded by a reader/writer lock.
// Passwords are compared as raw secrets; suitable for single-process,
// test-scale deployments only.
type UserStore struct {
	mu    sync.RWMutex
	users map[domain.Email]domain.User
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[domain.Email]domain.User)}
}

func (s *UserStore) AddUser(_ context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.Email]; ok {
		return domain.ErrUserAlreadyExists
	}
	s.users[user.Email] = user

	return nil
}

func (s *UserStore) GetUser(_ context.Context, email domain.Email) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[email]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}

	return user, nil
}

func (s *UserStore) ValidateUser(ctx context.Context, email domain.Email, password domain.Password) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[email]
	if !ok {
		return domain.ErrUserNotFound
	}
	if !user.Password.Equal(password) {
		return domain.ErrInvalidUserCredentials
	}

	return nil
}
