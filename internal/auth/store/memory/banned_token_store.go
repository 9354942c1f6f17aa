package memory

import (
	"context"
	"sync"

	"github.com/bkunyiha/auth-service/internal/auth/domain"
)

// BannedTokenStore is an in-process revocation set. Entries are never
// evicted, so it is only acceptable where process lifetime is short
// (tests, single-node development).
type BannedTokenStore struct {
	mu     sync.RWMutex
	tokens map[string]struct{}
}

func NewBannedTokenStore() *BannedTokenStore {
	return &BannedTokenStore{tokens: make(map[string]struct{})}
}

func (s *BannedTokenStore) AddToken(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tokens[token]; ok {
		return domain.ErrTokenAlreadyBanned
	}
	s.tokens[token] = struct{}{}

	return nil
}

func (s *BannedTokenStore) ContainsToken(_ context.Context, token string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.tokens[token]

	return ok, nil
}

func (s *BannedTokenStore) GetToken(_ context.Context, token string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.tokens[token]; !ok {
		return "", domain.ErrTokenNotFound
	}

	return token, nil
}
