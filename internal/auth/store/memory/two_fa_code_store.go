package memory

import (
	"context"
	"sync"

	"github.com/bkunyiha/auth-service/internal/auth/domain"
)

type challenge struct {
	id   domain.LoginAttemptID
	code domain.TwoFACode
}

// TwoFACodeStore holds at most one pending challenge per email. AddCode
// overwrites an existing challenge so a repeated login resends a fresh code
// without an explicit clear step.
type TwoFACodeStore struct {
	mu    sync.RWMutex
	codes map[domain.Email]challenge
}

func NewTwoFACodeStore() *TwoFACodeStore {
	return &TwoFACodeStore{codes: make(map[domain.Email]challenge)}
}

func (s *TwoFACodeStore) AddCode(_ context.Context, email domain.Email, id domain.LoginAttemptID, code domain.TwoFACode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.codes[email] = challenge{id: id, code: code}

	return nil
}

func (s *TwoFACodeStore) GetCode(_ context.Context, email domain.Email) (domain.LoginAttemptID, domain.TwoFACode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.codes[email]
	if !ok {
		return domain.LoginAttemptID{}, domain.TwoFACode{}, domain.ErrCodeNotFound
	}

	return c.id, c.code, nil
}

func (s *TwoFACodeStore) RemoveCode(_ context.Context, email domain.Email) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.codes[email]; !ok {
		return domain.ErrCodeNotFound
	}
	delete(s.codes, email)

	return nil
}
