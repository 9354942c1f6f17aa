package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/bkunyiha/auth-service/internal/auth/domain"
	"github.com/bkunyiha/auth-service/pkg/constant"
)

// twoFATuple is the serialized (attempt id, code) pair stored per email.
type twoFATuple [2]string

// TwoFACodeStore keeps pending challenges in Redis under a per-email key
// with a 10 minute TTL. AddCode is an unconditional SET, so a repeated login
// overwrites the previous challenge: one live challenge per email.
type TwoFACodeStore struct {
	client *redis.Client
	logger *zap.Logger
}

func NewTwoFACodeStore(client *redis.Client, logger *zap.Logger) *TwoFACodeStore {
	return &TwoFACodeStore{
		client: client,
		logger: logger.Named("two_fa_code_store"),
	}
}

func (s *TwoFACodeStore) AddCode(ctx context.Context, email domain.Email, id domain.LoginAttemptID, code domain.TwoFACode) error {
	payload, err := json.Marshal(twoFATuple{id.String(), code.String()})
	if err != nil {
		return fmt.Errorf("marshal 2FA tuple: %w", err)
	}

	if err := s.client.Set(ctx, twoFACodeKey(email), payload, constant.TwoFACodeTTL).Err(); err != nil {
		s.logger.Error("failed to set 2FA code", zap.Error(err), zap.String("email", email.Masked()))
		return fmt.Errorf("set 2FA code: %w", err)
	}

	return nil
}

func (s *TwoFACodeStore) GetCode(ctx context.Context, email domain.Email) (domain.LoginAttemptID, domain.TwoFACode, error) {
	raw, err := s.client.Get(ctx, twoFACodeKey(email)).Result()
	if err == redis.Nil {
		return domain.LoginAttemptID{}, domain.TwoFACode{}, domain.ErrCodeNotFound
	}
	if err != nil {
		s.logger.Error("failed to get 2FA code", zap.Error(err), zap.String("email", email.Masked()))
		return domain.LoginAttemptID{}, domain.TwoFACode{}, fmt.Errorf("get 2FA code: %w", err)
	}

	var tuple twoFATuple
	if err := json.Unmarshal([]byte(raw), &tuple); err != nil {
		return domain.LoginAttemptID{}, domain.TwoFACode{}, fmt.Errorf("unmarshal 2FA tuple: %w", err)
	}

	id, err := domain.ParseLoginAttemptID(tuple[0])
	if err != nil {
		return domain.LoginAttemptID{}, domain.TwoFACode{}, fmt.Errorf("stored attempt id corrupt: %w", err)
	}
	code, err := domain.ParseTwoFACode(tuple[1])
	if err != nil {
		return domain.LoginAttemptID{}, domain.TwoFACode{}, fmt.Errorf("stored 2FA code corrupt: %w", err)
	}

	return id, code, nil
}

func (s *TwoFACodeStore) RemoveCode(ctx context.Context, email domain.Email) error {
	n, err := s.client.Del(ctx, twoFACodeKey(email)).Result()
	if err != nil {
		s.logger.Error("failed to delete 2FA code", zap.Error(err), zap.String("email", email.Masked()))
		return fmt.Errorf("delete 2FA code: %w", err)
	}
	if n == 0 {
		return domain.ErrCodeNotFound
	}

	return nil
}

func twoFACodeKey(email domain.Email) string {
	return constant.TwoFACodeKeyPrefix + email.String()
}
