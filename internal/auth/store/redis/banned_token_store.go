package redis

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/bkunyiha/auth-service/internal/auth/domain"
	"github.com/bkunyiha/auth-service/pkg/constant"
)

// BannedTokenStore keeps revoked tokens in Redis. Each entry carries a TTL
// equal to the token TTL, so the revocation list self-prunes: an entry
// expires exactly when the token it bans would have expired anyway.
type BannedTokenStore struct {
	client *redis.Client
	logger *zap.Logger
}

func NewBannedTokenStore(client *redis.Client, logger *zap.Logger) *BannedTokenStore {
	return &BannedTokenStore{
		client: client,
		logger: logger.Named("banned_token_store"),
	}
}

func (s *BannedTokenStore) AddToken(ctx context.Context, token string) error {
	key := bannedTokenKey(token)
	if err := s.client.Set(ctx, key, "true", constant.TokenTTL).Err(); err != nil {
		s.logger.Error("failed to set banned token", zap.Error(err))
		return fmt.Errorf("set banned token: %w", err)
	}

	return nil
}

func (s *BannedTokenStore) ContainsToken(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, bannedTokenKey(token)).Result()
	if err != nil {
		s.logger.Error("failed to check banned token", zap.Error(err))
		return false, fmt.Errorf("check banned token: %w", err)
	}

	return n > 0, nil
}

func (s *BannedTokenStore) GetToken(ctx context.Context, token string) (string, error) {
	_, err := s.client.Get(ctx, bannedTokenKey(token)).Result()
	if err == redis.Nil {
		return "", domain.ErrTokenNotFound
	}
	if err != nil {
		s.logger.Error("failed to get banned token", zap.Error(err))
		return "", fmt.Errorf("get banned token: %w", err)
	}

	return token, nil
}

func bannedTokenKey(token string) string {
	return constant.BannedTokenKeyPrefix + token
}
