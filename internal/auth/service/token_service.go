package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bkunyiha/auth-service/internal/auth/domain"
	"github.com/bkunyiha/auth-service/pkg/constant"
)

// ErrTokenBanned reports a token that verifies cryptographically but has
// been revoked.
var ErrTokenBanned = errors.New("token is banned")

type Claims struct {
	jwt.RegisteredClaims
}

// TokenService issues signed, expiring session tokens and verifies them
// against the revocation store.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	banned domain.BannedTokenStore
}

// NewTokenService rejects an empty secret; the caller treats that as a fatal
// startup misconfiguration.
func NewTokenService(secret string, banned domain.BannedTokenStore) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("token signing secret must not be empty")
	}

	return &TokenService{
		secret: []byte(secret),
		ttl:    constant.TokenTTL,
		banned: banned,
	}, nil
}

// Issue signs a claim set with subject = email and expiry = now + TTL.
func (ts *TokenService) Issue(email domain.Email) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ts.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return token, nil
}

// Verify checks the revocation store before any cryptographic verification:
// a syntactically valid, unexpired, but revoked token must still fail. That
// ordering closes the logout-then-replay window.
func (ts *TokenService) Verify(ctx context.Context, token string) (*Claims, error) {
	banned, err := ts.banned.ContainsToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("check revocation store: %w", err)
	}
	if banned {
		return nil, ErrTokenBanned
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return ts.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !parsed.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// TTL is the validity window of issued tokens; the session cookie uses it as
// its lifetime.
func (ts *TokenService) TTL() time.Duration {
	return ts.ttl
}
