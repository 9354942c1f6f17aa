package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bkunyiha/auth-service/internal/auth/domain"
	"github.com/bkunyiha/auth-service/internal/auth/service"
	"github.com/bkunyiha/auth-service/internal/auth/store/memory"
)

const testSecret = "test-secret-key"

func newTokenService(t *testing.T) (*service.TokenService, *memory.BannedTokenStore) {
	t.Helper()
	banned := memory.NewBannedTokenStore()
	ts, err := service.NewTokenService(testSecret, banned)
	require.NoError(t, err)
	return ts, banned
}

func TestNewTokenServiceEmptySecret(t *testing.T) {
	_, err := service.NewTokenService("", memory.NewBannedTokenStore())
	assert.Error(t, err)
}

func TestTokenServiceIssue(t *testing.T) {
	ts, _ := newTokenService(t)
	email, err := domain.ParseEmail("test@example.com")
	require.NoError(t, err)

	token, err := ts.Issue(email)
	require.NoError(t, err)
	assert.Equal(t, 3, len(strings.Split(token, ".")))
}

func TestTokenServiceVerifyValidToken(t *testing.T) {
	ts, _ := newTokenService(t)
	email, err := domain.ParseEmail("test@example.com")
	require.NoError(t, err)

	before := time.Now()
	token, err := ts.Issue(email)
	require.NoError(t, err)

	claims, err := ts.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "test@example.com", claims.Subject)

	// Expiry sits a full TTL out, give or take the test's own runtime.
	wantExp := before.Add(ts.TTL())
	assert.WithinDuration(t, wantExp, claims.ExpiresAt.Time, 5*time.Second)
}

func TestTokenServiceVerifyMalformed(t *testing.T) {
	ts, _ := newTokenService(t)

	_, err := ts.Verify(context.Background(), "not-a-token")
	assert.Error(t, err)
}

func TestTokenServiceVerifyWrongSecret(t *testing.T) {
	ts, _ := newTokenService(t)

	other, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "test@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("different-secret"))
	require.NoError(t, err)

	_, err = ts.Verify(context.Background(), other)
	assert.Error(t, err)
}

func TestTokenServiceVerifyExpired(t *testing.T) {
	ts, _ := newTokenService(t)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "test@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ts.Verify(context.Background(), expired)
	assert.Error(t, err)
}

func TestTokenServiceVerifyRejectsWrongAlgorithm(t *testing.T) {
	ts, _ := newTokenService(t)

	// alg=none tokens must never verify.
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "test@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ts.Verify(context.Background(), unsigned)
	assert.Error(t, err)
}

func TestTokenServiceVerifyBannedToken(t *testing.T) {
	ts, banned := newTokenService(t)
	email, err := domain.ParseEmail("test@example.com")
	require.NoError(t, err)

	token, err := ts.Issue(email)
	require.NoError(t, err)

	require.NoError(t, banned.AddToken(context.Background(), token))

	_, err = ts.Verify(context.Background(), token)
	assert.ErrorIs(t, err, service.ErrTokenBanned)
}

// The revocation check runs before any cryptographic work: a banned value
// that is not even a JWT still reports banned, not malformed.
func TestTokenServiceRevocationCheckedFirst(t *testing.T) {
	ts, banned := newTokenService(t)

	require.NoError(t, banned.AddToken(context.Background(), "garbage-value"))

	_, err := ts.Verify(context.Background(), "garbage-value")
	assert.ErrorIs(t, err, service.ErrTokenBanned)
}
