package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bkunyiha/auth-service/internal/auth/domain"
	"github.com/bkunyiha/auth-service/internal/auth/store/memory"
)

func TestBannedTokenStoreAddToken(t *testing.T) {
	store := memory.NewBannedTokenStore()
	ctx := context.Background()

	require.NoError(t, store.AddToken(ctx, "token-1"))

	err := store.AddToken(ctx, "token-1")
	assert.ErrorIs(t, err, domain.ErrTokenAlreadyBanned)
}

func TestBannedTokenStoreContainsToken(t *testing.T) {
	store := memory.NewBannedTokenStore()
	ctx := context.Background()

	banned, err := store.ContainsToken(ctx, "token-1")
	require.NoError(t, err)
	assert.False(t, banned)

	require.NoError(t, store.AddToken(ctx, "token-1"))

	banned, err = store.ContainsToken(ctx, "token-1")
	require.NoError(t, err)
	assert.True(t, banned)
}

func TestBannedTokenStoreGetToken(t *testing.T) {
	store := memory.NewBannedTokenStore()
	ctx := context.Background()

	_, err := store.GetToken(ctx, "token-1")
	assert.ErrorIs(t, err, domain.ErrTokenNotFound)

	require.NoError(t, store.AddToken(ctx, "token-1"))

	got, err := store.GetToken(ctx, "token-1")
	require.NoError(t, err)
	assert.Equal(t, "token-1", got)
}
