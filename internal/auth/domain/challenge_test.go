package domain_test

import (
	"strconv"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bkunyiha/auth-service/internal/auth/domain"
)

func TestParseLoginAttemptID(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "valid uuid", raw: "550e8400-e29b-41d4-a716-446655440000", wantErr: false},
		{name: "empty", raw: "", wantErr: true},
		{name: "not a uuid", raw: "not-a-uuid", wantErr: true},
		{name: "truncated", raw: "550e8400-e29b-41d4-a716", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := domain.ParseLoginAttemptID(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.raw, id.String())
		})
	}
}

func TestNewLoginAttemptID(t *testing.T) {
	a := domain.NewLoginAttemptID()
	b := domain.NewLoginAttemptID()

	_, err := uuid.Parse(a.String())
	require.NoError(t, err)
	assert.NotEqual(t, a.String(), b.String())
}

func TestParseTwoFACode(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "valid", raw: "123456", wantErr: false},
		{name: "lower bound", raw: "100000", wantErr: false},
		{name: "leading zero accepted as digits", raw: "012345", wantErr: false},
		{name: "empty", raw: "", wantErr: true},
		{name: "too short", raw: "12345", wantErr: true},
		{name: "too long", raw: "1234567", wantErr: true},
		{name: "non-numeric", raw: "12a456", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := domain.ParseTwoFACode(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.raw, code.String())
		})
	}
}

func TestNewTwoFACodeRange(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := domain.NewTwoFACode()
		require.NoError(t, err)

		n, err := strconv.Atoi(code.String())
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}
