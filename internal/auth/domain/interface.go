package domain

//go:generate mockgen -destination=../../mocks/mock_domain.go -package=mocks github.com/bkunyiha/auth-service/internal/auth/domain UserStore,BannedTokenStore,TwoFACodeStore,EmailClient

import (
	"context"
	"errors"
)

// Store-level sentinel errors. Services translate these into the
// client-facing taxonomy; backends wrap their underlying cause with %w so
// diagnostics survive the translation.
var (
	ErrUserAlreadyExists      = errors.New("user already exists in store")
	ErrUserNotFound           = errors.New("user not found")
	ErrInvalidUserCredentials = errors.New("invalid user credentials")
	ErrTokenAlreadyBanned     = errors.New("token already banned")
	ErrTokenNotFound          = errors.New("token not found")
	ErrCodeNotFound           = errors.New("2FA code not found")
)

// UserStore persists account records and validates credentials. Whether the
// stored password is plaintext or a hash is the backend's decision: the
// in-memory store compares raw secrets, the relational store compares
// against a derived hash.
type UserStore interface {
	AddUser(ctx context.Context, user User) error
	GetUser(ctx context.Context, email Email) (User, error)
	ValidateUser(ctx context.Context, email Email, password Password) error
}

// BannedTokenStore is the set of revoked session tokens. A token present
// here is never valid again, even before its cryptographic expiry.
type BannedTokenStore interface {
	AddToken(ctx context.Context, token string) error
	ContainsToken(ctx context.Context, token string) (bool, error)
	GetToken(ctx context.Context, token string) (string, error)
}

// TwoFACodeStore keeps at most one pending challenge per email. AddCode
// overwrites any existing challenge for the same email so a repeated login
// acts as a code resend.
type TwoFACodeStore interface {
	AddCode(ctx context.Context, email Email, id LoginAttemptID, code TwoFACode) error
	GetCode(ctx context.Context, email Email) (LoginAttemptID, TwoFACode, error)
	RemoveCode(ctx context.Context, email Email) error
}

// EmailClient delivers a 2FA code out-of-band. Transport details (SMTP,
// REST relay, test double) are behind this port.
type EmailClient interface {
	SendEmail(ctx context.Context, recipient Email, subject, content string) error
}
