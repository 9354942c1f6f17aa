package domain

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

// LoginAttemptID identifies one pending 2FA challenge. A fresh one is
// generated per login attempt; values received from clients are only
// accepted through ParseLoginAttemptID.
type LoginAttemptID struct {
	id string
}

// NewLoginAttemptID generates a random version 4 UUID.
func NewLoginAttemptID() LoginAttemptID {
	return LoginAttemptID{id: uuid.NewString()}
}

// ParseLoginAttemptID validates raw as UUID syntax.
func ParseLoginAttemptID(raw string) (LoginAttemptID, error) {
	parsed, err := uuid.Parse(raw)
	if err != nil {
		return LoginAttemptID{}, fmt.Errorf("invalid login attempt id: %w", err)
	}
	return LoginAttemptID{id: parsed.String()}, nil
}

func (l LoginAttemptID) String() string {
	return l.id
}

// TwoFACode is a 6-digit numeric challenge code.
type TwoFACode struct {
	code string
}

const (
	twoFACodeMin = 100000
	twoFACodeMax = 999999
)

// NewTwoFACode draws a code uniformly from [100000, 999999].
func NewTwoFACode() (TwoFACode, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(twoFACodeMax-twoFACodeMin+1))
	if err != nil {
		return TwoFACode{}, fmt.Errorf("generate 2FA code: %w", err)
	}
	return TwoFACode{code: fmt.Sprintf("%06d", n.Int64()+twoFACodeMin)}, nil
}

// ParseTwoFACode validates raw as exactly six digits.
func ParseTwoFACode(raw string) (TwoFACode, error) {
	if len(raw) != 6 {
		return TwoFACode{}, fmt.Errorf("2FA code must be 6 digits")
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return TwoFACode{}, fmt.Errorf("2FA code must be 6 digits")
		}
	}
	return TwoFACode{code: raw}, nil
}

func (c TwoFACode) String() string {
	return c.code
}
