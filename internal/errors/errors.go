package errors

import (
	"errors"
)

// Client-facing error taxonomy. Handlers translate these into stable status
// codes; anything outside this set is treated as an unexpected server fault
// and never echoed to the client beyond a generic message.
var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrIncorrectCredentials = errors.New("incorrect credentials")
	ErrUserAlreadyExists    = errors.New("user already exists")
	ErrInvalidLoginAttempt  = errors.New("invalid login attempt id")
	ErrMissingToken         = errors.New("missing token")
	ErrInvalidToken         = errors.New("invalid token")
)
