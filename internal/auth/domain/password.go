package domain

import (
	"crypto/subtle"
	"fmt"
)

const minPasswordLength = 8

// Password wraps the raw secret so it cannot leak through logging or
// formatting. String always returns a masked value; Expose is the single
// deliberate way to reach the secret (hashing, in-memory comparison).
type Password struct {
	secret string
}

// ParsePassword enforces the minimum-length policy. It performs no I/O.
func ParsePassword(raw string) (Password, error) {
	if len(raw) < minPasswordLength {
		return Password{}, fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}
	return Password{secret: raw}, nil
}

// Equal compares the raw secrets in constant time. Only the in-memory user
// store compares plaintext; persistent stores compare against a hash.
func (p Password) Equal(other Password) bool {
	return subtle.ConstantTimeCompare([]byte(p.secret), []byte(other.secret)) == 1
}

// Expose returns the raw secret.
func (p Password) Expose() string {
	return p.secret
}

func (p Password) String() string {
	return "******"
}
