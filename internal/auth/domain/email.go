package domain

import (
	"fmt"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email is a syntactically validated address. The zero value is invalid;
// ParseEmail is the only way to construct one. It is comparable and safe to
// use as a map key.
type Email struct {
	addr string
}

// ParseEmail validates raw against an RFC-like pattern. It performs no I/O.
func ParseEmail(raw string) (Email, error) {
	if !emailPattern.MatchString(raw) {
		return Email{}, fmt.Errorf("invalid email format")
	}
	return Email{addr: raw}, nil
}

func (e Email) String() string {
	return e.addr
}

// Masked returns a redacted form for logs, e.g. "b***@example.com".
func (e Email) Masked() string {
	at := strings.IndexByte(e.addr, '@')
	if at <= 0 {
		return "***"
	}
	return e.addr[:1] + "***" + e.addr[at:]
}
