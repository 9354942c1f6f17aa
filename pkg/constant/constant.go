package constant

import "time"

// JWTCookieName is the cookie that carries the session token.
const JWTCookieName = "jwt"

// TokenTTL is how long an issued session token stays valid.
const TokenTTL = 10 * time.Minute

// TwoFACodeTTL is how long a pending 2FA challenge stays redeemable.
const TwoFACodeTTL = 10 * time.Minute

// Redis key prefixes, kept distinct to avoid collisions between the
// revocation list and the challenge store.
const (
	BannedTokenKeyPrefix = "banned_token:"
	TwoFACodeKeyPrefix   = "two_fa_code:"
)
