package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/bkunyiha/auth-service/pkg/constant"
)

// newAuthCookie carries the session token. HttpOnly keeps scripts away from
// it; SameSite=Lax still sends it on top-level navigations.
func newAuthCookie(token string, ttl time.Duration) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     constant.JWTCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}

// clearedAuthCookie expires the session cookie immediately. Path must match
// the issued cookie or browsers keep the old one.
func clearedAuthCookie() *fiber.Cookie {
	return &fiber.Cookie{
		Name:     constant.JWTCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}
