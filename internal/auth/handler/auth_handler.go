package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/bkunyiha/auth-service/internal/auth/dto"
	"github.com/bkunyiha/auth-service/internal/auth/service"
	autherrors "github.com/bkunyiha/auth-service/internal/errors"
	"github.com/bkunyiha/auth-service/pkg/constant"
)

type AuthHandler struct {
	authService *service.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger.Named("auth_handler"),
	}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var input dto.SignupInput
	if err := c.BodyParser(&input); err != nil {
		return h.respondError(c, autherrors.ErrInvalidCredentials)
	}

	if err := h.authService.Signup(c.UserContext(), input); err != nil {
		return h.respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SignupResponse{
		Message: "User created successfully!",
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return h.respondError(c, autherrors.ErrInvalidCredentials)
	}

	result, err := h.authService.Login(c.UserContext(), input)
	if err != nil {
		return h.respondError(c, err)
	}

	if result.TwoFARequired {
		// Cookie deliberately withheld; the session starts after verify-2fa.
		return c.Status(fiber.StatusPartialContent).JSON(dto.TwoFactorAuthResponse{
			Message:        "2FA required",
			LoginAttemptID: result.LoginAttemptID,
		})
	}

	c.Cookie(newAuthCookie(result.Token, h.authService.TokenTTL()))

	return c.Status(fiber.StatusOK).JSON(fiber.Map{})
}

func (h *AuthHandler) Verify2FA(c *fiber.Ctx) error {
	var input dto.Verify2FAInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Error: "malformed request"})
	}

	token, err := h.authService.Verify2FA(c.UserContext(), input)
	if err != nil {
		return h.respondError(c, err)
	}

	c.Cookie(newAuthCookie(token, h.authService.TokenTTL()))

	return c.SendStatus(fiber.StatusOK)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token := c.Cookies(constant.JWTCookieName)
	if token == "" {
		return h.respondError(c, autherrors.ErrMissingToken)
	}

	if err := h.authService.Logout(c.UserContext(), token); err != nil {
		return h.respondError(c, err)
	}

	c.Cookie(clearedAuthCookie())

	return c.SendStatus(fiber.StatusOK)
}

func (h *AuthHandler) VerifyToken(c *fiber.Ctx) error {
	var input dto.VerifyTokenInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Error: "malformed request"})
	}

	cookieToken := c.Cookies(constant.JWTCookieName)
	if cookieToken == "" {
		return h.respondError(c, autherrors.ErrMissingToken)
	}

	if err := h.authService.VerifyToken(c.UserContext(), cookieToken, input.Token); err != nil {
		return h.respondError(c, err)
	}

	return c.SendStatus(fiber.StatusOK)
}

// respondError maps the client-facing taxonomy to stable status codes.
// Anything outside the taxonomy is logged with its cause and answered with
// a generic 500; internal causes are never serialized to the client.
func (h *AuthHandler) respondError(c *fiber.Ctx, err error) error {
	var status int

	switch {
	case errors.Is(err, autherrors.ErrInvalidCredentials),
		errors.Is(err, autherrors.ErrInvalidLoginAttempt),
		errors.Is(err, autherrors.ErrMissingToken):
		status = fiber.StatusBadRequest
	case errors.Is(err, autherrors.ErrIncorrectCredentials),
		errors.Is(err, autherrors.ErrInvalidToken):
		status = fiber.StatusUnauthorized
	case errors.Is(err, autherrors.ErrUserAlreadyExists):
		status = fiber.StatusConflict
	default:
		h.logger.Error("unexpected error", zap.Error(err), zap.String("path", c.Path()))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "unexpected error"})
	}

	return c.Status(status).JSON(dto.ErrorResponse{Error: err.Error()})
}
