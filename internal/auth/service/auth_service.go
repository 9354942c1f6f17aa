package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/bkunyiha/auth-service/internal/auth/domain"
	"github.com/bkunyiha/auth-service/internal/auth/dto"
	autherrors "github.com/bkunyiha/auth-service/internal/errors"
)

// LoginResult is the outcome of a successful credential check. Exactly one
// branch is populated: Token on the single-factor path, LoginAttemptID when
// the account requires a second factor and the session is deferred.
type LoginResult struct {
	Token          string
	TwoFARequired  bool
	LoginAttemptID string
}

// AuthService drives the login state machine: credential validation, the
// 2FA branch, token issuance and revocation.
type AuthService struct {
	users  domain.UserStore
	codes  domain.TwoFACodeStore
	banned domain.BannedTokenStore
	email  domain.EmailClient
	tokens *TokenService
	logger *zap.Logger
}

func NewAuthService(
	users domain.UserStore,
	codes domain.TwoFACodeStore,
	banned domain.BannedTokenStore,
	email domain.EmailClient,
	tokens *TokenService,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		users:  users,
		codes:  codes,
		banned: banned,
		email:  email,
		tokens: tokens,
		logger: logger.Named("auth_service"),
	}
}

// TokenTTL exposes the session token lifetime for cookie expiry.
func (s *AuthService) TokenTTL() time.Duration {
	return s.tokens.TTL()
}

// Signup parses the credentials and creates the account. The existence check
// inside the user store is advisory; its unique constraint is what actually
// guards against concurrent signups.
func (s *AuthService) Signup(ctx context.Context, input dto.SignupInput) error {
	email, err := domain.ParseEmail(input.Email)
	if err != nil {
		return autherrors.ErrInvalidCredentials
	}
	password, err := domain.ParsePassword(input.Password)
	if err != nil {
		return autherrors.ErrInvalidCredentials
	}

	user := domain.NewUser(email, password, input.Requires2FA)
	if err := s.users.AddUser(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			return autherrors.ErrUserAlreadyExists
		}
		return fmt.Errorf("add user: %w", err)
	}

	s.logger.Info("user created", zap.String("email", email.Masked()))

	return nil
}

// Login validates credentials and branches on the account's 2FA setting.
func (s *AuthService) Login(ctx context.Context, input dto.LoginInput) (*LoginResult, error) {
	email, err := domain.ParseEmail(input.Email)
	if err != nil {
		return nil, autherrors.ErrInvalidCredentials
	}
	password, err := domain.ParsePassword(input.Password)
	if err != nil {
		return nil, autherrors.ErrInvalidCredentials
	}

	if err := s.users.ValidateUser(ctx, email, password); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrInvalidUserCredentials) {
			return nil, autherrors.ErrIncorrectCredentials
		}
		return nil, fmt.Errorf("validate user: %w", err)
	}

	user, err := s.users.GetUser(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, autherrors.ErrIncorrectCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if user.Requires2FA {
		return s.startTwoFAChallenge(ctx, email)
	}

	token, err := s.tokens.Issue(email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &LoginResult{Token: token}, nil
}

// startTwoFAChallenge stores a fresh challenge and delivers the code. The
// challenge must be persisted before the notification is attempted, and a
// notification failure aborts the login: the two succeed or fail as a unit.
func (s *AuthService) startTwoFAChallenge(ctx context.Context, email domain.Email) (*LoginResult, error) {
	attemptID := domain.NewLoginAttemptID()
	code, err := domain.NewTwoFACode()
	if err != nil {
		return nil, fmt.Errorf("generate 2FA code: %w", err)
	}

	if err := s.codes.AddCode(ctx, email, attemptID, code); err != nil {
		return nil, fmt.Errorf("store 2FA challenge: %w", err)
	}

	if err := s.email.SendEmail(ctx, email, "2FA Code", code.String()); err != nil {
		return nil, fmt.Errorf("send 2FA code: %w", err)
	}

	s.logger.Info("2FA challenge issued", zap.String("email", email.Masked()))

	return &LoginResult{TwoFARequired: true, LoginAttemptID: attemptID.String()}, nil
}

// Verify2FA resumes a deferred login. An attempt-id mismatch is reported as
// a different error class than a wrong code so clients can tell a stale or
// foreign attempt from a typo. A consumed challenge is removed before the
// token is issued; replaying the same pair fails.
func (s *AuthService) Verify2FA(ctx context.Context, input dto.Verify2FAInput) (string, error) {
	email, err := domain.ParseEmail(input.Email)
	if err != nil {
		return "", autherrors.ErrInvalidCredentials
	}
	attemptID, err := domain.ParseLoginAttemptID(input.LoginAttemptID)
	if err != nil {
		return "", autherrors.ErrInvalidCredentials
	}
	code, err := domain.ParseTwoFACode(input.TwoFACode)
	if err != nil {
		return "", autherrors.ErrInvalidCredentials
	}

	storedID, storedCode, err := s.codes.GetCode(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrCodeNotFound) {
			return "", autherrors.ErrIncorrectCredentials
		}
		return "", fmt.Errorf("get 2FA challenge: %w", err)
	}

	if storedID.String() != attemptID.String() {
		return "", autherrors.ErrInvalidLoginAttempt
	}
	if storedCode.String() != code.String() {
		return "", autherrors.ErrIncorrectCredentials
	}

	// Single use: the challenge is consumed before the token exists. A
	// concurrent verify that lost the race sees the code as already gone.
	if err := s.codes.RemoveCode(ctx, email); err != nil {
		if errors.Is(err, domain.ErrCodeNotFound) {
			return "", autherrors.ErrIncorrectCredentials
		}
		return "", fmt.Errorf("remove 2FA challenge: %w", err)
	}

	token, err := s.tokens.Issue(email)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	return token, nil
}

// Logout verifies the presented token and adds it to the revocation store.
// The caller maps a missing cookie to ErrMissingToken before reaching here.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if _, err := s.tokens.Verify(ctx, token); err != nil {
		return autherrors.ErrInvalidToken
	}

	if err := s.banned.AddToken(ctx, token); err != nil && !errors.Is(err, domain.ErrTokenAlreadyBanned) {
		return fmt.Errorf("ban token: %w", err)
	}

	return nil
}

// VerifyToken is a side query: revocation first, then cryptographic
// validity, then a cross-check of the caller-supplied value against the
// session cookie.
func (s *AuthService) VerifyToken(ctx context.Context, cookieToken, requestToken string) error {
	banned, err := s.banned.ContainsToken(ctx, requestToken)
	if err != nil {
		return fmt.Errorf("check revocation store: %w", err)
	}
	if banned {
		return autherrors.ErrInvalidToken
	}

	if _, err := s.tokens.Verify(ctx, cookieToken); err != nil {
		return autherrors.ErrInvalidToken
	}
	if cookieToken != requestToken {
		return autherrors.ErrInvalidToken
	}

	return nil
}
