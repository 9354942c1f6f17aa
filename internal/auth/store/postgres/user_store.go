package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/bkunyiha/auth-service/internal/auth/domain"
)

// DB is the subset of pgxpool.Pool the store needs. Satisfied by both the
// real pool and pgxmock.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// UserStore persists accounts in PostgreSQL. Passwords are stored as
// argon2id hashes; derivation and verification run through the store's
// bounded hasher, never inline on an unbounded number of request goroutines.
type UserStore struct {
	db     DB
	hasher *passwordHasher
	logger *zap.Logger
}

func NewUserStore(db DB, logger *zap.Logger) *UserStore {
	return &UserStore{
		db:     db,
		hasher: newPasswordHasher(),
		logger: logger.Named("postgres_user_store"),
	}
}

// AddUser hashes the password and inserts the record. The prior existence
// check is advisory; the unique constraint on email is the real guard, and a
// constraint violation surfaces as ErrUserAlreadyExists.
func (s *UserStore) AddUser(ctx context.Context, user domain.User) error {
	switch _, err := s.GetUser(ctx, user.Email); {
	case err == nil:
		return domain.ErrUserAlreadyExists
	case !errors.Is(err, domain.ErrUserNotFound):
		return err
	}

	hash, err := s.hasher.Hash(ctx, user.Password.Expose())
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	_, err = s.db.Exec(ctx,
		`INSERT INTO users (email, password_hash, requires_2fa) VALUES ($1, $2, $3)`,
		user.Email.String(), hash, user.Requires2FA)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrUserAlreadyExists
		}
		s.logger.Error("failed to insert user", zap.Error(err), zap.String("email", user.Email.Masked()))

		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (s *UserStore) GetUser(ctx context.Context, email domain.Email) (domain.User, error) {
	row := s.db.QueryRow(ctx,
		`SELECT email, password_hash, requires_2fa FROM users WHERE email = $1`,
		email.String())

	var (
		storedEmail string
		hash        string
		requires2FA bool
	)
	if err := row.Scan(&storedEmail, &hash, &requires2FA); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		s.logger.Error("failed to query user", zap.Error(err), zap.String("email", email.Masked()))

		return domain.User{}, fmt.Errorf("query user: %w", err)
	}

	// The hash is not a parseable Password (min length holds but the value is
	// derived); carry it through Password so it never prints unmasked.
	parsed, err := domain.ParseEmail(storedEmail)
	if err != nil {
		return domain.User{}, fmt.Errorf("stored email corrupt: %w", err)
	}
	password, err := domain.ParsePassword(hash)
	if err != nil {
		return domain.User{}, fmt.Errorf("stored hash corrupt: %w", err)
	}

	return domain.NewUser(parsed, password, requires2FA), nil
}

func (s *UserStore) ValidateUser(ctx context.Context, email domain.Email, password domain.Password) error {
	user, err := s.GetUser(ctx, email)
	if err != nil {
		return err
	}

	ok, err := s.hasher.Verify(ctx, password.Expose(), user.Password.Expose())
	if err != nil {
		return fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return domain.ErrInvalidUserCredentials
	}

	return nil
}
