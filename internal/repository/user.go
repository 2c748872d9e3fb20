package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/nyayasetu/nyayasetu/internal/model"
)

// Common errors for user repository operations.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailExists  = errors.New("email already exists")
)

// CreateUser inserts a new user into the database.
// Email uniqueness is enforced by the unique index on users.email;
// a violation maps to ErrEmailExists.
func (r *Repository) CreateUser(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (id, full_name, email, phone, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		user.ID,
		user.FullName,
		user.Email,
		user.Phone,
		user.PasswordHash,
		user.CreatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrEmailExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetUserByEmail retrieves a user by their email address.
// Callers must normalize the email to lowercase first.
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `
		SELECT id, full_name, email, phone, password_hash, reset_hash, reset_expires, created_at
		FROM users
		WHERE email = $1
	`

	return r.scanUser(r.pool.QueryRow(ctx, query, email))
}

// GetUserByID retrieves a user by their ID.
func (r *Repository) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	query := `
		SELECT id, full_name, email, phone, password_hash, reset_hash, reset_expires, created_at
		FROM users
		WHERE id = $1
	`

	return r.scanUser(r.pool.QueryRow(ctx, query, id))
}

// SetResetToken stores the hash and expiry of a password-reset token.
func (r *Repository) SetResetToken(ctx context.Context, userID, resetHash string, expires time.Time) error {
	query := `
		UPDATE users
		SET reset_hash = $2, reset_expires = $3
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, userID, resetHash, expires)
	if err != nil {
		return fmt.Errorf("failed to set reset token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

// ConsumeResetToken replaces the password hash of the user holding an
// unexpired reset token and clears the token in the same statement, so
// a token cannot be used twice.
func (r *Repository) ConsumeResetToken(ctx context.Context, resetHash, passwordHash string) error {
	query := `
		UPDATE users
		SET password_hash = $2, reset_hash = NULL, reset_expires = NULL
		WHERE reset_hash = $1 AND reset_expires > now()
	`

	tag, err := r.pool.Exec(ctx, query, resetHash, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to consume reset token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

// scanUser scans a single user row.
func (r *Repository) scanUser(row pgx.Row) (*model.User, error) {
	var user model.User
	var resetHash *string

	err := row.Scan(
		&user.ID,
		&user.FullName,
		&user.Email,
		&user.Phone,
		&user.PasswordHash,
		&resetHash,
		&user.ResetExpires,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}

	if resetHash != nil {
		user.ResetHash = *resetHash
	}

	return &user, nil
}
