// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/oklog/ulid/v2"

	"github.com/nyayasetu/nyayasetu/internal/auth"
	"github.com/nyayasetu/nyayasetu/internal/metrics"
	"github.com/nyayasetu/nyayasetu/internal/model"
	"github.com/nyayasetu/nyayasetu/internal/repository"
)

// Auth service errors.
var (
	ErrInvalidFullName = errors.New("full name is required")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrInvalidPhone    = errors.New("invalid phone number")
	ErrWeakPassword    = errors.New("password must be at least 8 characters with an uppercase letter, a lowercase letter and a digit")
	ErrEmailTaken      = errors.New("email already registered")
	// ErrInvalidCredentials is returned for both unknown email and
	// wrong password so a caller cannot tell which half failed.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
)

var (
	// Basic local@domain.tld shape; full RFC validation is not the goal.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)
	// Optional leading +, then digits, spaces, hyphens, parentheses.
	phoneRegex = regexp.MustCompile(`^\+?[0-9\s\-()]+$`)
)

const minPhoneLength = 10

// UserStore is the persistence surface AuthService depends on.
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	SetResetToken(ctx context.Context, userID, resetHash string, expires time.Time) error
	ConsumeResetToken(ctx context.Context, resetHash, passwordHash string) error
}

// MailSender delivers password-reset mail.
type MailSender interface {
	SendPasswordReset(to, name, link string) error
}

// AuthService handles signup, login and password reset.
type AuthService struct {
	users       UserStore
	tokens      *auth.TokenIssuer
	mailer      MailSender
	frontendURL string
	resetTTL    time.Duration
	metrics     metrics.Recorder
	logger      *slog.Logger
}

// NewAuthService creates an AuthService.
func NewAuthService(
	users UserStore,
	tokens *auth.TokenIssuer,
	mailer MailSender,
	frontendURL string,
	resetTTL time.Duration,
	recorder metrics.Recorder,
	logger *slog.Logger,
) *AuthService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &AuthService{
		users:       users,
		tokens:      tokens,
		mailer:      mailer,
		frontendURL: strings.TrimSuffix(frontendURL, "/"),
		resetTTL:    resetTTL,
		metrics:     recorder,
		logger:      logger,
	}
}

// SignupInput defines input for creating an account.
type SignupInput struct {
	FullName string
	Email    string
	Phone    string
	Password string
}

// AuthResult is returned on successful signup or login.
type AuthResult struct {
	User  *model.User
	Token string
}

// Signup validates the input, creates the user and issues a token.
// All validation happens before any persistence.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*AuthResult, error) {
	fullName := strings.TrimSpace(input.FullName)
	if fullName == "" {
		s.metrics.IncSignup(false)
		return nil, ErrInvalidFullName
	}

	email := NormalizeEmail(input.Email)
	if !emailRegex.MatchString(email) {
		s.metrics.IncSignup(false)
		return nil, ErrInvalidEmail
	}

	phone := strings.TrimSpace(input.Phone)
	if len(phone) < minPhoneLength || !phoneRegex.MatchString(phone) {
		s.metrics.IncSignup(false)
		return nil, ErrInvalidPhone
	}

	if !validPassword(input.Password) {
		s.metrics.IncSignup(false)
		return nil, ErrWeakPassword
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		s.metrics.IncSignup(false)
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           ulid.Make().String(),
		FullName:     fullName,
		Email:        email,
		Phone:        phone,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		s.metrics.IncSignup(false)
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		s.metrics.IncSignup(false)
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.metrics.IncSignup(true)
	s.logger.Info("user_signed_up", "user_id", user.ID)

	return &AuthResult{User: user, Token: token}, nil
}

// Login verifies credentials and issues a token.
// Unknown email and wrong password both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.GetUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		s.metrics.IncLogin(false)
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	match, err := auth.VerifyPassword(password, user.PasswordHash)
	if err != nil || !match {
		s.metrics.IncLogin(false)
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		s.metrics.IncLogin(false)
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.metrics.IncLogin(true)
	s.logger.Info("user_logged_in", "user_id", user.ID)

	return &AuthResult{User: user, Token: token}, nil
}

// ForgotPassword issues a reset token and mails a reset link.
// An unknown email is treated as success so the endpoint does not
// reveal which addresses have accounts.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.GetUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil
		}
		return fmt.Errorf("get user: %w", err)
	}

	token, err := auth.GenerateResetToken()
	if err != nil {
		return err
	}

	expires := time.Now().UTC().Add(s.resetTTL)
	if err := s.users.SetResetToken(ctx, user.ID, token.Hash, expires); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", s.frontendURL, token.Plaintext)
	if err := s.mailer.SendPasswordReset(user.Email, user.FullName, link); err != nil {
		s.logger.Error("reset_mail_failed", "user_id", user.ID, "error", err)
		return fmt.Errorf("send reset mail: %w", err)
	}

	s.logger.Info("reset_token_issued", "user_id", user.ID)
	return nil
}

// ResetPassword consumes a reset token and replaces the password.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if !validPassword(newPassword) {
		return ErrWeakPassword
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.users.ConsumeResetToken(ctx, auth.HashResetToken(token), hash); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrInvalidResetToken
		}
		return fmt.Errorf("consume reset token: %w", err)
	}

	return nil
}

// NormalizeEmail lowercases and trims an email address.
// Normalization happens before every uniqueness check and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validPassword enforces length >= 8 with at least one lowercase
// letter, one uppercase letter and one digit.
func validPassword(password string) bool {
	if len(password) < 8 {
		return false
	}

	var hasLower, hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	return hasLower && hasUpper && hasDigit
}
