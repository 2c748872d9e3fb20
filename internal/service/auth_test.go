package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/nyayasetu/nyayasetu/internal/auth"
	"github.com/nyayasetu/nyayasetu/internal/model"
	"github.com/nyayasetu/nyayasetu/internal/repository"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeUserStore is an in-memory UserStore keyed by normalized email.
type fakeUserStore struct {
	users map[string]*model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*model.User)}
}

func (f *fakeUserStore) CreateUser(ctx context.Context, user *model.User) error {
	if _, ok := f.users[user.Email]; ok {
		return repository.ErrEmailExists
	}
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserStore) SetResetToken(ctx context.Context, userID, resetHash string, expires time.Time) error {
	for _, u := range f.users {
		if u.ID == userID {
			u.ResetHash = resetHash
			u.ResetExpires = &expires
			return nil
		}
	}
	return repository.ErrUserNotFound
}

func (f *fakeUserStore) ConsumeResetToken(ctx context.Context, resetHash, passwordHash string) error {
	for _, u := range f.users {
		if u.ResetHash == resetHash && u.ResetExpires != nil && u.ResetExpires.After(time.Now()) {
			u.PasswordHash = passwordHash
			u.ResetHash = ""
			u.ResetExpires = nil
			return nil
		}
	}
	return repository.ErrUserNotFound
}

// fakeMailer records sent reset links.
type fakeMailer struct {
	sent []string
	err  error
}

func (f *fakeMailer) SendPasswordReset(to, name, link string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, link)
	return nil
}

func newTestAuthService(store *fakeUserStore, mailer *fakeMailer) *AuthService {
	tokens := auth.NewTokenIssuer("test-secret", time.Hour)
	return NewAuthService(store, tokens, mailer, "https://app.example.com", time.Hour, nil, testLogger())
}

func validSignup() SignupInput {
	return SignupInput{
		FullName: "Asha Kulkarni",
		Email:    "asha@example.com",
		Phone:    "+91 98765 43210",
		Password: "Str0ngPass",
	}
}

func TestAuthService_Signup(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	svc := newTestAuthService(store, &fakeMailer{})

	result, err := svc.Signup(context.Background(), validSignup())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.User.ID == "" {
		t.Error("expected a generated user id")
	}
	if result.Token == "" {
		t.Error("expected a bearer token")
	}
	if result.User.Email != "asha@example.com" {
		t.Errorf("unexpected email: %s", result.User.Email)
	}
	if result.User.PasswordHash == "Str0ngPass" {
		t.Error("password must not be stored in plaintext")
	}
}

func TestAuthService_Signup_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*SignupInput)
		wantErr error
	}{
		{"empty name", func(in *SignupInput) { in.FullName = "  " }, ErrInvalidFullName},
		{"bad email", func(in *SignupInput) { in.Email = "not-an-email" }, ErrInvalidEmail},
		{"email without tld", func(in *SignupInput) { in.Email = "a@b" }, ErrInvalidEmail},
		{"short phone", func(in *SignupInput) { in.Phone = "12345" }, ErrInvalidPhone},
		{"alpha phone", func(in *SignupInput) { in.Phone = "call-me-maybe" }, ErrInvalidPhone},
		{"short password", func(in *SignupInput) { in.Password = "Ab1" }, ErrWeakPassword},
		{"no uppercase", func(in *SignupInput) { in.Password = "weakpass1" }, ErrWeakPassword},
		{"no digit", func(in *SignupInput) { in.Password = "WeakPassword" }, ErrWeakPassword},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := newTestAuthService(newFakeUserStore(), &fakeMailer{})

			input := validSignup()
			tt.mutate(&input)

			_, err := svc.Signup(context.Background(), input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	svc := newTestAuthService(store, &fakeMailer{})

	if _, err := svc.Signup(context.Background(), validSignup()); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}

	// Same address with different case still collides.
	input := validSignup()
	input.Email = "ASHA@Example.Com"

	_, err := svc.Signup(context.Background(), input)
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	svc := newTestAuthService(store, &fakeMailer{})

	if _, err := svc.Signup(context.Background(), validSignup()); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	result, err := svc.Login(context.Background(), "  Asha@Example.com ", "Str0ngPass")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Token == "" {
		t.Error("expected a bearer token")
	}
}

func TestAuthService_Login_OpaqueFailures(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	svc := newTestAuthService(store, &fakeMailer{})

	if _, err := svc.Signup(context.Background(), validSignup()); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	// Unknown email and wrong password must be indistinguishable.
	_, errUnknown := svc.Login(context.Background(), "nobody@example.com", "Str0ngPass")
	_, errWrong := svc.Login(context.Background(), "asha@example.com", "WrongPass1")

	if !errors.Is(errUnknown, ErrInvalidCredentials) {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", errUnknown)
	}
	if !errors.Is(errWrong, ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", errWrong)
	}
}

func TestAuthService_PasswordResetFlow(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	mailer := &fakeMailer{}
	svc := newTestAuthService(store, mailer)

	if _, err := svc.Signup(context.Background(), validSignup()); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	if err := svc.ForgotPassword(context.Background(), "asha@example.com"); err != nil {
		t.Fatalf("forgot password failed: %v", err)
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("expected 1 reset mail, got %d", len(mailer.sent))
	}

	// Extract the plaintext token from the mailed link.
	link := mailer.sent[0]
	const marker = "?token="
	idx := strings.Index(link, marker)
	if idx < 0 {
		t.Fatalf("unexpected reset link shape: %s", link)
	}
	token := link[idx+len(marker):]

	if err := svc.ResetPassword(context.Background(), token, "N3wPassword"); err != nil {
		t.Fatalf("reset password failed: %v", err)
	}

	// Old password no longer works, new one does.
	if _, err := svc.Login(context.Background(), "asha@example.com", "Str0ngPass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("old password should be rejected, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "asha@example.com", "N3wPassword"); err != nil {
		t.Errorf("new password should work, got %v", err)
	}

	// Token is single use.
	if err := svc.ResetPassword(context.Background(), token, "An0therPass"); !errors.Is(err, ErrInvalidResetToken) {
		t.Errorf("expected ErrInvalidResetToken on reuse, got %v", err)
	}
}

func TestAuthService_ForgotPassword_UnknownEmail(t *testing.T) {
	t.Parallel()

	mailer := &fakeMailer{}
	svc := newTestAuthService(newFakeUserStore(), mailer)

	// Unknown address reports success and sends nothing.
	if err := svc.ForgotPassword(context.Background(), "nobody@example.com"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(mailer.sent) != 0 {
		t.Errorf("expected no mail, got %d", len(mailer.sent))
	}
}

func TestAuthService_ResetPassword_WeakPassword(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(newFakeUserStore(), &fakeMailer{})

	if err := svc.ResetPassword(context.Background(), "sometoken", "weak"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
}

func TestAuthService_ResetPassword_InvalidToken(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(newFakeUserStore(), &fakeMailer{})

	if err := svc.ResetPassword(context.Background(), "bogus", "N3wPassword"); !errors.Is(err, ErrInvalidResetToken) {
		t.Fatalf("expected ErrInvalidResetToken, got %v", err)
	}
}

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"User@Example.COM", "user@example.com"},
		{"  user@example.com  ", "user@example.com"},
		{"user@example.com", "user@example.com"},
	}

	for _, tt := range tests {
		if got := NormalizeEmail(tt.in); got != tt.want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	// Idempotence: normalizing twice changes nothing.
	once := NormalizeEmail("User@Example.COM")
	if NormalizeEmail(once) != once {
		t.Error("normalization should be idempotent")
	}
}
