package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/nyayasetu/nyayasetu/internal/model"
	"github.com/nyayasetu/nyayasetu/internal/service"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeAuthProvider returns canned results per call.
type fakeAuthProvider struct {
	signupErr error
	loginErr  error
	forgotErr error
	resetErr  error
}

func (f *fakeAuthProvider) result() *service.AuthResult {
	return &service.AuthResult{
		User: &model.User{
			ID:        "user-1",
			FullName:  "Asha Kulkarni",
			Email:     "asha@example.com",
			Phone:     "+91 98765 43210",
			CreatedAt: time.Now().UTC(),
		},
		Token: "token-abc",
	}
}

func (f *fakeAuthProvider) Signup(ctx context.Context, input service.SignupInput) (*service.AuthResult, error) {
	if f.signupErr != nil {
		return nil, f.signupErr
	}
	return f.result(), nil
}

func (f *fakeAuthProvider) Login(ctx context.Context, email, password string) (*service.AuthResult, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.result(), nil
}

func (f *fakeAuthProvider) ForgotPassword(ctx context.Context, email string) error {
	return f.forgotErr
}

func (f *fakeAuthProvider) ResetPassword(ctx context.Context, token, newPassword string) error {
	return f.resetErr
}

func TestAuthHandler_Signup(t *testing.T) {
	h := NewAuthHandler(&fakeAuthProvider{}, testLogger())

	body := `{"fullName":"Asha Kulkarni","email":"asha@example.com","phone":"+91 98765 43210","password":"Str0ngPass"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Signup(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	resp := decodeEnvelope(t, rec)
	if !resp.Success {
		t.Error("expected success=true")
	}
	if resp.Data == nil {
		t.Fatal("expected user and token in data")
	}
}

func TestAuthHandler_Signup_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid name", service.ErrInvalidFullName, http.StatusBadRequest},
		{"invalid email", service.ErrInvalidEmail, http.StatusBadRequest},
		{"invalid phone", service.ErrInvalidPhone, http.StatusBadRequest},
		{"weak password", service.ErrWeakPassword, http.StatusBadRequest},
		{"email taken", service.ErrEmailTaken, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(&fakeAuthProvider{signupErr: tt.err}, testLogger())

			body := `{"fullName":"A","email":"a@b.co","phone":"1234567890","password":"x"}`
			req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body))
			rec := httptest.NewRecorder()

			h.Signup(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}

			resp := decodeEnvelope(t, rec)
			if resp.Success {
				t.Error("expected success=false")
			}
			if resp.Error == "" {
				t.Error("expected an error message")
			}
		})
	}
}

func TestAuthHandler_Signup_MalformedBody(t *testing.T) {
	h := NewAuthHandler(&fakeAuthProvider{}, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()

	h.Signup(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login(t *testing.T) {
	h := NewAuthHandler(&fakeAuthProvider{}, testLogger())

	body := `{"email":"asha@example.com","password":"Str0ngPass"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	h := NewAuthHandler(&fakeAuthProvider{}, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"asha@example.com"}`))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&fakeAuthProvider{loginErr: service.ErrInvalidCredentials}, testLogger())

	body := `{"email":"asha@example.com","password":"WrongPass1"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rec.Code)
	}

	resp := decodeEnvelope(t, rec)
	if resp.Error != "invalid email or password" {
		t.Errorf("unexpected error message: %s", resp.Error)
	}
}

func TestAuthHandler_ForgotPassword(t *testing.T) {
	h := NewAuthHandler(&fakeAuthProvider{}, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/auth/forgot-password", strings.NewReader(`{"email":"asha@example.com"}`))
	rec := httptest.NewRecorder()

	h.ForgotPassword(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
}

func TestAuthHandler_ResetPassword_InvalidToken(t *testing.T) {
	h := NewAuthHandler(&fakeAuthProvider{resetErr: service.ErrInvalidResetToken}, testLogger())

	body := `{"token":"bogus","password":"N3wPassword"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/reset-password", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.ResetPassword(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rec.Code)
	}
}
