// Package dto defines the HTTP request and response shapes.
// Every endpoint answers with the same fixed envelope: {success, data}
// on success, {success, error} on failure. Clients never need to sniff
// alternative shapes.
package dto

import (
	"time"

	"github.com/nyayasetu/nyayasetu/internal/model"
)

// Response is the fixed envelope for all JSON responses.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// SignupRequest is the body of POST /auth/signup.
type SignupRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordRequest is the body of POST /auth/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest is the body of POST /auth/reset-password.
type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthData is returned on successful signup and login.
type AuthData struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// ToAuthData converts a user and token to the response shape.
func ToAuthData(user *model.User, token string) AuthData {
	return AuthData{
		User: UserResponse{
			ID:        user.ID,
			FullName:  user.FullName,
			Email:     user.Email,
			Phone:     user.Phone,
			CreatedAt: user.CreatedAt,
		},
		Token: token,
	}
}

// QueryRequest is the body of POST /auth/chatbot/query.
type QueryRequest struct {
	Query string `json:"query"`
}

// AnswerData carries the upstream completion text.
type AnswerData struct {
	Answer string `json:"answer"`
}

// SaveHistoryRequest is the body of POST /auth/chat-history.
type SaveHistoryRequest struct {
	UserID   string `json:"userId"`
	Query    string `json:"query"`
	Response string `json:"response"`
}

// MessageResponse is one saved exchange in a history listing.
type MessageResponse struct {
	Query     string    `json:"query"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

// ToMessageResponses converts stored messages to the response shape.
// Always returns a non-nil slice so empty history encodes as [].
func ToMessageResponses(messages []model.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, MessageResponse{
			Query:     m.Query,
			Response:  m.Response,
			Timestamp: m.Timestamp,
		})
	}
	return out
}
