// Package model defines domain entities for the application.
package model

import "time"

// User represents a registered account.
// Email is stored lowercase; PasswordHash is an Argon2id PHC string
// and never leaves the server.
type User struct {
	ID           string     `json:"id"`
	FullName     string     `json:"full_name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	PasswordHash string     `json:"-"`
	ResetHash    string     `json:"-"`
	ResetExpires *time.Time `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
}
