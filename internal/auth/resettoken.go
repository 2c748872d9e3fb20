package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// resetTokenBytes is the entropy of a password-reset token.
const resetTokenBytes = 32

// ResetToken is a newly generated single-use password-reset token.
// The plaintext goes into the email link; only the hash is stored.
type ResetToken struct {
	Plaintext string
	Hash      string
}

// GenerateResetToken creates a random password-reset token.
func GenerateResetToken() (*ResetToken, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("generate reset token: %w", err)
	}

	plaintext := hex.EncodeToString(buf)

	return &ResetToken{
		Plaintext: plaintext,
		Hash:      HashResetToken(plaintext),
	}, nil
}

// HashResetToken returns the storage hash of a reset token.
// SHA-256 is sufficient here: the token is high-entropy random data,
// not a user-chosen password.
func HashResetToken(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}
