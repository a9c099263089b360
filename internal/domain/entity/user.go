package entity

import (
	"net/mail"
	"strings"
	"time"
)

// User represents a registered account. Articles reference users only through
// OwnerID; the password is stored exclusively as a bcrypt hash.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// minPasswordLength is the minimum accepted password length for new accounts.
const minPasswordLength = 6

// ValidateEmail checks that the given address is a plain, well-formed email.
// Returns a ValidationError if it is empty or malformed.
func ValidateEmail(email string) error {
	if email == "" {
		return &ValidationError{Field: "email", Message: "is required"}
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || strings.ContainsAny(email, " <>") {
		return &ValidationError{Field: "email", Message: "invalid email format"}
	}
	return nil
}

// ValidatePassword checks the minimum password policy for new accounts.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return &ValidationError{
			Field:   "password",
			Message: "must be at least 6 characters",
		}
	}
	return nil
}
