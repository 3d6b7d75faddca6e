// Package auth covers credential validation, password hashing and JWT
// session tokens.
package auth

import (
	"errors"
	"regexp"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const specialChars = `!@#$%^&*(),.?":{}|<>`

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

var (
	ErrPasswordTooShort  = errors.New("password must be at least 8 characters long")
	ErrPasswordUppercase = errors.New("password must contain at least one uppercase letter")
	ErrPasswordSpecial   = errors.New(`password must contain at least one special character (!@#$%^&*(),.?":{}|<>)`)
	ErrInvalidEmail      = errors.New("invalid email address")
)

// ValidatePassword enforces the registration password rules: at least
// eight characters, one uppercase letter and one special character.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return ErrPasswordTooShort
	}
	hasUpper := false
	for _, r := range password {
		if unicode.IsUpper(r) {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return ErrPasswordUppercase
	}
	for _, r := range password {
		for _, s := range specialChars {
			if r == s {
				return nil
			}
		}
	}
	return ErrPasswordSpecial
}

// ValidateEmail checks the address against the registration pattern.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// HashPassword returns a bcrypt hash of the password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the password matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// NewVerificationToken returns a fresh opaque token for email verification.
func NewVerificationToken() string {
	return uuid.NewString()
}
