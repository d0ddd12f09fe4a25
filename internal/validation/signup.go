// Package validation contains input checks for signup and profile fields.
package validation

import (
	"errors"
	"net/mail"
	"strings"
)

const (
	// MinPasswordLen matches the original signup form's minimum.
	MinPasswordLen = 6
	// MaxPasswordLen is bcrypt's input limit in bytes.
	MaxPasswordLen = 72
	MaxUsernameLen = 30
)

// ValidateUsername checks that a username is present and within bounds.
func ValidateUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errors.New("username is required")
	}
	if len(username) > MaxUsernameLen {
		return errors.New("username too long (max 30 characters)")
	}
	if strings.ContainsAny(username, " \t\n") {
		return errors.New("username cannot contain whitespace")
	}
	return nil
}

// ValidateEmail checks that an email address parses.
func ValidateEmail(email string) error {
	if email == "" {
		return errors.New("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errors.New("invalid email address")
	}
	return nil
}

// ValidatePassword enforces the password length bounds.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLen {
		return errors.New("password must be at least 6 characters")
	}
	if len(password) > MaxPasswordLen {
		return errors.New("password too long (max 72 characters)")
	}
	return nil
}
