// Package models defines the records stockkeeper persists: registered users
// and inventory items. The JSON field names are part of the on-disk contract
// and must not change.
package models

import (
	"errors"
	"strings"
)

var (
	ErrInvalidEmail    = errors.New("please enter a valid email")
	ErrMissingPassword = errors.New("password is required")
)

// User is a registered account. Email is the identity and is stored
// lowercase; there is no password-change operation, so records are
// effectively immutable once created.
type User struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NormalizeEmail lowercases and trims an email the way the login form does
// before it reaches the session layer. The session layer itself compares
// emails exactly as stored.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateCredentials checks the login form constraints: a plausible email
// shape and a non-empty password.
func ValidateCredentials(email, password string) error {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 || !strings.Contains(email[at+1:], ".") {
		return ErrInvalidEmail
	}
	if strings.TrimSpace(password) == "" {
		return ErrMissingPassword
	}
	return nil
}
