// Package common defines shared sentinel errors used across PassVault
// components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound          = errors.New("not found")
	ErrDuplicateUsername = errors.New("username already taken")

	// Service-level errors.
	ErrAuthFailed     = errors.New("invalid username or password")
	ErrWeakPassword   = errors.New("password is not strong enough")
	ErrValidation     = errors.New("validation failed")
	ErrSessionExpired = errors.New("session expired")

	// Generator errors.
	ErrInvalidLength = errors.New("password length must be at least 4")
)
