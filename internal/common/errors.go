// Package common defines shared constants and sentinel errors used across
// client and server layers of TaskKeeper. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound        = errors.New("not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrStorageFailure    = errors.New("storage failure")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// Auth errors (malformed, expired or forged token).
	ErrInvalidToken = errors.New("invalid token")
)
