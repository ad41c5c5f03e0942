package domain

import "errors"

var (
	// ErrUserNotFound is returned when no user exists for the requested id.
	ErrUserNotFound = errors.New("user not found")
	// ErrConstraintViolation is returned when a write clashes with a uniqueness rule.
	ErrConstraintViolation = errors.New("constraint violation")
)
