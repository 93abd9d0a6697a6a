package usecase

import (
	"errors"
	"fmt"
)

// Sentinel errors for authentication operations.
// Adapters translate driver-level failures into these so upper layers
// can branch with errors.Is without knowing the storage engine.
var (
	// ErrEmailAlreadyExists indicates that a user with the given email already exists.
	ErrEmailAlreadyExists = errors.New("user with this email already exists")

	// ErrUserNotFound indicates that no user was found with the given criteria.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials indicates a failed login.
	// It is deliberately identical for unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports a field that failed credential validation.
// Handlers map it to a 400 response carrying the reason.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
