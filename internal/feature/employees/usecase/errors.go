package usecase

import (
	"errors"
	"fmt"
)

// ErrEmployeeNotFound indicates that no employee record matches the given ID.
// The update handler maps it to 400 and the get/delete handlers to 404;
// see the transport layer for that (inherited) asymmetry.
var ErrEmployeeNotFound = errors.New("employee not found")

// ValidationError reports an employee field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
