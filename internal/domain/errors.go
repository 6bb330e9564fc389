package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound: the referenced property, review, or announcement id
	// does not exist.
	ErrNotFound = errors.New("not found")

	// ErrStorage: the backing store call failed. Never retried here;
	// the view-count touch is the only caller allowed to swallow it.
	ErrStorage = errors.New("storage unavailable")

	// ErrInvalidCredentials: admin/owner login equality check failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError rejects a write before anything is persisted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
