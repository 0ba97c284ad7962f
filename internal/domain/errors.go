package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is wrapped by every rejected product, country or selection.
var ErrInvalidInput = errors.New("invalid input")

// ValidationError describes a single rejected field. It unwraps to ErrInvalidInput.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }
