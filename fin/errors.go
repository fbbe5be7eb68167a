/*
errors.go - Centralized error types for the FIRE engine

PURPOSE:
  All validation failures across the engine use one error shape so the
  surrounding API layer can map them uniformly (typically to a 400-class
  response). Infeasibility of a projection is NOT an error: it is reported
  in-band on result objects so callers render it without exception handling.

ERROR CATEGORIES:
  1. Validation errors - malformed or out-of-range input, raised before any
     partial computation is produced

USAGE:
  if err := fin.NewValidation("target_assets", "must be greater than zero"); err != nil {
      return nil, err
  }

  if fin.IsValidation(err) {
      // map to client error
  }

SEE ALSO:
  - money.go: Value helpers that these errors guard
*/
package fin

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrValidation is the sentinel every ValidationError unwraps to.
	ErrValidation = errors.New("validation failed")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// ValidationError reports a malformed or out-of-range input. It is always
// returned synchronously, before any partial result is built.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidation builds a ValidationError for the given input field.
func NewValidation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsValidation reports whether err is (or wraps) a validation failure.
// Validation errors are client errors: retrying reproduces the same result
// because every computation in this engine is pure and deterministic.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
