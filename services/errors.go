package services

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ValidationError is a user-facing, recoverable failure. The message is
// surfaced verbatim to the caller and the triggering mutation is rolled
// back without partial effect.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError wraps a message as a ValidationError.
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsConstraintViolation reports whether err is a database-enforced
// structural failure (foreign key, check constraint, unique index).
func IsConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// Class 23 - integrity constraint violation
		return len(pgErr.Code) >= 2 && pgErr.Code[:2] == "23"
	}
	return false
}
