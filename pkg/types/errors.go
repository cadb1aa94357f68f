package types

import (
	"errors"
	"fmt"
)

// databaseErrorPrefix heads every rendered DatabaseError.
const databaseErrorPrefix = "error executing query:\n"

// DatabaseError wraps any store-layer failure: connectivity, constraint
// violations, malformed queries and decode mismatches.
type DatabaseError struct {
	Op  string // Operation that failed, e.g. "create partners". May be empty.
	Err error
}

func (e *DatabaseError) Error() string {
	return databaseErrorPrefix + e.Err.Error()
}

func (e *DatabaseError) Unwrap() error { return e.Err }

// ValidationError reports a domain-level failure detected above the store,
// such as a date assembled from out-of-range user input. It renders its
// message verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Invalid returns a *ValidationError with the given message.
func Invalid(msg string) error {
	return &ValidationError{Message: msg}
}

// Invalidf returns a *ValidationError with a formatted message.
func Invalidf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// AsDatabaseError maps err into the error taxonomy. Errors that already are
// *DatabaseError or *ValidationError are returned unchanged; anything else is
// wrapped into *DatabaseError. A nil err stays nil.
func AsDatabaseError(op string, err error) error {
	if err == nil {
		return nil
	}
	var dbErr *DatabaseError
	if errors.As(err, &dbErr) {
		return err
	}
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return err
	}
	return &DatabaseError{Op: op, Err: err}
}

// Message renders err for display. Errors in the taxonomy render through
// their own Error method; any other error is treated as a store failure.
func Message(err error) string {
	if err == nil {
		return ""
	}
	return AsDatabaseError("", err).Error()
}

// IsDatabaseError reports whether err is or wraps a *DatabaseError.
func IsDatabaseError(err error) bool {
	var dbErr *DatabaseError
	return errors.As(err, &dbErr)
}

// IsValidationError reports whether err is or wraps a *ValidationError.
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}
