package core

import "github.com/pkg/errors"

var (
	// ErrConflict is returned when a write violates a uniqueness constraint.
	ErrConflict = errors.New("a record with these values already exists")

	// ErrSchemaMissing is returned when the store is unreachable or its tables do not exist.
	ErrSchemaMissing = errors.New("database schema is missing or unreachable")
)

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}

func IsConflict(err error) bool {
	return errors.Cause(err) == ErrConflict
}

func IsSchemaMissing(err error) bool {
	return errors.Cause(err) == ErrSchemaMissing
}
