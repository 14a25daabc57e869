// ABOUTME: Typed errors returned by tool operations.
// ABOUTME: Each error carries a kind, the caller-facing message, and the cause.
package tools

import (
	"errors"
	"fmt"
)

// Kind classifies a tool failure.
type Kind string

const (
	KindInvalidDateFormat Kind = "INVALID_DATE_FORMAT"
	KindInvalidIdentifier Kind = "INVALID_IDENTIFIER"
	KindNotFound          Kind = "NOT_FOUND"
	KindStoreFailure      Kind = "STORE_FAILURE"
	KindInvalidArgument   Kind = "INVALID_ARGUMENT"
)

// Error is a structured tool error. Message is what the caller sees;
// Err keeps the underlying cause for logs and errors.Is/As.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string { return e.Message }

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Err }

// KindOf reports the kind of err, or KindStoreFailure for errors that are
// not tool errors.
func KindOf(err error) Kind {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind
	}
	return KindStoreFailure
}

func invalidDate(op, field, value string, cause error) *Error {
	return &Error{
		Kind:    KindInvalidDateFormat,
		Message: fmt.Sprintf("Failed to %s: invalid %s %q, expected YYYY-MM-DD", op, field, value),
		Err:     cause,
	}
}

func storeFailure(op string, cause error) *Error {
	return &Error{
		Kind:    KindStoreFailure,
		Message: fmt.Sprintf("Failed to %s: %v", op, cause),
		Err:     cause,
	}
}

func invalidArgument(format string, args ...any) *Error {
	return &Error{
		Kind:    KindInvalidArgument,
		Message: "Error: " + fmt.Sprintf(format, args...),
	}
}
