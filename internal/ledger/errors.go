// Package ledger implements the copy-on-write operations on the participant
// and bill lists. Every operation returns a new slice and leaves its input
// untouched; a rejected operation returns a *ValidationError.
package ledger

import (
	"errors"
	"fmt"
)

// Kind classifies a validation error.
type Kind string

const (
	KindEmptyField      Kind = "empty_field"
	KindDuplicateName   Kind = "duplicate_name"
	KindEmptySelection  Kind = "empty_selection"
	KindEmptyCollection Kind = "empty_collection"
	KindInvalidAmount   Kind = "invalid_amount"
)

// Sentinels for errors.Is matching against a *ValidationError's kind.
var (
	ErrEmptyField      = &ValidationError{Kind: KindEmptyField}
	ErrDuplicateName   = &ValidationError{Kind: KindDuplicateName}
	ErrEmptySelection  = &ValidationError{Kind: KindEmptySelection}
	ErrEmptyCollection = &ValidationError{Kind: KindEmptyCollection}
	ErrInvalidAmount   = &ValidationError{Kind: KindInvalidAmount}
)

// ValidationError is a user-correctable input problem. Message is what the
// presentation layer shows.
type ValidationError struct {
	Kind    Kind
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// Is matches any *ValidationError with the same Kind.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Kind == e.Kind
}

// Invalid builds a ValidationError with a formatted message.
func Invalid(kind Kind, format string, args ...any) error {
	return &ValidationError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// AsValidation unwraps err into a *ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
