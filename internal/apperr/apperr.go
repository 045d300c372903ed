// Package apperr defines the error values returned to users of the command-line
// interface
package apperr

import (
	"fmt"
)

// Error is an application error with a message that may contain format
// verbs filled in through Fmt.
type Error struct {
	Cause   error
	Message string
	// template is the unformatted message of the error Fmt was called on
	template string
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}

	return e.Message
}

// Unwrap exposes the wrapped cause to errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an Error with the same message template.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.key() == e.key()
}

func (e *Error) key() string {
	if e.template != "" {
		return e.template
	}

	return e.Message
}

// Fmt returns a copy of the error with its message formatted using args.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message:  fmt.Sprintf(e.Message, args...),
		Cause:    e.Cause,
		template: e.key(),
	}
}

// Wrap returns a copy of the error that wraps cause.
func (e *Error) Wrap(cause error) *Error {
	return &Error{
		Message:  e.Message,
		Cause:    cause,
		template: e.template,
	}
}
