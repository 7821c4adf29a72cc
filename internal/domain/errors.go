package domain

import "errors"

var (
	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidState        = errors.New("invalid state")
	ErrDuplicateSubmission = errors.New("duplicate submission")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidRequest      = errors.New("invalid request")
	ErrInvalidReference    = errors.New("invalid reference")
	ErrUnavailable         = errors.New("unavailable")
)

// Error pairs an error kind with the message shown to the caller.
// errors.Is matches against Kind.
type Error struct {
	Kind    error
	Message string
}

func NewError(kind error, message string) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
	}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}
