package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Ownership checks also report ErrNotFound so callers cannot probe for the
// existence of tours they do not own.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. name too short, booking date in the past, unknown role).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrForbidden is returned when the caller is known but not allowed to perform
// the operation (e.g. reviewing a tour they never booked).
// Handlers should map this to HTTP 403.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized is returned when credentials are missing or wrong.
// Handlers should map this to HTTP 401.
var ErrUnauthorized = errors.New("unauthorized")

// ErrConflict is returned when an insert collides with a unique constraint
// (e.g. registering an e-mail address twice).
// Handlers should map this to HTTP 409.
var ErrConflict = errors.New("conflict")

// ErrInfrastructure wraps unexpected failures of the underlying store.
// The original cause stays reachable through errors.Is / errors.As.
var ErrInfrastructure = errors.New("infrastructure error")

// Error is a classified error with a user-facing message.
// Error() returns only Message; Kind and Cause are reachable via errors.Is.
type Error struct {
	Kind    error
	Message string
	Cause   error
}

// NewError returns an *Error of the given kind.
func NewError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WrapError returns an *Error of the given kind that keeps cause in its chain.
func WrapError(kind error, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes both the kind sentinel and the cause to errors.Is.
func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}
