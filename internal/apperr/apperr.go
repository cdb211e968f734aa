package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the category of an application error.
type Kind int

const (
	// KindInternal indicates an unexpected failure. It is the zero value so an
	// uninitialized Kind never leaks as a client error.
	KindInternal Kind = iota
	// KindBadRequest indicates malformed or invalid input.
	KindBadRequest
	// KindUnauthorized indicates missing or invalid credentials.
	KindUnauthorized
	// KindForbidden indicates an authenticated caller may not perform the action.
	KindForbidden
	// KindNotFound indicates the requested resource does not exist.
	KindNotFound
	// KindConflict indicates a clash with existing state, such as a duplicate email.
	KindConflict
)

// DefaultInternalMessage is the only message clients ever see for internal errors.
const DefaultInternalMessage = "Something went wrong, please try again later"

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "BadRequest"
	case KindUnauthorized:
		return "Unauthorized"
	case KindForbidden:
		return "Forbidden"
	case KindNotFound:
		return "NotFound"
	case KindConflict:
		return "Conflict"
	default:
		return "InternalServerError"
	}
}

// StatusCode returns the HTTP status code for the kind.
func (k Kind) StatusCode() int {
	switch k {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error is an application error carrying a kind and a client-facing message.
// Fields are unexported so a constructed error cannot change in transit.
type Error struct {
	kind    Kind
	message string
	cause   error
}

// New creates an error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{kind: kind, message: message}
}

// Wrap creates an error of the given kind that keeps cause for logging.
// The cause is never shown to clients.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{kind: kind, message: message, cause: cause}
}

// Kind returns the error category.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the client-facing message.
func (e *Error) Message() string { return e.message }

// StatusCode returns the HTTP status derived from the kind.
func (e *Error) StatusCode() int { return e.kind.StatusCode() }

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.kind, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.kind, e.message)
}

// Unwrap returns the underlying cause for errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.cause }

// BadRequest creates a 400 error.
func BadRequest(message string) *Error { return New(KindBadRequest, message) }

// Unauthorized creates a 401 error.
func Unauthorized(message string) *Error { return New(KindUnauthorized, message) }

// Forbidden creates a 403 error.
func Forbidden(message string) *Error { return New(KindForbidden, message) }

// NotFound creates a 404 error.
func NotFound(message string) *Error { return New(KindNotFound, message) }

// Conflict creates a 409 error.
func Conflict(message string) *Error { return New(KindConflict, message) }

// Internal creates a 500 error with the generic client message.
func Internal(cause error) *Error {
	return Wrap(KindInternal, DefaultInternalMessage, cause)
}

// As extracts the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsKind reports whether err carries an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	appErr, ok := As(err)
	return ok && appErr.kind == kind
}
