package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/wtwr-api/internal/apperr"
	"github.com/phrazzld/wtwr-api/internal/store"
)

// ErrNotOwned indicates a resource is owned by a different user than the one
// making the request. It is the cause wrapped by the Forbidden error that
// AssertOwner returns.
var ErrNotOwned = errors.New("resource is owned by another user")

// Client-facing messages produced by the services.
const (
	MsgInvalidCredentials = "Incorrect email or password"
	MsgUserNotFound       = "User not found"
	MsgItemNotFound       = "Item not found"
	MsgEmailExists        = "A user with this email already exists"
	MsgNotItemOwner       = "You are not allowed to delete this item"
	MsgEmptyProfileUpdate = "At least one of name or avatar must be provided"
	MsgInvalidUserData    = "Invalid user data"
	MsgInvalidItemData    = "Invalid item data"
)

// ServiceError records which service operation failed.
type ServiceError struct {
	Service   string
	Operation string
	Err       error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s operation failed: %v", e.Service, e.Operation, e.Err)
	}
	return fmt.Sprintf("%s service %s operation failed", e.Service, e.Operation)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(service, operation string, err error) *ServiceError {
	return &ServiceError{
		Service:   service,
		Operation: operation,
		Err:       err,
	}
}

// fromStore translates a store failure into the client-facing error.
// notFound is the message used when the store reports a missing entity.
func fromStore(service, operation, notFound string, err error) *apperr.Error {
	cause := NewServiceError(service, operation, err)
	switch {
	case store.IsNotFoundError(err):
		return apperr.Wrap(apperr.KindNotFound, notFound, cause)
	case errors.Is(err, store.ErrEmailExists):
		return apperr.Wrap(apperr.KindConflict, MsgEmailExists, cause)
	default:
		return apperr.Internal(cause)
	}
}
