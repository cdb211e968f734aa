package shared

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/wtwr-api/internal/apperr"
	"github.com/phrazzld/wtwr-api/internal/domain"
	"github.com/phrazzld/wtwr-api/internal/service/auth"
	"github.com/phrazzld/wtwr-api/internal/store"
)

// Client-facing messages for failures detected outside the services.
const (
	MsgAuthorizationRequired = "Authorization required"
	MsgBearerFormat          = "Authorization token must be in Bearer format"
	MsgTokenExpired          = "Token expired"
	MsgInvalidToken          = "Invalid token"
	MsgInvalidID             = "Invalid ID format"
	MsgResourceNotFound      = "Requested resource not found"
	MsgResourceExists        = "Resource already exists"
	MsgInvalidData           = "Invalid request data"
)

// Classify maps any error onto the application error taxonomy.
//
// An *apperr.Error anywhere in the chain wins. Known sentinels from the lower
// layers are translated next; anything else is an internal error whose cause
// is kept for logging and never shown to the client.
func Classify(err error) *apperr.Error {
	if err == nil {
		return nil
	}

	if appErr, ok := apperr.As(err); ok {
		return appErr
	}

	var verrs validator.ValidationErrors

	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return apperr.Wrap(apperr.KindUnauthorized, MsgTokenExpired, err)
	case errors.Is(err, auth.ErrMissingToken):
		return apperr.Wrap(apperr.KindUnauthorized, MsgAuthorizationRequired, err)
	case errors.Is(err, auth.ErrInvalidToken):
		return apperr.Wrap(apperr.KindUnauthorized, MsgInvalidToken, err)

	case errors.Is(err, domain.ErrInvalidID):
		return apperr.Wrap(apperr.KindBadRequest, MsgInvalidID, err)
	case errors.As(err, &verrs):
		return apperr.Wrap(apperr.KindBadRequest, SanitizeValidationError(err), err)
	case errors.Is(err, domain.ErrValidation), errors.Is(err, store.ErrInvalidEntity):
		return apperr.Wrap(apperr.KindBadRequest, MsgInvalidData, err)

	case store.IsNotFoundError(err):
		return apperr.Wrap(apperr.KindNotFound, MsgResourceNotFound, err)
	case store.IsDuplicateError(err):
		return apperr.Wrap(apperr.KindConflict, MsgResourceExists, err)

	default:
		return apperr.Internal(err)
	}
}
