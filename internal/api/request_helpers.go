package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/wtwr-api/internal/api/shared"
	"github.com/phrazzld/wtwr-api/internal/apperr"
	"github.com/phrazzld/wtwr-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// currentUserID returns the caller placed in the context by the Auth Gate.
// Reaching a protected handler without one is treated as unauthenticated.
func currentUserID(r *http.Request) (primitive.ObjectID, error) {
	userID, ok := shared.UserIDFromContext(r.Context())
	if !ok {
		return primitive.NilObjectID, apperr.Unauthorized(shared.MsgAuthorizationRequired)
	}
	return userID, nil
}

// pathID parses the named chi path parameter as an object id.
func pathID(r *http.Request, paramName string) (primitive.ObjectID, error) {
	id, err := domain.ParseID(chi.URLParam(r, paramName))
	if err != nil {
		return primitive.NilObjectID, apperr.Wrap(apperr.KindBadRequest, shared.MsgInvalidID, err)
	}
	return id, nil
}

// identityAndPathID combines currentUserID and pathID; authentication is
// checked first.
func identityAndPathID(r *http.Request, paramName string) (primitive.ObjectID, primitive.ObjectID, error) {
	userID, err := currentUserID(r)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, err
	}
	id, err := pathID(r, paramName)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, err
	}
	return userID, id, nil
}
