package api

import (
	"net/http"

	"github.com/phrazzld/wtwr-api/internal/api/shared"
	"github.com/phrazzld/wtwr-api/internal/apperr"
)

// HandlerFunc is an HTTP handler that reports failure by returning an error.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handle adapts h to http.HandlerFunc. A returned error is written by
// shared.RespondWithError; h must not have written a response in that case.
func Handle(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			shared.RespondWithError(w, r, err)
		}
	}
}

// NotFound answers requests for unknown routes and unsupported methods.
func NotFound(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, apperr.NotFound(shared.MsgResourceNotFound))
}
