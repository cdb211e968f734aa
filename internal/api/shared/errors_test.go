package shared

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/wtwr-api/internal/apperr"
	"github.com/phrazzld/wtwr-api/internal/domain"
	"github.com/phrazzld/wtwr-api/internal/service/auth"
	"github.com/phrazzld/wtwr-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	_, parseErr := domain.ParseID("abc")
	validationErr := ValidateRequest(&struct {
		Email string `json:"email" validate:"required,email"`
	}{Email: "nope"})
	rawValidation := validate.Struct(&struct {
		Email string `json:"email" validate:"required"`
	}{})

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "application error passes through",
			err:         apperr.Forbidden("You are not allowed to delete this item"),
			wantStatus:  http.StatusForbidden,
			wantMessage: "You are not allowed to delete this item",
		},
		{
			name:        "wrapped application error",
			err:         fmt.Errorf("handler: %w", apperr.NotFound("Item not found")),
			wantStatus:  http.StatusNotFound,
			wantMessage: "Item not found",
		},
		{
			name:        "expired token",
			err:         auth.ErrExpiredToken,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: MsgTokenExpired,
		},
		{
			name:        "invalid token",
			err:         auth.ErrInvalidToken,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: MsgInvalidToken,
		},
		{
			name:        "missing token",
			err:         auth.ErrMissingToken,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: MsgAuthorizationRequired,
		},
		{
			name:        "malformed object id",
			err:         parseErr,
			wantStatus:  http.StatusBadRequest,
			wantMessage: MsgInvalidID,
		},
		{
			name:        "request validation",
			err:         validationErr,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid email: invalid email format",
		},
		{
			name:        "raw validator errors",
			err:         rawValidation,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid email: required field",
		},
		{
			name:        "domain validation",
			err:         fmt.Errorf("%w: %w", domain.ErrValidation, domain.ErrEmptyName),
			wantStatus:  http.StatusBadRequest,
			wantMessage: MsgInvalidData,
		},
		{
			name:        "store not found",
			err:         store.ErrItemNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: MsgResourceNotFound,
		},
		{
			name:        "store duplicate",
			err:         store.ErrEmailExists,
			wantStatus:  http.StatusConflict,
			wantMessage: MsgResourceExists,
		},
		{
			name:        "unknown error",
			err:         errors.New("mongodb://admin:pw@db exploded"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: apperr.DefaultInternalMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantStatus, got.StatusCode())
			assert.Equal(t, tt.wantMessage, got.Message())
		})
	}
}

func TestClassify_Nil(t *testing.T) {
	assert.Nil(t, Classify(nil))
}
