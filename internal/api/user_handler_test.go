package api_test

import (
	"net/http"
	"testing"

	"github.com/phrazzld/wtwr-api/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func signupUser(t *testing.T, env *testEnv) primitive.ObjectID {
	t.Helper()
	rec := env.do(http.MethodPost, "/signup", validSignup, primitive.NilObjectID)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp api.UserResponse
	decodeBody(t, rec, &resp)
	id, err := primitive.ObjectIDFromHex(resp.ID)
	require.NoError(t, err)
	return id
}

func TestGetMe(t *testing.T) {
	t.Run("returns current user", func(t *testing.T) {
		env := newTestEnv(t)
		userID := signupUser(t, env)

		rec := env.do(http.MethodGet, "/users/me", "", userID)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp api.UserResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, userID.Hex(), resp.ID)
		assert.Equal(t, "ada@example.com", resp.Email)
		assert.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("missing identity", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.do(http.MethodGet, "/users/me", "", primitive.NilObjectID)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Authorization required", errorMessage(t, rec))
	})

	t.Run("identity for vanished user", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.do(http.MethodGet, "/users/me", "", primitive.NewObjectID())

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "User not found", errorMessage(t, rec))
	})
}

func TestUpdateMe(t *testing.T) {
	t.Run("updates only provided fields", func(t *testing.T) {
		env := newTestEnv(t)
		userID := signupUser(t, env)

		rec := env.do(http.MethodPatch, "/users/me", `{"name":"Ada Lovelace"}`, userID)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp api.UserResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, "Ada Lovelace", resp.Name)
		assert.Equal(t, "https://example.com/ada.png", resp.Avatar)
	})

	t.Run("trims name like signup", func(t *testing.T) {
		env := newTestEnv(t)
		userID := signupUser(t, env)

		rec := env.do(http.MethodPatch, "/users/me", `{"name":"   Ada Lovelace   "}`, userID)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp api.UserResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, "Ada Lovelace", resp.Name)
	})

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"no fields", `{}`, "At least one of name or avatar must be provided"},
		{"empty name", `{"name":""}`, "Invalid name: must be at least 2 characters"},
		{"padded short name", `{"name":"  a  "}`, "Invalid name: must be at least 2 characters"},
		{"bad avatar", `{"avatar":"nope"}`, "Invalid avatar: invalid URL"},
		{"email is not updatable", `{"email":"new@example.com"}`, "Invalid request body"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)
			userID := signupUser(t, env)

			rec := env.do(http.MethodPatch, "/users/me", tc.body, userID)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tc.message, errorMessage(t, rec))
		})
	}
}
