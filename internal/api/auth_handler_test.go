package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/phrazzld/wtwr-api/internal/api"
	"github.com/phrazzld/wtwr-api/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const validSignup = `{"name":"Ada","avatar":"https://example.com/ada.png","email":"Ada@Example.com","password":"secret123"}`

func TestSignup(t *testing.T) {
	t.Run("creates user without password in response", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.do(http.MethodPost, "/signup", validSignup, primitive.NilObjectID)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.NotContains(t, rec.Body.String(), "password")
		assert.NotContains(t, rec.Body.String(), "secret123")

		var resp api.UserResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, "Ada", resp.Name)
		assert.Equal(t, "ada@example.com", resp.Email)
		assert.Len(t, resp.ID, 24)
		assert.Equal(t, 1, env.users.Count())
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		env := newTestEnv(t)
		require.Equal(t, http.StatusCreated, env.do(http.MethodPost, "/signup", validSignup, primitive.NilObjectID).Code)

		rec := env.do(http.MethodPost, "/signup",
			`{"name":"Other","avatar":"https://example.com/o.png","email":"ada@example.com","password":"another1"}`,
			primitive.NilObjectID)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "A user with this email already exists", errorMessage(t, rec))
		assert.Equal(t, 1, env.users.Count())
	})

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"malformed json", `{"name":`, "Invalid request body"},
		{"unknown field", `{"name":"Ada","avatar":"https://example.com/a.png","email":"a@b.co","password":"secret123","role":"admin"}`, "Invalid request body"},
		{"missing email", `{"name":"Ada","avatar":"https://example.com/a.png","password":"secret123"}`, "Invalid email: required field"},
		{"bad email", `{"name":"Ada","avatar":"https://example.com/a.png","email":"nope","password":"secret123"}`, "Invalid email: invalid email format"},
		{"bad avatar", `{"name":"Ada","avatar":"not a url","email":"a@b.co","password":"secret123"}`, "Invalid avatar: invalid URL"},
		{"padded short name", `{"name":"  a  ","avatar":"https://example.com/a.png","email":"a@b.co","password":"secret123"}`, "Invalid name: must be at least 2 characters"},
		{"short name", `{"name":"A","avatar":"https://example.com/a.png","email":"a@b.co","password":"secret123"}`, "Invalid name: must be at least 2 characters"},
		{"short password", `{"name":"Ada","avatar":"https://example.com/a.png","email":"a@b.co","password":"123"}`, "Invalid password: must be at least 6 characters"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)

			rec := env.do(http.MethodPost, "/signup", tc.body, primitive.NilObjectID)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tc.message, errorMessage(t, rec))
			assert.Zero(t, env.users.Count())
		})
	}
}

func TestSignin(t *testing.T) {
	t.Run("returns token for valid credentials", func(t *testing.T) {
		env := newTestEnv(t)
		require.Equal(t, http.StatusCreated, env.do(http.MethodPost, "/signup", validSignup, primitive.NilObjectID).Code)

		var issuedFor primitive.ObjectID
		env.jwt.GenerateTokenFn = func(_ context.Context, userID primitive.ObjectID) (string, error) {
			issuedFor = userID
			return testToken, nil
		}

		rec := env.do(http.MethodPost, "/signin", `{"email":"ada@example.com","password":"secret123"}`, primitive.NilObjectID)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp api.TokenResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, testToken, resp.Token)
		assert.False(t, issuedFor.IsZero())
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		env := newTestEnv(t)
		require.Equal(t, http.StatusCreated, env.do(http.MethodPost, "/signup", validSignup, primitive.NilObjectID).Code)

		wrong := env.do(http.MethodPost, "/signin", `{"email":"ada@example.com","password":"wrongpass"}`, primitive.NilObjectID)
		unknown := env.do(http.MethodPost, "/signin", `{"email":"bob@example.com","password":"secret123"}`, primitive.NilObjectID)

		assert.Equal(t, http.StatusUnauthorized, wrong.Code)
		assert.Equal(t, http.StatusUnauthorized, unknown.Code)
		assert.Equal(t, "Incorrect email or password", errorMessage(t, wrong))
		assert.Equal(t, wrong.Body.String(), unknown.Body.String())
	})

	t.Run("missing password is a bad request", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.do(http.MethodPost, "/signin", `{"email":"ada@example.com"}`, primitive.NilObjectID)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid password: required field", errorMessage(t, rec))
	})

	t.Run("token failure is internal", func(t *testing.T) {
		env := newTestEnv(t)
		require.Equal(t, http.StatusCreated, env.do(http.MethodPost, "/signup", validSignup, primitive.NilObjectID).Code)
		env.jwt.Err = errors.New("signing key unavailable")

		rec := env.do(http.MethodPost, "/signin", `{"email":"ada@example.com","password":"secret123"}`, primitive.NilObjectID)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, apperr.DefaultInternalMessage, errorMessage(t, rec))
		assert.NotContains(t, rec.Body.String(), "signing key")
	})
}
