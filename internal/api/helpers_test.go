package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/wtwr-api/internal/api"
	"github.com/phrazzld/wtwr-api/internal/api/shared"
	"github.com/phrazzld/wtwr-api/internal/mocks"
	"github.com/phrazzld/wtwr-api/internal/platform/logger"
	"github.com/phrazzld/wtwr-api/internal/service"
	"github.com/phrazzld/wtwr-api/internal/service/auth"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testToken = "signed.test.token"

type testEnv struct {
	users  *mocks.MockUserStore
	items  *mocks.MockItemStore
	jwt    *mocks.MockJWTService
	router chi.Router
}

// newTestEnv wires real services over in-memory stores. Identity is injected
// directly into the request context, standing in for the Auth Gate.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	_, log := logger.SetupTestLogger(t)

	env := &testEnv{
		users: mocks.NewMockUserStore(),
		items: mocks.NewMockItemStore(),
		jwt:   &mocks.MockJWTService{Token: testToken},
	}

	userService := service.NewUserService(env.users, &mocks.MockPasswordHasher{}, log)
	itemService := service.NewItemService(env.items, log)

	authHandler := api.NewAuthHandler(userService, env.jwt)
	userHandler := api.NewUserHandler(userService)
	itemHandler := api.NewItemHandler(itemService)

	r := chi.NewRouter()
	r.NotFound(api.NotFound)
	r.MethodNotAllowed(api.NotFound)
	r.Post("/signup", api.Handle(authHandler.Signup))
	r.Post("/signin", api.Handle(authHandler.Signin))
	r.Get("/items", api.Handle(itemHandler.List))
	r.Get("/users/me", api.Handle(userHandler.GetMe))
	r.Patch("/users/me", api.Handle(userHandler.UpdateMe))
	r.Post("/items", api.Handle(itemHandler.Create))
	r.Delete("/items/{id}", api.Handle(itemHandler.Delete))
	r.Put("/items/{id}/likes", api.Handle(itemHandler.Like))
	r.Patch("/items/{id}/likes", api.Handle(itemHandler.Like))
	r.Delete("/items/{id}/likes", api.Handle(itemHandler.Unlike))
	env.router = r

	return env
}

// do sends a request. A zero identity sends it unauthenticated.
func (e *testEnv) do(method, path, body string, identity primitive.ObjectID) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if !identity.IsZero() {
		req = req.WithContext(shared.WithIdentity(req.Context(), &auth.Claims{UserID: identity}))
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), "body: %s", rec.Body.String())
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp shared.ErrorResponse
	decodeBody(t, rec, &resp)
	return resp.Message
}
