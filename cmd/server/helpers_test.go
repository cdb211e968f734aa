package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/phrazzld/wtwr-api/internal/api"
	"github.com/phrazzld/wtwr-api/internal/api/shared"
	"github.com/phrazzld/wtwr-api/internal/config"
	"github.com/phrazzld/wtwr-api/internal/mocks"
	"github.com/phrazzld/wtwr-api/internal/platform/logger"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret-that-is-at-least-32-characters-long"

// fakeHealth is a healthChecker with a switchable result.
type fakeHealth struct {
	mu  sync.Mutex
	err error
}

func (f *fakeHealth) Ping(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

func (f *fakeHealth) fail() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = errors.New("server selection timeout")
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:            3001,
			LogLevel:        "debug",
			ShutdownTimeout: 5 * time.Second,
		},
		Database: config.DatabaseConfig{
			URI:            "mongodb://127.0.0.1:27017",
			Name:           "wtwr_test",
			ConnectTimeout: time.Second,
		},
		Auth: config.AuthConfig{
			JWTSecret:     testJWTSecret,
			TokenLifetime: time.Hour,
			BcryptCost:    4,
		},
	}
}

type testServer struct {
	app    *application
	users  *mocks.MockUserStore
	items  *mocks.MockItemStore
	health *fakeHealth
	server *httptest.Server
}

// newTestServer runs the fully wired router over in-memory stores with the
// real JWT service and bcrypt hasher.
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	_, log := logger.SetupTestLogger(t)

	ts := &testServer{
		users:  mocks.NewMockUserStore(),
		items:  mocks.NewMockItemStore(),
		health: &fakeHealth{},
	}

	app, err := newApplication(testConfig(), log, dependencies{
		userStore: ts.users,
		itemStore: ts.items,
		health:    ts.health,
	})
	require.NoError(t, err)
	ts.app = app

	router, err := app.setupRouter()
	require.NoError(t, err)

	ts.server = httptest.NewServer(router)
	t.Cleanup(ts.server.Close)

	return ts
}

// do sends a request. An empty token sends no Authorization header; a token
// containing a space is sent verbatim, anything else as a bearer token.
func (ts *testServer) do(t *testing.T, method, path, body, token string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, ts.server.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	switch {
	case token == "":
	case strings.Contains(token, " "):
		req.Header.Set("Authorization", token)
	default:
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.server.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func messageOf(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body shared.ErrorResponse
	decode(t, resp, &body)
	return body.Message
}

const (
	adaSignup = `{"name":"Ada","avatar":"https://example.com/ada.png","email":"ada@example.com","password":"correct-horse"}`
	adaSignin = `{"email":"ada@example.com","password":"correct-horse"}`
	bobSignup = `{"name":"Bob","avatar":"https://example.com/bob.png","email":"bob@example.com","password":"battery-staple"}`
	bobSignin = `{"email":"bob@example.com","password":"battery-staple"}`
)

// signupAndSignin registers a user and returns their id and token.
func (ts *testServer) signupAndSignin(t *testing.T, signup, signin string) (string, string) {
	t.Helper()

	resp := ts.do(t, http.MethodPost, "/signup", signup, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var user api.UserResponse
	decode(t, resp, &user)

	resp = ts.do(t, http.MethodPost, "/signin", signin, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var token api.TokenResponse
	decode(t, resp, &token)
	require.NotEmpty(t, token.Token)

	return user.ID, token.Token
}
