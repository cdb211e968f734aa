package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/wtwr-api/internal/apperr"
	"github.com/phrazzld/wtwr-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
)

func TestRecover(t *testing.T) {
	logBuf, _ := logger.SetupTestLogger(t)

	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	rr := httptest.NewRecorder()
	Recover(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/items", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"message":"`+apperr.DefaultInternalMessage+`"}`, rr.Body.String())
	assert.Contains(t, logBuf.String(), "panic recovered")
}

func TestRecover_AbortHandlerPropagates(t *testing.T) {
	logger.SetupTestLogger(t)

	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	})

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		Recover(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}
