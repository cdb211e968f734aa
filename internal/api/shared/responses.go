package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/wtwr-api/internal/platform/logger"
	"github.com/phrazzld/wtwr-api/internal/redact"
)

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Message string `json:"message"`
}

// MessageResponse is a body carrying only a confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError is the single terminal error responder. It classifies err,
// logs it and writes {"message": ...} with the matching status code.
//
// Log level strategy:
//   - 5xx errors: ERROR, with the redacted cause
//   - 4xx errors: DEBUG
//
// The raw error text never reaches the client.
func RespondWithError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := Classify(err)
	if appErr == nil {
		logger.FromContext(r.Context()).Error("RespondWithError called with nil error",
			"path", r.URL.Path)
		appErr = Classify(fmt.Errorf("nil error passed to responder"))
	}

	status := appErr.StatusCode()

	logAttrs := []slog.Attr{
		slog.String("trace_id", GetTraceID(r.Context())),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", appErr.Message()),
	}
	if cause := appErr.Unwrap(); cause != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(cause)),
			slog.String("error_type", fmt.Sprintf("%T", cause)))
	}

	level := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}

	logger.FromContext(r.Context()).LogAttrs(r.Context(), level, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, ErrorResponse{Message: appErr.Message()})
}

// RespondWithMessage writes {"message": message} with the given status.
func RespondWithMessage(w http.ResponseWriter, r *http.Request, status int, message string) {
	RespondWithJSON(w, r, status, MessageResponse{Message: message})
}
