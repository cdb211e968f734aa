package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/phrazzld/wtwr-api/internal/api/shared"
	"github.com/phrazzld/wtwr-api/internal/apperr"
	"github.com/phrazzld/wtwr-api/internal/service/auth"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides JWT authentication for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// Authenticate verifies the bearer token and stores the caller's claims in the
// request context. It never consults persistence. Rejections go through the
// shared error responder and the wrapped handler does not run.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r,
				apperr.Wrap(apperr.KindUnauthorized, shared.MsgAuthorizationRequired, auth.ErrMissingToken))
			return
		}

		token, ok := ParseBearer(authHeader)
		if !ok {
			shared.RespondWithError(w, r, apperr.Unauthorized(shared.MsgBearerFormat))
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				shared.RespondWithError(w, r, apperr.Wrap(apperr.KindUnauthorized, shared.MsgTokenExpired, err))
				return
			}
			shared.RespondWithError(w, r, apperr.Wrap(apperr.KindUnauthorized, shared.MsgInvalidToken, err))
			return
		}

		next.ServeHTTP(w, r.WithContext(shared.WithIdentity(r.Context(), claims)))
	})
}

// ParseBearer extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is case-sensitive and the token must be a single
// non-empty word.
func ParseBearer(header string) (string, bool) {
	token, found := strings.CutPrefix(header, bearerPrefix)
	if !found {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", false
	}
	return token, true
}
