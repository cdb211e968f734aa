package api

import (
	"net/http"

	"github.com/phrazzld/wtwr-api/internal/api/shared"
	"github.com/phrazzld/wtwr-api/internal/apperr"
	"github.com/phrazzld/wtwr-api/internal/service"
	"github.com/phrazzld/wtwr-api/internal/service/auth"
)

// AuthHandler handles signup and sign-in.
type AuthHandler struct {
	userService service.UserService
	jwtService  auth.JWTService
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(userService service.UserService, jwtService auth.JWTService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		jwtService:  jwtService,
	}
}

// Signup handles POST /signup. The response never includes the password.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) error {
	var req SignupRequest
	if err := shared.DecodeAndValidate(w, r, &req); err != nil {
		return err
	}

	user, err := h.userService.Signup(r.Context(), service.SignupInput{
		Name:     req.Name,
		Avatar:   req.Avatar,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, userToResponse(user))
	return nil
}

// Signin handles POST /signin and returns a bearer token.
func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) error {
	var req SigninRequest
	if err := shared.DecodeAndValidate(w, r, &req); err != nil {
		return err
	}

	userID, err := h.userService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	token, err := h.jwtService.GenerateToken(r.Context(), userID)
	if err != nil {
		return apperr.Internal(err)
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{Token: token})
	return nil
}
