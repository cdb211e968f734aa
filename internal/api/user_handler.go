package api

import (
	"net/http"

	"github.com/phrazzld/wtwr-api/internal/api/shared"
	"github.com/phrazzld/wtwr-api/internal/service"
	"github.com/phrazzld/wtwr-api/internal/store"
)

// UserHandler serves the current user's profile.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetMe handles GET /users/me.
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) error {
	userID, err := currentUserID(r)
	if err != nil {
		return err
	}

	user, err := h.userService.GetCurrent(r.Context(), userID)
	if err != nil {
		return err
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
	return nil
}

// UpdateMe handles PATCH /users/me.
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) error {
	userID, err := currentUserID(r)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := shared.DecodeAndValidate(w, r, &req); err != nil {
		return err
	}

	user, err := h.userService.UpdateProfile(r.Context(), userID, store.UserProfileUpdate{
		Name:   req.Name,
		Avatar: req.Avatar,
	})
	if err != nil {
		return err
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
	return nil
}
