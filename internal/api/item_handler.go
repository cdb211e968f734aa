package api

import (
	"net/http"

	"github.com/phrazzld/wtwr-api/internal/api/shared"
	"github.com/phrazzld/wtwr-api/internal/domain"
	"github.com/phrazzld/wtwr-api/internal/service"
)

// MsgItemDeleted confirms a successful delete.
const MsgItemDeleted = "Item deleted"

// ItemHandler serves the clothing item endpoints.
type ItemHandler struct {
	itemService service.ItemService
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(itemService service.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// List handles GET /items. It is public and always returns an array.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) error {
	items, err := h.itemService.List(r.Context())
	if err != nil {
		return err
	}

	shared.RespondWithJSON(w, r, http.StatusOK, itemsToResponse(items))
	return nil
}

// Create handles POST /items.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) error {
	owner, err := currentUserID(r)
	if err != nil {
		return err
	}

	var req CreateItemRequest
	if err := shared.DecodeAndValidate(w, r, &req); err != nil {
		return err
	}

	item, err := h.itemService.Create(r.Context(), owner, service.CreateItemInput{
		Name:     req.Name,
		Weather:  domain.Weather(req.Weather),
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return err
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, itemToResponse(item))
	return nil
}

// Delete handles DELETE /items/{id}.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) error {
	userID, itemID, err := identityAndPathID(r, "id")
	if err != nil {
		return err
	}

	if err := h.itemService.Delete(r.Context(), itemID, userID); err != nil {
		return err
	}

	shared.RespondWithMessage(w, r, http.StatusOK, MsgItemDeleted)
	return nil
}

// Like handles PUT and PATCH /items/{id}/likes.
func (h *ItemHandler) Like(w http.ResponseWriter, r *http.Request) error {
	userID, itemID, err := identityAndPathID(r, "id")
	if err != nil {
		return err
	}

	item, err := h.itemService.Like(r.Context(), itemID, userID)
	if err != nil {
		return err
	}

	shared.RespondWithJSON(w, r, http.StatusOK, itemToResponse(item))
	return nil
}

// Unlike handles DELETE /items/{id}/likes.
func (h *ItemHandler) Unlike(w http.ResponseWriter, r *http.Request) error {
	userID, itemID, err := identityAndPathID(r, "id")
	if err != nil {
		return err
	}

	item, err := h.itemService.Unlike(r.Context(), itemID, userID)
	if err != nil {
		return err
	}

	shared.RespondWithJSON(w, r, http.StatusOK, itemToResponse(item))
	return nil
}
