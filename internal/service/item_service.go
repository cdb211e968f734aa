package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/wtwr-api/internal/apperr"
	"github.com/phrazzld/wtwr-api/internal/domain"
	"github.com/phrazzld/wtwr-api/internal/platform/logger"
	"github.com/phrazzld/wtwr-api/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateItemInput carries an already format-validated item.
type CreateItemInput struct {
	Name     string
	Weather  domain.Weather
	ImageURL string
}

// ItemService provides clothing item operations.
type ItemService interface {
	// List returns every item; never nil.
	List(ctx context.Context) ([]*domain.Item, error)

	// Create stores a new item owned by owner with an empty like set.
	Create(ctx context.Context, owner primitive.ObjectID, input CreateItemInput) (*domain.Item, error)

	// Delete removes an item. NotFound precedes Forbidden.
	Delete(ctx context.Context, itemID, identity primitive.ObjectID) error

	// Like adds identity to the item's like set.
	Like(ctx context.Context, itemID, identity primitive.ObjectID) (*domain.Item, error)

	// Unlike removes identity from the item's like set.
	Unlike(ctx context.Context, itemID, identity primitive.ObjectID) (*domain.Item, error)
}

type itemServiceImpl struct {
	itemStore store.ItemStore
	logger    *slog.Logger
}

// NewItemService creates a new ItemService
func NewItemService(itemStore store.ItemStore, logger *slog.Logger) ItemService {
	return &itemServiceImpl{
		itemStore: itemStore,
		logger:    logger.With("component", "item_service"),
	}
}

func (s *itemServiceImpl) log(ctx context.Context) *slog.Logger {
	return logger.FromContextOrDefault(ctx, s.logger)
}

func (s *itemServiceImpl) List(ctx context.Context) ([]*domain.Item, error) {
	items, err := s.itemStore.List(ctx)
	if err != nil {
		s.log(ctx).Error("failed to list items", "error", err)
		return nil, fromStore("item", "list", MsgItemNotFound, err)
	}
	if items == nil {
		items = []*domain.Item{}
	}
	return items, nil
}

func (s *itemServiceImpl) Create(
	ctx context.Context,
	owner primitive.ObjectID,
	input CreateItemInput,
) (*domain.Item, error) {
	log := s.log(ctx)

	item, err := domain.NewItem(input.Name, input.Weather, input.ImageURL, owner)
	if err != nil {
		log.Debug("rejected invalid item", "error", err)
		return nil, apperr.Wrap(apperr.KindBadRequest, MsgInvalidItemData, err)
	}

	if err := s.itemStore.Create(ctx, item); err != nil {
		log.Error("failed to save item", "error", err, "owner", owner.Hex())
		return nil, fromStore("item", "create", MsgItemNotFound, err)
	}

	log.Info("item created", "item_id", item.ID.Hex(), "owner", owner.Hex())
	return item, nil
}

func (s *itemServiceImpl) Delete(ctx context.Context, itemID, identity primitive.ObjectID) error {
	log := s.log(ctx)

	item, err := s.itemStore.GetByID(ctx, itemID)
	if err != nil {
		if !store.IsNotFoundError(err) {
			log.Error("failed to load item for delete", "error", err, "item_id", itemID.Hex())
		}
		return fromStore("item", "delete", MsgItemNotFound, err)
	}

	if err := AssertOwner(item, identity); err != nil {
		log.Debug("delete refused: not owner",
			"item_id", itemID.Hex(),
			"user_id", identity.Hex())
		return err
	}

	// The store filters on owner too, so a concurrent delete surfaces as NotFound.
	if err := s.itemStore.Delete(ctx, itemID, identity); err != nil {
		if !store.IsNotFoundError(err) {
			log.Error("failed to delete item", "error", err, "item_id", itemID.Hex())
		}
		return fromStore("item", "delete", MsgItemNotFound, err)
	}

	log.Info("item deleted", "item_id", itemID.Hex(), "user_id", identity.Hex())
	return nil
}

func (s *itemServiceImpl) Like(ctx context.Context, itemID, identity primitive.ObjectID) (*domain.Item, error) {
	item, err := s.itemStore.AddLike(ctx, itemID, identity)
	if err != nil {
		if !store.IsNotFoundError(err) {
			s.log(ctx).Error("failed to like item", "error", err, "item_id", itemID.Hex())
		}
		return nil, fromStore("item", "like", MsgItemNotFound, err)
	}
	return item, nil
}

func (s *itemServiceImpl) Unlike(ctx context.Context, itemID, identity primitive.ObjectID) (*domain.Item, error) {
	item, err := s.itemStore.RemoveLike(ctx, itemID, identity)
	if err != nil {
		if !store.IsNotFoundError(err) {
			s.log(ctx).Error("failed to unlike item", "error", err, "item_id", itemID.Hex())
		}
		return nil, fromStore("item", "unlike", MsgItemNotFound, err)
	}
	return item, nil
}
