package store

import (
	"context"

	"github.com/phrazzld/wtwr-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ItemStore defines the interface for clothing item persistence.
//
// Like and unlike must be implemented with store-level atomic set operators;
// callers never read an item, change Likes in memory and write it back.
type ItemStore interface {
	// List returns all items, oldest first. Never returns a nil slice.
	List(ctx context.Context) ([]*domain.Item, error)

	// Create saves a new item.
	Create(ctx context.Context, item *domain.Item) error

	// GetByID retrieves an item by id.
	// Returns ErrItemNotFound if the item does not exist.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Item, error)

	// Delete removes the item only if it is still owned by owner.
	// Returns ErrItemNotFound if no such item exists.
	Delete(ctx context.Context, id, owner primitive.ObjectID) error

	// AddLike adds userID to the item's like set and returns the updated item.
	// Adding an existing liker is a no-op. Returns ErrItemNotFound if absent.
	AddLike(ctx context.Context, id, userID primitive.ObjectID) (*domain.Item, error)

	// RemoveLike removes userID from the item's like set and returns the
	// updated item. Removing a non-liker is a no-op. Returns ErrItemNotFound if absent.
	RemoveLike(ctx context.Context, id, userID primitive.ObjectID) (*domain.Item, error)
}
