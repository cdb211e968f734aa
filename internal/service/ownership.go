package service

import (
	"github.com/phrazzld/wtwr-api/internal/apperr"
	"github.com/phrazzld/wtwr-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AssertOwner fails with Forbidden unless identity owns item.
// Callers confirm the item exists first, so NotFound wins over Forbidden.
func AssertOwner(item *domain.Item, identity primitive.ObjectID) error {
	if !item.IsOwnedBy(identity) {
		return apperr.Wrap(apperr.KindForbidden, MsgNotItemOwner, ErrNotOwned)
	}
	return nil
}
