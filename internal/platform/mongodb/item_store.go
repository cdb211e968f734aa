package mongodb

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/wtwr-api/internal/domain"
	"github.com/phrazzld/wtwr-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoItemStore implements store.ItemStore on the clothingitems collection.
type MongoItemStore struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

var _ store.ItemStore = (*MongoItemStore)(nil)

// NewMongoItemStore creates an item store on db.
func NewMongoItemStore(db *mongo.Database, logger *slog.Logger) *MongoItemStore {
	return &MongoItemStore{
		coll:   db.Collection(ItemsCollection),
		logger: logger.With("store", "item"),
	}
}

// normalize guarantees a non-nil like set for documents written without one.
func normalize(item *domain.Item) *domain.Item {
	if item.Likes == nil {
		item.Likes = []primitive.ObjectID{}
	}
	return item
}

// List implements store.ItemStore.List
func (s *MongoItemStore) List(ctx context.Context) ([]*domain.Item, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, store.NewStoreError("item", "list", "find failed", MapError(err))
	}

	var items []*domain.Item
	if err := cursor.All(ctx, &items); err != nil {
		return nil, store.NewStoreError("item", "list", "decode failed", MapError(err))
	}

	result := make([]*domain.Item, 0, len(items))
	for _, item := range items {
		result = append(result, normalize(item))
	}
	return result, nil
}

// Create implements store.ItemStore.Create
func (s *MongoItemStore) Create(ctx context.Context, item *domain.Item) error {
	if err := item.Validate(); err != nil {
		return store.NewStoreError("item", "create", "invalid item", errors.Join(store.ErrInvalidEntity, err))
	}
	normalize(item)

	if _, err := s.coll.InsertOne(ctx, item); err != nil {
		return store.NewStoreError("item", "create", "insert failed", MapError(err))
	}
	return nil
}

// GetByID implements store.ItemStore.GetByID
func (s *MongoItemStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Item, error) {
	var item domain.Item
	if err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrItemNotFound
		}
		return nil, store.NewStoreError("item", "get_by_id", "find failed", MapError(err))
	}
	return normalize(&item), nil
}

// Delete implements store.ItemStore.Delete. The owner is part of the filter.
func (s *MongoItemStore) Delete(ctx context.Context, id, owner primitive.ObjectID) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id, "owner": owner})
	if err != nil {
		return store.NewStoreError("item", "delete", "delete failed", MapError(err))
	}
	if res.DeletedCount == 0 {
		return store.ErrItemNotFound
	}
	return nil
}

func (s *MongoItemStore) updateLikes(
	ctx context.Context,
	op string,
	id primitive.ObjectID,
	update bson.M,
) (*domain.Item, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var item domain.Item
	err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrItemNotFound
		}
		return nil, store.NewStoreError("item", op, "update failed", MapError(err))
	}
	return normalize(&item), nil
}

// AddLike implements store.ItemStore.AddLike with $addToSet.
func (s *MongoItemStore) AddLike(ctx context.Context, id, userID primitive.ObjectID) (*domain.Item, error) {
	return s.updateLikes(ctx, "like", id, bson.M{"$addToSet": bson.M{"likes": userID}})
}

// RemoveLike implements store.ItemStore.RemoveLike with $pull.
func (s *MongoItemStore) RemoveLike(ctx context.Context, id, userID primitive.ObjectID) (*domain.Item, error) {
	return s.updateLikes(ctx, "unlike", id, bson.M{"$pull": bson.M{"likes": userID}})
}
