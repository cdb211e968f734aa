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

// MongoUserStore implements store.UserStore on the users collection.
type MongoUserStore struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

var _ store.UserStore = (*MongoUserStore)(nil)

// NewMongoUserStore creates a user store on db.
func NewMongoUserStore(db *mongo.Database, logger *slog.Logger) *MongoUserStore {
	return &MongoUserStore{
		coll:   db.Collection(UsersCollection),
		logger: logger.With("store", "user"),
	}
}

// Create implements store.UserStore.Create
func (s *MongoUserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return store.NewStoreError("user", "create", "invalid user", errors.Join(store.ErrInvalidEntity, err))
	}

	if _, err := s.coll.InsertOne(ctx, user); err != nil {
		if IsDuplicateKey(err) {
			return store.NewStoreError("user", "create", "email already registered", store.ErrEmailExists)
		}
		return store.NewStoreError("user", "create", "insert failed", MapError(err))
	}
	return nil
}

func (s *MongoUserStore) findOne(ctx context.Context, op string, filter bson.M) (*domain.User, error) {
	var user domain.User
	if err := s.coll.FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrUserNotFound
		}
		return nil, store.NewStoreError("user", op, "find failed", MapError(err))
	}
	return &user, nil
}

// GetByID implements store.UserStore.GetByID
func (s *MongoUserStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	return s.findOne(ctx, "get_by_id", bson.M{"_id": id})
}

// GetByEmail implements store.UserStore.GetByEmail
func (s *MongoUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.findOne(ctx, "get_by_email", bson.M{"email": email})
}

// UpdateProfile implements store.UserStore.UpdateProfile with a single
// $set that returns the updated document.
func (s *MongoUserStore) UpdateProfile(
	ctx context.Context,
	id primitive.ObjectID,
	update store.UserProfileUpdate,
) (*domain.User, error) {
	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Avatar != nil {
		set["avatar"] = *update.Avatar
	}
	if len(set) == 0 {
		return s.GetByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user domain.User
	err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrUserNotFound
		}
		return nil, store.NewStoreError("user", "update_profile", "update failed", MapError(err))
	}
	return &user, nil
}
