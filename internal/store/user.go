package store

import (
	"context"

	"github.com/phrazzld/wtwr-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserProfileUpdate lists the profile fields to change. Nil fields are left alone.
type UserProfileUpdate struct {
	Name   *string
	Avatar *string
}

// Empty reports whether the update changes nothing.
func (u UserProfileUpdate) Empty() bool {
	return u.Name == nil && u.Avatar == nil
}

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user whose password is already hashed.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by id.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)

	// GetByEmail retrieves a user by exact (normalized) email.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// UpdateProfile atomically sets the provided fields and returns the
	// updated user. Returns ErrUserNotFound if the user does not exist.
	UpdateProfile(ctx context.Context, id primitive.ObjectID, update UserProfileUpdate) (*domain.User, error)
}
