package domain

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a registered account. HashedPassword is never serialized to JSON;
// the HTTP layer additionally maps users onto a response type without it.
type User struct {
	ID             primitive.ObjectID `bson:"_id"       json:"_id"`
	Name           string             `bson:"name"      json:"name"`
	Avatar         string             `bson:"avatar"    json:"avatar"`
	Email          string             `bson:"email"     json:"email"`
	HashedPassword string             `bson:"password"  json:"-"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}

// NewUser creates a User with a fresh id. The password must already be hashed.
// Email is normalized to lower case so the unique index sees one spelling.
func NewUser(name, avatar, email, hashedPassword string) (*User, error) {
	user := &User{
		ID:             primitive.NewObjectID(),
		Name:           NormalizeName(name),
		Avatar:         strings.TrimSpace(avatar),
		Email:          NormalizeEmail(email),
		HashedPassword: hashedPassword,
		CreatedAt:      time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks the invariants every stored user must satisfy.
func (u *User) Validate() error {
	if u.ID.IsZero() {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyUserID)
	}
	if err := ValidateName(u.Name); err != nil {
		return err
	}
	if u.Avatar == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyURL)
	}
	if u.Email == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyEmail)
	}
	if u.HashedPassword == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyHashedPassword)
	}
	return nil
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
