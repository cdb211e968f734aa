package domain

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Weather is the category of weather a clothing item is suited for.
type Weather string

const (
	WeatherHot  Weather = "hot"
	WeatherWarm Weather = "warm"
	WeatherCold Weather = "cold"
)

// Valid reports whether w is one of the known weather categories.
func (w Weather) Valid() bool {
	switch w {
	case WeatherHot, WeatherWarm, WeatherCold:
		return true
	}
	return false
}

// Item is a clothing item. Owner never changes after creation and Likes is a
// set of user ids; the store keeps it duplicate-free with $addToSet.
type Item struct {
	ID        primitive.ObjectID   `bson:"_id"       json:"_id"`
	Name      string               `bson:"name"      json:"name"`
	Weather   Weather              `bson:"weather"   json:"weather"`
	ImageURL  string               `bson:"imageUrl"  json:"imageUrl"`
	Owner     primitive.ObjectID   `bson:"owner"     json:"owner"`
	Likes     []primitive.ObjectID `bson:"likes"     json:"likes"`
	CreatedAt time.Time            `bson:"createdAt" json:"createdAt"`
}

// NewItem creates an Item owned by owner with an empty like set.
func NewItem(name string, weather Weather, imageURL string, owner primitive.ObjectID) (*Item, error) {
	item := &Item{
		ID:        primitive.NewObjectID(),
		Name:      NormalizeName(name),
		Weather:   weather,
		ImageURL:  strings.TrimSpace(imageURL),
		Owner:     owner,
		Likes:     []primitive.ObjectID{},
		CreatedAt: time.Now().UTC(),
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate checks the invariants every stored item must satisfy.
func (i *Item) Validate() error {
	if i.Owner.IsZero() {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyUserID)
	}
	if err := ValidateName(i.Name); err != nil {
		return err
	}
	if !i.Weather.Valid() {
		return fmt.Errorf("%w: %w", ErrValidation, ErrInvalidWeather)
	}
	if i.ImageURL == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyURL)
	}
	return nil
}

// IsOwnedBy reports whether userID created the item.
func (i *Item) IsOwnedBy(userID primitive.ObjectID) bool {
	return i.Owner == userID
}

// LikedBy reports whether userID is in the like set.
func (i *Item) LikedBy(userID primitive.ObjectID) bool {
	for _, id := range i.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
