package auth

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JWTService defines operations for issuing and verifying bearer tokens.
type JWTService interface {
	// GenerateToken creates a signed token naming the given user as subject.
	GenerateToken(ctx context.Context, userID primitive.ObjectID) (string, error)

	// ValidateToken verifies the token signature and expiry and extracts the claims.
	// Returns ErrExpiredToken for an expired token and ErrInvalidToken for any
	// other failure. It never consults persistence.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the verified identity carried by a request.
type Claims struct {
	// UserID is the id of the user the token was issued for.
	UserID primitive.ObjectID

	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}
