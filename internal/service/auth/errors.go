package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token is malformed, carries a bad signature,
	// uses an unexpected algorithm or names no valid user.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates a correctly signed token whose exp is in the past.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authentication token is missing")
)
