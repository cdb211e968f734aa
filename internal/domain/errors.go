package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// More specific errors below wrap it.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an identifier is not a valid object id.
	ErrInvalidID = errors.New("invalid ID")

	// ErrEmptyUserID is returned when an entity is missing its user reference.
	ErrEmptyUserID = errors.New("user ID cannot be empty")

	// ErrEmptyName is returned when a name is blank.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrNameLength is returned when a name is outside MinNameLength..MaxNameLength.
	ErrNameLength = errors.New("name must be between 2 and 30 characters")

	// ErrEmptyEmail is returned when an email is blank.
	ErrEmptyEmail = errors.New("email cannot be empty")

	// ErrEmptyHashedPassword is returned when a user has no password hash.
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")

	// ErrEmptyURL is returned when an avatar or image URL is blank.
	ErrEmptyURL = errors.New("url cannot be empty")

	// ErrInvalidWeather is returned for a weather value outside hot, warm and cold.
	ErrInvalidWeather = errors.New("invalid weather type")
)
