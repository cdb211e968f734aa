package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Name length bounds for users and items, counted in characters after trimming.
const (
	MinNameLength = 2
	MaxNameLength = 30
)

// NormalizeName trims surrounding whitespace from a display name.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

// ValidateName checks an already normalized name against the length bounds.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyName)
	}
	if n := utf8.RuneCountInString(name); n < MinNameLength || n > MaxNameLength {
		return fmt.Errorf("%w: %w", ErrValidation, ErrNameLength)
	}
	return nil
}
