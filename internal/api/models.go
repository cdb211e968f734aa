package api

import (
	"strings"
	"time"

	"github.com/phrazzld/wtwr-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SignupRequest defines the payload for POST /signup.
type SignupRequest struct {
	Name     string `json:"name"     validate:"required,min=2,max=30"`
	Avatar   string `json:"avatar"   validate:"required,url"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// SigninRequest defines the payload for POST /signin.
type SigninRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest defines the payload for PATCH /users/me.
// Absent fields are left unchanged.
type UpdateProfileRequest struct {
	Name   *string `json:"name"   validate:"omitnil,min=2,max=30"`
	Avatar *string `json:"avatar" validate:"omitnil,url"`
}

// CreateItemRequest defines the payload for POST /items.
type CreateItemRequest struct {
	Name     string `json:"name"     validate:"required,min=2,max=30"`
	Weather  string `json:"weather"  validate:"required,oneof=hot warm cold"`
	ImageURL string `json:"imageUrl" validate:"required,url"`
}

// Normalize trims the text fields and lower-cases the email.
func (r *SignupRequest) Normalize() {
	r.Name = domain.NormalizeName(r.Name)
	r.Avatar = strings.TrimSpace(r.Avatar)
	r.Email = domain.NormalizeEmail(r.Email)
}

// Normalize lower-cases the email.
func (r *SigninRequest) Normalize() {
	r.Email = domain.NormalizeEmail(r.Email)
}

// Normalize trims the provided fields.
func (r *UpdateProfileRequest) Normalize() {
	if r.Name != nil {
		name := domain.NormalizeName(*r.Name)
		r.Name = &name
	}
	if r.Avatar != nil {
		avatar := strings.TrimSpace(*r.Avatar)
		r.Avatar = &avatar
	}
}

// Normalize trims the text fields.
func (r *CreateItemRequest) Normalize() {
	r.Name = domain.NormalizeName(r.Name)
	r.ImageURL = strings.TrimSpace(r.ImageURL)
}

// TokenResponse is returned by a successful sign-in.
type TokenResponse struct {
	Token string `json:"token"`
}

// UserResponse is the public view of a user. It has no password field.
type UserResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// ItemResponse is the public view of a clothing item.
type ItemResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Weather   string    `json:"weather"`
	ImageURL  string    `json:"imageUrl"`
	Owner     string    `json:"owner"`
	Likes     []string  `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
}

func userToResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID.Hex(),
		Name:      u.Name,
		Avatar:    u.Avatar,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

func hexIDs(ids []primitive.ObjectID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Hex())
	}
	return out
}

func itemToResponse(i *domain.Item) ItemResponse {
	return ItemResponse{
		ID:        i.ID.Hex(),
		Name:      i.Name,
		Weather:   string(i.Weather),
		ImageURL:  i.ImageURL,
		Owner:     i.Owner.Hex(),
		Likes:     hexIDs(i.Likes),
		CreatedAt: i.CreatedAt,
	}
}

func itemsToResponse(items []*domain.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, itemToResponse(item))
	}
	return out
}
