package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/phrazzld/wtwr-api/internal/apperr"
	"github.com/phrazzld/wtwr-api/internal/domain"
	"github.com/phrazzld/wtwr-api/internal/platform/logger"
	"github.com/phrazzld/wtwr-api/internal/service/auth"
	"github.com/phrazzld/wtwr-api/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SignupInput carries an already format-validated signup request.
type SignupInput struct {
	Name     string
	Avatar   string
	Email    string
	Password string
}

// UserService provides account operations.
type UserService interface {
	// Signup hashes the password and stores a new user.
	// Returns Conflict when the email is taken.
	Signup(ctx context.Context, input SignupInput) (*domain.User, error)

	// Authenticate checks an email/password pair and returns the user's id.
	// Unknown email and wrong password fail with the same Unauthorized error.
	Authenticate(ctx context.Context, email, password string) (primitive.ObjectID, error)

	// GetCurrent returns the user named by the request identity.
	GetCurrent(ctx context.Context, userID primitive.ObjectID) (*domain.User, error)

	// UpdateProfile sets the provided profile fields and returns the updated user.
	UpdateProfile(ctx context.Context, userID primitive.ObjectID, update store.UserProfileUpdate) (*domain.User, error)
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userStore store.UserStore
	hasher    auth.PasswordHasher
	logger    *slog.Logger

	// dummyHash is compared against on unknown emails so both sign-in
	// failure paths do the same bcrypt work.
	dummyOnce sync.Once
	dummyHash string
}

// NewUserService creates a new UserService
func NewUserService(userStore store.UserStore, hasher auth.PasswordHasher, logger *slog.Logger) UserService {
	return &UserServiceImpl{
		userStore: userStore,
		hasher:    hasher,
		logger:    logger.With("component", "user_service"),
	}
}

func (s *UserServiceImpl) log(ctx context.Context) *slog.Logger {
	return logger.FromContextOrDefault(ctx, s.logger)
}

// Signup creates a new user with a hashed password.
func (s *UserServiceImpl) Signup(ctx context.Context, input SignupInput) (*domain.User, error) {
	log := s.log(ctx)

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, apperr.Internal(NewServiceError("user", "signup", err))
	}

	user, err := domain.NewUser(input.Name, input.Avatar, input.Email, hash)
	if err != nil {
		log.Debug("rejected invalid user", "error", err)
		return nil, apperr.Wrap(apperr.KindBadRequest, MsgInvalidUserData, err)
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			log.Debug("attempted to create user with existing email")
		} else {
			log.Error("failed to save user", "error", err)
		}
		return nil, fromStore("user", "signup", MsgUserNotFound, err)
	}

	log.Info("user created", "user_id", user.ID.Hex())
	return user, nil
}

// Authenticate verifies credentials against the stored bcrypt hash.
func (s *UserServiceImpl) Authenticate(
	ctx context.Context,
	email, password string,
) (primitive.ObjectID, error) {
	log := s.log(ctx)

	user, err := s.userStore.GetByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if !store.IsNotFoundError(err) {
			log.Error("failed to look up user for sign-in", "error", err)
			return primitive.NilObjectID, apperr.Internal(NewServiceError("user", "authenticate", err))
		}
		s.compareDummy(password)
		log.Debug("sign-in failed: unknown email")
		return primitive.NilObjectID, apperr.Unauthorized(MsgInvalidCredentials)
	}

	if err := s.hasher.Compare(user.HashedPassword, password); err != nil {
		log.Debug("sign-in failed: password mismatch", "user_id", user.ID.Hex())
		return primitive.NilObjectID, apperr.Unauthorized(MsgInvalidCredentials)
	}

	return user.ID, nil
}

func (s *UserServiceImpl) compareDummy(password string) {
	s.dummyOnce.Do(func() {
		hash, err := s.hasher.Hash(primitive.NewObjectID().Hex())
		if err == nil {
			s.dummyHash = hash
		}
	})
	if s.dummyHash != "" {
		_ = s.hasher.Compare(s.dummyHash, password)
	}
}

// GetCurrent retrieves the user by id.
func (s *UserServiceImpl) GetCurrent(ctx context.Context, userID primitive.ObjectID) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if !store.IsNotFoundError(err) {
			s.log(ctx).Error("failed to retrieve user", "error", err, "user_id", userID.Hex())
		}
		return nil, fromStore("user", "get_current", MsgUserNotFound, err)
	}
	return user, nil
}

// UpdateProfile applies a partial profile update.
func (s *UserServiceImpl) UpdateProfile(
	ctx context.Context,
	userID primitive.ObjectID,
	update store.UserProfileUpdate,
) (*domain.User, error) {
	if update.Empty() {
		return nil, apperr.BadRequest(MsgEmptyProfileUpdate)
	}

	update, err := normalizeProfileUpdate(update)
	if err != nil {
		s.log(ctx).Debug("rejected invalid profile update", "error", err, "user_id", userID.Hex())
		return nil, apperr.Wrap(apperr.KindBadRequest, MsgInvalidUserData, err)
	}

	user, err := s.userStore.UpdateProfile(ctx, userID, update)
	if err != nil {
		if !store.IsNotFoundError(err) {
			s.log(ctx).Error("failed to update profile", "error", err, "user_id", userID.Hex())
		}
		return nil, fromStore("user", "update_profile", MsgUserNotFound, err)
	}

	s.log(ctx).Debug("profile updated", "user_id", userID.Hex())
	return user, nil
}

// normalizeProfileUpdate applies the signup rules to the provided fields:
// names are trimmed and length-checked, avatars trimmed and non-empty.
func normalizeProfileUpdate(update store.UserProfileUpdate) (store.UserProfileUpdate, error) {
	out := store.UserProfileUpdate{}
	if update.Name != nil {
		name := domain.NormalizeName(*update.Name)
		if err := domain.ValidateName(name); err != nil {
			return out, err
		}
		out.Name = &name
	}
	if update.Avatar != nil {
		avatar := strings.TrimSpace(*update.Avatar)
		if avatar == "" {
			return out, fmt.Errorf("%w: %w", domain.ErrValidation, domain.ErrEmptyURL)
		}
		out.Avatar = &avatar
	}
	return out, nil
}
