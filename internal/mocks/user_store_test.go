package mocks

import (
	"context"
	"testing"

	"github.com/phrazzld/wtwr-api/internal/domain"
	"github.com/phrazzld/wtwr-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockUserStore(t *testing.T) {
	ctx := context.Background()
	s := NewMockUserStore()

	user, err := domain.NewUser("Ada", "https://example.com/ada.png", "ada@example.com", "hashed:secret1")
	require.NoError(t, err)
	require.NoError(t, s.Create(ctx, user))
	assert.False(t, user.ID.IsZero())

	t.Run("duplicate email", func(t *testing.T) {
		dup, err := domain.NewUser("Other", "https://example.com/o.png", "ada@example.com", "hashed:x")
		require.NoError(t, err)
		assert.ErrorIs(t, s.Create(ctx, dup), store.ErrEmailExists)
		assert.Equal(t, 1, s.Count())
	})

	t.Run("lookup", func(t *testing.T) {
		byEmail, err := s.GetByEmail(ctx, "ada@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, byEmail.ID)

		_, err = s.GetByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("update profile", func(t *testing.T) {
		name := "Ada L"
		updated, err := s.UpdateProfile(ctx, user.ID, store.UserProfileUpdate{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Ada L", updated.Name)
		assert.Equal(t, "https://example.com/ada.png", updated.Avatar)
	})
}
