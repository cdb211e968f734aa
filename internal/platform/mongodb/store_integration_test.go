package mongodb_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/phrazzld/wtwr-api/internal/domain"
	"github.com/phrazzld/wtwr-api/internal/platform/mongodb"
	"github.com/phrazzld/wtwr-api/internal/store"
	"github.com/phrazzld/wtwr-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMongoUserStore(t *testing.T) {
	client := testdb.GetTestDBWithT(t)
	ctx := context.Background()
	users := mongodb.NewMongoUserStore(client.Database(), slog.Default())

	user, err := domain.NewUser("Ada", "https://example.com/ada.png", "ada@example.com", "$2a$10$hash")
	require.NoError(t, err)
	require.NoError(t, users.Create(ctx, user))

	t.Run("duplicate email", func(t *testing.T) {
		dup, err := domain.NewUser("Other", "https://example.com/o.png", "ada@example.com", "$2a$10$hash")
		require.NoError(t, err)
		assert.ErrorIs(t, users.Create(ctx, dup), store.ErrEmailExists)
	})

	t.Run("get by email", func(t *testing.T) {
		got, err := users.GetByEmail(ctx, "ada@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, "$2a$10$hash", got.HashedPassword)

		_, err = users.GetByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("update profile", func(t *testing.T) {
		name := "Ada Lovelace"
		got, err := users.UpdateProfile(ctx, user.ID, store.UserProfileUpdate{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, name, got.Name)
		assert.Equal(t, user.Avatar, got.Avatar)

		_, err = users.UpdateProfile(ctx, primitive.NewObjectID(), store.UserProfileUpdate{Name: &name})
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func TestMongoItemStore(t *testing.T) {
	client := testdb.GetTestDBWithT(t)
	ctx := context.Background()
	items := mongodb.NewMongoItemStore(client.Database(), slog.Default())
	owner := primitive.NewObjectID()

	empty, err := items.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	item, err := domain.NewItem("Parka", domain.WeatherCold, "https://example.com/parka.png", owner)
	require.NoError(t, err)
	require.NoError(t, items.Create(ctx, item))

	t.Run("concurrent likes form a set", func(t *testing.T) {
		liker := primitive.NewObjectID()
		var wg sync.WaitGroup
		for range 5 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = items.AddLike(ctx, item.ID, liker)
			}()
		}
		wg.Wait()

		got, err := items.GetByID(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, []primitive.ObjectID{liker}, got.Likes)

		got, err = items.RemoveLike(ctx, item.ID, liker)
		require.NoError(t, err)
		assert.Empty(t, got.Likes)
	})

	t.Run("like missing item", func(t *testing.T) {
		_, err := items.AddLike(ctx, primitive.NewObjectID(), owner)
		assert.ErrorIs(t, err, store.ErrItemNotFound)
	})

	t.Run("delete is filtered by owner", func(t *testing.T) {
		assert.ErrorIs(t, items.Delete(ctx, item.ID, primitive.NewObjectID()), store.ErrItemNotFound)
		require.NoError(t, items.Delete(ctx, item.ID, owner))
		_, err := items.GetByID(ctx, item.ID)
		assert.ErrorIs(t, err, store.ErrItemNotFound)
	})
}
