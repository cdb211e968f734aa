package mocks

import (
	"context"

	"github.com/phrazzld/wtwr-api/internal/domain"
	"github.com/phrazzld/wtwr-api/internal/store"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TestifyMockItemStore is a mock of store.ItemStore interface for use with testify/mock
type TestifyMockItemStore struct {
	mock.Mock
}

var _ store.ItemStore = (*TestifyMockItemStore)(nil)

func itemResult(args mock.Arguments) (*domain.Item, error) {
	if item, ok := args.Get(0).(*domain.Item); ok {
		return item, args.Error(1)
	}
	return nil, args.Error(1)
}

// List is a mock implementation of store.ItemStore.List
func (m *TestifyMockItemStore) List(ctx context.Context) ([]*domain.Item, error) {
	args := m.Called(ctx)
	if items, ok := args.Get(0).([]*domain.Item); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

// Create is a mock implementation of store.ItemStore.Create
func (m *TestifyMockItemStore) Create(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

// GetByID is a mock implementation of store.ItemStore.GetByID
func (m *TestifyMockItemStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Item, error) {
	return itemResult(m.Called(ctx, id))
}

// Delete is a mock implementation of store.ItemStore.Delete
func (m *TestifyMockItemStore) Delete(ctx context.Context, id, owner primitive.ObjectID) error {
	args := m.Called(ctx, id, owner)
	return args.Error(0)
}

// AddLike is a mock implementation of store.ItemStore.AddLike
func (m *TestifyMockItemStore) AddLike(ctx context.Context, id, userID primitive.ObjectID) (*domain.Item, error) {
	return itemResult(m.Called(ctx, id, userID))
}

// RemoveLike is a mock implementation of store.ItemStore.RemoveLike
func (m *TestifyMockItemStore) RemoveLike(ctx context.Context, id, userID primitive.ObjectID) (*domain.Item, error) {
	return itemResult(m.Called(ctx, id, userID))
}
