package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/wtwr-api/internal/domain"
	"github.com/phrazzld/wtwr-api/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockItemStore is a thread-safe in-memory store.ItemStore. Like and unlike
// mutate under the store lock, mirroring the atomic set operators of the real
// store.
type MockItemStore struct {
	ListFn       func(ctx context.Context) ([]*domain.Item, error)
	CreateFn     func(ctx context.Context, item *domain.Item) error
	GetByIDFn    func(ctx context.Context, id primitive.ObjectID) (*domain.Item, error)
	DeleteFn     func(ctx context.Context, id, owner primitive.ObjectID) error
	AddLikeFn    func(ctx context.Context, id, userID primitive.ObjectID) (*domain.Item, error)
	RemoveLikeFn func(ctx context.Context, id, userID primitive.ObjectID) (*domain.Item, error)

	mu    sync.RWMutex
	order []primitive.ObjectID
	items map[primitive.ObjectID]*domain.Item
}

var _ store.ItemStore = (*MockItemStore)(nil)

// NewMockItemStore creates a new empty store.
func NewMockItemStore() *MockItemStore {
	return &MockItemStore{
		items: make(map[primitive.ObjectID]*domain.Item),
	}
}

func copyItem(i *domain.Item) *domain.Item {
	c := *i
	c.Likes = append(make([]primitive.ObjectID, 0, len(i.Likes)), i.Likes...)
	return &c
}

// List implements the ItemStore interface
func (m *MockItemStore) List(ctx context.Context) ([]*domain.Item, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]*domain.Item, 0, len(m.order))
	for _, id := range m.order {
		if item, ok := m.items[id]; ok {
			items = append(items, copyItem(item))
		}
	}
	return items, nil
}

// Create implements the ItemStore interface
func (m *MockItemStore) Create(ctx context.Context, item *domain.Item) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, item)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	m.items[item.ID] = copyItem(item)
	m.order = append(m.order, item.ID)
	return nil
}

// GetByID implements the ItemStore interface
func (m *MockItemStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Item, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	item, ok := m.items[id]
	if !ok {
		return nil, store.ErrItemNotFound
	}
	return copyItem(item), nil
}

// Delete implements the ItemStore interface. Only an item still owned by
// owner is removed.
func (m *MockItemStore) Delete(ctx context.Context, id, owner primitive.ObjectID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id, owner)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[id]
	if !ok || item.Owner != owner {
		return store.ErrItemNotFound
	}
	delete(m.items, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// AddLike implements the ItemStore interface
func (m *MockItemStore) AddLike(ctx context.Context, id, userID primitive.ObjectID) (*domain.Item, error) {
	if m.AddLikeFn != nil {
		return m.AddLikeFn(ctx, id, userID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[id]
	if !ok {
		return nil, store.ErrItemNotFound
	}
	if !item.LikedBy(userID) {
		item.Likes = append(item.Likes, userID)
	}
	return copyItem(item), nil
}

// RemoveLike implements the ItemStore interface
func (m *MockItemStore) RemoveLike(ctx context.Context, id, userID primitive.ObjectID) (*domain.Item, error) {
	if m.RemoveLikeFn != nil {
		return m.RemoveLikeFn(ctx, id, userID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[id]
	if !ok {
		return nil, store.ErrItemNotFound
	}
	likes := item.Likes[:0]
	for _, liker := range item.Likes {
		if liker != userID {
			likes = append(likes, liker)
		}
	}
	item.Likes = likes
	return copyItem(item), nil
}
