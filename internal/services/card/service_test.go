package card

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cardlink/internal/models"
	"cardlink/internal/repositories"
)

type MockCardRepo struct {
	mock.Mock
}

func (m *MockCardRepo) GetByPublicID(userID uint, publicID string) (*models.Card, error) {
	args := m.Called(userID, publicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Card), args.Error(1)
}

func (m *MockCardRepo) ListByUser(userID uint) ([]models.Card, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Card), args.Error(1)
}

func (m *MockCardRepo) Create(card *models.Card) error {
	args := m.Called(card)
	return args.Error(0)
}

func (m *MockCardRepo) Update(card *models.Card) error {
	args := m.Called(card)
	return args.Error(0)
}

func (m *MockCardRepo) Delete(userID uint, publicID string) error {
	args := m.Called(userID, publicID)
	return args.Error(0)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	args := m.Called(ctx, key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value interface{}) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

func (m *MockCache) GetCardList(ctx context.Context, userID uint) ([]models.Card, bool, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]models.Card), args.Bool(1), args.Error(2)
}

func (m *MockCache) CacheCardList(ctx context.Context, userID uint, cards []models.Card) error {
	args := m.Called(ctx, userID, cards)
	return args.Error(0)
}

func (m *MockCache) InvalidateCardList(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func newTestService(t *testing.T) (Service, *MockCardRepo, *MockCache) {
	t.Helper()
	repo := new(MockCardRepo)
	cache := new(MockCache)
	return NewService(repo, cache), repo, cache
}

func TestCardService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns id and stores draft fields", func(t *testing.T) {
		svc, repo, cache := newTestService(t)
		repo.On("Create", mock.Anything).Return(nil)
		cache.On("InvalidateCardList", mock.Anything, uint(7)).Return(nil)

		created, err := svc.Create(ctx, 7, models.CardInput{
			Name:      "Ada Example",
			Email:     "ada@example.com",
			Instagram: "ada.example",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, created.PublicID)
		assert.Equal(t, uint(7), created.UserID)
		assert.Equal(t, "Ada Example", created.Name)
		assert.Equal(t, "ada@example.com", created.Email)

		repo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("canonicalizes linkedin url to slug", func(t *testing.T) {
		svc, repo, cache := newTestService(t)
		repo.On("Create", mock.Anything).Return(nil)
		cache.On("InvalidateCardList", mock.Anything, uint(7)).Return(nil)

		created, err := svc.Create(ctx, 7, models.CardInput{
			Name:     "Ada Example",
			Linkedin: "https://www.linkedin.com/in/ada-example/",
		})
		require.NoError(t, err)
		assert.Equal(t, "ada-example", created.Linkedin)
	})

	t.Run("rejects invalid input before touching the repo", func(t *testing.T) {
		svc, repo, _ := newTestService(t)

		_, err := svc.Create(ctx, 7, models.CardInput{
			Name:    "Ada Example",
			Website: "not-a-url",
		})
		assert.Error(t, err)
		repo.AssertNotCalled(t, "Create", mock.Anything)
	})
}

func TestCardService_List(t *testing.T) {
	ctx := context.Background()
	stored := []models.Card{
		{PublicID: "a", UserID: 7, Name: "First"},
		{PublicID: "b", UserID: 7, Name: "Second"},
	}

	t.Run("cache miss falls through to repo and populates cache", func(t *testing.T) {
		svc, repo, cache := newTestService(t)
		cache.On("GetCardList", mock.Anything, uint(7)).Return(nil, false, nil)
		repo.On("ListByUser", uint(7)).Return(stored, nil)
		cache.On("CacheCardList", mock.Anything, uint(7), stored).Return(nil)

		cards, err := svc.List(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, stored, cards)

		repo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("zero cards yields an empty slice, not nil", func(t *testing.T) {
		svc, repo, cache := newTestService(t)
		cache.On("GetCardList", mock.Anything, uint(7)).Return(nil, false, nil)
		repo.On("ListByUser", uint(7)).Return(nil, nil)
		cache.On("CacheCardList", mock.Anything, uint(7), mock.Anything).Return(nil)

		cards, err := svc.List(ctx, 7)
		require.NoError(t, err)
		assert.NotNil(t, cards)
		assert.Empty(t, cards)
	})

	t.Run("cache hit skips repo", func(t *testing.T) {
		svc, repo, cache := newTestService(t)
		cache.On("GetCardList", mock.Anything, uint(7)).Return(stored, true, nil)

		cards, err := svc.List(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, stored, cards)
		repo.AssertNotCalled(t, "ListByUser", mock.Anything)
	})
}

func TestCardService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces every editable field", func(t *testing.T) {
		svc, repo, cache := newTestService(t)
		existing := &models.Card{PublicID: "a", UserID: 7, Name: "Old", Email: "old@example.com"}
		repo.On("GetByPublicID", uint(7), "a").Return(existing, nil)
		repo.On("Update", mock.Anything).Return(nil)
		cache.On("InvalidateCardList", mock.Anything, uint(7)).Return(nil)

		updated, err := svc.Update(ctx, 7, "a", models.CardInput{Name: "New"})
		require.NoError(t, err)
		assert.Equal(t, "a", updated.PublicID)
		assert.Equal(t, "New", updated.Name)
		// Full replace: fields absent from the input are cleared.
		assert.Empty(t, updated.Email)
	})

	t.Run("missing card maps to ErrCardNotFound", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		repo.On("GetByPublicID", uint(7), "nope").Return(nil, repositories.ErrCardNotFound)

		_, err := svc.Update(ctx, 7, "nope", models.CardInput{Name: "New"})
		assert.ErrorIs(t, err, ErrCardNotFound)
	})
}

func TestCardService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes and invalidates cache", func(t *testing.T) {
		svc, repo, cache := newTestService(t)
		repo.On("Delete", uint(7), "a").Return(nil)
		cache.On("InvalidateCardList", mock.Anything, uint(7)).Return(nil)

		require.NoError(t, svc.Delete(ctx, 7, "a"))
		repo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("missing card maps to ErrCardNotFound", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		repo.On("Delete", uint(7), "nope").Return(repositories.ErrCardNotFound)

		assert.ErrorIs(t, svc.Delete(ctx, 7, "nope"), ErrCardNotFound)
	})
}
