package repositories

import (
	"context"

	"cardlink/internal/models"
)

// CacheRepository defines the interface for cache operations
type CacheRepository interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, keys ...string) error

	// Card-specific operations
	GetCardList(ctx context.Context, userID uint) ([]models.Card, bool, error)
	CacheCardList(ctx context.Context, userID uint, cards []models.Card) error
	InvalidateCardList(ctx context.Context, userID uint) error
}
