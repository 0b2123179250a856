package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	cachekeys "cardlink/internal/utils/cache"

	"cardlink/internal/models"
)

// DefaultTTL bounds how long a cached entry may outlive its source row.
const DefaultTTL = 24 * time.Hour

type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

// Base operations
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	return s.SetWithTTL(ctx, key, value, s.ttl)
}

func (s *CacheService) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

// Key generation
func (s *CacheService) GenerateKey(entityType, keyType string, value interface{}) string {
	return cachekeys.GenerateKey(cachekeys.EntityType(entityType), cachekeys.KeyType(keyType), value)
}

// User caching
func (s *CacheService) CacheUser(ctx context.Context, user *models.User) error {
	if user == nil {
		return errors.New("cannot cache nil user")
	}

	for _, key := range cachekeys.UserKeys(user.ID, user.Email) {
		if err := s.Set(ctx, key, user); err != nil {
			return err
		}
	}
	return nil
}

func (s *CacheService) GetUser(ctx context.Context, key string) (*models.User, error) {
	var user models.User
	found, err := s.Get(ctx, key, &user)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.New("user not found in cache")
	}
	return &user, nil
}

func (s *CacheService) InvalidateUser(ctx context.Context, user *models.User) error {
	return s.Delete(ctx, cachekeys.UserKeys(user.ID, user.Email)...)
}

// Card list caching. The whole per-user list is cached as one value and
// dropped on any mutation; individual cards are never cached alone.
func (s *CacheService) CacheCardList(ctx context.Context, userID uint, cards []models.Card) error {
	return s.Set(ctx, cachekeys.CardListKey(userID), cards)
}

func (s *CacheService) GetCardList(ctx context.Context, userID uint) ([]models.Card, bool, error) {
	var cards []models.Card
	found, err := s.Get(ctx, cachekeys.CardListKey(userID), &cards)
	return cards, found, err
}

func (s *CacheService) InvalidateCardList(ctx context.Context, userID uint) error {
	return s.Delete(ctx, cachekeys.CardListKey(userID))
}

func (s *CacheService) FlushAll(ctx context.Context) error {
	return s.client.FlushAll(ctx).Err()
}

func (s *CacheService) Close() error {
	return s.client.Close()
}
