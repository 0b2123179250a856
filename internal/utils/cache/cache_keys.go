package cache

import "fmt"

type EntityType string

const (
	EntityUser EntityType = "user"
	EntityCard EntityType = "cards"
)

type KeyType string

const (
	KeyID    KeyType = "id"
	KeyEmail KeyType = "email"
	KeyUser  KeyType = "user"
)

// GenerateKey creates a standardized cache key
func GenerateKey(entity EntityType, keyType KeyType, value interface{}) string {
	return fmt.Sprintf("%s:%s:%v", entity, keyType, value)
}

// UserKeys returns every cache key under which a user may be stored.
func UserKeys(id uint, email string) []string {
	return []string{
		GenerateKey(EntityUser, KeyID, id),
		GenerateKey(EntityUser, KeyEmail, email),
	}
}

// CardListKey returns the cache key for a user's card list.
func CardListKey(userID uint) string {
	return GenerateKey(EntityCard, KeyUser, userID)
}
