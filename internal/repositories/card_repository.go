package repositories

import (
	"errors"

	"cardlink/internal/models"
)

var ErrCardNotFound = errors.New("card not found")

// CardRepository persists users' business cards. Lookups are always
// scoped to the owning user so one user can never read or mutate
// another user's cards.
type CardRepository interface {
	GetByPublicID(userID uint, publicID string) (*models.Card, error)
	ListByUser(userID uint) ([]models.Card, error)
	Create(card *models.Card) error
	Update(card *models.Card) error
	Delete(userID uint, publicID string) error
}
