package card

import (
	"context"

	"cardlink/internal/models"
)

// Service defines the interface for business card operations.
// Every lookup is scoped to the authenticated owner.
type Service interface {
	List(ctx context.Context, userID uint) ([]models.Card, error)
	Get(ctx context.Context, userID uint, id string) (*models.Card, error)
	Create(ctx context.Context, userID uint, input models.CardInput) (*models.Card, error)
	Update(ctx context.Context, userID uint, id string, input models.CardInput) (*models.Card, error)
	Delete(ctx context.Context, userID uint, id string) error
}
