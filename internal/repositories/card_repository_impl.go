package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"cardlink/internal/models"
)

type cardRepository struct {
	db *gorm.DB
}

func NewCardRepository(db *gorm.DB) CardRepository {
	return &cardRepository{
		db: db,
	}
}

func (r *cardRepository) GetByPublicID(userID uint, publicID string) (*models.Card, error) {
	var card models.Card
	err := r.db.Where("user_id = ? AND public_id = ?", userID, publicID).First(&card).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}
	return &card, nil
}

func (r *cardRepository) ListByUser(userID uint) ([]models.Card, error) {
	var cards []models.Card
	// Insertion order: clients render the list in creation order.
	if err := r.db.Where("user_id = ?", userID).Order("id ASC").Find(&cards).Error; err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	return cards, nil
}

func (r *cardRepository) Create(card *models.Card) error {
	return r.db.Create(card).Error
}

func (r *cardRepository) Update(card *models.Card) error {
	return r.db.Save(card).Error
}

func (r *cardRepository) Delete(userID uint, publicID string) error {
	result := r.db.Where("user_id = ? AND public_id = ?", userID, publicID).Delete(&models.Card{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	return nil
}
