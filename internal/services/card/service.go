package card

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"cardlink/internal/models"
	"cardlink/internal/repositories"
	"cardlink/internal/validation"
)

type service struct {
	repo  repositories.CardRepository
	cache repositories.CacheRepository
}

// NewService creates a new card service.
func NewService(repo repositories.CardRepository, cache repositories.CacheRepository) Service {
	if repo == nil {
		panic("repo is required")
	}
	if cache == nil {
		panic("cache is required")
	}
	return &service{
		repo:  repo,
		cache: cache,
	}
}

func (s *service) List(ctx context.Context, userID uint) ([]models.Card, error) {
	// Try cache first
	if cards, found, err := s.cache.GetCardList(ctx, userID); err == nil && found {
		return cards, nil
	}

	cards, err := s.repo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	if cards == nil {
		// Empty collections marshal as [], never null.
		cards = []models.Card{}
	}

	if err := s.cache.CacheCardList(ctx, userID, cards); err != nil {
		log.Printf("Failed to cache card list for user %d: %v", userID, err)
	}
	return cards, nil
}

func (s *service) Get(ctx context.Context, userID uint, id string) (*models.Card, error) {
	card, err := s.repo.GetByPublicID(userID, id)
	if err != nil {
		if err == repositories.ErrCardNotFound {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}
	return card, nil
}

func (s *service) Create(ctx context.Context, userID uint, input models.CardInput) (*models.Card, error) {
	if err := validation.ValidateCardInput(input); err != nil {
		return nil, err
	}
	canonicalize(&input)

	card := &models.Card{
		PublicID: uuid.NewString(),
		UserID:   userID,
	}
	card.Apply(input)

	if err := s.repo.Create(card); err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}

	s.invalidate(ctx, userID)
	return card, nil
}

func (s *service) Update(ctx context.Context, userID uint, id string, input models.CardInput) (*models.Card, error) {
	if err := validation.ValidateCardInput(input); err != nil {
		return nil, err
	}
	canonicalize(&input)

	card, err := s.repo.GetByPublicID(userID, id)
	if err != nil {
		if err == repositories.ErrCardNotFound {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}

	// Full replace of the editable fields; id and owner never change.
	card.Apply(input)

	if err := s.repo.Update(card); err != nil {
		return nil, fmt.Errorf("failed to update card: %w", err)
	}

	s.invalidate(ctx, userID)
	return card, nil
}

func (s *service) Delete(ctx context.Context, userID uint, id string) error {
	if err := s.repo.Delete(userID, id); err != nil {
		if err == repositories.ErrCardNotFound {
			return ErrCardNotFound
		}
		return fmt.Errorf("failed to delete card: %w", err)
	}

	s.invalidate(ctx, userID)
	return nil
}

func (s *service) invalidate(ctx context.Context, userID uint) {
	if err := s.cache.InvalidateCardList(ctx, userID); err != nil {
		log.Printf("Failed to invalidate card list for user %d: %v", userID, err)
	}
}

// canonicalize rewrites accepted field variants into their stored form.
// LinkedIn values are stored as bare slugs; URL composition happens at
// encode time only.
func canonicalize(in *models.CardInput) {
	in.Linkedin = validation.LinkedinSlug(in.Linkedin)
}
