// Seeds an admin account and a demo account with a couple of cards for
// local development.
package main

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"

	"cardlink/internal/config"
	"cardlink/internal/models"
	"cardlink/internal/repositories"
	"cardlink/internal/services/card"
)

func main() {
	config.LoadEnv()

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	email := config.GetEnv("SEED_EMAIL", "demo@cardlink.local")
	password := config.GetEnv("SEED_PASSWORD", "demo-pass!234")

	userRepo := repositories.NewUserRepository(repositories.DB, repositories.CacheService)

	adminEmail := config.GetEnv("SEED_ADMIN_EMAIL", "admin@cardlink.local")
	adminPassword := config.GetEnv("SEED_ADMIN_PASSWORD", "admin-pass!234")
	if _, err := userRepo.GetByEmail(adminEmail); err != nil {
		if err := createUser(userRepo, "Admin", adminEmail, adminPassword, "admin"); err != nil {
			log.Fatalf("Failed to create admin user: %v", err)
		}
		log.Printf("Seeded admin user %s", adminEmail)
	}

	if _, err := userRepo.GetByEmail(email); err == nil {
		log.Printf("Seed user %s already exists, nothing to do", email)
		return
	}

	if err := createUser(userRepo, "Demo User", email, password, "user"); err != nil {
		log.Fatalf("Failed to create seed user: %v", err)
	}

	user, err := userRepo.GetByEmail(email)
	if err != nil {
		log.Fatalf("Failed to load seed user: %v", err)
	}

	cardService := card.NewService(
		repositories.NewCardRepository(repositories.DB),
		repositories.CacheService,
	)

	drafts := []models.CardInput{
		{
			Name:      "Ada Example",
			Email:     "ada@example.com",
			Telephone: "5551234567",
			Birthday:  "1990-05-02",
			Website:   "https://example.com",
			Instagram: "ada.example",
			Linkedin:  "ada-example",
			Snapchat:  "ada_example",
		},
		{
			Name:  "Minimal Card",
			Email: "minimal@example.com",
		},
	}
	for _, draft := range drafts {
		if _, err := cardService.Create(context.Background(), user.ID, draft); err != nil {
			log.Fatalf("Failed to seed card %q: %v", draft.Name, err)
		}
	}

	log.Printf("Seeded user %s with %d cards", email, len(drafts))
}

func createUser(repo repositories.UserRepository, name, email, password, role string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return repo.Create(&models.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     role,
	})
}
