// Package routes defines the API routing configuration.
// It sets up all HTTP routes and their corresponding handlers,
// including middleware and authentication requirements.
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"cardlink/internal/config"
	"cardlink/internal/handlers"
	"cardlink/internal/middleware"
	"cardlink/internal/models"
	"cardlink/internal/repositories"
	"cardlink/internal/services/auth"
	"cardlink/internal/services/card"
	"cardlink/internal/services/upload"
)

// SetupRoutes configures all application routes.
// It groups routes by functionality and applies appropriate middleware.
func SetupRoutes(app *fiber.App, db *gorm.DB) error {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db, repositories.CacheService)
	cardRepo := repositories.NewCardRepository(db)

	// Initialize services
	authService := auth.NewService(userRepo)
	cardService := card.NewService(cardRepo, repositories.CacheService)
	uploadService, err := upload.NewService(config.UploadDir())
	if err != nil {
		return err
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	cardHandler := handlers.NewCardHandler(cardService)
	uploadHandler := handlers.NewUploadHandler(uploadService)
	adminHandler := handlers.NewAdminHandler(authService, repositories.CacheService)

	authMiddleware := middleware.NewAuthMiddleware(authService)

	app.Get("/health", handlers.HealthCheck)
	app.Get("/uploads/:filename", uploadHandler.ServeImage)

	api := app.Group("/api")

	// Public routes
	api.Post("/register", authHandler.RegisterUser)
	api.Post("/login", authHandler.LoginUser)
	api.Post("/refresh", authHandler.RefreshToken)

	// Protected routes
	authed := api.Use(authMiddleware.Handler)
	authed.Post("/logout", authHandler.LogoutUser)
	authed.Post("/change-password", middleware.HasPermission(models.PermissionChangePassword), authHandler.ChangePassword)

	authed.Post("/upload", middleware.HasPermission(models.PermissionUploadWrite), uploadHandler.UploadImage)

	cards := authed.Group("/cards")
	cards.Get("/", middleware.HasPermission(models.PermissionCardRead), cardHandler.GetCards)
	cards.Post("/", middleware.HasPermission(models.PermissionCardWrite), cardHandler.CreateCard)
	cards.Post("/import", middleware.HasPermission(models.PermissionCardWrite), cardHandler.ImportCard)
	cards.Get("/:id", middleware.HasPermission(models.PermissionCardRead), cardHandler.GetCard)
	cards.Put("/:id", middleware.HasPermission(models.PermissionCardWrite), cardHandler.UpdateCard)
	cards.Delete("/:id", middleware.HasPermission(models.PermissionCardWrite), cardHandler.DeleteCard)
	cards.Get("/:id/vcard", middleware.HasPermission(models.PermissionCardRead), cardHandler.ExportVCard)
	cards.Get("/:id/qr", middleware.HasPermission(models.PermissionCardRead), cardHandler.ExportQRPayload)

	// Admin-only routes
	admin := authed.Group("/admin", middleware.AdminAuthMiddleware)
	admin.Get("/users/:id", middleware.HasPermission(models.PermissionReadAdmin), adminHandler.GetUser)
	admin.Post("/cache/flush", middleware.HasPermission(models.PermissionWriteAdmin), adminHandler.FlushCache)

	return nil
}
