package handlers

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"cardlink/internal/services/auth"
	"cardlink/internal/utils/response"
)

// CacheFlusher drops every cached entry. Satisfied by the redis cache
// service.
type CacheFlusher interface {
	FlushAll(ctx context.Context) error
}

type AdminHandler struct {
	authService auth.Service
	cache       CacheFlusher
}

func NewAdminHandler(authService auth.Service, cache CacheFlusher) *AdminHandler {
	return &AdminHandler{
		authService: authService,
		cache:       cache,
	}
}

// GetUser returns an account's profile for support tooling.
func (h *AdminHandler) GetUser(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid user id")
	}

	user, err := h.authService.GetUserByID(uint(id))
	if err != nil {
		return response.NotFound(c, "User not found")
	}

	return response.Success(c, "User retrieved successfully", fiber.Map{
		"id":            user.ID,
		"name":          user.Name,
		"email":         user.Email,
		"role":          user.Role,
		"status":        user.Status,
		"last_login_at": user.LastLoginAt,
	})
}

// FlushCache drops the whole redis cache, forcing every read back to
// the database.
func (h *AdminHandler) FlushCache(c *fiber.Ctx) error {
	if err := h.cache.FlushAll(c.Context()); err != nil {
		return response.ServerError(c, "Failed to flush cache")
	}
	return response.Success(c, "Cache flushed", nil)
}
