package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	derrors "cardlink/internal/errors"
	"cardlink/internal/models"
	"cardlink/internal/services/card"
	"cardlink/internal/services/vcard"
	"cardlink/internal/utils"
	"cardlink/internal/utils/response"
)

type CardHandler struct {
	cardService card.Service
}

func NewCardHandler(cardService card.Service) *CardHandler {
	return &CardHandler{
		cardService: cardService,
	}
}

// GetCards returns every card owned by the authenticated user,
// in creation order.
func (h *CardHandler) GetCards(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	cards, err := h.cardService.List(c.Context(), claims.UserID)
	if err != nil {
		return response.ServerError(c, "Failed to fetch cards")
	}

	return response.Success(c, "Cards retrieved successfully", cards)
}

// GetCard returns a single card by its public id.
func (h *CardHandler) GetCard(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	found, err := h.cardService.Get(c.Context(), claims.UserID, c.Params("id"))
	if err != nil {
		return h.mapError(c, err)
	}

	return response.Success(c, "Card retrieved successfully", found)
}

// CreateCard persists a draft card and returns it with its assigned id.
func (h *CardHandler) CreateCard(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	var input models.CardInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	created, err := h.cardService.Create(c.Context(), claims.UserID, input)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Card created successfully",
		"data":    created,
	})
}

// UpdateCard replaces every editable field of an existing card.
func (h *CardHandler) UpdateCard(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	var input models.CardInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	updated, err := h.cardService.Update(c.Context(), claims.UserID, c.Params("id"), input)
	if err != nil {
		return h.mapError(c, err)
	}

	return response.Success(c, "Card updated successfully", updated)
}

// DeleteCard removes a card and echoes its id so clients can reconcile
// their local collection.
func (h *CardHandler) DeleteCard(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	id := c.Params("id")
	if err := h.cardService.Delete(c.Context(), claims.UserID, id); err != nil {
		return h.mapError(c, err)
	}

	return response.Success(c, "Card deleted successfully", fiber.Map{
		"id": id,
	})
}

// ExportVCard streams the card as a downloadable .vcf file.
func (h *CardHandler) ExportVCard(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	found, err := h.cardService.Get(c.Context(), claims.UserID, c.Params("id"))
	if err != nil {
		return h.mapError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/vcard")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", vcard.Filename(found)))
	return c.SendString(vcard.Encode(found))
}

// ExportQRPayload returns the QR-embeddable vCard text. Rendering the
// payload into a QR symbol is the client's job.
func (h *CardHandler) ExportQRPayload(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	found, err := h.cardService.Get(c.Context(), claims.UserID, c.Params("id"))
	if err != nil {
		return h.mapError(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(vcard.EncodeQRPayload(found))
}

// ImportCard parses a vCard body into a new card for the user.
func (h *CardHandler) ImportCard(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	input, err := vcard.Import(string(c.Body()))
	if err != nil {
		return response.BadRequest(c, "Invalid vCard body")
	}

	created, err := h.cardService.Create(c.Context(), claims.UserID, input)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Card imported successfully",
		"data":    created,
	})
}

func (h *CardHandler) mapError(c *fiber.Ctx, err error) error {
	var domainErr *derrors.DomainError
	if errors.As(err, &domainErr) {
		return response.ValidationError(c, domainErr.Message)
	}
	if errors.Is(err, card.ErrCardNotFound) {
		return response.NotFound(c, "Card not found")
	}
	return response.ServerError(c, "Card operation failed")
}
