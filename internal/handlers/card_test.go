package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	derrors "cardlink/internal/errors"
	"cardlink/internal/models"
	"cardlink/internal/services/card"
)

type MockCardService struct {
	mock.Mock
}

func (m *MockCardService) List(ctx context.Context, userID uint) ([]models.Card, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Card), args.Error(1)
}

func (m *MockCardService) Get(ctx context.Context, userID uint, id string) (*models.Card, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Card), args.Error(1)
}

func (m *MockCardService) Create(ctx context.Context, userID uint, input models.CardInput) (*models.Card, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Card), args.Error(1)
}

func (m *MockCardService) Update(ctx context.Context, userID uint, id string, input models.CardInput) (*models.Card, error) {
	args := m.Called(ctx, userID, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Card), args.Error(1)
}

func (m *MockCardService) Delete(ctx context.Context, userID uint, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// newTestApp mounts the card routes behind a middleware that injects
// claims for user 7, standing in for the JWT middleware.
func newTestApp(svc card.Service) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("claims", &models.UserClaims{UserID: 7})
		return c.Next()
	})

	h := NewCardHandler(svc)
	app.Get("/api/cards", h.GetCards)
	app.Post("/api/cards", h.CreateCard)
	app.Get("/api/cards/:id", h.GetCard)
	app.Put("/api/cards/:id", h.UpdateCard)
	app.Delete("/api/cards/:id", h.DeleteCard)
	app.Get("/api/cards/:id/vcard", h.ExportVCard)
	app.Get("/api/cards/:id/qr", h.ExportQRPayload)
	app.Post("/api/cards/import", h.ImportCard)
	return app
}

func TestExportVCard(t *testing.T) {
	svc := new(MockCardService)
	svc.On("Get", mock.Anything, uint(7), "abc").Return(&models.Card{
		PublicID:  "abc",
		Name:      "Ada Example",
		Telephone: "5551234567",
		Email:     "ada@example.com",
	}, nil)

	app := newTestApp(svc)
	req := httptest.NewRequest("GET", "/api/cards/abc/vcard", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/vcard", resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, `attachment; filename="Ada Example.vcf"`, resp.Header.Get(fiber.HeaderContentDisposition))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	text := string(body)
	assert.True(t, strings.HasPrefix(text, "BEGIN:VCARD\nVERSION:3.0\n"))
	assert.Contains(t, text, "N:Ada Example\n")
	assert.Contains(t, text, "TEL:5551234567\n")
	assert.True(t, strings.HasSuffix(text, "END:VCARD"))
	svc.AssertExpectations(t)
}

func TestExportVCardNotFound(t *testing.T) {
	svc := new(MockCardService)
	svc.On("Get", mock.Anything, uint(7), "missing").Return(nil, card.ErrCardNotFound)

	app := newTestApp(svc)
	resp, err := app.Test(httptest.NewRequest("GET", "/api/cards/missing/vcard", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var envelope map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, "Card not found", envelope["message"])
}

func TestExportQRPayloadUsesFullSocialURLs(t *testing.T) {
	svc := new(MockCardService)
	svc.On("Get", mock.Anything, uint(7), "abc").Return(&models.Card{
		PublicID:  "abc",
		Name:      "Ada Example",
		Instagram: "ada.codes",
	}, nil)

	app := newTestApp(svc)
	resp, err := app.Test(httptest.NewRequest("GET", "/api/cards/abc/qr", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "X-SOCIALPROFILE;TYPE=instagram:https://www.instagram.com/ada.codes\n")
}

func TestImportCard(t *testing.T) {
	const body = "BEGIN:VCARD\r\nVERSION:3.0\r\nN:Ada Example\r\nTEL:5551234567\r\nEND:VCARD\r\n"

	svc := new(MockCardService)
	svc.On("Create", mock.Anything, uint(7), mock.MatchedBy(func(in models.CardInput) bool {
		return in.Name == "Ada Example" && in.Telephone == "5551234567"
	})).Return(&models.Card{PublicID: "new-id", Name: "Ada Example", Telephone: "5551234567"}, nil)

	app := newTestApp(svc)
	req := httptest.NewRequest("POST", "/api/cards/import", strings.NewReader(body))
	req.Header.Set("Content-Type", "text/vcard")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var envelope struct {
		Data models.Card `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, "new-id", envelope.Data.PublicID)
	svc.AssertExpectations(t)
}

func TestImportCardRejectsGarbage(t *testing.T) {
	svc := new(MockCardService)
	app := newTestApp(svc)

	req := httptest.NewRequest("POST", "/api/cards/import", strings.NewReader("not a vcard"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	svc.AssertNotCalled(t, "Create")
}

func TestDeleteCardEchoesID(t *testing.T) {
	svc := new(MockCardService)
	svc.On("Delete", mock.Anything, uint(7), "abc").Return(nil)

	app := newTestApp(svc)
	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/cards/abc", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, "abc", envelope.Data.ID)
}

func TestCreateCardValidationErrorSurfacesField(t *testing.T) {
	svc := new(MockCardService)
	svc.On("Create", mock.Anything, uint(7), mock.Anything).
		Return(nil, derrors.Validation("instagram", "must be a valid Instagram handle"))

	app := newTestApp(svc)
	req := httptest.NewRequest("POST", "/api/cards", strings.NewReader(`{"name":"Ada","instagram":"bad..handle"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var envelope map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, "instagram must be a valid Instagram handle", envelope["message"])
}

func TestGetCardsUnauthenticated(t *testing.T) {
	app := fiber.New()
	h := NewCardHandler(new(MockCardService))
	app.Get("/api/cards", h.GetCards)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/cards", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
