package handlers

import (
	"errors"
	"os"

	"github.com/gofiber/fiber/v2"

	"cardlink/internal/services/upload"
	"cardlink/internal/utils/response"
)

type UploadHandler struct {
	uploadService upload.Service
}

func NewUploadHandler(uploadService upload.Service) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
	}
}

// UploadImage accepts a multipart form with "file" and "filename"
// fields and responds with the stored filename. The bytes arrive
// already compressed; they are persisted as-is.
func (h *UploadHandler) UploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "Missing file field")
	}

	name := c.FormValue("filename")
	if name == "" {
		name = fileHeader.Filename
	}

	f, err := fileHeader.Open()
	if err != nil {
		return response.ServerError(c, "Failed to read upload")
	}
	defer f.Close()

	stored, err := h.uploadService.Save(name, f)
	if err != nil {
		if errors.Is(err, upload.ErrUnsupportedType) || errors.Is(err, upload.ErrEmptyFile) {
			return response.BadRequest(c, err.Error())
		}
		return response.ServerError(c, "Failed to store upload")
	}

	return c.JSON(fiber.Map{
		"filename": stored,
	})
}

// ServeImage streams a stored card image. The route is public so QR
// payloads referencing an image by filename resolve for any scanner.
func (h *UploadHandler) ServeImage(c *fiber.Ctx) error {
	path := h.uploadService.Path(c.Params("filename"))
	if _, err := os.Stat(path); err != nil {
		return response.NotFound(c, "Image not found")
	}
	return c.SendFile(path)
}
