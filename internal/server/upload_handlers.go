package server

import (
	"fmt"
	"os"
	"path/filepath"

	"hobbyverse/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// UploadFile handles POST /api/upload. The file is stored under the
// configured upload directory with a random name; the returned URL points at
// the static /uploads route.
func (s *Server) UploadFile(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("File is required."))
	}

	if err := os.MkdirAll(s.config.UploadDir, 0o755); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	// Random prefix so uploads with the same original name never collide.
	ext := filepath.Ext(fileHeader.Filename)
	name := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	dest := filepath.Join(s.config.UploadDir, name)

	if err := c.SaveFile(fileHeader, dest); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{"url": "/uploads/" + name})
}
