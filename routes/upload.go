package routes

import (
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// POST /upload
//
// A storage failure is not fatal to the caller's flow: the response carries
// an empty path and a warning so the client can proceed without the image.
func uploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to get uploaded file",
		})
	}

	uploadsDir := os.Getenv("UPLOADS_DIR")
	if uploadsDir == "" {
		uploadsDir = "uploads"
	}

	// Generate unique filename
	ext := filepath.Ext(file.Filename)
	filename := uuid.New().String() + ext
	dest := filepath.Join(uploadsDir, filename)

	if err := c.SaveFile(file, dest); err != nil {
		return c.JSON(fiber.Map{
			"filename": "",
			"path":     "",
			"warning":  "Failed to store image; saved without it",
		})
	}

	return c.JSON(fiber.Map{
		"filename": filename,
		"path":     "/uploads/" + filename,
	})
}
