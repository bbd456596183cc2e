package handlers

import (
	"errors"
	"log"

	"github.com/enrollify/enrollment-api/models"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// errorJSON translates service failures into the HTTP surface. Anything not
// in the taxonomy is an unexpected storage error.
func errorJSON(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, models.ErrInvalidLRN),
		errors.Is(err, models.ErrInvalidTrack),
		errors.Is(err, models.ErrInvalidStatus):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, models.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
	case errors.Is(err, models.ErrNotFound),
		errors.Is(err, models.ErrStudentNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, models.ErrDuplicateKey),
		errors.Is(err, models.ErrTrackInUse):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}

	log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
}
