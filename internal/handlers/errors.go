package handlers

import (
	"errors"

	"catalog/internal/models"

	"github.com/gofiber/fiber/v2"
)

// statusForError maps the domain error taxonomy onto HTTP status codes:
// validation 400, not-found 404, duplicate/conflict 409, anything else 500.
func statusForError(err error) int {
	var (
		validationErr *models.ValidationError
		notFoundErr   *models.NotFoundError
		duplicateErr  *models.DuplicatePartnerError
		conflictErr   *models.ConflictError
	)
	switch {
	case errors.As(err, &validationErr):
		return fiber.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return fiber.StatusNotFound
	case errors.As(err, &duplicateErr):
		return fiber.StatusConflict
	case errors.As(err, &conflictErr):
		return fiber.StatusConflict
	}
	return fiber.StatusInternalServerError
}

// respondError writes the standard error body for a failed operation.
func respondError(c *fiber.Ctx, message string, err error) error {
	return c.Status(statusForError(err)).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}
