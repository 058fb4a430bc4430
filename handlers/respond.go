package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/sefask/assignment-api/services"
)

// respondError maps the service error taxonomy onto HTTP responses.
// Validation and verification failures are user-facing; anything else is
// logged and surfaced as a generic 500.
func respondError(c *fiber.Ctx, err error) error {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		return respondValidation(c, verr)
	}

	switch {
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Not found",
		})
	case errors.Is(err, services.ErrAlreadyVerified):
		return fieldFailure(c, "email", "Email is already verified.")
	case errors.Is(err, services.ErrMissingCode):
		return fieldFailure(c, "code", "No verification code has been issued.")
	case errors.Is(err, services.ErrInvalidCode):
		return fieldFailure(c, "code", "Invalid verification code.")
	case errors.Is(err, services.ErrExpiredCode):
		return fieldFailure(c, "code", "Verification code has expired.")
	}

	log.Printf("🔥 Internal error: %v | Path: %s", err, c.Path())
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": "Internal server error",
	})
}

func respondValidation(c *fiber.Ctx, verr *services.ValidationError) error {
	body := fiber.Map{"success": false}

	switch {
	case len(verr.Fields) > 0:
		body["message"] = "Validation failed"
		body["errors"] = verr.Fields
		if len(verr.Questions) > 0 {
			body["questionErrors"] = verr.Questions
		}
	case len(verr.Questions) > 0:
		body["message"] = "Invalid questions data"
		body["errors"] = verr.Questions
	default:
		body["message"] = "Validation failed"
	}

	return c.Status(fiber.StatusBadRequest).JSON(body)
}

func fieldFailure(c *fiber.Ctx, field, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"errors":  fiber.Map{field: message},
	})
}
