package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/sefask/assignment-api/services"
	"github.com/sefask/assignment-api/validation"
)

type AssignmentHandler struct {
	Assignments *services.AssignmentService
}

func NewAssignmentHandler(assignments *services.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{Assignments: assignments}
}

func (h *AssignmentHandler) Create(c *fiber.Ctx) error {
	var in validation.AssignmentInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}

	summary, err := h.Assignments.Create(authorID(c), in)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Assignment created successfully",
		"data":    summary,
	})
}

func (h *AssignmentHandler) List(c *fiber.Ctx) error {
	summaries, err := h.Assignments.List(authorID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "data": summaries})
}

func (h *AssignmentHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, services.ErrNotFound)
	}

	assignment, err := h.Assignments.Get(authorID(c), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "data": assignment})
}

func (h *AssignmentHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, services.ErrNotFound)
	}

	if err := h.Assignments.Delete(authorID(c), id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "message": "Assignment deleted successfully"})
}
