package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sefask/assignment-api/handlers"
	"github.com/sefask/assignment-api/middleware"
)

func AssignmentRoutes(app *fiber.App, h *handlers.AssignmentHandler) {
	assignments := app.Group("/api/assignments", middleware.Protected())

	assignments.Post("", h.Create)
	assignments.Get("", h.List)
	assignments.Get("/:id", h.Get)
	assignments.Delete("/:id", h.Delete)
}
