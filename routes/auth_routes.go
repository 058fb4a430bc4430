package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sefask/assignment-api/handlers"
	"github.com/sefask/assignment-api/middleware"
)

func AuthRoutes(app *fiber.App, h *handlers.AuthHandler) {
	auth := app.Group("/api/auth")

	auth.Post("/signup", h.Signup)
	auth.Post("/signin", h.Signin)
	auth.Post("/signout", h.Signout)
	auth.Post("/verify-email", middleware.Protected(), h.VerifyEmail)
	auth.Post("/resend-verification", middleware.Protected(), h.ResendVerification)
	auth.Get("/me", middleware.Protected(), h.GetMe)
}
