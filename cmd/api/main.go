package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"

	config "github.com/sefask/assignment-api/configs"
	"github.com/sefask/assignment-api/database"
	"github.com/sefask/assignment-api/handlers"
	"github.com/sefask/assignment-api/jobs"
	"github.com/sefask/assignment-api/notifications"
	"github.com/sefask/assignment-api/routes"
	"github.com/sefask/assignment-api/services"
)

func main() {
	db, err := database.Connect(config.Config("DATABASE_URL"))
	if err != nil {
		log.Fatalf("🔥 %v", err)
	}
	database.Migrate(db)

	mailer := notifications.NewEmailService(
		config.Config("BREVO_API_KEY"),
		config.Config("EMAIL_SENDER"),
		config.Config("EMAIL_SENDER_NAME"),
	)

	userStore := database.NewUserStore(db)
	assignmentStore := database.NewAssignmentStore(db)

	verificationService := services.NewVerificationService(userStore, mailer)
	authService := services.NewAuthService(userStore, services.BcryptHasher{}, verificationService)
	assignmentService := services.NewAssignmentService(assignmentStore)

	authHandler := handlers.NewAuthHandler(authService, verificationService, userStore)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)

	c := cron.New()
	c.AddFunc("*/5 * * * *", func() { jobs.DeactivateFinishedAssignments(db) })
	go c.Start()

	app := fiber.New(fiber.Config{
		AppName:       "Sefask Assignment API",
		CaseSensitive: true,
		StrictRouting: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigOr("FRONTEND_URL", "http://localhost:3000"),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	routes.AuthRoutes(app, authHandler)
	routes.AssignmentRoutes(app, assignmentHandler)

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Route not found"})
	})

	port := config.ConfigOr("PORT", "5000")
	log.Printf("✅ Server is running on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
