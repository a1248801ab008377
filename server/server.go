package server

import (
	"errors"

	"coursehub/config"
	authController "coursehub/controllers/auth"
	"coursehub/middleware"
	adminRoutes "coursehub/routers/adminRoutes"
	authRoutes "coursehub/routers/authRoutes"
	courseRoutes "coursehub/routers/courseRoutes"
	notificationRoutes "coursehub/routers/notificationRoutes"
	userRoutes "coursehub/routers/userRoutes"
	authService "coursehub/services/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// errorHandler answers fiber's own errors (unknown routes, bad bodies) in
// the same envelope as every handler.
func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return middleware.JsonResponse(c, fe.Code, false, fe.Message, nil)
	}
	return middleware.ErrorResponse(c, err)
}

// NewApp builds the HTTP application with every route group mounted.
func NewApp(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "coursehub",
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))
	if cfg.LogLevel == "debug" || cfg.IsDevelopment() {
		app.Use(logger.New(logger.Config{
			Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
		}))
	}

	if cfg.GoogleClientID != "" {
		authController.SetGoogleVerifier(authService.NewGoogleVerifier(cfg.GoogleTokenInfoURL, cfg.GoogleClientID))
	}

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "OK", nil)
	})

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	adminRoutes.SetupAdminRoutes(app)
	userRoutes.SetupUserRoutes(app)
	notificationRoutes.SetupNotificationRoutes(app)

	return app
}
