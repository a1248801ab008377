package authRoutes

import (
	authController "coursehub/controllers/auth"
	"coursehub/middleware"
	authValidator "coursehub/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/register", authValidator.Register(), authController.Register)
	authGroup.Post("/login", authValidator.Login(), authController.Login)
	authGroup.Post("/google", authValidator.Google(), authController.Google)
	authGroup.Get("/me", middleware.JWTMiddleware, authController.Me)
	authGroup.Post("/forgot-password", authValidator.ForgotPassword(), authController.ForgotPassword)
	authGroup.Post("/reset-password", authValidator.ResetPassword(), authController.ResetPassword)
}
