package userRoutes

import (
	userController "coursehub/controllers/userControllers"
	"coursehub/middleware"
	userValidator "coursehub/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/users", middleware.JWTMiddleware, middleware.AdminOnly)

	userGroup.Get("/", userValidator.List(), userController.ListUsers)
	userGroup.Patch("/:id/role", userValidator.UserID(), userValidator.ChangeRole(), userController.ChangeRole)
}
