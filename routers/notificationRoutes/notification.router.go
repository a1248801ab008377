package notificationRoutes

import (
	notificationController "coursehub/controllers/notification"
	"coursehub/middleware"
	notificationValidator "coursehub/validators/notification"

	"github.com/gofiber/fiber/v2"
)

func SetupNotificationRoutes(app *fiber.App) {
	group := app.Group("/notifications", middleware.JWTMiddleware)

	group.Get("/", notificationValidator.List(), notificationController.List)
	group.Patch("/", notificationValidator.MarkRead(), notificationController.MarkRead)
}
