package adminRoutes

import (
	adminController "coursehub/controllers/admin"
	"coursehub/middleware"
	adminValidator "coursehub/validators/admin"
	courseValidator "coursehub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes registers moderation, analytics, revenue and settings.
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.AdminOnly)

	adminGroup.Get("/courses", courseValidator.List(50, 100), adminController.ListCourses)
	adminGroup.Post("/courses/:slug/approve", adminController.ApproveCourse)
	adminGroup.Post("/courses/:slug/deny", adminController.DenyCourse)
	adminGroup.Post("/courses/:slug/archive", adminController.ArchiveCourse)

	adminGroup.Get("/analytics", adminValidator.Analytics(), adminController.Analytics)
	adminGroup.Get("/activity", adminValidator.Activity(), adminController.Activity)

	adminGroup.Get("/revenue", adminController.Revenue)
	adminGroup.Post("/payouts", adminValidator.Payout(), adminController.RecordPayout)

	adminGroup.Get("/settings/stripe", adminController.GetStripeSettings)
	adminGroup.Patch("/settings/stripe", adminValidator.Stripe(), adminController.UpdateStripeSettings)
}
