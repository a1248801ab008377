package courseRoutes

import (
	courseController "coursehub/controllers/course"
	"coursehub/middleware"
	"coursehub/models"
	courseValidator "coursehub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes registers the catalog, authoring and learning routes.
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/courses")

	courseGroup.Get("/", middleware.OptionalJWT, courseValidator.List(20, 50), courseController.ListCourses)
	courseGroup.Post("/", middleware.JWTMiddleware, courseValidator.CreateCourse(), courseController.CreateCourse)
	courseGroup.Get("/:slug", middleware.OptionalJWT, courseController.GetCourse)
	courseGroup.Patch("/:slug", middleware.JWTMiddleware, courseValidator.UpdateCourse(), courseController.UpdateCourse)
	courseGroup.Delete("/:slug", middleware.JWTMiddleware, courseController.DeleteCourse)

	courseGroup.Post("/:slug/publish", middleware.JWTMiddleware, courseController.PublishCourse)
	courseGroup.Patch("/:slug/status", middleware.JWTMiddleware, middleware.AdminOnly, courseValidator.SetStatus(), courseController.SetStatus)
	courseGroup.Get("/:slug/reviews", middleware.OptionalJWT, courseController.ListReviews)
	courseGroup.Post("/:slug/reviews", middleware.JWTMiddleware, courseValidator.Review(), courseController.UpsertReview)
	courseGroup.Post("/:slug/modules", middleware.JWTMiddleware, courseValidator.CreateModule(), courseController.AddModule)

	app.Get("/author/courses",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleAuthor, models.RoleAdmin),
		courseValidator.List(50, 100),
		courseController.ListAuthorCourses,
	)

	moduleGroup := app.Group("/modules", middleware.JWTMiddleware)
	moduleGroup.Get("/:id", courseValidator.ModuleID(), courseController.GetModule)
	moduleGroup.Patch("/:id", courseValidator.ModuleID(), courseValidator.UpdateModule(), courseController.UpdateModule)
	moduleGroup.Delete("/:id", courseValidator.ModuleID(), courseController.DeleteModule)
	moduleGroup.Post("/:id/complete", courseValidator.ModuleID(), courseController.CompleteModule)

	app.Post("/enroll", middleware.JWTMiddleware, courseValidator.Enroll(), courseController.Enroll)
	app.Get("/enrollments", middleware.JWTMiddleware, courseController.ListEnrollments)
}
