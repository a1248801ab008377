package courseController

import (
	"coursehub/middleware"
	enrollmentService "coursehub/services/enrollment"
	reviewService "coursehub/services/review"
	courseValidator "coursehub/validators/course"

	"github.com/gofiber/fiber/v2"
)

func Enroll(c *fiber.Ctx) error {
	reqData := c.Locals("validatedEnroll").(*courseValidator.EnrollRequest)

	enrollment, err := enrollmentService.Enroll(middleware.DB(c), middleware.CurrentUser(c), reqData.CourseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled successfully!", enrollment)
}

func ListEnrollments(c *fiber.Ctx) error {
	enrollments, err := enrollmentService.List(middleware.DB(c), middleware.CurrentUser(c).ID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{"enrollments": enrollments})
}

func ListReviews(c *fiber.Ctx) error {
	res, err := reviewService.List(middleware.DB(c), middleware.CurrentUser(c), c.Params("slug"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched successfully!", res)
}

func UpsertReview(c *fiber.Ctx) error {
	reqData := c.Locals("validatedReview").(*courseValidator.ReviewRequest)

	review, err := reviewService.Upsert(middleware.DB(c), middleware.CurrentUser(c), c.Params("slug"), reviewService.Input{
		Rating:  reqData.Rating,
		Comment: reqData.Comment,
	})
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review saved successfully!", review)
}
