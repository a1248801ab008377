package courseController

import (
	"coursehub/middleware"
	"coursehub/models"
	courseService "coursehub/services/course"
	courseValidator "coursehub/validators/course"

	"github.com/gofiber/fiber/v2"
)

func toInput(r *courseValidator.CourseRequest) courseService.Input {
	return courseService.Input{
		Title:           r.Title,
		Description:     r.Description,
		LongDescription: r.LongDescription,
		Thumbnail:       r.Thumbnail,
		IsPaid:          r.IsPaid,
		Price:           r.Price,
		Category:        r.Category,
		Level:           r.Level,
		Duration:        r.Duration,
		AuthorID:        r.AuthorID,
	}
}

func ListCourses(c *fiber.Ctx) error {
	q := c.Locals("validatedList").(*courseValidator.ListQuery)

	res, err := courseService.List(middleware.DB(c), middleware.CurrentUser(c), q.Status, q.Limit, q.Offset)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", res)
}

func ListAuthorCourses(c *fiber.Ctx) error {
	q := c.Locals("validatedList").(*courseValidator.ListQuery)

	res, err := courseService.ListByAuthor(middleware.DB(c), middleware.CurrentUser(c), q.Status, q.Limit, q.Offset)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", res)
}

func CreateCourse(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCourse").(*courseValidator.CourseRequest)

	course, err := courseService.Create(middleware.DB(c), middleware.CurrentUser(c), toInput(reqData))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

func GetCourse(c *fiber.Ctx) error {
	course, err := courseService.Get(middleware.DB(c), middleware.CurrentUser(c), c.Params("slug"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

func UpdateCourse(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCourse").(*courseValidator.CourseRequest)

	course, err := courseService.Update(middleware.DB(c), middleware.CurrentUser(c), c.Params("slug"), toInput(reqData))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

func DeleteCourse(c *fiber.Ctx) error {
	if err := courseService.Delete(middleware.DB(c), middleware.CurrentUser(c), c.Params("slug")); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// PublishCourse submits for review, or publishes directly for admins.
func PublishCourse(c *fiber.Ctx) error {
	course, err := courseService.Submit(middleware.DB(c), middleware.CurrentUser(c), c.Params("slug"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	message := "Course submitted for review!"
	if course.Status == models.StatusPublished {
		message = "Course published successfully!"
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, course)
}

func SetStatus(c *fiber.Ctx) error {
	reqData := c.Locals("validatedStatus").(*courseValidator.StatusRequest)

	course, err := courseService.SetStatus(middleware.DB(c), middleware.CurrentUser(c), c.Params("slug"), models.CourseStatus(reqData.Status))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course status updated successfully!", course)
}
