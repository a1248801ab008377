package adminController

import (
	"time"

	"coursehub/middleware"
	analyticsService "coursehub/services/analytics"
	courseService "coursehub/services/course"
	revenueService "coursehub/services/revenue"
	settingsService "coursehub/services/settings"
	adminValidator "coursehub/validators/admin"
	courseValidator "coursehub/validators/course"

	"github.com/gofiber/fiber/v2"
)

func ListCourses(c *fiber.Ctx) error {
	q := c.Locals("validatedList").(*courseValidator.ListQuery)

	res, err := courseService.AdminList(middleware.DB(c), q.Status, q.Limit, q.Offset)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", res)
}

func ApproveCourse(c *fiber.Ctx) error {
	course, err := courseService.Approve(middleware.DB(c), middleware.CurrentUser(c), c.Params("slug"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course approved!", course)
}

func DenyCourse(c *fiber.Ctx) error {
	course, err := courseService.Deny(middleware.DB(c), middleware.CurrentUser(c), c.Params("slug"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course rejected!", course)
}

func ArchiveCourse(c *fiber.Ctx) error {
	course, err := courseService.Archive(middleware.DB(c), middleware.CurrentUser(c), c.Params("slug"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course archived!", course)
}

func Analytics(c *fiber.Ctx) error {
	report, err := analyticsService.Analytics(middleware.DB(c), c.Locals("validatedDays").(int), time.Now())
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Analytics fetched successfully!", report)
}

func Activity(c *fiber.Ctx) error {
	feed, err := analyticsService.Feed(middleware.DB(c), c.Locals("validatedLimit").(int))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Activity fetched successfully!", fiber.Map{"activities": feed})
}

func Revenue(c *fiber.Ctx) error {
	report, err := revenueService.BuildReport(middleware.DB(c))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Revenue fetched successfully!", report)
}

func RecordPayout(c *fiber.Ctx) error {
	reqData := c.Locals("validatedPayout").(*adminValidator.PayoutRequest)

	payout, err := revenueService.RecordPayout(middleware.DB(c), reqData.AuthorID, reqData.Amount, reqData.Note)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Payout recorded!", payout)
}

func GetStripeSettings(c *fiber.Ctx) error {
	view, err := settingsService.GetStripe(middleware.DB(c))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Settings fetched successfully!", view)
}

func UpdateStripeSettings(c *fiber.Ctx) error {
	reqData := c.Locals("validatedStripe").(*adminValidator.StripeRequest)

	err := settingsService.UpdateStripe(middleware.DB(c), settingsService.StripeInput{
		StripePublishableKey: reqData.StripePublishableKey,
		StripeSecretKey:      reqData.StripeSecretKey,
		StripeWebhookSecret:  reqData.StripeWebhookSecret,
	})
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Settings saved!", fiber.Map{"ok": true})
}
