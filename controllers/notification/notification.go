package notificationController

import (
	"coursehub/middleware"
	notificationService "coursehub/services/notification"
	notificationValidator "coursehub/validators/notification"

	"github.com/gofiber/fiber/v2"
)

func List(c *fiber.Ctx) error {
	q := c.Locals("validatedNotificationList").(*notificationValidator.ListQuery)

	res, err := notificationService.List(middleware.DB(c), middleware.CurrentUser(c).ID, q.Limit, q.UnreadOnly)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notifications fetched successfully!", res)
}

func MarkRead(c *fiber.Ctx) error {
	reqData := c.Locals("validatedMarkRead").(*notificationValidator.MarkReadRequest)

	updated, err := notificationService.MarkRead(middleware.DB(c), middleware.CurrentUser(c).ID, reqData.ID, reqData.MarkAll)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notifications updated!", fiber.Map{"updated": updated})
}
