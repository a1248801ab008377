package notificationValidator

import (
	"coursehub/validators"

	"github.com/gofiber/fiber/v2"
)

type MarkReadRequest struct {
	ID      *uint `json:"id"`
	MarkAll bool  `json:"markAll"`
}

type ListQuery struct {
	Limit      int
	UnreadOnly bool
}

func MarkRead() fiber.Handler {
	return validators.Body[MarkReadRequest]("validatedMarkRead", nil)
}

func List() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("validatedNotificationList", &ListQuery{
			Limit:      validators.QueryInt(c, "limit", 20, 50),
			UnreadOnly: c.Query("unreadOnly") == "true",
		})
		return c.Next()
	}
}
