package userController

import (
	"coursehub/middleware"
	"coursehub/models"
	authService "coursehub/services/auth"
	userValidator "coursehub/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

func ListUsers(c *fiber.Ctx) error {
	q := c.Locals("validatedUserList").(*userValidator.ListQuery)

	res, err := authService.ListUsers(middleware.DB(c), q.Role, q.Limit, q.Offset)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", res)
}

func ChangeRole(c *fiber.Ctx) error {
	reqData := c.Locals("validatedRole").(*userValidator.RoleRequest)

	user, err := authService.ChangeRole(middleware.DB(c), c.Locals("targetUserId").(uint), models.Role(reqData.Role))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Role updated successfully!", user)
}
