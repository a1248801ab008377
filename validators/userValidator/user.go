package userValidator

import (
	"strings"

	"coursehub/models"
	"coursehub/validators"

	"github.com/gofiber/fiber/v2"
)

type RoleRequest struct {
	Role string `json:"role" validate:"required,oneof=STUDENT AUTHOR ADMIN"`
}

type ListQuery struct {
	Role models.Role
	validators.Page
}

func ChangeRole() fiber.Handler {
	return validators.Body("validatedRole", func(r *RoleRequest) {
		r.Role = strings.ToUpper(strings.TrimSpace(r.Role))
	})
}

func UserID() fiber.Handler {
	return validators.ParamID("id", "targetUserId")
}

// List reads role/limit/offset. Unknown roles are ignored.
func List() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := models.Role(strings.ToUpper(strings.TrimSpace(c.Query("role"))))
		if !role.Valid() {
			role = ""
		}
		c.Locals("validatedUserList", &ListQuery{
			Role: role,
			Page: validators.Page{
				Limit:  validators.QueryInt(c, "limit", 20, 100),
				Offset: validators.Offset(c),
			},
		})
		return c.Next()
	}
}
