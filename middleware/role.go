package middleware

import (
	"coursehub/models"

	"github.com/gofiber/fiber/v2"
)

// RequireRole returns a middleware that lets only the given roles through.
// It must run after JWTMiddleware.
func RequireRole(roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized: User not found", nil)
		}
		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}
		return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}
}

// AdminOnly is RequireRole(models.RoleAdmin).
var AdminOnly = RequireRole(models.RoleAdmin)
