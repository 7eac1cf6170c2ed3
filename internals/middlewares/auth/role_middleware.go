package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "tunedu_backend/internals/helpers"
)

// RoleMiddleware gates a route to the given roles. Must run after
// AuthMiddleware.
func RoleMiddleware(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("user_role").(string)
		if !ok || role == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Authentication required")
		}
		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}
		return helper.JsonError(c, fiber.StatusForbidden, "Admin access required")
	}
}

// OnlyStaff is the studio gate: ADMIN or TEACHER.
func OnlyStaff() fiber.Handler {
	return RoleMiddleware("ADMIN", "TEACHER")
}
