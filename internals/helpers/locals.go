package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// GetUserID reads the authenticated user id stored by the auth middleware.
func GetUserID(c *fiber.Ctx) (uint, error) {
	id, ok := c.Locals("user_id").(uint)
	if !ok || id == 0 {
		return 0, errors.New("missing user id in context")
	}
	return id, nil
}

// GetUserRole reads the authenticated user's role stored by the auth
// middleware.
func GetUserRole(c *fiber.Ctx) (string, error) {
	role, ok := c.Locals("user_role").(string)
	if !ok || role == "" {
		return "", errors.New("missing user role in context")
	}
	return role, nil
}
