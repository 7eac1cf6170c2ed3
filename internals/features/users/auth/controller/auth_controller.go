package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tunedu_backend/internals/features/users/auth/dto"
	userModel "tunedu_backend/internals/features/users/auth/model"
	"tunedu_backend/internals/features/users/auth/service"
	helper "tunedu_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	return service.Register(ac.DB, c)
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ac.DB, c)
}

// Me returns the authenticated user.
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Authentication required")
	}

	var user userModel.UserModel
	if err := ac.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}

	return helper.JsonData(c, dto.ToUserResponse(user))
}

// Logout is stateless; the client drops its token.
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return helper.JsonData(c, fiber.Map{"message": "Logged out successfully"})
}
