package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tunedu_backend/internals/features/activity/dto"
	"tunedu_backend/internals/features/activity/service"
	helper "tunedu_backend/internals/helpers"
)

var validate = validator.New()

type ActivityController struct {
	DB *gorm.DB
}

func NewActivityController(db *gorm.DB) *ActivityController {
	return &ActivityController{DB: db}
}

// Record → POST /activity (auth)
func (ctrl *ActivityController) Record(c *fiber.Ctx) error {
	var req dto.RecordActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Authentication required")
	}

	if err := service.Record(ctrl.DB, userID, req); err != nil {
		log.Printf("[ERROR] record activity: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record activity")
	}

	return helper.JsonData(c, fiber.Map{"success": true})
}

// Dashboard → GET /activity/dashboard/me (auth)
func (ctrl *ActivityController) Dashboard(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Authentication required")
	}

	stats, err := service.Dashboard(ctrl.DB, userID, time.Now())
	if err != nil {
		log.Printf("[ERROR] dashboard: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch dashboard data")
	}

	return helper.JsonData(c, stats)
}
