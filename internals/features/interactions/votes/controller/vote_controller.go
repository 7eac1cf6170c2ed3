package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tunedu_backend/internals/features/interactions/votes/dto"
	"tunedu_backend/internals/features/interactions/votes/service"
	helper "tunedu_backend/internals/helpers"
)

var validate = validator.New()

type VoteController struct {
	DB *gorm.DB
}

func NewVoteController(db *gorm.DB) *VoteController {
	return &VoteController{DB: db}
}

// CastVote → POST /vote (auth)
func (ctrl *VoteController) CastVote(c *fiber.Ctx) error {
	var req dto.CastVoteRequest
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

	if err := service.CastVote(ctrl.DB, userID, req.TargetType, req.TargetID, req.Value); err != nil {
		if errors.Is(err, service.ErrInvalidValue) || errors.Is(err, service.ErrInvalidTarget) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		log.Printf("[ERROR] cast vote: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record vote")
	}

	return helper.JsonData(c, fiber.Map{"success": true})
}
