package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	helper "tunedu_backend/internals/helpers"
)

var validate = validator.New()

type AskRequest struct {
	Question string `json:"question" validate:"required"`
	Subject  string `json:"subject"`
}

type AskResponse struct {
	Answer    string   `json:"answer"`
	Citations []string `json:"citations"`
	AskedAt   string   `json:"askedAt"`
}

type AssistantController struct{}

func NewAssistantController() *AssistantController {
	return &AssistantController{}
}

// Ask → POST /assistant/ask
//
// Placeholder endpoint so the frontend can ship its chat UI before the
// retrieval pipeline lands. Always answers with the canned French notice.
func (ctrl *AssistantController) Ask(c *fiber.Ctx) error {
	var req AskRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	resp := AskResponse{
		Answer:    "Fonctionnalité à venir. Je me base sur le manuel scolaire pour répondre à vos questions.",
		Citations: []string{},
		AskedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	return helper.JsonData(c, resp)
}
