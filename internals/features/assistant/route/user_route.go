package route

import (
	"github.com/gofiber/fiber/v2"

	"tunedu_backend/internals/features/assistant/controller"
)

func AssistantRoutes(api fiber.Router) {
	ctrl := controller.NewAssistantController()

	api.Post("/assistant/ask", ctrl.Ask)
}
