package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tunedu_backend/internals/features/interactions/votes/controller"
	authMiddleware "tunedu_backend/internals/middlewares/auth"
)

func VoteRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewVoteController(db)

	api.Post("/vote", authMiddleware.AuthMiddleware(db), ctrl.CastVote)
}
