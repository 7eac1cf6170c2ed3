package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tunedu_backend/internals/features/interactions/comments/controller"
	authMiddleware "tunedu_backend/internals/middlewares/auth"
)

func CommentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCommentController(db)

	api.Get("/comments", ctrl.GetComments)
	api.Post("/comments", authMiddleware.AuthMiddleware(db), ctrl.CreateComment)
	api.Delete("/comments/:id", authMiddleware.AuthMiddleware(db), ctrl.DeleteComment)
}
