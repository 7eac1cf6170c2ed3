package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tunedu_backend/internals/features/activity/controller"
	authMiddleware "tunedu_backend/internals/middlewares/auth"
)

func ActivityRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewActivityController(db)

	activity := api.Group("/activity", authMiddleware.AuthMiddleware(db))
	activity.Post("/", ctrl.Record)
	activity.Get("/dashboard/me", ctrl.Dashboard)
}
