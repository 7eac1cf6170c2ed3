package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tunedu_backend/internals/features/curriculum/lessons/controller"
)

func LessonRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewLessonController(db)

	api.Get("/lessons/:slug", ctrl.GetLesson)
}
