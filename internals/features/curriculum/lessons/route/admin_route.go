package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tunedu_backend/internals/features/curriculum/lessons/controller"
)

// LessonAdminRoutes carries the slug-addressed authoring endpoints,
// registered behind the staff middleware chain passed by the caller.
func LessonAdminRoutes(api fiber.Router, db *gorm.DB, staff ...fiber.Handler) {
	ctrl := controller.NewLessonController(db)

	api.Post("/lessons/:slug/sessions", append(staff, ctrl.CreateSession)...)
	api.Post("/lessons/:slug/exercises", append(staff, ctrl.CreateExercise)...)
}
