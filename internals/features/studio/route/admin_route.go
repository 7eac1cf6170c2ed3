package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tunedu_backend/internals/features/studio/controller"
)

// StudioRoutes mounts the authoring endpoints behind the staff middleware
// chain passed by the caller.
func StudioRoutes(api fiber.Router, db *gorm.DB, staff ...fiber.Handler) {
	ctrl := controller.NewStudioController(db)

	studio := api.Group("/studio", staff...)
	studio.Get("/subjects", ctrl.ListSubjects)
	studio.Get("/lessons", ctrl.ListLessons)
	studio.Post("/subjects", ctrl.CreateSubject)
	studio.Post("/lessons", ctrl.CreateLesson)
	studio.Post("/sessions", ctrl.CreateSession)
	studio.Post("/exercises", ctrl.CreateExercise)
	studio.Post("/manuals", ctrl.UploadManual)
	studio.Post("/recount", ctrl.Recount)
}
