package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tunedu_backend/internals/features/curriculum/subjects/controller"
)

// SubjectAdminRoutes carries the slug-addressed authoring endpoints,
// registered behind the staff middleware chain passed by the caller.
func SubjectAdminRoutes(api fiber.Router, db *gorm.DB, staff ...fiber.Handler) {
	ctrl := controller.NewSubjectController(db)

	api.Post("/subjects/:slug/lessons", append(staff, ctrl.CreateLesson)...)
	api.Post("/subjects/:slug/manual", append(staff, ctrl.UploadManual)...)
}
