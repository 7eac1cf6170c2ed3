package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tunedu_backend/internals/features/curriculum/subjects/controller"
)

func SubjectRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSubjectController(db)

	api.Get("/years/:slug/subjects", ctrl.GetSubjects)
	api.Get("/subjects/:slug", ctrl.GetSubject)
}
