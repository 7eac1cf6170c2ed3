package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tunedu_backend/internals/features/curriculum/levels/controller"
)

func BrowseRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewBrowseController(db)

	api.Get("/levels", ctrl.GetLevels)
	api.Get("/levels/:slug/years", ctrl.GetYears)
}
