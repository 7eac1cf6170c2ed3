package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tunedu_backend/internals/features/curriculum/levels/service"
	helper "tunedu_backend/internals/helpers"
)

type BrowseController struct {
	DB *gorm.DB
}

func NewBrowseController(db *gorm.DB) *BrowseController {
	return &BrowseController{DB: db}
}

// GetLevels → GET /levels
func (ctrl *BrowseController) GetLevels(c *fiber.Ctx) error {
	levels, err := service.GetLevels(ctrl.DB)
	if err != nil {
		log.Printf("[ERROR] get levels: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch levels")
	}
	return helper.JsonData(c, levels)
}

// GetYears → GET /levels/:slug/years
func (ctrl *BrowseController) GetYears(c *fiber.Ctx) error {
	slug := c.Params("slug")

	years, err := service.GetYearsByLevelSlug(ctrl.DB, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Level not found")
		}
		log.Printf("[ERROR] get years: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch years")
	}
	return helper.JsonData(c, years)
}
