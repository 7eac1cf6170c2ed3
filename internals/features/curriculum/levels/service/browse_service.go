package service

import (
	"gorm.io/gorm"

	"tunedu_backend/internals/features/curriculum/levels/dto"
	"tunedu_backend/internals/features/curriculum/levels/model"
)

// GetLevels lists every level with its class-year count. A level without
// years still resolves, with year_count 0.
func GetLevels(db *gorm.DB) ([]dto.LevelResponse, error) {
	var levels []dto.LevelResponse
	err := db.Table("levels l").
		Select(`l.id, l.name, l.slug, l."order", COUNT(cy.id) AS year_count`).
		Joins("LEFT JOIN class_years cy ON cy.level_id = l.id").
		Group(`l.id, l.name, l.slug, l."order"`).
		Order(`l."order"`).
		Scan(&levels).Error
	return levels, err
}

// GetYearsByLevelSlug resolves a level slug into its ordered class years.
// Returns gorm.ErrRecordNotFound for an unknown slug.
func GetYearsByLevelSlug(db *gorm.DB, slug string) ([]dto.ClassYearResponse, error) {
	var level model.LevelModel
	if err := db.Select("id").First(&level, "slug = ?", slug).Error; err != nil {
		return nil, err
	}

	years := make([]dto.ClassYearResponse, 0)
	err := db.Table("class_years").
		Select(`id, name, slug, "order"`).
		Where("level_id = ?", level.ID).
		Order(`"order"`).
		Scan(&years).Error
	return years, err
}
