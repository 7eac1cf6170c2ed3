package model

import (
	levelModel "tunedu_backend/internals/features/curriculum/levels/model"
)

// SubjectModel belongs to one class year. ManualPath stores the uploaded
// manual relative to /uploads (nil when no manual is attached).
type SubjectModel struct {
	ID           uint    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ClassYearID  uint    `gorm:"column:class_year_id;not null;index" json:"class_year_id"`
	Name         string  `gorm:"column:name;size:255;not null" json:"name"`
	Slug         string  `gorm:"column:slug;size:160;unique;not null" json:"slug"`
	Description  *string `gorm:"column:description;type:text" json:"description,omitempty"`
	ManualPath   *string `gorm:"column:manual_path;type:text" json:"manual_path,omitempty"`
	ThumbnailURL *string `gorm:"column:thumbnail_url;type:text" json:"thumbnail_url,omitempty"`

	ClassYear *levelModel.ClassYearModel `gorm:"foreignKey:ClassYearID;constraint:OnDelete:CASCADE" json:"-"`
}

func (SubjectModel) TableName() string {
	return "subjects"
}
