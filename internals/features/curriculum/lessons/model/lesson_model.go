package model

import (
	subjectModel "tunedu_backend/internals/features/curriculum/subjects/model"
)

// LessonModel belongs to one subject. Score is a cache maintained by the
// vote service; the vote ledger stays authoritative.
type LessonModel struct {
	ID        uint    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	SubjectID uint    `gorm:"column:subject_id;not null;index" json:"subject_id"`
	Title     string  `gorm:"column:title;size:255;not null" json:"title"`
	Slug      string  `gorm:"column:slug;size:160;unique;not null" json:"slug"`
	Summary   *string `gorm:"column:summary;type:text" json:"summary,omitempty"`
	Order     int     `gorm:"column:order;not null;default:0" json:"order"`
	Score     int     `gorm:"column:score;not null;default:0" json:"score"`

	Subject *subjectModel.SubjectModel `gorm:"foreignKey:SubjectID;constraint:OnDelete:CASCADE" json:"-"`
}

func (LessonModel) TableName() string {
	return "lessons"
}
