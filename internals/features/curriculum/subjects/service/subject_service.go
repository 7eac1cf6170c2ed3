package service

import (
	"gorm.io/gorm"

	levelModel "tunedu_backend/internals/features/curriculum/levels/model"
	"tunedu_backend/internals/features/curriculum/subjects/dto"
)

// GetSubjectsByYearSlug resolves a class-year slug into its subjects, each
// annotated with a manual URL when a manual file is attached.
// Returns gorm.ErrRecordNotFound for an unknown slug.
func GetSubjectsByYearSlug(db *gorm.DB, slug string) ([]dto.SubjectListItem, error) {
	var year levelModel.ClassYearModel
	if err := db.Select("id").First(&year, "slug = ?", slug).Error; err != nil {
		return nil, err
	}

	subjects := make([]dto.SubjectListItem, 0)
	err := db.Table("subjects").
		Select("id, name, slug, description, manual_path, thumbnail_url").
		Where("class_year_id = ?", year.ID).
		Order("name").
		Scan(&subjects).Error
	if err != nil {
		return nil, err
	}

	for i := range subjects {
		subjects[i].ManualURL = manualURL(subjects[i].ManualPath)
	}
	return subjects, nil
}

// GetSubjectBySlug resolves a subject slug into a detail view: the subject
// joined up through class year and level, plus its ordered lessons.
func GetSubjectBySlug(db *gorm.DB, slug string) (*dto.SubjectDetail, error) {
	var subject dto.SubjectDetail
	err := db.Table("subjects s").
		Select(`s.id, s.name, s.slug, s.description, s.manual_path, s.thumbnail_url,
			cy.name AS class_year_name, cy.slug AS class_year_slug,
			l.name AS level_name, l.slug AS level_slug`).
		Joins("JOIN class_years cy ON s.class_year_id = cy.id").
		Joins("JOIN levels l ON cy.level_id = l.id").
		Where("s.slug = ?", slug).
		Take(&subject).Error
	if err != nil {
		return nil, err
	}
	subject.ManualURL = manualURL(subject.ManualPath)

	subject.Lessons = make([]dto.LessonListItem, 0)
	err = db.Table("lessons").
		Select(`id, title, slug, summary, "order", score`).
		Where("subject_id = ?", subject.ID).
		Order(`"order"`).
		Scan(&subject.Lessons).Error
	if err != nil {
		return nil, err
	}
	return &subject, nil
}

func manualURL(path *string) *string {
	if path == nil || *path == "" {
		return nil
	}
	u := "/uploads/" + *path
	return &u
}
