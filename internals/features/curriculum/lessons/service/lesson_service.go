package service

import (
	"gorm.io/gorm"

	"tunedu_backend/internals/features/curriculum/lessons/dto"
)

// GetLessonBySlug resolves a lesson slug into a detail view with its
// recorded sessions and exercises. Returns gorm.ErrRecordNotFound for an
// unknown slug.
func GetLessonBySlug(db *gorm.DB, slug string) (*dto.LessonDetail, error) {
	var lesson dto.LessonDetail
	err := db.Table("lessons l").
		Select(`l.id, l.title, l.slug, l.summary, l.score,
			s.name AS subject_name, s.slug AS subject_slug`).
		Joins("JOIN subjects s ON l.subject_id = s.id").
		Where("l.slug = ?", slug).
		Take(&lesson).Error
	if err != nil {
		return nil, err
	}

	lesson.Sessions = make([]dto.SessionItem, 0)
	err = db.Table("recorded_sessions").
		Select("id, title, video_url, duration_seconds, score").
		Where("lesson_id = ?", lesson.ID).
		Scan(&lesson.Sessions).Error
	if err != nil {
		return nil, err
	}

	lesson.Exercises = make([]dto.ExerciseItem, 0)
	err = db.Table("exercises").
		Select("id, title, description, difficulty, score, file_path").
		Where("lesson_id = ?", lesson.ID).
		Scan(&lesson.Exercises).Error
	if err != nil {
		return nil, err
	}
	for i := range lesson.Exercises {
		if p := lesson.Exercises[i].FilePath; p != nil && *p != "" {
			u := "/uploads/" + *p
			lesson.Exercises[i].FileURL = &u
		}
	}
	return &lesson, nil
}
