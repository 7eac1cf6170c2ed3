package dto

type CreateSubjectRequest struct {
	ClassYearID uint   `json:"class_year_id" validate:"required"`
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description"`
}

type CreateLessonRequest struct {
	SubjectID   uint   `json:"subject_id" validate:"required"`
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description"`
}

type CreateSessionRequest struct {
	LessonID        uint   `json:"lesson_id" validate:"required"`
	Title           string `json:"title" validate:"required,max=255"`
	VideoURL        string `json:"video_url" validate:"required"`
	DurationMinutes *int   `json:"duration_minutes"`
}

type CreateExerciseRequest struct {
	LessonID    uint   `form:"lesson_id" json:"lesson_id" validate:"required"`
	Title       string `form:"title" json:"title" validate:"required,max=255"`
	Description string `form:"description" json:"description"`
	Difficulty  string `form:"difficulty" json:"difficulty" validate:"omitempty,oneof=EASY MEDIUM HARD"`
}

// SubjectOption / LessonOption feed the studio dropdowns with flattened
// breadcrumb names.
type SubjectOption struct {
	ID          uint    `json:"id"`
	ClassYearID uint    `json:"class_year_id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
	YearName    string  `json:"year_name"`
	LevelName   string  `json:"level_name"`
}

type LessonOption struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	SubjectName string `json:"subject_name"`
	YearName    string `json:"year_name"`
	LevelName   string `json:"level_name"`
}
