package dto

type SessionItem struct {
	ID              uint   `json:"id"`
	Title           string `json:"title"`
	VideoURL        string `json:"video_url"`
	DurationSeconds *int   `json:"duration_seconds"`
	Score           int    `json:"score"`
}

type ExerciseItem struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Difficulty  string  `json:"difficulty"`
	Score       int     `json:"score"`
	FilePath    *string `json:"-"`
	FileURL     *string `gorm:"-" json:"file_url"`
}

// LessonDetail is GET /lessons/:slug — the lesson joined to its subject for
// the breadcrumb, plus its sessions and exercises. Only lessons carry an
// explicit sibling order; sessions/exercises are listed as stored.
type LessonDetail struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Slug        string  `json:"slug"`
	Summary     *string `json:"summary"`
	Score       int     `json:"score"`
	SubjectName string  `json:"subject_name"`
	SubjectSlug string  `json:"subject_slug"`

	Sessions  []SessionItem  `gorm:"-" json:"sessions"`
	Exercises []ExerciseItem `gorm:"-" json:"exercises"`
}

type CreateSessionRequest struct {
	Title           string `json:"title" validate:"required,max=255"`
	VideoURL        string `json:"videoUrl" validate:"required"`
	DurationSeconds *int   `json:"durationSeconds"`
}

type CreateExerciseRequest struct {
	Title       string `form:"title" json:"title" validate:"required,max=255"`
	Description string `form:"description" json:"description"`
	Difficulty  string `form:"difficulty" json:"difficulty" validate:"omitempty,oneof=EASY MEDIUM HARD"`
}
