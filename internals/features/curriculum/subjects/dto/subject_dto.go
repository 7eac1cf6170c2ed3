package dto

// SubjectListItem is one row of GET /years/:slug/subjects. ManualURL is the
// public /uploads URL when a manual is attached, else null.
type SubjectListItem struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	Description  *string `json:"description"`
	ManualPath   *string `json:"manual_path"`
	ThumbnailURL *string `json:"thumbnail_url"`
	ManualURL    *string `gorm:"-" json:"manual_url"`
}

type LessonListItem struct {
	ID      uint    `json:"id"`
	Title   string  `json:"title"`
	Slug    string  `json:"slug"`
	Summary *string `json:"summary"`
	Order   int     `gorm:"column:order" json:"order"`
	Score   int     `json:"score"`
}

// SubjectDetail is GET /subjects/:slug — the subject joined up through its
// class year and level for breadcrumbs, plus its ordered lessons.
type SubjectDetail struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Slug          string  `json:"slug"`
	Description   *string `json:"description"`
	ManualPath    *string `json:"manual_path"`
	ThumbnailURL  *string `json:"thumbnail_url"`
	ManualURL     *string `gorm:"-" json:"manual_url"`
	ClassYearName string  `json:"class_year_name"`
	ClassYearSlug string  `json:"class_year_slug"`
	LevelName     string  `json:"level_name"`
	LevelSlug     string  `json:"level_slug"`

	Lessons []LessonListItem `gorm:"-" json:"lessons"`
}

type CreateLessonRequest struct {
	Title   string `json:"title" validate:"required,max=255"`
	Summary string `json:"summary"`
	Order   int    `json:"order"`
}
