package model

const (
	DifficultyEasy   = "EASY"
	DifficultyMedium = "MEDIUM"
	DifficultyHard   = "HARD"
)

// ExerciseModel is a downloadable exercise sheet attached to a lesson.
// FilePath stores the uploaded PDF relative to /uploads.
type ExerciseModel struct {
	ID          uint    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	LessonID    uint    `gorm:"column:lesson_id;not null;index" json:"lesson_id"`
	Title       string  `gorm:"column:title;size:255;not null" json:"title"`
	Description *string `gorm:"column:description;type:text" json:"description,omitempty"`
	FilePath    *string `gorm:"column:file_path;type:text" json:"file_path,omitempty"`
	Difficulty  string  `gorm:"column:difficulty;type:varchar(10);not null;default:'MEDIUM'" json:"difficulty"`
	Score       int     `gorm:"column:score;not null;default:0" json:"score"`

	Lesson *LessonModel `gorm:"foreignKey:LessonID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ExerciseModel) TableName() string {
	return "exercises"
}
