package model

// RecordedSessionModel is a recorded video attached to a lesson.
type RecordedSessionModel struct {
	ID              uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	LessonID        uint   `gorm:"column:lesson_id;not null;index" json:"lesson_id"`
	Title           string `gorm:"column:title;size:255;not null" json:"title"`
	VideoURL        string `gorm:"column:video_url;type:text;not null" json:"video_url"`
	DurationSeconds *int   `gorm:"column:duration_seconds" json:"duration_seconds,omitempty"`
	Score           int    `gorm:"column:score;not null;default:0" json:"score"`

	Lesson *LessonModel `gorm:"foreignKey:LessonID;constraint:OnDelete:CASCADE" json:"-"`
}

func (RecordedSessionModel) TableName() string {
	return "recorded_sessions"
}
