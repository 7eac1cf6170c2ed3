package model

import (
	"time"

	userModel "tunedu_backend/internals/features/users/auth/model"
)

// Activity kinds read by the dashboard aggregates. Unknown kinds are
// stored as-is so new ones can ship without a migration.
const (
	KindTimeTick     = "TIME_TICK"
	KindPageView     = "PAGE_VIEW"
	KindVideoOpen    = "VIDEO_OPEN"
	KindExerciseOpen = "EXERCISE_OPEN"
)

// ActivityModel is the append-only engagement log. Rows are never updated
// or deleted.
type ActivityModel struct {
	ID         uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID     uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	Kind       string    `gorm:"column:kind;size:50;not null" json:"kind"`
	TargetType *string   `gorm:"column:target_type;size:20" json:"target_type,omitempty"`
	TargetID   *uint     `gorm:"column:target_id" json:"target_id,omitempty"`
	ValueInt   *int      `gorm:"column:value_int" json:"value_int,omitempty"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`

	User *userModel.UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ActivityModel) TableName() string {
	return "activity"
}
