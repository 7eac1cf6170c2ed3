package model

import (
	"time"

	userModel "tunedu_backend/internals/features/users/auth/model"
)

// CommentModel attaches to a (target_type, target_id) pair; ParentID forms
// the reply tree. Deleting a comment cascades to its replies.
type CommentModel struct {
	ID         uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID     uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	TargetType string    `gorm:"column:target_type;size:20;not null;index:idx_comments_target" json:"target_type"`
	TargetID   uint      `gorm:"column:target_id;not null;index:idx_comments_target" json:"target_id"`
	Body       string    `gorm:"column:body;type:text;not null" json:"body"`
	ParentID   *uint     `gorm:"column:parent_id" json:"parent_id,omitempty"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	User   *userModel.UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Parent *CommentModel        `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE" json:"-"`
}

func (CommentModel) TableName() string {
	return "comments"
}
