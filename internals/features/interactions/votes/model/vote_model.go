package model

import (
	userModel "tunedu_backend/internals/features/users/auth/model"
)

// Target types accepted by the vote service.
const (
	TargetLesson   = "lesson"
	TargetSession  = "session"
	TargetExercise = "exercise"
)

// VoteModel is the per-user vote ledger. One row per
// (user, target_type, target_id); changing a vote updates the same row.
// The target reference is weak on purpose: rows may outlive the content
// they point at.
type VoteModel struct {
	ID         uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID     uint   `gorm:"column:user_id;not null;uniqueIndex:uq_votes_user_target" json:"user_id"`
	TargetType string `gorm:"column:target_type;size:20;not null;uniqueIndex:uq_votes_user_target" json:"target_type"`
	TargetID   uint   `gorm:"column:target_id;not null;uniqueIndex:uq_votes_user_target" json:"target_id"`
	Value      int    `gorm:"column:value;not null" json:"value"`

	User *userModel.UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (VoteModel) TableName() string {
	return "votes"
}
