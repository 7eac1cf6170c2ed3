package model

import (
	"time"
)

const (
	RoleStudent = "STUDENT"
	RoleTeacher = "TEACHER"
	RoleAdmin   = "ADMIN"
)

// UserModel represents the users table.
type UserModel struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Email        string    `gorm:"column:email;size:255;unique;not null" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;not null" json:"-"`
	FirstName    *string   `gorm:"column:first_name;size:100" json:"first_name,omitempty"`
	LastName     *string   `gorm:"column:last_name;size:100" json:"last_name,omitempty"`
	Role         string    `gorm:"column:role;type:varchar(20);not null;default:'STUDENT'" json:"role"`
	DateJoined   time.Time `gorm:"column:date_joined;autoCreateTime" json:"date_joined"`
	AvatarURL    *string   `gorm:"column:avatar_url;type:text" json:"avatar_url,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}

// IsStaff reports whether the user may access studio routes.
func (u *UserModel) IsStaff() bool {
	return u.Role == RoleAdmin || u.Role == RoleTeacher
}
