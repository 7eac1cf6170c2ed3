package dto

import "time"

type CreateCommentRequest struct {
	TargetType string `json:"targetType" validate:"required"`
	TargetID   uint   `json:"targetId" validate:"required"`
	Body       string `json:"body" validate:"required"`
	ParentID   *uint  `json:"parentId"`
}

// CommentResponse is a comment row joined with its author.
type CommentResponse struct {
	ID            uint      `json:"id"`
	Body          string    `json:"body"`
	ParentID      *uint     `json:"parent_id"`
	CreatedAt     time.Time `json:"created_at"`
	UserID        uint      `json:"user_id"`
	UserEmail     string    `json:"user_email"`
	UserFirstName *string   `json:"user_first_name"`
	UserLastName  *string   `json:"user_last_name"`
}
