package dto

type CastVoteRequest struct {
	TargetType string `json:"targetType" validate:"required"`
	TargetID   uint   `json:"targetId" validate:"required"`
	Value      int    `json:"value" validate:"required,oneof=-1 1"`
}

type RecountRequest struct {
	TargetType string `json:"targetType" validate:"required"`
	TargetID   uint   `json:"targetId"` // 0 = every target of the type
}
