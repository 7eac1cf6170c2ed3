package dto

type RecordActivityRequest struct {
	Kind       string  `json:"kind" validate:"required"`
	TargetType *string `json:"targetType"`
	TargetID   *uint   `json:"targetId"`
	ValueInt   *int    `json:"valueInt"`
}

// DashboardResponse aggregates a user's recent engagement. Every field
// defaults to 0 when no rows match.
type DashboardResponse struct {
	TimeToday       int `json:"timeToday"`
	TimeWeek        int `json:"timeWeek"`
	LessonsViewed   int `json:"lessonsViewed"`
	ExercisesOpened int `json:"exercisesOpened"`
}
