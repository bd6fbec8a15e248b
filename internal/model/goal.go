package model

import "time"

// Goal statuses. Anything else is rejected at both the API and storage level.
const (
	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
)

// Goal is a user-defined objective surfaced to the summarization prompt
// while active.
type Goal struct {
	ID        int64
	UserID    int64
	Title     string
	Status    string
	CreatedAt time.Time
}

// AddGoalRequest represents a goal creation request.
type AddGoalRequest struct {
	Objective struct {
		Title string `json:"title"`
	} `json:"objective"`
}

// UpdateGoalRequest represents a partial goal update. Nil fields are
// left unchanged.
type UpdateGoalRequest struct {
	Title  *string `json:"title"`
	Status *string `json:"status"`
}

// GoalResponse represents a goal in API responses.
type GoalResponse struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

// GoalMessageResponse wraps a goal mutation result.
type GoalMessageResponse struct {
	Message string       `json:"message"`
	Goal    GoalResponse `json:"goal"`
}
