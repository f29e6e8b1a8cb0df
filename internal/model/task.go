package model

import "time"

// Task statuses.
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// Task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Statuses lists the allowed task statuses in display order.
func Statuses() []string {
	return []string{StatusPending, StatusInProgress, StatusCompleted}
}

// Priorities lists the allowed task priorities in display order.
func Priorities() []string {
	return []string{PriorityLow, PriorityMedium, PriorityHigh}
}

// IsValidStatus reports whether s is an allowed task status.
func IsValidStatus(s string) bool {
	return s == StatusPending || s == StatusInProgress || s == StatusCompleted
}

// IsValidPriority reports whether p is an allowed task priority.
func IsValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Task represents a unit of work assigned to a user.
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	UserID      int64     `json:"userId"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TaskFilter narrows a task listing. Zero-valued fields match every task.
type TaskFilter struct {
	UserID   *int64
	Status   string
	Priority string
}

// TaskUpdate carries the fields of a partial task update; nil fields keep
// their current value.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *string
}
