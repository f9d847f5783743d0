package models

import (
	"strings"
	"time"
)

// Priority is a todo's urgency level.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority maps user input onto a Priority, defaulting to medium.
func ParsePriority(s string) Priority {
	switch Priority(strings.ToLower(strings.TrimSpace(s))) {
	case PriorityLow:
		return PriorityLow
	case PriorityHigh:
		return PriorityHigh
	default:
		return PriorityMedium
	}
}

// Todo is a single task. The whole todo collection is persisted under
// one key-value entry as a flat JSON array; ownership is expressed by
// UserID holding the owning account's email and is filtered at read
// time only. DueDate marshals as RFC 3339, matching data written by
// earlier versions of the app.
type Todo struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate"`
	Priority    Priority  `json:"priority"`
	Completed   bool      `json:"completed"`
	UserID      string    `json:"userId"`
}
