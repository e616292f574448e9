package models

import (
	"fmt"
	"strings"
	"time"
)

// Priority classifies how urgent a task is.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority converts user input into a Priority. Empty input defaults
// to medium.
func ParsePriority(s string) (Priority, error) {
	switch Priority(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return PriorityMedium, nil
	case PriorityLow:
		return PriorityLow, nil
	case PriorityMedium:
		return PriorityMedium, nil
	case PriorityHigh:
		return PriorityHigh, nil
	default:
		return "", fmt.Errorf("unknown priority %q", s)
	}
}

// Status is a task's lifecycle state.
type Status string

const (
	StatusNew  Status = "new"
	StatusDone Status = "done"
)

// Task is owned by the user who created it and is only visible to that
// user's session. Comments live inside the task and persist with it.
type Task struct {
	ID          string    `json:"id" validate:"required"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Priority    Priority  `json:"priority" validate:"required,oneof=low medium high"`
	Status      Status    `json:"status" validate:"required,oneof=new done"`
	CreatedAt   time.Time `json:"createdAt"`
	UserID      string    `json:"userId" validate:"required"`
	Comments    []Comment `json:"comments"`
}
