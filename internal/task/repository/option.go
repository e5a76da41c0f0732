package repository

import (
	"time"

	"day-planner/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new task.
type CreateTaskOptions struct {
	Person           string
	Title            string
	Subject          string
	DueAt            *time.Time
	AvailableOn      *time.Time
	Load             model.CognitiveLoad
	EstimatedMinutes int
	Part             *model.TaskPart
	HasParts         bool
}

// GetOneTaskOptions holds filter parameters for fetching a single task.
type GetOneTaskOptions struct {
	Person string
	ID     string
}

// ListTasksOptions holds filter and pagination parameters.
type ListTasksOptions struct {
	Person  string
	State   model.TaskState
	Subject string
	Limit   int
	Offset  int
}

// UpdateTaskOptions holds parameters for a partial task update.
// Nil/zero fields are left untouched.
type UpdateTaskOptions struct {
	Person           string
	ID               string
	Title            string
	Subject          string
	DueAt            *time.Time
	AvailableOn      *time.Time
	State            model.TaskState
	Load             model.CognitiveLoad
	EstimatedMinutes int
}
