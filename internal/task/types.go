package task

import (
	"time"

	"day-planner/internal/model"
)

// --- UseCase Inputs ---

// CreateInput describes one task to ingest. Parts > 1 splits the task into
// that many ordered part tasks under a parent that is itself excluded from
// scheduling.
type CreateInput struct {
	Title            string
	Subject          string
	DueAt            *time.Time
	AvailableOn      *time.Time
	Load             model.CognitiveLoad
	EstimatedMinutes int
	Parts            int
}

type ListInput struct {
	State   string // optional filter by completion state
	Subject string // optional filter by subject
	Limit   int
	Offset  int
}

// UpdateInput applies a partial update; zero-valued fields are left alone.
type UpdateInput struct {
	ID               string
	Title            string
	Subject          string
	DueAt            *time.Time
	AvailableOn      *time.Time
	State            model.TaskState
	Load             model.CognitiveLoad
	EstimatedMinutes int
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Task  model.Task   // the created task, or the parent when split
	Parts []model.Task // ordered part tasks when Parts > 1
}

type ListOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}

type DetailOutput struct {
	Task model.Task
}

type UpdateOutput struct {
	Task model.Task
}
