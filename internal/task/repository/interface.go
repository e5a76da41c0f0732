package repository

import (
	"context"

	"day-planner/internal/model"
)

// Repository defines all data access methods for the Task entity as seen by
// the ingestion domain.
type Repository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)

	// CreateTaskBatch inserts several tasks atomically; used for split-part
	// creation so a parent never appears without its parts.
	CreateTaskBatch(ctx context.Context, opts []CreateTaskOptions) ([]model.Task, error)

	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, int, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, person, id string) error
}
