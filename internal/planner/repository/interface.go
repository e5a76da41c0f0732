package repository

import (
	"context"
	"time"

	"day-planner/internal/model"
)

// TaskRepository is the read/write surface of the external task store.
// Availability/date filtering is the backlog selector's job, not the store's.
type TaskRepository interface {
	GetTasks(ctx context.Context, person string) ([]model.Task, error)

	// AssignSlots writes a batch of new task→slot links atomically: either
	// every link lands or none does.
	AssignSlots(ctx context.Context, links []SlotLink) error

	// ClearSlots removes slot links by task id. Ids that are unknown or
	// already unassigned are skipped without error.
	ClearSlots(ctx context.Context, taskIDs []string) error
}

// TemplateRepository supplies the ordered day-slot descriptors for a
// person and weekday.
type TemplateRepository interface {
	GetSlots(ctx context.Context, person string, weekday time.Weekday) ([]model.Slot, error)
}

// OverrideRepository reports per-date "no assignment slots" override events.
type OverrideRepository interface {
	HasOverride(ctx context.Context, person, date string) (bool, error)
}

// ProfileRepository supplies per-person scheduling accommodations.
// A person without a stored profile yields the zero Profile.
type ProfileRepository interface {
	GetProfile(ctx context.Context, person string) (model.Profile, error)
}
