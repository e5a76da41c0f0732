package planner

import (
	"day-planner/internal/model"
)

// BuildDayPlanInput is the input for building one day plan.
// Person is carried in model.Scope, not here. Wall-clock "now" is
// deliberately absent: the pipeline is pure given store state and date, and
// the reveal-gate visibility decision belongs to the caller.
type BuildDayPlanInput struct {
	Date string // "2006-01-02"
}

// BuildDayPlanOutput is the result of a plan run.
type BuildDayPlanOutput struct {
	Plan        model.DayPlan
	Unscheduled []model.Task // legal-slot exhaustion, not an error
	Warnings    []string     // informational, e.g. overdue tasks left unscheduled

	// PersistErr reports a slot-link write failure separately from the
	// computed plan, so the caller can retry persistence without
	// recomputing.
	PersistErr error
}

// ClearAssignmentsInput is the input for bulk-clearing slot links.
type ClearAssignmentsInput struct {
	TaskIDs []string
}
