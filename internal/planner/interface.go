package planner

import (
	"context"

	"day-planner/internal/model"
)

// UseCase defines the business logic interface for the planner domain.
type UseCase interface {
	// BuildDayPlan runs the full pipeline for one person and date: backlog
	// selection, constrained slot assignment, template merge, and the
	// persistence of newly made slot links.
	BuildDayPlan(ctx context.Context, sc model.Scope, input BuildDayPlanInput) (BuildDayPlanOutput, error)

	// ClearAssignments bulk-clears slot links by task id. Safe to call on
	// already-unassigned tasks.
	ClearAssignments(ctx context.Context, sc model.Scope, input ClearAssignmentsInput) error
}
