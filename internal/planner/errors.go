package planner

import "errors"

// Domain-specific errors for the planner package.
var (
	ErrEmptyPerson     = errors.New("person is required")
	ErrInvalidDate     = errors.New("invalid plan date")
	ErrNoTemplate      = errors.New("no template available for this weekday")
	ErrDuplicateSlot   = errors.New("template contains duplicate slot numbers")
	ErrMissingSlotTime = errors.New("template slot is missing start or end time")
	ErrNoTaskIDs       = errors.New("no task ids given")
	ErrTemplateFetch   = errors.New("failed to fetch day template")
	ErrTaskFetch       = errors.New("failed to fetch tasks")
	ErrOverrideFetch   = errors.New("failed to fetch override events")
)
