package usecase

import "day-planner/internal/model"

// urgency classes, higher schedules first.
const (
	urgencyUpcoming = iota
	urgencyDueToday
	urgencyOverdue
)

// scheduleResult is the outcome of one constrained scheduling pass.
type scheduleResult struct {
	Placed      map[int]model.Task // slot number → task placed this run
	Unscheduled []model.Task
	Warnings    []string
	FreeSlots   []int // open slots left without a task
}

// loadRank orders cognitive load for the priority key; heavier first.
func loadRank(l model.CognitiveLoad) int {
	switch l {
	case model.LoadHeavy:
		return 2
	case model.LoadMedium:
		return 1
	default:
		return 0
	}
}
