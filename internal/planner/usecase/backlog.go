package usecase

import (
	"sort"
	"time"

	"day-planner/internal/model"
)

// selectBacklog turns the raw task set into one deterministically ordered
// queue for asOfDate. Pure: identical inputs yield byte-identical order.
//
// Tier A: needs-more-time tasks due exactly on asOfDate, oldest first.
// Tier B: not-started tasks, earliest due date first, no due date last,
// ties broken by creation time. Completed/stuck tasks and split parents
// never enter the queue.
func (uc *implUseCase) selectBacklog(tasks []model.Task, asOfDate time.Time) []model.Task {
	dayStart, dayEnd := uc.dates.DayBounds(asOfDate)
	dateStr := uc.dates.FormatDate(asOfDate)

	var tierA, tierB []model.Task

	for _, t := range tasks {
		if !t.Schedulable() {
			continue
		}

		// Not yet visible.
		if t.AvailableOn != nil && uc.dates.StartOfDay(*t.AvailableOn).After(dayStart) {
			continue
		}

		// Already assigned on this date: honored by compose, never re-queued.
		if t.Assignment != nil && t.Assignment.Day == dateStr {
			continue
		}

		// Optional guard: leave tasks already parked on a future date alone.
		if uc.cfg.ExcludeFutureAssigned && t.Assignment != nil && t.Assignment.Day > dateStr {
			continue
		}

		switch t.EffectiveState() {
		case model.TaskStateNeedsMoreTime:
			if t.DueAt != nil && !t.DueAt.Before(dayStart) && !t.DueAt.After(dayEnd) {
				tierA = append(tierA, t)
			}
		case model.TaskStateNotStarted:
			tierB = append(tierB, t)
		}
	}

	sort.SliceStable(tierA, func(i, j int) bool {
		return tierA[i].CreatedAt.Before(tierA[j].CreatedAt)
	})

	sort.SliceStable(tierB, func(i, j int) bool {
		di, dj := tierB[i].DueAt, tierB[j].DueAt
		switch {
		case di == nil && dj == nil:
			return tierB[i].CreatedAt.Before(tierB[j].CreatedAt)
		case di == nil:
			return false // no due date sorts last
		case dj == nil:
			return true
		case !di.Equal(*dj):
			return di.Before(*dj)
		}
		return tierB[i].CreatedAt.Before(tierB[j].CreatedAt)
	})

	return append(tierA, tierB...)
}
