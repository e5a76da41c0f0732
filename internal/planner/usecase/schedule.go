package usecase

import (
	"fmt"
	"sort"
	"time"

	"day-planner/internal/model"
	"day-planner/internal/planner"
)

// scheduleQueue assigns queue tasks to open slots with a priority-first
// greedy pass. prePlaced holds assignments already persisted for this date;
// they count toward every constraint but are never moved.
//
// Constraint rejection is not an error: a task that fits nowhere is reported
// in Unscheduled and may be retried on a later day. The only hard failures
// are malformed open-slot lists.
func (uc *implUseCase) scheduleQueue(
	queue []model.Task,
	openSlots []model.Slot,
	prePlaced map[int]model.Task,
	profile model.Profile,
	dayStart, dayEnd time.Time,
) (scheduleResult, error) {
	openNums, err := validateOpenSlots(openSlots)
	if err != nil {
		return scheduleResult{}, err
	}

	res := scheduleResult{Placed: map[int]model.Task{}}

	// Constraint state seeded from what is already on the board.
	occupied := map[int]model.Task{}
	subjectCount := map[string]int{}
	heavyBeforeCutoff := 0
	for n, t := range prePlaced {
		occupied[n] = t
		if t.Subject != "" {
			subjectCount[t.Subject]++
		}
		if t.Load == model.LoadHeavy && n < uc.cfg.CutoffSlot {
			heavyBeforeCutoff++
		}
	}

	ordered := uc.priorityOrder(queue, profile, dayStart, dayEnd)

	place := func(n int, t model.Task) {
		res.Placed[n] = t
		occupied[n] = t
		if t.Subject != "" {
			subjectCount[t.Subject]++
		}
		if t.Load == model.LoadHeavy && n < uc.cfg.CutoffSlot {
			heavyBeforeCutoff++
		}
		for i, open := range openNums {
			if open == n {
				openNums = append(openNums[:i], openNums[i+1:]...)
				break
			}
		}
	}

	// Anchor reservation: the first anchor-subject task claims the first
	// open slot of the day before any constraint predicate runs.
	if profile.AnchorSubject != "" && len(openNums) > 0 {
		for i, t := range ordered {
			if t.Subject != profile.AnchorSubject {
				continue
			}
			place(openNums[0], t)
			ordered = append(ordered[:i], ordered[i+1:]...)
			break
		}
	}

	for _, t := range ordered {
		placed := false
		for _, n := range openNums {
			if t.Load == model.LoadHeavy {
				if n < uc.cfg.CutoffSlot && heavyBeforeCutoff >= uc.cfg.MaxHeavyBeforeCutoff {
					continue
				}
				if occupied[n-1].Load == model.LoadHeavy || occupied[n+1].Load == model.LoadHeavy {
					continue
				}
			}
			if t.Subject != "" {
				if limit, ok := profile.SubjectDailyCap[t.Subject]; ok && subjectCount[t.Subject] >= limit {
					continue
				}
				if rejectOutsidePreferred(t.Subject, n, profile, openNums) {
					continue
				}
			}

			place(n, t)
			placed = true
			break
		}

		if !placed {
			res.Unscheduled = append(res.Unscheduled, t)
			if uc.urgencyOf(t, dayStart, dayEnd) == urgencyOverdue {
				res.Warnings = append(res.Warnings, fmt.Sprintf(
					"overdue task %q (due %s) could not be scheduled today",
					t.Title, t.DueAt.Format(model.DateFormat)))
			}
		}
	}

	res.FreeSlots = append(res.FreeSlots, openNums...)
	sort.Ints(res.FreeSlots)
	return res, nil
}

// priorityOrder sorts the queue by the composite scheduling key: urgency
// class, due date, anchor-subject preference, then cognitive load.
func (uc *implUseCase) priorityOrder(queue []model.Task, profile model.Profile, dayStart, dayEnd time.Time) []model.Task {
	ordered := make([]model.Task, len(queue))
	copy(ordered, queue)

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]

		ua, ub := uc.urgencyOf(a, dayStart, dayEnd), uc.urgencyOf(b, dayStart, dayEnd)
		if ua != ub {
			return ua > ub
		}

		da, db := a.DueAt, b.DueAt
		switch {
		case da == nil && db != nil:
			return false
		case da != nil && db == nil:
			return true
		case da != nil && db != nil && !da.Equal(*db):
			return da.Before(*db)
		}

		if profile.AnchorSubject != "" {
			aa, ab := a.Subject == profile.AnchorSubject, b.Subject == profile.AnchorSubject
			if aa != ab {
				return aa
			}
		}

		return loadRank(a.Load) > loadRank(b.Load)
	})

	return ordered
}

// urgencyOf classifies a task relative to the plan date.
func (uc *implUseCase) urgencyOf(t model.Task, dayStart, dayEnd time.Time) int {
	if t.DueAt == nil {
		return urgencyUpcoming
	}
	if t.DueAt.Before(dayStart) {
		return urgencyOverdue
	}
	if !t.DueAt.After(dayEnd) {
		return urgencyDueToday
	}
	return urgencyUpcoming
}

// rejectOutsidePreferred holds a task for a preferred slot: while the
// subject's preferred set still has an open member, any other slot is
// refused so the task waits for a preferred one later in the scan.
func rejectOutsidePreferred(subject string, n int, profile model.Profile, openNums []int) bool {
	preferred := profile.PreferredSlots[subject]
	if len(preferred) == 0 {
		return false
	}
	for _, p := range preferred {
		if p == n {
			return false
		}
	}
	for _, p := range preferred {
		for _, open := range openNums {
			if p == open {
				return true // a preferred slot is still open; wait for it
			}
		}
	}
	return false // preferred set exhausted, anywhere goes
}

// validateOpenSlots checks the open-slot list for malformed input and
// returns the slot numbers in ascending scan order.
func validateOpenSlots(openSlots []model.Slot) ([]int, error) {
	seen := map[int]bool{}
	nums := make([]int, 0, len(openSlots))
	for _, s := range openSlots {
		if s.Number == nil {
			return nil, fmt.Errorf("malformed template: open slot without a number")
		}
		if s.Start == "" || s.End == "" {
			return nil, fmt.Errorf("%w: slot %d", planner.ErrMissingSlotTime, *s.Number)
		}
		if seen[*s.Number] {
			return nil, fmt.Errorf("%w: slot %d", planner.ErrDuplicateSlot, *s.Number)
		}
		seen[*s.Number] = true
		nums = append(nums, *s.Number)
	}
	sort.Ints(nums)
	return nums, nil
}
