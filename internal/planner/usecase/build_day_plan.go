package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"day-planner/internal/model"
	"day-planner/internal/planner"
	"day-planner/internal/planner/repository"
)

// BuildDayPlan runs the full pipeline for one person and date:
// Selector → Scheduler → Composer, then persists the newly made slot links.
// Concurrent runs for the same (person, date) coalesce into one execution.
func (uc *implUseCase) BuildDayPlan(ctx context.Context, sc model.Scope, input planner.BuildDayPlanInput) (planner.BuildDayPlanOutput, error) {
	if sc.Person == "" {
		return planner.BuildDayPlanOutput{}, planner.ErrEmptyPerson
	}

	date, err := uc.dates.ParseDate(input.Date)
	if err != nil {
		return planner.BuildDayPlanOutput{}, fmt.Errorf("%w: %v", planner.ErrInvalidDate, err)
	}

	key := sc.Person + "|" + input.Date
	v, err, shared := uc.group.Do(key, func() (any, error) {
		return uc.buildDayPlan(ctx, sc.Person, date)
	})
	if err != nil {
		return planner.BuildDayPlanOutput{}, err
	}
	if shared {
		uc.l.Debugf(ctx, "BuildDayPlan: coalesced duplicate run for %s", key)
	}

	return v.(planner.BuildDayPlanOutput), nil
}

func (uc *implUseCase) buildDayPlan(ctx context.Context, person string, date time.Time) (planner.BuildDayPlanOutput, error) {
	dateStr := uc.dates.FormatDate(date)

	// Read-only input snapshot. Any upstream failure aborts the run cleanly
	// with no plan; the caller may retry.
	overrideActive, err := uc.overrides.HasOverride(ctx, person, dateStr)
	if err != nil {
		return planner.BuildDayPlanOutput{}, fmt.Errorf("%w: %v", planner.ErrOverrideFetch, err)
	}

	slots, err := uc.templates.GetSlots(ctx, person, date.Weekday())
	if err != nil {
		return planner.BuildDayPlanOutput{}, fmt.Errorf("%w: %v", planner.ErrTemplateFetch, err)
	}
	if len(slots) == 0 {
		return planner.BuildDayPlanOutput{}, planner.ErrNoTemplate
	}

	tasks, err := uc.taskRepo.GetTasks(ctx, person)
	if err != nil {
		return planner.BuildDayPlanOutput{}, fmt.Errorf("%w: %v", planner.ErrTaskFetch, err)
	}

	profile, err := uc.profiles.GetProfile(ctx, person)
	if err != nil {
		return planner.BuildDayPlanOutput{}, fmt.Errorf("failed to fetch profile: %w", err)
	}

	fingerprint := inputFingerprint(dateStr, slots, tasks, profile, overrideActive)
	cacheKey := person + "|" + dateStr + "|" + fingerprint
	if out, ok := uc.cache.Get(cacheKey); ok {
		uc.l.Debugf(ctx, "buildDayPlan: cache hit for %s %s", person, dateStr)
		return out, nil
	}

	// Assignments already persisted for this date are honored as-is: their
	// slots are closed and their tasks never re-enter the queue.
	prePlaced := map[int]model.Task{}
	for _, t := range tasks {
		if t.Assignment != nil && t.Assignment.Day == dateStr {
			prePlaced[t.Assignment.SlotNumber] = t
		}
	}

	openSlots := make([]model.Slot, 0, len(slots))
	for _, s := range slots {
		if s.Fillable() {
			if _, taken := prePlaced[*s.Number]; !taken {
				openSlots = append(openSlots, s)
			}
		}
	}

	out := planner.BuildDayPlanOutput{}
	placed := prePlaced

	if overrideActive {
		// No slot may be filled today; the scheduler is not consulted.
		uc.l.Infof(ctx, "buildDayPlan: override active for %s on %s, suppressing all open slots", person, dateStr)
		out.Plan = uc.composePlan(person, date, slots, nil, true)
		uc.cache.Add(cacheKey, out)
		return out, nil
	}

	queue := uc.selectBacklog(tasks, date)

	dayStart, dayEnd := uc.dates.DayBounds(date)
	result, err := uc.scheduleQueue(queue, openSlots, prePlaced, profile, dayStart, dayEnd)
	if err != nil {
		return planner.BuildDayPlanOutput{}, err
	}

	for n, t := range result.Placed {
		placed[n] = t
	}

	out.Plan = uc.composePlan(person, date, slots, placed, false)
	out.Unscheduled = result.Unscheduled
	out.Warnings = result.Warnings

	uc.l.Infof(ctx, "buildDayPlan: %s %s placed=%d pre=%d unscheduled=%d free=%d",
		person, dateStr, len(result.Placed), len(prePlaced), len(result.Unscheduled), len(result.FreeSlots))

	// Persist only the links made this run. An abandoned run must leave no
	// side effects, so cancellation is checked before the write starts; the
	// write itself is atomic for the whole batch.
	if len(result.Placed) > 0 {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return planner.BuildDayPlanOutput{}, ctxErr
		}

		links := make([]repository.SlotLink, 0, len(result.Placed))
		for _, n := range sortedSlotNumbers(result.Placed) {
			links = append(links, repository.SlotLink{
				TaskID:     result.Placed[n].ID,
				Day:        dateStr,
				SlotNumber: n,
			})
		}

		if persistErr := uc.taskRepo.AssignSlots(ctx, links); persistErr != nil {
			// The computed plan is still good; report the write failure
			// separately so the caller can retry persistence alone.
			uc.l.Errorf(ctx, "buildDayPlan: failed to persist %d slot links: %v", len(links), persistErr)
			out.PersistErr = persistErr
			return out, nil
		}
	}

	uc.cache.Add(cacheKey, out)
	return out, nil
}

// ClearAssignments bulk-clears slot links; unknown or already-unassigned ids
// are a no-op.
func (uc *implUseCase) ClearAssignments(ctx context.Context, sc model.Scope, input planner.ClearAssignmentsInput) error {
	if sc.Person == "" {
		return planner.ErrEmptyPerson
	}
	if len(input.TaskIDs) == 0 {
		return planner.ErrNoTaskIDs
	}

	if err := uc.taskRepo.ClearSlots(ctx, input.TaskIDs); err != nil {
		uc.l.Errorf(ctx, "ClearAssignments: %v", err)
		return fmt.Errorf("failed to clear slot links: %w", err)
	}

	uc.l.Infof(ctx, "ClearAssignments: cleared %d tasks for %s", len(input.TaskIDs), sc.Person)
	return nil
}

func sortedSlotNumbers(placed map[int]model.Task) []int {
	nums := make([]int, 0, len(placed))
	for n := range placed {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}
