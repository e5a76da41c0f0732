package usecase

import (
	"time"

	"day-planner/internal/model"
)

// composePlan merges scheduling output back into full template order.
// Pure given its inputs: the only date used is the one passed in.
func (uc *implUseCase) composePlan(
	person string,
	date time.Time,
	slots []model.Slot,
	placed map[int]model.Task,
	overrideActive bool,
) model.DayPlan {
	plan := model.DayPlan{
		Person:  person,
		Date:    uc.dates.FormatDate(date),
		Weekday: date.Weekday(),
		Entries: make([]model.PlanEntry, 0, len(slots)),
	}

	// Override days suppress all filling before any slot is looked at.
	if overrideActive {
		plan.Suppressed = true
		for _, s := range slots {
			plan.Entries = append(plan.Entries, model.PlanEntry{Slot: s, Open: s.Fillable()})
		}
		return plan
	}

	for _, s := range slots {
		entry := model.PlanEntry{Slot: s}
		if s.Fillable() {
			if t, ok := placed[*s.Number]; ok {
				task := t
				entry.Task = &task
			} else {
				entry.Open = true
			}
		}
		plan.Entries = append(plan.Entries, entry)
	}

	plan.RevealAt = uc.revealGate(date, slots)
	return plan
}

// revealGate computes the instant before which a special multi-slot section
// should stay hidden: the end of the section's closing slot on the plan
// date, minus the configured lead. Returns nil when the template has no
// special section or no closing slot.
func (uc *implUseCase) revealGate(date time.Time, slots []model.Slot) *time.Time {
	hasSpecial := false
	for _, s := range slots {
		if s.Kind == model.SlotKindSpecial {
			hasSpecial = true
			break
		}
	}
	if !hasSpecial {
		return nil
	}

	for _, s := range slots {
		if s.Label != uc.cfg.RevealEndLabel {
			continue
		}
		end, err := uc.dates.ClockOn(date, s.End)
		if err != nil {
			return nil
		}
		at := end.Add(-time.Duration(uc.cfg.RevealLeadMinutes) * time.Minute)
		return &at
	}
	return nil
}
