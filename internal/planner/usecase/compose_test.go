package usecase

import (
	"testing"
	"time"

	"day-planner/internal/model"
)

func TestComposePlan(t *testing.T) {
	day := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC) // a Monday
	uc := newTestUseCase(testConfig(), nil, nil, nil, nil)

	template := []model.Slot{
		fixedSlot("08:00", "08:45", "Morning Review"),
		openSlot(2, "08:50", "09:35"),
		openSlot(3, "09:50", "10:35"),
		fixedSlot("12:00", "12:30", "Lunch"),
		openSlot(4, "12:30", "13:15"),
	}

	t.Run("Merges Placed Tasks In Template Order", func(t *testing.T) {
		placed := map[int]model.Task{
			2: {ID: "t2", Title: "Algebra"},
			4: {ID: "t4", Title: "Essay"},
		}

		plan := uc.composePlan("avery", day, template, placed, false)

		if plan.Person != "avery" || plan.Date != "2026-09-07" || plan.Weekday != time.Monday {
			t.Errorf("unexpected plan header: %+v", plan)
		}
		if len(plan.Entries) != len(template) {
			t.Fatalf("expected %d entries, got %d", len(template), len(plan.Entries))
		}

		// Fixed slots pass through untouched, in order.
		if plan.Entries[0].Slot.Label != "Morning Review" || plan.Entries[0].Task != nil || plan.Entries[0].Open {
			t.Errorf("fixed slot altered: %+v", plan.Entries[0])
		}
		if plan.Entries[1].Task == nil || plan.Entries[1].Task.ID != "t2" {
			t.Errorf("expected t2 in slot 2, got %+v", plan.Entries[1])
		}
		if !plan.Entries[2].Open || plan.Entries[2].Task != nil {
			t.Errorf("expected slot 3 open, got %+v", plan.Entries[2])
		}
		if plan.Entries[4].Task == nil || plan.Entries[4].Task.ID != "t4" {
			t.Errorf("expected t4 in slot 4, got %+v", plan.Entries[4])
		}
		if plan.Suppressed {
			t.Error("plan must not be suppressed")
		}
	})

	t.Run("Override Suppresses All Filling", func(t *testing.T) {
		placed := map[int]model.Task{2: {ID: "t2"}}

		plan := uc.composePlan("avery", day, template, placed, true)

		if !plan.Suppressed {
			t.Fatal("expected suppressed plan")
		}
		for _, e := range plan.Entries {
			if e.Task != nil {
				t.Errorf("no entry may carry a task on an override day: %+v", e)
			}
			if e.Slot.Fillable() != e.Open {
				t.Errorf("fillable slots must show as open: %+v", e)
			}
		}
		if plan.RevealAt != nil {
			t.Error("suppressed plan must not carry a reveal gate")
		}
	})

	t.Run("No Special Section Means No Reveal Gate", func(t *testing.T) {
		plan := uc.composePlan("avery", day, template, nil, false)
		if plan.RevealAt != nil {
			t.Errorf("expected nil RevealAt, got %v", plan.RevealAt)
		}
	})

	t.Run("Reveal Gate From Closing Slot", func(t *testing.T) {
		withSpecial := append([]model.Slot{}, template...)
		withSpecial = append(withSpecial,
			specialSlot("10:40", "11:10", "Workshop Block"),
			specialSlot("11:10", "11:40", "Return Travel"),
		)

		plan := uc.composePlan("avery", day, withSpecial, nil, false)
		if plan.RevealAt == nil {
			t.Fatal("expected a reveal gate")
		}
		want := time.Date(2026, 9, 7, 11, 30, 0, 0, time.UTC) // 11:40 end minus 10 min lead
		if !plan.RevealAt.Equal(want) {
			t.Errorf("expected reveal at %v, got %v", want, plan.RevealAt)
		}
	})

	t.Run("Special Section Without Closing Label", func(t *testing.T) {
		withSpecial := append([]model.Slot{}, template...)
		withSpecial = append(withSpecial, specialSlot("10:40", "11:10", "Workshop Block"))

		plan := uc.composePlan("avery", day, withSpecial, nil, false)
		if plan.RevealAt != nil {
			t.Errorf("expected nil RevealAt without the closing slot, got %v", plan.RevealAt)
		}
	})
}
