package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"day-planner/internal/model"
	"day-planner/internal/planner"
	"day-planner/internal/planner/repository"
)

func mondayTemplate() []model.Slot {
	return []model.Slot{
		fixedSlot("08:00", "08:45", "Morning Review"),
		openSlot(2, "08:50", "09:35"),
		openSlot(3, "09:50", "10:35"),
		openSlot(4, "12:30", "13:15"),
	}
}

func TestBuildDayPlan(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{Person: "avery"}
	const date = "2026-09-07" // a Monday

	templates := func() *mockTemplateRepo {
		return &mockTemplateRepo{
			getSlotsFunc: func(person string, weekday time.Weekday) ([]model.Slot, error) {
				if weekday != time.Monday {
					return nil, nil
				}
				return mondayTemplate(), nil
			},
		}
	}

	t.Run("Empty Person", func(t *testing.T) {
		uc := newTestUseCase(testConfig(), nil, nil, nil, nil)
		_, err := uc.BuildDayPlan(ctx, model.Scope{}, planner.BuildDayPlanInput{Date: date})
		if !errors.Is(err, planner.ErrEmptyPerson) {
			t.Errorf("expected ErrEmptyPerson, got %v", err)
		}
	})

	t.Run("Invalid Date", func(t *testing.T) {
		uc := newTestUseCase(testConfig(), nil, nil, nil, nil)
		_, err := uc.BuildDayPlan(ctx, sc, planner.BuildDayPlanInput{Date: "07/09/2026"})
		if !errors.Is(err, planner.ErrInvalidDate) {
			t.Errorf("expected ErrInvalidDate, got %v", err)
		}
	})

	t.Run("No Template For Weekday", func(t *testing.T) {
		uc := newTestUseCase(testConfig(), nil, templates(), nil, nil)
		_, err := uc.BuildDayPlan(ctx, sc, planner.BuildDayPlanInput{Date: "2026-09-08"}) // Tuesday
		if !errors.Is(err, planner.ErrNoTemplate) {
			t.Errorf("expected ErrNoTemplate, got %v", err)
		}
	})

	t.Run("Full Run Persists Sorted Links", func(t *testing.T) {
		taskRepo := &mockTaskRepo{
			getTasksFunc: func(person string) ([]model.Task, error) {
				return []model.Task{
					{ID: "t1", Title: "Essay", CreatedAt: time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)},
					{ID: "t2", Title: "Algebra", CreatedAt: time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)},
				}, nil
			},
		}
		uc := newTestUseCase(testConfig(), taskRepo, templates(), nil, nil)

		out, err := uc.BuildDayPlan(ctx, sc, planner.BuildDayPlanInput{Date: date})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.PersistErr != nil {
			t.Fatalf("unexpected persist error: %v", out.PersistErr)
		}
		if len(out.Plan.Entries) != 4 {
			t.Fatalf("expected 4 entries, got %d", len(out.Plan.Entries))
		}
		if len(out.Unscheduled) != 0 {
			t.Errorf("expected empty unscheduled, got %v", out.Unscheduled)
		}

		if len(taskRepo.assignCalls) != 1 {
			t.Fatalf("expected one persistence call, got %d", len(taskRepo.assignCalls))
		}
		links := taskRepo.assignCalls[0]
		if len(links) != 2 {
			t.Fatalf("expected 2 slot links, got %d", len(links))
		}
		// Links arrive in ascending slot order; t2 is older so it goes first.
		if links[0].SlotNumber != 2 || links[0].TaskID != "t2" || links[0].Day != date {
			t.Errorf("unexpected first link: %+v", links[0])
		}
		if links[1].SlotNumber != 3 || links[1].TaskID != "t1" {
			t.Errorf("unexpected second link: %+v", links[1])
		}
	})

	t.Run("Rerun With Persisted Assignments Is Idempotent", func(t *testing.T) {
		taskRepo := &mockTaskRepo{
			getTasksFunc: func(person string) ([]model.Task, error) {
				return []model.Task{
					{ID: "pinned", Title: "Algebra", Assignment: &model.SlotAssignment{Day: date, SlotNumber: 2}},
				}, nil
			},
		}
		uc := newTestUseCase(testConfig(), taskRepo, templates(), nil, nil)

		out, err := uc.BuildDayPlan(ctx, sc, planner.BuildDayPlanInput{Date: date})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(taskRepo.assignCalls) != 0 {
			t.Errorf("expected no persistence call on rerun, got %d", len(taskRepo.assignCalls))
		}

		var found bool
		for _, e := range out.Plan.Entries {
			if e.Task != nil && e.Task.ID == "pinned" {
				found = true
				if n := *e.Slot.Number; n != 2 {
					t.Errorf("pinned task must stay in slot 2, got %d", n)
				}
			}
		}
		if !found {
			t.Error("pinned task missing from the plan")
		}
	})

	t.Run("Persist Failure Still Returns Plan", func(t *testing.T) {
		persistErr := errors.New("store unavailable")
		taskRepo := &mockTaskRepo{
			getTasksFunc: func(person string) ([]model.Task, error) {
				return []model.Task{{ID: "t1", Title: "Essay"}}, nil
			},
			assignFunc: func(links []repository.SlotLink) error { return persistErr },
		}
		uc := newTestUseCase(testConfig(), taskRepo, templates(), nil, nil)

		out, err := uc.BuildDayPlan(ctx, sc, planner.BuildDayPlanInput{Date: date})
		if err != nil {
			t.Fatalf("plan computation must not fail on persist errors, got %v", err)
		}
		if !errors.Is(out.PersistErr, persistErr) {
			t.Errorf("expected PersistErr %v, got %v", persistErr, out.PersistErr)
		}
		if len(out.Plan.Entries) == 0 {
			t.Error("expected the computed plan despite persist failure")
		}
	})

	t.Run("Override Day Skips Scheduling", func(t *testing.T) {
		taskRepo := &mockTaskRepo{
			getTasksFunc: func(person string) ([]model.Task, error) {
				return []model.Task{{ID: "t1", Title: "Essay"}}, nil
			},
		}
		overrides := &mockOverrideRepo{
			hasOverrideFunc: func(person, d string) (bool, error) { return d == date, nil },
		}
		uc := newTestUseCase(testConfig(), taskRepo, templates(), overrides, nil)

		out, err := uc.BuildDayPlan(ctx, sc, planner.BuildDayPlanInput{Date: date})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Plan.Suppressed {
			t.Fatal("expected a suppressed plan")
		}
		if len(taskRepo.assignCalls) != 0 {
			t.Errorf("no links may be persisted on an override day, got %d calls", len(taskRepo.assignCalls))
		}
	})

	t.Run("Unchanged Inputs Hit The Cache", func(t *testing.T) {
		taskRepo := &mockTaskRepo{
			getTasksFunc: func(person string) ([]model.Task, error) {
				return []model.Task{{ID: "t1", Title: "Essay"}}, nil
			},
		}
		uc := newTestUseCase(testConfig(), taskRepo, templates(), nil, nil)

		first, err := uc.BuildDayPlan(ctx, sc, planner.BuildDayPlanInput{Date: date})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.BuildDayPlan(ctx, sc, planner.BuildDayPlanInput{Date: date})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(taskRepo.assignCalls) != 1 {
			t.Errorf("cached rerun must not persist again, got %d calls", len(taskRepo.assignCalls))
		}
		if first.Plan.Date != second.Plan.Date || len(first.Plan.Entries) != len(second.Plan.Entries) {
			t.Error("cached plan differs from the computed one")
		}
	})

	t.Run("Concurrent Runs Coalesce", func(t *testing.T) {
		var fetches atomic.Int32
		taskRepo := &mockTaskRepo{
			getTasksFunc: func(person string) ([]model.Task, error) {
				fetches.Add(1)
				time.Sleep(100 * time.Millisecond) // keep the first run in flight
				return []model.Task{{ID: "t1", Title: "Essay"}}, nil
			},
		}
		uc := newTestUseCase(testConfig(), taskRepo, templates(), nil, nil)

		const runs = 4
		outputs := make([]planner.BuildDayPlanOutput, runs)
		errs := make([]error, runs)

		var wg sync.WaitGroup
		for i := 0; i < runs; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				outputs[i], errs[i] = uc.BuildDayPlan(ctx, sc, planner.BuildDayPlanInput{Date: date})
			}(i)
		}
		wg.Wait()

		for i, err := range errs {
			if err != nil {
				t.Fatalf("run %d: unexpected error: %v", i, err)
			}
		}
		if got := fetches.Load(); got != 1 {
			t.Errorf("expected one task fetch across concurrent runs, got %d", got)
		}
		if len(taskRepo.assignCalls) != 1 {
			t.Errorf("expected one persistence call across concurrent runs, got %d", len(taskRepo.assignCalls))
		}
		for i := 1; i < runs; i++ {
			if outputs[i].Plan.Date != outputs[0].Plan.Date ||
				len(outputs[i].Plan.Entries) != len(outputs[0].Plan.Entries) {
				t.Errorf("run %d received a different plan than run 0", i)
			}
		}
	})

	t.Run("Deterministic Across Runs", func(t *testing.T) {
		tasks := []model.Task{
			{ID: "a", Title: "a", DueAt: timePtr(time.Date(2026, 9, 9, 0, 0, 0, 0, time.UTC))},
			{ID: "b", Title: "b", DueAt: timePtr(time.Date(2026, 9, 9, 0, 0, 0, 0, time.UTC)), CreatedAt: time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)},
			{ID: "c", Title: "c"},
		}

		var baseline []string
		for i := 0; i < 5; i++ {
			taskRepo := &mockTaskRepo{
				getTasksFunc: func(person string) ([]model.Task, error) { return tasks, nil },
			}
			uc := newTestUseCase(testConfig(), taskRepo, templates(), nil, nil)

			out, err := uc.BuildDayPlan(ctx, sc, planner.BuildDayPlanInput{Date: date})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			var got []string
			for _, e := range out.Plan.Entries {
				if e.Task != nil {
					got = append(got, e.Task.ID)
				}
			}
			if baseline == nil {
				baseline = got
				continue
			}
			if len(got) != len(baseline) {
				t.Fatalf("run %d produced %v, baseline %v", i, got, baseline)
			}
			for j := range got {
				if got[j] != baseline[j] {
					t.Fatalf("run %d produced %v, baseline %v", i, got, baseline)
				}
			}
		}
	})
}

func TestClearAssignments(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{Person: "avery"}

	t.Run("Empty Person", func(t *testing.T) {
		uc := newTestUseCase(testConfig(), nil, nil, nil, nil)
		err := uc.ClearAssignments(ctx, model.Scope{}, planner.ClearAssignmentsInput{TaskIDs: []string{"t1"}})
		if !errors.Is(err, planner.ErrEmptyPerson) {
			t.Errorf("expected ErrEmptyPerson, got %v", err)
		}
	})

	t.Run("No Task IDs", func(t *testing.T) {
		uc := newTestUseCase(testConfig(), nil, nil, nil, nil)
		err := uc.ClearAssignments(ctx, sc, planner.ClearAssignmentsInput{})
		if !errors.Is(err, planner.ErrNoTaskIDs) {
			t.Errorf("expected ErrNoTaskIDs, got %v", err)
		}
	})

	t.Run("Passes IDs Through", func(t *testing.T) {
		var cleared []string
		taskRepo := &mockTaskRepo{
			clearFunc: func(taskIDs []string) error {
				cleared = taskIDs
				return nil
			},
		}
		uc := newTestUseCase(testConfig(), taskRepo, nil, nil, nil)

		err := uc.ClearAssignments(ctx, sc, planner.ClearAssignmentsInput{TaskIDs: []string{"t1", "t2"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cleared) != 2 || cleared[0] != "t1" || cleared[1] != "t2" {
			t.Errorf("unexpected ids cleared: %v", cleared)
		}
	})
}
