package usecase

import (
	"context"
	"time"

	"day-planner/config"
	"day-planner/internal/model"
	"day-planner/internal/planner/repository"
	"day-planner/pkg/datemath"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock repositories with overridable behavior

type mockTaskRepo struct {
	getTasksFunc func(person string) ([]model.Task, error)
	assignFunc   func(links []repository.SlotLink) error
	clearFunc    func(taskIDs []string) error
	assignCalls  [][]repository.SlotLink
}

func (m *mockTaskRepo) GetTasks(ctx context.Context, person string) ([]model.Task, error) {
	if m.getTasksFunc != nil {
		return m.getTasksFunc(person)
	}
	return nil, nil
}

func (m *mockTaskRepo) AssignSlots(ctx context.Context, links []repository.SlotLink) error {
	m.assignCalls = append(m.assignCalls, links)
	if m.assignFunc != nil {
		return m.assignFunc(links)
	}
	return nil
}

func (m *mockTaskRepo) ClearSlots(ctx context.Context, taskIDs []string) error {
	if m.clearFunc != nil {
		return m.clearFunc(taskIDs)
	}
	return nil
}

type mockTemplateRepo struct {
	getSlotsFunc func(person string, weekday time.Weekday) ([]model.Slot, error)
}

func (m *mockTemplateRepo) GetSlots(ctx context.Context, person string, weekday time.Weekday) ([]model.Slot, error) {
	if m.getSlotsFunc != nil {
		return m.getSlotsFunc(person, weekday)
	}
	return nil, nil
}

type mockOverrideRepo struct {
	hasOverrideFunc func(person, date string) (bool, error)
}

func (m *mockOverrideRepo) HasOverride(ctx context.Context, person, date string) (bool, error) {
	if m.hasOverrideFunc != nil {
		return m.hasOverrideFunc(person, date)
	}
	return false, nil
}

type mockProfileRepo struct {
	profile model.Profile
}

func (m *mockProfileRepo) GetProfile(ctx context.Context, person string) (model.Profile, error) {
	return m.profile, nil
}

// testConfig is the engine configuration used by most tests.
func testConfig() config.PlannerConfig {
	return config.PlannerConfig{
		Timezone:             "UTC",
		CutoffSlot:           5,
		MaxHeavyBeforeCutoff: 2,
		RevealEndLabel:       "Return Travel",
		RevealLeadMinutes:    10,
		CacheSize:            16,
		CacheTTLMinutes:      1,
	}
}

func newTestUseCase(cfg config.PlannerConfig, taskRepo *mockTaskRepo, templates *mockTemplateRepo, overrides *mockOverrideRepo, profiles *mockProfileRepo) *implUseCase {
	if taskRepo == nil {
		taskRepo = &mockTaskRepo{}
	}
	if templates == nil {
		templates = &mockTemplateRepo{}
	}
	if overrides == nil {
		overrides = &mockOverrideRepo{}
	}
	if profiles == nil {
		profiles = &mockProfileRepo{}
	}
	dates, _ := datemath.NewParser(cfg.Timezone)
	return New(&mockLogger{}, taskRepo, templates, overrides, profiles, dates, cfg)
}

// Fixture builders

func intPtr(n int) *int { return &n }

func timePtr(t time.Time) *time.Time { return &t }

func openSlot(n int, start, end string) model.Slot {
	return model.Slot{
		Weekday: time.Monday,
		Number:  intPtr(n),
		Start:   start,
		End:     end,
		Kind:    model.SlotKindAssignment,
	}
}

func fixedSlot(start, end, label string) model.Slot {
	return model.Slot{
		Weekday: time.Monday,
		Start:   start,
		End:     end,
		Label:   label,
		Kind:    model.SlotKindFixed,
	}
}

func specialSlot(start, end, label string) model.Slot {
	return model.Slot{
		Weekday: time.Monday,
		Start:   start,
		End:     end,
		Label:   label,
		Kind:    model.SlotKindSpecial,
	}
}
