package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"day-planner/internal/model"
	plannerRepo "day-planner/internal/planner/repository"
	taskRepo "day-planner/internal/task/repository"
)

// Store is an in-memory task store, template provider and override source.
// It backs both the ingestion domain's CRUD repository and the planner's
// read/write interfaces, so it stands in for the whole persistence boundary
// in development and tests.
type Store struct {
	mu        sync.RWMutex
	tasks     map[string]model.Task
	taskOrder []string // insertion order, keeps reads deterministic
	templates map[string]map[time.Weekday][]model.Slot
	overrides map[string]map[string]bool
	profiles  map[string]model.Profile
}

// New creates an empty store.
func New() *Store {
	return &Store{
		tasks:     map[string]model.Task{},
		templates: map[string]map[time.Weekday][]model.Slot{},
		overrides: map[string]map[string]bool{},
		profiles:  map[string]model.Profile{},
	}
}

// --- planner repositories ---

// GetTasks returns every task of the person, in insertion order.
func (s *Store) GetTasks(ctx context.Context, person string) ([]model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []model.Task{}
	for _, id := range s.taskOrder {
		if t, ok := s.tasks[id]; ok && t.Person == person {
			out = append(out, t)
		}
	}
	return out, nil
}

// AssignSlots writes a batch of task→slot links atomically. An existing
// assignment is never overwritten: the whole batch fails and nothing is
// written.
func (s *Store) AssignSlots(ctx context.Context, links []plannerRepo.SlotLink) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, l := range links {
		t, ok := s.tasks[l.TaskID]
		if !ok {
			return fmt.Errorf("%w: task %s", taskRepo.ErrNotFound, l.TaskID)
		}
		if t.Assignment != nil && (t.Assignment.Day != l.Day || t.Assignment.SlotNumber != l.SlotNumber) {
			return fmt.Errorf("task %s already assigned to %s slot %d", l.TaskID, t.Assignment.Day, t.Assignment.SlotNumber)
		}
	}

	for _, l := range links {
		t := s.tasks[l.TaskID]
		t.Assignment = &model.SlotAssignment{Day: l.Day, SlotNumber: l.SlotNumber}
		s.tasks[l.TaskID] = t
	}
	return nil
}

// ClearSlots removes slot links by task id; unknown or unassigned ids are
// skipped without error.
func (s *Store) ClearSlots(ctx context.Context, taskIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range taskIDs {
		t, ok := s.tasks[id]
		if !ok || t.Assignment == nil {
			continue
		}
		t.Assignment = nil
		s.tasks[id] = t
	}
	return nil
}

// GetSlots returns the person's template for the weekday, in template order.
func (s *Store) GetSlots(ctx context.Context, person string, weekday time.Weekday) ([]model.Slot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byDay, ok := s.templates[person]
	if !ok {
		return nil, nil
	}
	slots := byDay[weekday]
	out := make([]model.Slot, len(slots))
	copy(out, slots)
	return out, nil
}

// HasOverride reports whether the date is marked "no assignment slots".
func (s *Store) HasOverride(ctx context.Context, person, date string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.overrides[person][date], nil
}

// GetProfile returns the person's accommodations, or the zero Profile.
func (s *Store) GetProfile(ctx context.Context, person string) (model.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profiles[person], nil
}

// SetTemplate replaces the person's slots for one weekday.
func (s *Store) SetTemplate(person string, weekday time.Weekday, slots []model.Slot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.templates[person] == nil {
		s.templates[person] = map[time.Weekday][]model.Slot{}
	}
	s.templates[person][weekday] = slots
}

// SetOverride flags or unflags a date for a person.
func (s *Store) SetOverride(person, date string, active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.overrides[person] == nil {
		s.overrides[person] = map[string]bool{}
	}
	if active {
		s.overrides[person][date] = true
	} else {
		delete(s.overrides[person], date)
	}
}

// SetProfile stores the person's accommodations.
func (s *Store) SetProfile(p model.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[p.Person] = p
}

// --- task ingestion repository ---

// CreateTask inserts one task and mints its id.
func (s *Store) CreateTask(ctx context.Context, opt taskRepo.CreateTaskOptions) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insert(opt), nil
}

// CreateTaskBatch inserts several tasks under one lock acquisition, so a
// split parent's parts land together.
func (s *Store) CreateTaskBatch(ctx context.Context, opts []taskRepo.CreateTaskOptions) ([]model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Task, 0, len(opts))
	for _, opt := range opts {
		out = append(out, s.insert(opt))
	}
	return out, nil
}

func (s *Store) insert(opt taskRepo.CreateTaskOptions) model.Task {
	t := model.Task{
		ID:               uuid.NewString(),
		Person:           opt.Person,
		Title:            opt.Title,
		Subject:          opt.Subject,
		DueAt:            opt.DueAt,
		AvailableOn:      opt.AvailableOn,
		CreatedAt:        time.Now().UTC(),
		State:            model.TaskStateNotStarted,
		Load:             opt.Load,
		EstimatedMinutes: opt.EstimatedMinutes,
		Part:             opt.Part,
		HasParts:         opt.HasParts,
	}
	s.tasks[t.ID] = t
	s.taskOrder = append(s.taskOrder, t.ID)
	return t
}

// GetOneTask fetches a single task by person and id.
func (s *Store) GetOneTask(ctx context.Context, opt taskRepo.GetOneTaskOptions) (model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[opt.ID]
	if !ok || t.Person != opt.Person {
		return model.Task{}, taskRepo.ErrNotFound
	}
	return t, nil
}

// ListTasks returns a filtered page plus the unpaged total.
func (s *Store) ListTasks(ctx context.Context, opt taskRepo.ListTasksOptions) ([]model.Task, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := []model.Task{}
	for _, id := range s.taskOrder {
		t, ok := s.tasks[id]
		if !ok || t.Person != opt.Person {
			continue
		}
		if opt.State != "" && t.EffectiveState() != opt.State {
			continue
		}
		if opt.Subject != "" && t.Subject != opt.Subject {
			continue
		}
		matched = append(matched, t)
	}

	total := len(matched)
	if opt.Offset >= total {
		return []model.Task{}, total, nil
	}
	end := total
	if opt.Limit > 0 && opt.Offset+opt.Limit < end {
		end = opt.Offset + opt.Limit
	}
	return matched[opt.Offset:end], total, nil
}

// UpdateTask applies a partial update and returns the new state.
func (s *Store) UpdateTask(ctx context.Context, opt taskRepo.UpdateTaskOptions) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[opt.ID]
	if !ok || t.Person != opt.Person {
		return model.Task{}, taskRepo.ErrNotFound
	}

	if opt.Title != "" {
		t.Title = opt.Title
	}
	if opt.Subject != "" {
		t.Subject = opt.Subject
	}
	if opt.DueAt != nil {
		t.DueAt = opt.DueAt
	}
	if opt.AvailableOn != nil {
		t.AvailableOn = opt.AvailableOn
	}
	if opt.State != "" {
		t.State = opt.State
	}
	if opt.Load != "" {
		t.Load = opt.Load
	}
	if opt.EstimatedMinutes > 0 {
		t.EstimatedMinutes = opt.EstimatedMinutes
	}

	s.tasks[opt.ID] = t
	return t, nil
}

// DeleteTask removes a task by person and id.
func (s *Store) DeleteTask(ctx context.Context, person, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok || t.Person != person {
		return taskRepo.ErrNotFound
	}
	delete(s.tasks, id)
	for i, oid := range s.taskOrder {
		if oid == id {
			s.taskOrder = append(s.taskOrder[:i], s.taskOrder[i+1:]...)
			break
		}
	}
	return nil
}
