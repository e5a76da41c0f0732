package model

import "time"

// DateFormat is the canonical calendar-date layout used for assignment days
// and plan dates.
const DateFormat = "2006-01-02"

// TaskState is the completion state of a task.
type TaskState string

const (
	TaskStateNotStarted    TaskState = "not_started"
	TaskStateNeedsMoreTime TaskState = "needs_more_time"
	TaskStateCompleted     TaskState = "completed"
	TaskStateStuck         TaskState = "stuck"
)

// CognitiveLoad is a coarse effort classification used for load balancing.
type CognitiveLoad string

const (
	LoadLight  CognitiveLoad = "light"
	LoadMedium CognitiveLoad = "medium"
	LoadHeavy  CognitiveLoad = "heavy"
)

// SlotAssignment links a task to one slot on one calendar date.
type SlotAssignment struct {
	Day        string // "2006-01-02"
	SlotNumber int
}

// TaskPart marks a task as one of N ordered parts of a parent task.
// A parent with parts is never scheduled directly; it completes when all
// parts complete.
type TaskPart struct {
	ParentID string
	Index    int // 1-based position among the parts
	Total    int
}

// Task is a unit of pending work owned by one person.
type Task struct {
	ID               string
	Person           string
	Title            string
	Subject          string // free text, may be empty
	DueAt            *time.Time
	AvailableOn      *time.Time // invisible to planning before this date
	CreatedAt        time.Time  // stable tie-break for ordering
	State            TaskState  // zero value is treated as not_started
	Load             CognitiveLoad
	EstimatedMinutes int
	Assignment       *SlotAssignment
	Part             *TaskPart
	HasParts         bool // true on a parent that has been split
}

// EffectiveState resolves the zero value to not_started.
func (t Task) EffectiveState() TaskState {
	if t.State == "" {
		return TaskStateNotStarted
	}
	return t.State
}

// Schedulable reports whether the task may ever enter a backlog queue.
// Split parents and terminal states are excluded.
func (t Task) Schedulable() bool {
	if t.HasParts {
		return false
	}
	switch t.EffectiveState() {
	case TaskStateNotStarted, TaskStateNeedsMoreTime:
		return true
	}
	return false
}
