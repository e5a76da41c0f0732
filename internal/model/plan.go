package model

import "time"

// PlanEntry is one slot of a composed day plan, with the task attached to it
// if any. Open marks an assignment slot that stayed empty after scheduling —
// an explicit sentinel, never a silent blank.
type PlanEntry struct {
	Slot Slot
	Task *Task
	Open bool
}

// DayPlan is the composed plan for one person and one calendar date.
// It is computed fresh per request and never persisted; only task→slot links
// are written back to the task store.
type DayPlan struct {
	Person  string
	Date    string // "2006-01-02"
	Weekday time.Weekday
	Entries []PlanEntry

	// RevealAt, when set, is the instant before which the special section's
	// contents should stay hidden. The engine computes the threshold only;
	// enforcement belongs to the caller.
	RevealAt *time.Time

	// Suppressed is true when an override event blocked all slot filling.
	Suppressed bool
}
