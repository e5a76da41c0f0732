package model

import "time"

// SlotKind classifies a template slot.
type SlotKind string

const (
	SlotKindAssignment SlotKind = "assignment"
	SlotKindFixed      SlotKind = "fixed"
	SlotKindSpecial    SlotKind = "special" // multi-slot section, e.g. co-op
)

// OpenLabel is the sentinel label marking an assignment slot as open.
// An empty label means the same thing.
const OpenLabel = "EMPTY"

// Slot is one fixed time range in a day's template.
type Slot struct {
	Weekday time.Weekday
	Number  *int   // nil means fixed, non-assignable
	Start   string // "15:04" wall clock
	End     string // "15:04" wall clock
	Label   string // subject or label; ""/OpenLabel marks it open
	Kind    SlotKind
}

// Fillable reports whether the slot is eligible to receive a task.
func (s Slot) Fillable() bool {
	if s.Kind != SlotKindAssignment || s.Number == nil {
		return false
	}
	return s.Label == "" || s.Label == OpenLabel
}
