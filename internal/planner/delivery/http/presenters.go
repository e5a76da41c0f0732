package http

import (
	"time"

	"day-planner/internal/model"
	"day-planner/internal/planner"
)

// --- Request DTOs ---

type getPlanReq struct {
	Person string `form:"person" binding:"required"`
	Date   string `form:"date"   binding:"required"`
}

func (r getPlanReq) validate() error { return nil }

func (r getPlanReq) toInput() planner.BuildDayPlanInput {
	return planner.BuildDayPlanInput{Date: r.Date}
}

type clearReq struct {
	Person  string   `json:"person"   binding:"required"`
	TaskIDs []string `json:"task_ids" binding:"required,min=1"`
}

func (r clearReq) validate() error { return nil }

func (r clearReq) toInput() planner.ClearAssignmentsInput {
	return planner.ClearAssignmentsInput{TaskIDs: r.TaskIDs}
}

// --- Response DTOs ---

type planEntryResp struct {
	SlotNumber *int      `json:"slot_number,omitempty"`
	Start      string    `json:"start"`
	End        string    `json:"end"`
	Label      string    `json:"label,omitempty"`
	Kind       string    `json:"kind"`
	Open       bool      `json:"open,omitempty"`
	Hidden     bool      `json:"hidden,omitempty"`
	Task       *taskResp `json:"task,omitempty"`
}

type taskResp struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Subject          string `json:"subject,omitempty"`
	DueAt            string `json:"due_at,omitempty"`
	Load             string `json:"load,omitempty"`
	EstimatedMinutes int    `json:"estimated_minutes,omitempty"`
}

type planResp struct {
	Person      string          `json:"person"`
	Date        string          `json:"date"`
	Weekday     string          `json:"weekday"`
	Suppressed  bool            `json:"suppressed,omitempty"`
	RevealAt    string          `json:"reveal_at,omitempty"`
	Entries     []planEntryResp `json:"entries"`
	Unscheduled []taskResp      `json:"unscheduled,omitempty"`
	Warnings    []string        `json:"warnings,omitempty"`
	PersistErr  string          `json:"persist_error,omitempty"`
}

func (h *handler) newPlanResp(out planner.BuildDayPlanOutput, now time.Time) planResp {
	plan := out.Plan

	resp := planResp{
		Person:   plan.Person,
		Date:     plan.Date,
		Weekday:  plan.Weekday.String(),
		Warnings: out.Warnings,
	}
	resp.Suppressed = plan.Suppressed

	// Hide the special section's contents until the reveal instant passes.
	hideSpecial := false
	if plan.RevealAt != nil {
		resp.RevealAt = plan.RevealAt.Format(time.RFC3339)
		hideSpecial = now.Before(*plan.RevealAt)
	}

	for _, e := range plan.Entries {
		entry := planEntryResp{
			SlotNumber: e.Slot.Number,
			Start:      e.Slot.Start,
			End:        e.Slot.End,
			Label:      e.Slot.Label,
			Kind:       string(e.Slot.Kind),
			Open:       e.Open,
		}
		if e.Slot.Kind == model.SlotKindSpecial && hideSpecial {
			entry.Hidden = true
			entry.Label = ""
		} else if e.Task != nil {
			t := newTaskResp(*e.Task)
			entry.Task = &t
		}
		resp.Entries = append(resp.Entries, entry)
	}

	for _, t := range out.Unscheduled {
		resp.Unscheduled = append(resp.Unscheduled, newTaskResp(t))
	}

	if out.PersistErr != nil {
		resp.PersistErr = out.PersistErr.Error()
	}

	return resp
}

func newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:               t.ID,
		Title:            t.Title,
		Subject:          t.Subject,
		Load:             string(t.Load),
		EstimatedMinutes: t.EstimatedMinutes,
	}
	if t.DueAt != nil {
		resp.DueAt = t.DueAt.Format(time.RFC3339)
	}
	return resp
}
