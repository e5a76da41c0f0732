package http

import (
	"time"

	"day-planner/internal/model"
	"day-planner/internal/task"
)

// --- Request DTOs ---

type createReq struct {
	Person           string `json:"person"  binding:"required"`
	Title            string `json:"title"   binding:"required,min=1,max=255"`
	Subject          string `json:"subject" binding:"max=100"`
	DueAt            string `json:"due_at"`       // RFC3339
	AvailableOn      string `json:"available_on"` // "2006-01-02"
	Load             string `json:"load"  binding:"omitempty,oneof=light medium heavy"`
	EstimatedMinutes int    `json:"estimated_minutes" binding:"omitempty,min=1"`
	Parts            int    `json:"parts" binding:"omitempty,min=2,max=10"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() (task.CreateInput, error) {
	dueAt, err := parseOptionalTime(r.DueAt, time.RFC3339)
	if err != nil {
		return task.CreateInput{}, err
	}
	availableOn, err := parseOptionalTime(r.AvailableOn, model.DateFormat)
	if err != nil {
		return task.CreateInput{}, err
	}
	return task.CreateInput{
		Title:            r.Title,
		Subject:          r.Subject,
		DueAt:            dueAt,
		AvailableOn:      availableOn,
		Load:             model.CognitiveLoad(r.Load),
		EstimatedMinutes: r.EstimatedMinutes,
		Parts:            r.Parts,
	}, nil
}

type listReq struct {
	Person  string `form:"person" binding:"required"`
	State   string `form:"state"`
	Subject string `form:"subject"`
	Limit   int    `form:"limit"`
	Offset  int    `form:"offset"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() task.ListInput {
	return task.ListInput{
		State:   r.State,
		Subject: r.Subject,
		Limit:   r.Limit,
		Offset:  r.Offset,
	}
}

type updateReq struct {
	ID               string `json:"-"` // populated from URI param
	Person           string `json:"person" binding:"required"`
	Title            string `json:"title"  binding:"omitempty,min=1,max=255"`
	Subject          string `json:"subject"`
	DueAt            string `json:"due_at"`
	AvailableOn      string `json:"available_on"`
	State            string `json:"state" binding:"omitempty,oneof=not_started needs_more_time completed stuck"`
	Load             string `json:"load"  binding:"omitempty,oneof=light medium heavy"`
	EstimatedMinutes int    `json:"estimated_minutes" binding:"omitempty,min=1"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() (task.UpdateInput, error) {
	dueAt, err := parseOptionalTime(r.DueAt, time.RFC3339)
	if err != nil {
		return task.UpdateInput{}, err
	}
	availableOn, err := parseOptionalTime(r.AvailableOn, model.DateFormat)
	if err != nil {
		return task.UpdateInput{}, err
	}
	return task.UpdateInput{
		ID:               r.ID,
		Title:            r.Title,
		Subject:          r.Subject,
		DueAt:            dueAt,
		AvailableOn:      availableOn,
		State:            model.TaskState(r.State),
		Load:             model.CognitiveLoad(r.Load),
		EstimatedMinutes: r.EstimatedMinutes,
	}, nil
}

func parseOptionalTime(value, layout string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(layout, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// --- Response DTOs ---

type taskResp struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Subject          string `json:"subject,omitempty"`
	DueAt            string `json:"due_at,omitempty"`
	AvailableOn      string `json:"available_on,omitempty"`
	State            string `json:"state"`
	Load             string `json:"load,omitempty"`
	EstimatedMinutes int    `json:"estimated_minutes,omitempty"`
	AssignedDay      string `json:"assigned_day,omitempty"`
	AssignedSlot     *int   `json:"assigned_slot,omitempty"`
	ParentID         string `json:"parent_id,omitempty"`
	PartIndex        int    `json:"part_index,omitempty"`
	PartTotal        int    `json:"part_total,omitempty"`
	HasParts         bool   `json:"has_parts,omitempty"`
}

type createResp struct {
	Task  taskResp   `json:"task"`
	Parts []taskResp `json:"parts,omitempty"`
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

type detailResp struct {
	Task taskResp `json:"task"`
}

type updateResp struct {
	Task taskResp `json:"task"`
}

func newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:               t.ID,
		Title:            t.Title,
		Subject:          t.Subject,
		State:            string(t.EffectiveState()),
		Load:             string(t.Load),
		EstimatedMinutes: t.EstimatedMinutes,
		HasParts:         t.HasParts,
	}
	if t.DueAt != nil {
		resp.DueAt = t.DueAt.Format(time.RFC3339)
	}
	if t.AvailableOn != nil {
		resp.AvailableOn = t.AvailableOn.Format(model.DateFormat)
	}
	if t.Assignment != nil {
		resp.AssignedDay = t.Assignment.Day
		n := t.Assignment.SlotNumber
		resp.AssignedSlot = &n
	}
	if t.Part != nil {
		resp.ParentID = t.Part.ParentID
		resp.PartIndex = t.Part.Index
		resp.PartTotal = t.Part.Total
	}
	return resp
}

func (h *handler) newCreateResp(out task.CreateOutput) createResp {
	resp := createResp{Task: newTaskResp(out.Task)}
	for _, p := range out.Parts {
		resp.Parts = append(resp.Parts, newTaskResp(p))
	}
	return resp
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	resp := listResp{
		Tasks:  make([]taskResp, 0, len(out.Tasks)),
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
	for _, t := range out.Tasks {
		resp.Tasks = append(resp.Tasks, newTaskResp(t))
	}
	return resp
}

func (h *handler) newDetailResp(out task.DetailOutput) detailResp {
	return detailResp{Task: newTaskResp(out.Task)}
}

func (h *handler) newUpdateResp(out task.UpdateOutput) updateResp {
	return updateResp{Task: newTaskResp(out.Task)}
}
