package usecase

import (
	"context"
	"fmt"
	"strings"

	"day-planner/internal/model"
	"day-planner/internal/task"
	"day-planner/internal/task/repository"
)

const maxParts = 10

// Create ingests one task. When input.Parts > 1 the task is split into that
// many ordered parts under a parent; the parent itself is never scheduled
// and completes when all parts complete.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return task.CreateOutput{}, task.ErrEmptyTitle
	}
	if input.Load != "" && !validLoad(input.Load) {
		return task.CreateOutput{}, task.ErrInvalidLoad
	}
	if input.Parts < 0 || input.Parts > maxParts {
		return task.CreateOutput{}, task.ErrInvalidParts
	}

	load := input.Load
	if load == "" {
		load = model.LoadMedium
	}

	base := repository.CreateTaskOptions{
		Person:           sc.Person,
		Title:            input.Title,
		Subject:          input.Subject,
		DueAt:            input.DueAt,
		AvailableOn:      input.AvailableOn,
		Load:             load,
		EstimatedMinutes: input.EstimatedMinutes,
	}

	if input.Parts <= 1 {
		created, err := uc.repo.CreateTask(ctx, base)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
			return task.CreateOutput{}, err
		}
		uc.l.Infof(ctx, "Create: task %q id=%s person=%s", created.Title, created.ID, sc.Person)
		return task.CreateOutput{Task: created}, nil
	}

	return uc.createSplit(ctx, sc, base, input.Parts)
}

// createSplit inserts the parent and its parts as one atomic batch.
func (uc *implUseCase) createSplit(ctx context.Context, sc model.Scope, base repository.CreateTaskOptions, parts int) (task.CreateOutput, error) {
	parent := base
	parent.HasParts = true

	created, err := uc.repo.CreateTask(ctx, parent)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create parent CreateTask: %v", err)
		return task.CreateOutput{}, err
	}

	opts := make([]repository.CreateTaskOptions, 0, parts)
	minutes := base.EstimatedMinutes / parts
	for i := 1; i <= parts; i++ {
		part := base
		part.Title = fmt.Sprintf("%s (part %d/%d)", base.Title, i, parts)
		part.EstimatedMinutes = minutes
		part.Part = &model.TaskPart{ParentID: created.ID, Index: i, Total: parts}
		opts = append(opts, part)
	}

	createdParts, err := uc.repo.CreateTaskBatch(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTaskBatch: %v", err)
		return task.CreateOutput{}, err
	}

	uc.l.Infof(ctx, "Create: split task %q into %d parts person=%s", base.Title, parts, sc.Person)
	return task.CreateOutput{Task: created, Parts: createdParts}, nil
}

func validLoad(l model.CognitiveLoad) bool {
	switch l {
	case model.LoadLight, model.LoadMedium, model.LoadHeavy:
		return true
	}
	return false
}

func validState(s model.TaskState) bool {
	switch s {
	case model.TaskStateNotStarted, model.TaskStateNeedsMoreTime, model.TaskStateCompleted, model.TaskStateStuck:
		return true
	}
	return false
}
