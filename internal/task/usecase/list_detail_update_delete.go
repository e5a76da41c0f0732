package usecase

import (
	"context"
	"errors"

	"day-planner/internal/model"
	"day-planner/internal/task"
	"day-planner/internal/task/repository"
)

// List returns a filtered page of the person's tasks.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	state := model.TaskState(input.State)
	if input.State != "" && !validState(state) {
		return task.ListOutput{}, task.ErrInvalidState
	}

	limit := input.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	tasks, total, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		Person:  sc.Person,
		State:   state,
		Subject: input.Subject,
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{Tasks: tasks, Total: total, Limit: limit, Offset: offset}, nil
}

// Detail returns a single task by id.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.DetailOutput, error) {
	t, err := uc.repo.GetOneTask(ctx, repository.GetOneTaskOptions{Person: sc.Person, ID: id})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.DetailOutput{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "uc.Detail GetOneTask: %v", err)
		return task.DetailOutput{}, err
	}
	return task.DetailOutput{Task: t}, nil
}

// Update applies a partial update. Completing the last open part also
// completes the parent.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (task.UpdateOutput, error) {
	if input.State != "" && !validState(input.State) {
		return task.UpdateOutput{}, task.ErrInvalidState
	}
	if input.Load != "" && !validLoad(input.Load) {
		return task.UpdateOutput{}, task.ErrInvalidLoad
	}

	updated, err := uc.repo.UpdateTask(ctx, repository.UpdateTaskOptions{
		Person:           sc.Person,
		ID:               input.ID,
		Title:            input.Title,
		Subject:          input.Subject,
		DueAt:            input.DueAt,
		AvailableOn:      input.AvailableOn,
		State:            input.State,
		Load:             input.Load,
		EstimatedMinutes: input.EstimatedMinutes,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.UpdateOutput{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.UpdateOutput{}, err
	}

	if updated.Part != nil && updated.State == model.TaskStateCompleted {
		uc.completeParentIfDone(ctx, sc, updated)
	}

	return task.UpdateOutput{Task: updated}, nil
}

// completeParentIfDone marks the parent completed once every part is.
// Best effort: a failure here never fails the part update.
func (uc *implUseCase) completeParentIfDone(ctx context.Context, sc model.Scope, part model.Task) {
	siblings, _, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{Person: sc.Person, Limit: 1000})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Update: could not list siblings of %s: %v", part.ID, err)
		return
	}

	for _, s := range siblings {
		if s.Part != nil && s.Part.ParentID == part.Part.ParentID && s.State != model.TaskStateCompleted {
			return
		}
	}

	if _, err := uc.repo.UpdateTask(ctx, repository.UpdateTaskOptions{
		Person: sc.Person,
		ID:     part.Part.ParentID,
		State:  model.TaskStateCompleted,
	}); err != nil {
		uc.l.Warnf(ctx, "uc.Update: could not complete parent %s: %v", part.Part.ParentID, err)
		return
	}
	uc.l.Infof(ctx, "Update: all parts done, parent %s completed", part.Part.ParentID)
}

// Delete permanently removes a task.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.repo.DeleteTask(ctx, sc.Person, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	return nil
}
