package usecase

import (
	"day-planner/internal/task/repository"
	pkgLog "day-planner/pkg/log"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

// New creates a new task UseCase implementation.
func New(l pkgLog.Logger, repo repository.Repository) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
