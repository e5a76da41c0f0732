package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"day-planner/internal/task"
	"day-planner/pkg/response"
)

var errMissingIdentity = errors.New("person and id are required")

// respondError maps task domain errors to HTTP responses.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		response.NotFound(c, err)
	case errors.Is(err, task.ErrEmptyTitle),
		errors.Is(err, task.ErrInvalidState),
		errors.Is(err, task.ErrInvalidLoad),
		errors.Is(err, task.ErrInvalidParts):
		response.Error(c, err)
	default:
		response.InternalError(c, err)
	}
}
