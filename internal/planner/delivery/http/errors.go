package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"day-planner/internal/planner"
	"day-planner/pkg/response"
)

// respondError maps planner domain errors to HTTP responses, keeping
// "no data available" distinguishable from "computation failed".
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, planner.ErrNoTemplate):
		response.NotFound(c, err)
	case errors.Is(err, planner.ErrEmptyPerson),
		errors.Is(err, planner.ErrInvalidDate),
		errors.Is(err, planner.ErrNoTaskIDs),
		errors.Is(err, planner.ErrDuplicateSlot),
		errors.Is(err, planner.ErrMissingSlotTime):
		response.Error(c, err)
	default:
		response.InternalError(c, err)
	}
}
