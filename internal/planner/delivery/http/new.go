package http

import (
	"github.com/gin-gonic/gin"

	"day-planner/internal/planner"
	pkgLog "day-planner/pkg/log"
)

// Handler is the public interface for the planner HTTP delivery layer.
type Handler interface {
	GetPlan(c *gin.Context)
	ClearAssignments(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc planner.UseCase
}

// New creates a new HTTP handler for the planner domain.
func New(l pkgLog.Logger, uc planner.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
