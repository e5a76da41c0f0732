package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	pl := rg.Group("/planner")
	{
		pl.GET("/plan", h.GetPlan)
		pl.POST("/assignments/clear", h.ClearAssignments)
	}
}
