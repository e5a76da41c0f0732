package http

import (
	"github.com/gin-gonic/gin"

	"day-planner/internal/model"
)

// processGetPlanReq binds and validates the plan query parameters.
func (h *handler) processGetPlanReq(c *gin.Context) (model.Scope, getPlanReq, error) {
	var req getPlanReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return model.Scope{}, req, err
	}
	return model.Scope{Person: req.Person}, req, req.validate()
}

// processClearReq binds and validates the bulk-clear request body.
func (h *handler) processClearReq(c *gin.Context) (model.Scope, clearReq, error) {
	var req clearReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return model.Scope{}, req, err
	}
	return model.Scope{Person: req.Person}, req, req.validate()
}
