package http

import (
	"github.com/gin-gonic/gin"

	"day-planner/internal/model"
	"day-planner/internal/task"
)

// processCreateReq binds and validates the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (model.Scope, task.CreateInput, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return model.Scope{}, task.CreateInput{}, err
	}
	if err := req.validate(); err != nil {
		return model.Scope{}, task.CreateInput{}, err
	}
	input, err := req.toInput()
	return model.Scope{Person: req.Person}, input, err
}

// processListReq binds and validates the list query parameters.
func (h *handler) processListReq(c *gin.Context) (model.Scope, listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return model.Scope{}, req, err
	}
	return model.Scope{Person: req.Person}, req, req.validate()
}

// processUpdateReq binds and validates the update request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (model.Scope, task.UpdateInput, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return model.Scope{}, task.UpdateInput{}, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return model.Scope{}, task.UpdateInput{}, errMissingIdentity
	}
	if err := req.validate(); err != nil {
		return model.Scope{}, task.UpdateInput{}, err
	}
	input, err := req.toInput()
	return model.Scope{Person: req.Person}, input, err
}
