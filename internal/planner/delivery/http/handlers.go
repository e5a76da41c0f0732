package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"day-planner/pkg/response"
)

// GetPlan godoc
// @Summary     Build the day plan
// @Description Runs the planning pipeline for a person and date and returns the composed plan.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       person query string true  "Person"
// @Param       date   query string true  "Plan date (2006-01-02)"
// @Success     200 {object} planResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "No template for this weekday"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/plan [GET]
func (h *handler) GetPlan(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processGetPlanReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.BuildDayPlan(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.BuildDayPlan: %v", err)
		h.respondError(c, err)
		return
	}

	// Reveal visibility is a presentation decision: the engine only
	// computed the threshold.
	response.OK(c, h.newPlanResp(output, time.Now()))
}

// ClearAssignments godoc
// @Summary     Clear slot assignments
// @Description Bulk-removes task→slot links by task id. Already-unassigned ids are ignored.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       body body clearReq true "Task ids to clear"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/assignments/clear [POST]
func (h *handler) ClearAssignments(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processClearReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.ClearAssignments(ctx, sc, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.ClearAssignments: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}
