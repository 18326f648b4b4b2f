package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"notion-progress-linker/internal/model"
	"notion-progress-linker/internal/scheduler"
	"notion-progress-linker/pkg/response"
)

// TriggerRun godoc
// @Summary     Trigger a linking run
// @Description Starts an asynchronous run over recently edited tasks.
// @Tags        Runs
// @Accept      json
// @Produce     json
// @Param       body body triggerReq false "Run options"
// @Success     202 {object} response.Resp
// @Router      /api/v1/runs [post]
func (h *handler) TriggerRun(c *gin.Context) {
	ctx := c.Request.Context()

	var req triggerReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, err)
			return
		}
	}

	runID, err := h.runner.RunNow(model.TriggerManual, time.Duration(req.LookbackMinutes)*time.Minute)
	if err != nil {
		if errors.Is(err, scheduler.ErrRunInProgress) {
			response.OK(c, gin.H{"status": "skipped", "reason": "run in progress"})
			return
		}
		h.l.Errorf(ctx, "runner.RunNow: %v", err)
		response.InternalError(c)
		return
	}

	response.Accepted(c, gin.H{"status": "accepted", "run_id": runID})
}

// ListRuns godoc
// @Summary     List recent runs
// @Description Returns recent run reports, newest first.
// @Tags        Runs
// @Produce     json
// @Param       limit query int false "Max reports to return (default 20)"
// @Success     200 {object} listRunsResp
// @Router      /api/v1/runs [get]
func (h *handler) ListRuns(c *gin.Context) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	response.OK(c, h.newListRunsResp(h.runs.List(limit)))
}

// LatestRun godoc
// @Summary     Latest run report
// @Tags        Runs
// @Produce     json
// @Success     200 {object} runResp
// @Failure     404 {object} response.Resp "No runs recorded yet"
// @Router      /api/v1/runs/latest [get]
func (h *handler) LatestRun(c *gin.Context) {
	report, ok := h.runs.Latest()
	if !ok {
		response.NotFound(c, errNoRuns)
		return
	}

	response.OK(c, newRunResp(report))
}

// LinkTask godoc
// @Summary     Link a single task
// @Description Resolves and writes the weekly/monthly relations of one task.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Notion page ID of the task"
// @Success     200 {object} linkTaskResp
// @Failure     404 {object} response.Resp "Task not found"
// @Router      /api/v1/tasks/{id}/link [post]
func (h *handler) LinkTask(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	link, err := h.uc.LinkTask(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.LinkTask: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newLinkTaskResp(link))
}
