package trigger

import (
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"notion-progress-linker/internal/model"
	"notion-progress-linker/internal/scheduler"
	pkgResponse "notion-progress-linker/pkg/response"
)

// HandleRunWebhook starts a linking run for an external caller.
// @Summary     Trigger a linking run via webhook
// @Description Validates the HMAC signature and starts an asynchronous run.
// @Tags        Webhook
// @Accept      json
// @Produce     json
// @Param       X-Signature-256 header string true "sha256=<hex HMAC of body>"
// @Success     202 {object} response.Resp
// @Router      /webhook/run [post]
func (h *Handler) HandleRunWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.security.ValidateIPAddress(c.Request); err != nil {
		h.l.Warnf(ctx, "webhook: %v", err)
		pkgResponse.Unauthorized(c)
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "webhook: failed to read body: %v", err)
		pkgResponse.Error(c, err)
		return
	}

	signature := c.GetHeader("X-Signature-256")
	if err := h.security.ValidateSignature(body, signature); err != nil {
		h.l.Warnf(ctx, "webhook: signature verification failed: %v", err)
		pkgResponse.Unauthorized(c)
		return
	}

	if err := h.security.CheckRateLimit(extractIP(c.Request)); err != nil {
		h.l.Warnf(ctx, "webhook: %v", err)
		pkgResponse.TooManyRequests(c)
		return
	}

	var req runReq
	if len(body) > 0 {
		// Payload is optional; a malformed one is ignored rather than rejected.
		_ = json.Unmarshal(body, &req)
	}

	runID, err := h.runner.RunNow(model.TriggerWebhook, time.Duration(req.LookbackMinutes)*time.Minute)
	if err != nil {
		if errors.Is(err, scheduler.ErrRunInProgress) {
			h.l.Infof(ctx, "webhook: run already in progress, ignoring trigger")
			pkgResponse.OK(c, gin.H{"status": "skipped", "reason": "run in progress"})
			return
		}
		h.l.Errorf(ctx, "webhook: failed to start run: %v", err)
		pkgResponse.InternalError(c)
		return
	}

	pkgResponse.Accepted(c, gin.H{"status": "accepted", "run_id": runID})
}
