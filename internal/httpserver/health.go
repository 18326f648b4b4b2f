package httpserver

import (
	"github.com/gin-gonic/gin"

	"notion-progress-linker/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "notion-progress-linker"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Tags    Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router  /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck handles readiness check requests
// @Summary Readiness Check
// @Tags    Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router  /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ready",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Tags    Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router  /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
