package http

import (
	"github.com/gin-gonic/gin"

	"notion-progress-linker/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Mutating
// routes require the API key.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	runs := rg.Group("/runs")
	{
		runs.POST("", mw.Auth(), h.TriggerRun)
		runs.GET("", mw.Auth(), h.ListRuns)
		runs.GET("/latest", mw.Auth(), h.LatestRun)
	}

	tasks := rg.Group("/tasks")
	{
		tasks.POST("/:id/link", mw.Auth(), h.LinkTask)
	}
}
