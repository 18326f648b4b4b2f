package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"notion-progress-linker/internal/linker"
	"notion-progress-linker/internal/model"
	"notion-progress-linker/internal/runlog"
	pkgLog "notion-progress-linker/pkg/log"
)

// Handler is the public interface for the linker HTTP delivery layer.
type Handler interface {
	TriggerRun(c *gin.Context)
	ListRuns(c *gin.Context)
	LatestRun(c *gin.Context)
	LinkTask(c *gin.Context)
}

// Runner starts asynchronous linking runs (implemented by the scheduler).
type Runner interface {
	RunNow(trigger model.RunTrigger, lookback time.Duration) (string, error)
}

type handler struct {
	l      pkgLog.Logger
	uc     linker.UseCase
	runner Runner
	runs   *runlog.Log
}

// New creates the HTTP handler for the linker domain.
func New(l pkgLog.Logger, uc linker.UseCase, runner Runner, runs *runlog.Log) *handler {
	return &handler{
		l:      l,
		uc:     uc,
		runner: runner,
		runs:   runs,
	}
}
