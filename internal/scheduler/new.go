package scheduler

import (
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron"

	"notion-progress-linker/internal/runlog"
	pkgLog "notion-progress-linker/pkg/log"
)

// Scheduler runs the linker on a fixed interval and accepts manual
// triggers. A single-flight guard keeps scheduled, manual and webhook
// triggers from overlapping.
type Scheduler struct {
	cron    *gocron.Scheduler
	runner  Runner
	runs    *runlog.Log
	cfg     Config
	l       pkgLog.Logger
	running atomic.Bool
}

// New creates a scheduler. Reports from every run, however triggered, are
// recorded in runs.
func New(runner Runner, runs *runlog.Log, cfg Config, l pkgLog.Logger) *Scheduler {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Hour
	}
	if cfg.RunTimeout <= 0 {
		cfg.RunTimeout = 10 * time.Minute
	}

	return &Scheduler{
		cron:   gocron.NewScheduler(time.UTC),
		runner: runner,
		runs:   runs,
		cfg:    cfg,
		l:      l,
	}
}
