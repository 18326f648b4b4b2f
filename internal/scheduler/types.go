package scheduler

import (
	"context"
	"errors"
	"time"

	"notion-progress-linker/internal/linker"
	"notion-progress-linker/internal/model"
)

// Runner is the narrow view of the linker use case the scheduler drives.
type Runner interface {
	LinkRecent(ctx context.Context, input linker.LinkRecentInput) (model.RunReport, error)
}

// Config controls the periodic schedule.
type Config struct {
	Interval   time.Duration // Default one hour
	RunTimeout time.Duration // Per-run deadline, default 10 minutes
}

var (
	// ErrRunInProgress is returned by RunNow while another run is active.
	ErrRunInProgress = errors.New("a linking run is already in progress")
)
