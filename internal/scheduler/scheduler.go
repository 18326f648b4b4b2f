package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"notion-progress-linker/internal/linker"
	"notion-progress-linker/internal/model"
)

// Start registers the periodic job and starts the scheduler in the
// background.
func (s *Scheduler) Start() error {
	_, err := s.cron.Every(s.cfg.Interval).Do(func() {
		if !s.running.CompareAndSwap(false, true) {
			s.l.Warnf(context.Background(), "skipping scheduled run: previous run still in progress")
			return
		}
		s.execute(model.TriggerScheduled, 0, uuid.NewString())
	})
	if err != nil {
		return fmt.Errorf("failed to schedule linking job: %w", err)
	}

	s.cron.StartAsync()
	s.l.Infof(context.Background(), "scheduler started, linking every %s", s.cfg.Interval)
	return nil
}

// Stop stops the periodic schedule. An in-flight run finishes on its own
// deadline.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.l.Info(context.Background(), "scheduler stopped")
}

// RunNow starts an asynchronous run and returns its run ID. Returns
// ErrRunInProgress while a run is active; callers poll the run log with
// the ID for the result.
func (s *Scheduler) RunNow(trigger model.RunTrigger, lookback time.Duration) (string, error) {
	if !s.running.CompareAndSwap(false, true) {
		return "", ErrRunInProgress
	}

	runID := uuid.NewString()
	go s.execute(trigger, lookback, runID)
	return runID, nil
}

// execute runs one linking pass. The caller holds the single-flight guard;
// execute releases it.
func (s *Scheduler) execute(trigger model.RunTrigger, lookback time.Duration, runID string) {
	defer s.running.Store(false)

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.RunTimeout)
	defer cancel()

	report, err := s.runner.LinkRecent(ctx, linker.LinkRecentInput{
		RunID:    runID,
		Trigger:  trigger,
		Lookback: lookback,
	})
	if err != nil {
		s.l.Errorf(ctx, "%s run failed: %v", trigger, err)
	}

	s.runs.Record(report)
}
