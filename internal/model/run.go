package model

import "time"

// RunTrigger identifies what started a linking run.
type RunTrigger string

const (
	TriggerScheduled RunTrigger = "scheduled"
	TriggerManual    RunTrigger = "manual"
	TriggerWebhook   RunTrigger = "webhook"
	TriggerBackfill  RunTrigger = "backfill"
)

// LinkOutcome is the per-task result of a linking run.
type LinkOutcome string

const (
	OutcomeLinked  LinkOutcome = "linked"
	OutcomeSkipped LinkOutcome = "skipped"
	OutcomeFailed  LinkOutcome = "failed"
)

// TaskLink records the outcome for a single task within a run.
type TaskLink struct {
	TaskID        string      `json:"task_id"`
	TaskTitle     string      `json:"task_title"`
	WeeklyPageID  string      `json:"weekly_page_id,omitempty"`
	MonthlyPageID string      `json:"monthly_page_id,omitempty"`
	Outcome       LinkOutcome `json:"outcome"`
	Reason        string      `json:"reason,omitempty"`
}

// RunReport summarizes one linking run.
type RunReport struct {
	ID            string     `json:"id"`
	Trigger       RunTrigger `json:"trigger"`
	StartedAt     time.Time  `json:"started_at"`
	FinishedAt    time.Time  `json:"finished_at"`
	TasksExamined int        `json:"tasks_examined"`
	TasksLinked   int        `json:"tasks_linked"`
	TasksSkipped  int        `json:"tasks_skipped"`
	TasksFailed   int        `json:"tasks_failed"`
	Links         []TaskLink `json:"links,omitempty"`
	Error         string     `json:"error,omitempty"`
}

// Duration returns the wall time the run took.
func (r RunReport) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
