package http

import (
	"time"

	"notion-progress-linker/internal/model"
)

// --- Request DTOs ---

type triggerReq struct {
	LookbackMinutes int `json:"lookback_minutes" binding:"omitempty,min=1,max=10080"`
}

// --- Response DTOs ---

type linkResp struct {
	TaskID        string `json:"task_id"`
	TaskTitle     string `json:"task_title"`
	WeeklyPageID  string `json:"weekly_page_id,omitempty"`
	MonthlyPageID string `json:"monthly_page_id,omitempty"`
	Outcome       string `json:"outcome"`
	Reason        string `json:"reason,omitempty"`
}

func newLinkResp(link model.TaskLink) linkResp {
	return linkResp{
		TaskID:        link.TaskID,
		TaskTitle:     link.TaskTitle,
		WeeklyPageID:  link.WeeklyPageID,
		MonthlyPageID: link.MonthlyPageID,
		Outcome:       string(link.Outcome),
		Reason:        link.Reason,
	}
}

type runResp struct {
	ID            string     `json:"id"`
	Trigger       string     `json:"trigger"`
	StartedAt     time.Time  `json:"started_at"`
	FinishedAt    time.Time  `json:"finished_at"`
	DurationMs    int64      `json:"duration_ms"`
	TasksExamined int        `json:"tasks_examined"`
	TasksLinked   int        `json:"tasks_linked"`
	TasksSkipped  int        `json:"tasks_skipped"`
	TasksFailed   int        `json:"tasks_failed"`
	Links         []linkResp `json:"links,omitempty"`
	Error         string     `json:"error,omitempty"`
}

func newRunResp(report model.RunReport) runResp {
	links := make([]linkResp, len(report.Links))
	for i, link := range report.Links {
		links[i] = newLinkResp(link)
	}
	return runResp{
		ID:            report.ID,
		Trigger:       string(report.Trigger),
		StartedAt:     report.StartedAt,
		FinishedAt:    report.FinishedAt,
		DurationMs:    report.Duration().Milliseconds(),
		TasksExamined: report.TasksExamined,
		TasksLinked:   report.TasksLinked,
		TasksSkipped:  report.TasksSkipped,
		TasksFailed:   report.TasksFailed,
		Links:         links,
		Error:         report.Error,
	}
}

type listRunsResp struct {
	Runs  []runResp `json:"runs"`
	Total int       `json:"total"`
}

func (h *handler) newListRunsResp(reports []model.RunReport) listRunsResp {
	runs := make([]runResp, len(reports))
	for i, report := range reports {
		runs[i] = newRunResp(report)
	}
	return listRunsResp{
		Runs:  runs,
		Total: len(runs),
	}
}

type linkTaskResp struct {
	Link linkResp `json:"link"`
}

func newLinkTaskResp(link model.TaskLink) linkTaskResp {
	return linkTaskResp{Link: newLinkResp(link)}
}
