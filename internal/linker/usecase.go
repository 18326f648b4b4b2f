package linker

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"notion-progress-linker/internal/linker/repository"
	"notion-progress-linker/internal/model"
	pkgLog "notion-progress-linker/pkg/log"
	pkgNotion "notion-progress-linker/pkg/notion"
	"notion-progress-linker/pkg/period"
)

type usecase struct {
	repo     repository.Repository
	resolver *SummaryResolver
	periods  *period.Calculator
	lookback time.Duration
	l        pkgLog.Logger
}

func (uc *usecase) LinkRecent(ctx context.Context, input LinkRecentInput) (model.RunReport, error) {
	trigger := input.Trigger
	if trigger == "" {
		trigger = model.TriggerScheduled
	}
	lookback := input.Lookback
	if lookback <= 0 {
		lookback = uc.lookback
	}

	return uc.run(ctx, input.RunID, trigger, repository.ListUnlinkedTasksOptions{
		EditedSince: time.Now().Add(-lookback),
	})
}

func (uc *usecase) Backfill(ctx context.Context) (model.RunReport, error) {
	return uc.run(ctx, "", model.TriggerBackfill, repository.ListUnlinkedTasksOptions{})
}

func (uc *usecase) LinkTask(ctx context.Context, taskID string) (model.TaskLink, error) {
	task, err := uc.repo.GetTask(ctx, taskID)
	if err != nil {
		var apiErr *pkgNotion.Error
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return model.TaskLink{}, fmt.Errorf("task %s: %w", taskID, ErrTaskNotFound)
		}
		return model.TaskLink{}, err
	}

	link := uc.linkOne(ctx, task)
	return link, nil
}

// run executes one linking pass over the tasks matched by opt.
func (uc *usecase) run(ctx context.Context, runID string, trigger model.RunTrigger, opt repository.ListUnlinkedTasksOptions) (model.RunReport, error) {
	if runID == "" {
		runID = uuid.NewString()
	}
	report := model.RunReport{
		ID:        runID,
		Trigger:   trigger,
		StartedAt: time.Now(),
	}

	uc.l.Infof(ctx, "run %s (%s): querying for unlinked tasks", report.ID, trigger)

	tasks, err := uc.repo.ListUnlinkedTasks(ctx, opt)
	if err != nil {
		report.FinishedAt = time.Now()
		report.Error = err.Error()
		return report, fmt.Errorf("failed to list unlinked tasks: %w", err)
	}

	report.TasksExamined = len(tasks)
	if len(tasks) == 0 {
		report.FinishedAt = time.Now()
		uc.l.Infof(ctx, "run %s: no tasks to process", report.ID)
		return report, nil
	}

	for _, task := range tasks {
		link := uc.linkOne(ctx, task)
		report.Links = append(report.Links, link)

		switch link.Outcome {
		case model.OutcomeLinked:
			report.TasksLinked++
		case model.OutcomeSkipped:
			report.TasksSkipped++
		case model.OutcomeFailed:
			report.TasksFailed++
		}
	}

	report.FinishedAt = time.Now()
	uc.l.Infof(ctx, "run %s: examined=%d linked=%d skipped=%d failed=%d in %s",
		report.ID, report.TasksExamined, report.TasksLinked, report.TasksSkipped,
		report.TasksFailed, report.Duration().Round(time.Millisecond))
	return report, nil
}

// linkOne resolves and writes the relation links for a single task. A
// failure here never aborts the surrounding run.
func (uc *usecase) linkOne(ctx context.Context, task model.Task) model.TaskLink {
	link := model.TaskLink{TaskID: task.ID, TaskTitle: task.Title}

	if task.HasWeeklyLink && task.HasMonthlyLink {
		link.Outcome = model.OutcomeSkipped
		link.Reason = "already linked"
		return link
	}

	weekLabel, monthLabel := uc.labels(task)
	if weekLabel == "" && monthLabel == "" {
		uc.l.Infof(ctx, "skipping task %s (%q): no week/month labels and no due date", task.ID, task.Title)
		link.Outcome = model.OutcomeSkipped
		link.Reason = "missing labels and due date"
		return link
	}

	var opt repository.SetLinksOptions

	if weekLabel != "" && !task.HasWeeklyLink {
		pageID, err := uc.resolveSummary(ctx, model.SummaryWeekly, weekLabel)
		if err != nil {
			link.Outcome = model.OutcomeFailed
			link.Reason = err.Error()
			return link
		}
		opt.WeeklyPageID = pageID
	}

	if monthLabel != "" && !task.HasMonthlyLink {
		pageID, err := uc.resolveSummary(ctx, model.SummaryMonthly, monthLabel)
		if err != nil {
			link.Outcome = model.OutcomeFailed
			link.Reason = err.Error()
			return link
		}
		opt.MonthlyPageID = pageID
	}

	if opt.IsEmpty() {
		uc.l.Infof(ctx, "no summary pages found for task %s (%q), skipping update", task.ID, task.Title)
		link.Outcome = model.OutcomeSkipped
		link.Reason = "no matching summary pages"
		return link
	}

	if err := uc.repo.SetLinks(ctx, task.ID, opt); err != nil {
		uc.l.Errorf(ctx, "failed to update task %s: %v", task.ID, err)
		link.Outcome = model.OutcomeFailed
		link.Reason = err.Error()
		return link
	}

	link.WeeklyPageID = opt.WeeklyPageID
	link.MonthlyPageID = opt.MonthlyPageID
	link.Outcome = model.OutcomeLinked
	uc.l.Infof(ctx, "linked task %s (%q) weekly=%s monthly=%s", task.ID, task.Title, opt.WeeklyPageID, opt.MonthlyPageID)
	return link
}

// resolveSummary looks up one summary page. A missing page is not an
// error: the progress row may simply not exist yet.
func (uc *usecase) resolveSummary(ctx context.Context, kind model.SummaryKind, label string) (string, error) {
	pageID, err := uc.resolver.Resolve(ctx, kind, label)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			uc.l.Infof(ctx, "no %s summary page titled %q", kind, label)
			return "", nil
		}
		return "", fmt.Errorf("failed to resolve %s summary %q: %w", kind, label, err)
	}
	return pageID, nil
}

// labels returns the week and month labels for a task, preferring the
// formula properties and falling back to computing from the due date.
func (uc *usecase) labels(task model.Task) (week, month string) {
	week = task.WeekLabel
	month = task.MonthLabel

	if task.HasDueDate() {
		if week == "" {
			week = uc.periods.WeekLabel(task.DueDate)
		}
		if month == "" {
			month = uc.periods.MonthLabel(task.DueDate)
		}
	}
	return week, month
}
