package linker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notion-progress-linker/internal/model"
)

func TestLinkRecentLinksTasks(t *testing.T) {
	repo := newFakeRepo()
	repo.tasks = []model.Task{
		{ID: "task-1", Title: "Write report", WeekLabel: "35", MonthLabel: "August"},
		{ID: "task-2", Title: "Review PRs", WeekLabel: "35", MonthLabel: "August"},
	}
	repo.addSummary(model.SummaryWeekly, "35", "weekly-35")
	repo.addSummary(model.SummaryMonthly, "August", "monthly-aug")

	uc := newTestUseCase(repo)

	report, err := uc.LinkRecent(context.Background(), LinkRecentInput{})
	require.NoError(t, err)

	assert.NotEmpty(t, report.ID)
	assert.Equal(t, model.TriggerScheduled, report.Trigger)
	assert.Equal(t, 2, report.TasksExamined)
	assert.Equal(t, 2, report.TasksLinked)
	assert.Equal(t, 0, report.TasksSkipped)
	assert.Equal(t, 0, report.TasksFailed)

	require.Len(t, repo.setCalls, 2)
	assert.Equal(t, "task-1", repo.setCalls[0].taskID)
	assert.Equal(t, "weekly-35", repo.setCalls[0].opt.WeeklyPageID)
	assert.Equal(t, "monthly-aug", repo.setCalls[0].opt.MonthlyPageID)

	// Both tasks share a week/month, so each summary is looked up once.
	assert.Equal(t, 1, repo.findCalls["weekly/35"])
	assert.Equal(t, 1, repo.findCalls["monthly/August"])
}

func TestLinkRecentUsesProvidedRunID(t *testing.T) {
	repo := newFakeRepo()
	uc := newTestUseCase(repo)

	report, err := uc.LinkRecent(context.Background(), LinkRecentInput{
		RunID:   "run-abc",
		Trigger: model.TriggerManual,
	})
	require.NoError(t, err)

	assert.Equal(t, "run-abc", report.ID)
	assert.Equal(t, model.TriggerManual, report.Trigger)
}

func TestLinkRecentUsesLookbackCutoff(t *testing.T) {
	repo := newFakeRepo()
	uc := newTestUseCase(repo)

	before := time.Now()
	_, err := uc.LinkRecent(context.Background(), LinkRecentInput{Lookback: 2 * time.Hour})
	require.NoError(t, err)

	cutoff := repo.lastListOpt.EditedSince
	require.False(t, cutoff.IsZero())
	assert.WithinDuration(t, before.Add(-2*time.Hour), cutoff, time.Minute)
}

func TestLinkRecentFallsBackToDueDate(t *testing.T) {
	repo := newFakeRepo()
	// No formula labels: labels must come from the due date.
	repo.tasks = []model.Task{
		{ID: "task-1", Title: "Plan sprint", DueDate: time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)},
	}
	repo.addSummary(model.SummaryWeekly, "35", "weekly-35")
	repo.addSummary(model.SummaryMonthly, "August", "monthly-aug")

	uc := newTestUseCase(repo)

	report, err := uc.LinkRecent(context.Background(), LinkRecentInput{})
	require.NoError(t, err)

	assert.Equal(t, 1, report.TasksLinked)
	require.Len(t, repo.setCalls, 1)
	assert.Equal(t, "weekly-35", repo.setCalls[0].opt.WeeklyPageID)
	assert.Equal(t, "monthly-aug", repo.setCalls[0].opt.MonthlyPageID)
}

func TestLinkRecentSkipsTaskWithoutLabels(t *testing.T) {
	repo := newFakeRepo()
	repo.tasks = []model.Task{
		{ID: "task-1", Title: "No due date"},
	}

	uc := newTestUseCase(repo)

	report, err := uc.LinkRecent(context.Background(), LinkRecentInput{})
	require.NoError(t, err)

	assert.Equal(t, 1, report.TasksSkipped)
	assert.Empty(t, repo.setCalls)
	require.Len(t, report.Links, 1)
	assert.Equal(t, model.OutcomeSkipped, report.Links[0].Outcome)
	assert.Equal(t, "missing labels and due date", report.Links[0].Reason)
}

func TestLinkRecentSkipsWhenNoSummaryPages(t *testing.T) {
	repo := newFakeRepo()
	repo.tasks = []model.Task{
		{ID: "task-1", Title: "Orphan", WeekLabel: "52", MonthLabel: "December"},
	}
	// No summary pages exist for those labels.

	uc := newTestUseCase(repo)

	report, err := uc.LinkRecent(context.Background(), LinkRecentInput{})
	require.NoError(t, err)

	assert.Equal(t, 1, report.TasksSkipped)
	assert.Empty(t, repo.setCalls)
	assert.Equal(t, "no matching summary pages", report.Links[0].Reason)
}

func TestLinkRecentLinksWeeklyOnly(t *testing.T) {
	repo := newFakeRepo()
	repo.tasks = []model.Task{
		{ID: "task-1", Title: "Half linked", WeekLabel: "35", MonthLabel: "August"},
	}
	repo.addSummary(model.SummaryWeekly, "35", "weekly-35")
	// Monthly page missing: the weekly link still gets written.

	uc := newTestUseCase(repo)

	report, err := uc.LinkRecent(context.Background(), LinkRecentInput{})
	require.NoError(t, err)

	assert.Equal(t, 1, report.TasksLinked)
	require.Len(t, repo.setCalls, 1)
	assert.Equal(t, "weekly-35", repo.setCalls[0].opt.WeeklyPageID)
	assert.Empty(t, repo.setCalls[0].opt.MonthlyPageID)
}

func TestLinkRecentSetLinksFailureDoesNotAbortRun(t *testing.T) {
	repo := newFakeRepo()
	repo.tasks = []model.Task{
		{ID: "task-1", Title: "A", WeekLabel: "35"},
		{ID: "task-2", Title: "B", WeekLabel: "35"},
	}
	repo.addSummary(model.SummaryWeekly, "35", "weekly-35")
	repo.setLinksErr = errors.New("update rejected")

	uc := newTestUseCase(repo)

	report, err := uc.LinkRecent(context.Background(), LinkRecentInput{})
	require.NoError(t, err)

	assert.Equal(t, 2, report.TasksExamined)
	assert.Equal(t, 2, report.TasksFailed)
}

func TestLinkRecentListFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.listErr = errors.New("query failed")

	uc := newTestUseCase(repo)

	report, err := uc.LinkRecent(context.Background(), LinkRecentInput{})
	require.Error(t, err)
	assert.NotEmpty(t, report.Error)
	assert.False(t, report.FinishedAt.IsZero())
}

func TestBackfillIgnoresEditTime(t *testing.T) {
	repo := newFakeRepo()
	uc := newTestUseCase(repo)

	report, err := uc.Backfill(context.Background())
	require.NoError(t, err)

	assert.Equal(t, model.TriggerBackfill, report.Trigger)
	assert.True(t, repo.lastListOpt.EditedSince.IsZero())
}

func TestLinkTask(t *testing.T) {
	repo := newFakeRepo()
	repo.tasks = []model.Task{
		{ID: "task-1", Title: "Standalone", WeekLabel: "35", MonthLabel: "August"},
	}
	repo.addSummary(model.SummaryWeekly, "35", "weekly-35")
	repo.addSummary(model.SummaryMonthly, "August", "monthly-aug")

	uc := newTestUseCase(repo)

	link, err := uc.LinkTask(context.Background(), "task-1")
	require.NoError(t, err)
	assert.Equal(t, model.OutcomeLinked, link.Outcome)
	assert.Equal(t, "weekly-35", link.WeeklyPageID)
}

func TestLinkTaskNotFound(t *testing.T) {
	repo := newFakeRepo()
	uc := newTestUseCase(repo)

	_, err := uc.LinkTask(context.Background(), "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestLinkTaskAlreadyLinked(t *testing.T) {
	repo := newFakeRepo()
	repo.tasks = []model.Task{
		{ID: "task-1", Title: "Done", WeekLabel: "35", MonthLabel: "August", HasWeeklyLink: true, HasMonthlyLink: true},
	}

	uc := newTestUseCase(repo)

	link, err := uc.LinkTask(context.Background(), "task-1")
	require.NoError(t, err)
	assert.Equal(t, model.OutcomeSkipped, link.Outcome)
	assert.Equal(t, "already linked", link.Reason)
}
