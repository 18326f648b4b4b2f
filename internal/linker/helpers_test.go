package linker

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"notion-progress-linker/internal/linker/repository"
	"notion-progress-linker/internal/model"
	pkgNotion "notion-progress-linker/pkg/notion"
	"notion-progress-linker/pkg/period"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

// setCall records one SetLinks invocation.
type setCall struct {
	taskID string
	opt    repository.SetLinksOptions
}

// fakeRepo is an in-memory repository.Repository.
type fakeRepo struct {
	tasks     []model.Task
	summaries map[string]model.SummaryPage // key: kind/label

	listErr     error
	setLinksErr error
	findErr     error

	lastListOpt repository.ListUnlinkedTasksOptions
	findCalls   map[string]int
	setCalls    []setCall
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		summaries: make(map[string]model.SummaryPage),
		findCalls: make(map[string]int),
	}
}

func (f *fakeRepo) addSummary(kind model.SummaryKind, label, pageID string) {
	f.summaries[string(kind)+"/"+label] = model.SummaryPage{ID: pageID, Label: label}
}

func (f *fakeRepo) ListUnlinkedTasks(ctx context.Context, opt repository.ListUnlinkedTasksOptions) ([]model.Task, error) {
	f.lastListOpt = opt
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.tasks, nil
}

func (f *fakeRepo) GetTask(ctx context.Context, id string) (model.Task, error) {
	for _, task := range f.tasks {
		if task.ID == id {
			return task, nil
		}
	}
	return model.Task{}, &pkgNotion.Error{Status: http.StatusNotFound, Code: "object_not_found", Message: "Could not find page"}
}

func (f *fakeRepo) SetLinks(ctx context.Context, taskID string, opt repository.SetLinksOptions) error {
	if f.setLinksErr != nil {
		return f.setLinksErr
	}
	f.setCalls = append(f.setCalls, setCall{taskID: taskID, opt: opt})
	return nil
}

func (f *fakeRepo) FindByLabel(ctx context.Context, kind model.SummaryKind, label string) (model.SummaryPage, error) {
	key := string(kind) + "/" + label
	f.findCalls[key]++
	if f.findErr != nil {
		return model.SummaryPage{}, f.findErr
	}
	page, ok := f.summaries[key]
	if !ok {
		return model.SummaryPage{}, fmt.Errorf("%s summary %q: %w", kind, label, repository.ErrNotFound)
	}
	return page, nil
}

func newTestUseCase(repo *fakeRepo) UseCase {
	periods, _ := period.NewCalculator("UTC")
	return New(repo, periods, 65*time.Minute, &mockLogger{})
}
