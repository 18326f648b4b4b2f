package repository

import (
	"context"

	"notion-progress-linker/internal/model"
)

// Repository is the composed interface for the linker's Notion data access.
type Repository interface {
	TaskRepository
	SummaryRepository
}

// TaskRepository defines data access for the Tasks database.
type TaskRepository interface {
	// ListUnlinkedTasks returns tasks with a due date and an empty weekly
	// relation, optionally restricted to recently edited pages.
	ListUnlinkedTasks(ctx context.Context, opt ListUnlinkedTasksOptions) ([]model.Task, error)

	// GetTask fetches a single task page by ID.
	GetTask(ctx context.Context, id string) (model.Task, error)

	// SetLinks writes the weekly/monthly relation properties of a task.
	SetLinks(ctx context.Context, taskID string, opt SetLinksOptions) error
}

// SummaryRepository defines data access for the progress databases.
type SummaryRepository interface {
	// FindByLabel returns the first page of the given progress database whose
	// title equals label. Returns ErrNotFound when no page matches.
	FindByLabel(ctx context.Context, kind model.SummaryKind, label string) (model.SummaryPage, error)
}
