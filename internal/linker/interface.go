package linker

import (
	"context"

	"notion-progress-linker/internal/model"
)

type UseCase interface {
	// LinkRecent links recently edited unlinked tasks to their weekly and
	// monthly summary pages.
	LinkRecent(ctx context.Context, input LinkRecentInput) (model.RunReport, error)

	// Backfill links every unlinked task in the database, ignoring edit time.
	Backfill(ctx context.Context) (model.RunReport, error)

	// LinkTask links a single task by page ID.
	LinkTask(ctx context.Context, taskID string) (model.TaskLink, error)
}
