package repository

import "time"

// ListUnlinkedTasksOptions holds filter parameters for listing unlinked tasks.
type ListUnlinkedTasksOptions struct {
	EditedSince time.Time // Zero disables the recency filter (backfill)
	PageSize    int       // Per-request page size (default 100)
}

// SetLinksOptions holds the relation targets to write on a task.
// An empty ID leaves that relation untouched.
type SetLinksOptions struct {
	WeeklyPageID  string
	MonthlyPageID string
}

// IsEmpty reports whether there is nothing to write.
func (o SetLinksOptions) IsEmpty() bool {
	return o.WeeklyPageID == "" && o.MonthlyPageID == ""
}
