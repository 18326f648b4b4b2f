package model

import "time"

// Task represents a row of the Notion Tasks database.
type Task struct {
	ID             string    // Notion page ID
	Title          string    // Title property plain text
	WeekLabel      string    // "Week Number" formula result, may be empty
	MonthLabel     string    // "Month" formula result, may be empty
	DueDate        time.Time // Zero when the Due Date property is unset
	HasWeeklyLink  bool      // Weekly Link relation is non-empty
	HasMonthlyLink bool      // Monthly Link relation is non-empty
	LastEditedTime time.Time
	URL            string // Deep link to the Notion page
}

// HasDueDate reports whether the task has a due date set.
func (t Task) HasDueDate() bool {
	return !t.DueDate.IsZero()
}

// SummaryKind identifies which progress database a summary page belongs to.
type SummaryKind string

const (
	SummaryWeekly  SummaryKind = "weekly"
	SummaryMonthly SummaryKind = "monthly"
)

// SummaryPage is a row of a Weekly/Monthly Progress database.
type SummaryPage struct {
	ID    string // Notion page ID
	Label string // Title, e.g. "35" for a week or "August" for a month
	URL   string
}
