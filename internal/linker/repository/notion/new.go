package notion

import (
	"notion-progress-linker/internal/linker/repository"
	pkgLog "notion-progress-linker/pkg/log"
	pkgNotion "notion-progress-linker/pkg/notion"
)

// Config holds the database IDs and property names the repository reads.
// Property names default to the conventional column names of the task
// tracker template when left empty.
type Config struct {
	TasksDatabaseID   string
	WeeklyDatabaseID  string
	MonthlyDatabaseID string
	Properties        PropertyNames
}

// PropertyNames are the case-sensitive Notion property names.
type PropertyNames struct {
	TaskTitle   string // Title property of the Tasks database
	DueDate     string
	WeeklyLink  string // Relation to Weekly Progress
	MonthlyLink string // Relation to Monthly Progress
	WeekNumber  string // Formula producing the week label
	Month       string // Formula producing the month label

	WeeklyTitle  string // Title property of the Weekly Progress database
	MonthlyTitle string // Title property of the Monthly Progress database
}

func (p PropertyNames) withDefaults() PropertyNames {
	def := func(s *string, fallback string) {
		if *s == "" {
			*s = fallback
		}
	}
	def(&p.TaskTitle, "Tasks")
	def(&p.DueDate, "Due Date")
	def(&p.WeeklyLink, "Weekly Link")
	def(&p.MonthlyLink, "Monthly Link")
	def(&p.WeekNumber, "Week Number")
	def(&p.Month, "Month")
	def(&p.WeeklyTitle, "Week Number")
	def(&p.MonthlyTitle, "Month")
	return p
}

type implRepository struct {
	client pkgNotion.API
	cfg    Config
	props  PropertyNames
	l      pkgLog.Logger
}

// New creates a Notion-backed linker repository.
func New(client pkgNotion.API, cfg Config, l pkgLog.Logger) repository.Repository {
	return &implRepository{
		client: client,
		cfg:    cfg,
		props:  cfg.Properties.withDefaults(),
		l:      l,
	}
}
