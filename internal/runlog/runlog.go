// Package runlog keeps a bounded in-memory history of linking runs.
// Nothing is persisted: the service owns no local state, and the run
// history only needs to cover recent operator questions.
package runlog

import (
	"sync"

	"notion-progress-linker/internal/model"
)

const defaultCapacity = 50

// Log is a mutex-guarded ring of the most recent run reports.
type Log struct {
	mu      sync.Mutex
	max     int
	reports []model.RunReport // newest last
}

// New creates a run log holding at most max reports.
func New(max int) *Log {
	if max <= 0 {
		max = defaultCapacity
	}
	return &Log{max: max}
}

// Record appends a report, evicting the oldest when full.
func (l *Log) Record(r model.RunReport) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.reports = append(l.reports, r)
	if len(l.reports) > l.max {
		l.reports = l.reports[len(l.reports)-l.max:]
	}
}

// Latest returns the most recent report.
func (l *Log) Latest() (model.RunReport, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.reports) == 0 {
		return model.RunReport{}, false
	}
	return l.reports[len(l.reports)-1], true
}

// List returns up to limit reports, newest first.
func (l *Log) List(limit int) []model.RunReport {
	l.mu.Lock()
	defer l.mu.Unlock()

	if limit <= 0 || limit > len(l.reports) {
		limit = len(l.reports)
	}

	out := make([]model.RunReport, 0, limit)
	for i := len(l.reports) - 1; i >= len(l.reports)-limit; i-- {
		out = append(out, l.reports[i])
	}
	return out
}
