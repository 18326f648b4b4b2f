package runlog_test

import (
	"fmt"
	"testing"

	"notion-progress-linker/internal/model"
	"notion-progress-linker/internal/runlog"
)

func TestRunlogEmpty(t *testing.T) {
	l := runlog.New(5)

	if _, ok := l.Latest(); ok {
		t.Error("expected no latest report on empty log")
	}
	if got := l.List(10); len(got) != 0 {
		t.Errorf("expected empty list, got %d reports", len(got))
	}
}

func TestRunlogRecordAndList(t *testing.T) {
	l := runlog.New(3)

	for i := 1; i <= 5; i++ {
		l.Record(model.RunReport{ID: fmt.Sprintf("run-%d", i)})
	}

	latest, ok := l.Latest()
	if !ok || latest.ID != "run-5" {
		t.Errorf("unexpected latest: %+v", latest)
	}

	// Capacity 3 keeps only the newest three, listed newest first.
	got := l.List(10)
	if len(got) != 3 {
		t.Fatalf("expected 3 reports, got %d", len(got))
	}
	for i, want := range []string{"run-5", "run-4", "run-3"} {
		if got[i].ID != want {
			t.Errorf("List()[%d] = %s, want %s", i, got[i].ID, want)
		}
	}

	if limited := l.List(2); len(limited) != 2 || limited[0].ID != "run-5" {
		t.Errorf("unexpected limited list: %+v", limited)
	}
}
