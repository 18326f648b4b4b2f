package notion

import (
	"context"
	"fmt"

	"notion-progress-linker/internal/linker/repository"
	"notion-progress-linker/internal/model"
	pkgNotion "notion-progress-linker/pkg/notion"
)

func (r *implRepository) FindByLabel(ctx context.Context, kind model.SummaryKind, label string) (model.SummaryPage, error) {
	databaseID, titleProp, err := r.summaryTarget(kind)
	if err != nil {
		return model.SummaryPage{}, err
	}

	resp, err := r.client.QueryDatabase(ctx, databaseID, pkgNotion.QueryDatabaseRequest{
		Filter: &pkgNotion.Filter{
			Property: titleProp,
			Title:    &pkgNotion.TextCondition{Equals: label},
		},
		PageSize: 1,
	})
	if err != nil {
		return model.SummaryPage{}, fmt.Errorf("failed to find %s summary %q: %w", kind, label, err)
	}

	if len(resp.Results) == 0 {
		return model.SummaryPage{}, fmt.Errorf("%s summary %q: %w", kind, label, repository.ErrNotFound)
	}

	// First match wins; duplicate summary titles are a data entry problem.
	page := resp.Results[0]
	return model.SummaryPage{
		ID:    page.ID,
		Label: label,
		URL:   page.URL,
	}, nil
}

func (r *implRepository) summaryTarget(kind model.SummaryKind) (databaseID, titleProp string, err error) {
	switch kind {
	case model.SummaryWeekly:
		return r.cfg.WeeklyDatabaseID, r.props.WeeklyTitle, nil
	case model.SummaryMonthly:
		return r.cfg.MonthlyDatabaseID, r.props.MonthlyTitle, nil
	default:
		return "", "", fmt.Errorf("unknown summary kind %q", kind)
	}
}
