package notion

import (
	"context"
	"fmt"
	"time"

	"notion-progress-linker/internal/linker/repository"
	"notion-progress-linker/internal/model"
	pkgNotion "notion-progress-linker/pkg/notion"
)

func (r *implRepository) ListUnlinkedTasks(ctx context.Context, opt repository.ListUnlinkedTasksOptions) ([]model.Task, error) {
	pageSize := opt.PageSize
	if pageSize <= 0 || pageSize > pkgNotion.MaxPageSize {
		pageSize = pkgNotion.MaxPageSize
	}

	conditions := []pkgNotion.Filter{
		{
			Property: r.props.DueDate,
			Date:     &pkgNotion.DateCondition{IsNotEmpty: true},
		},
		{
			Property: r.props.WeeklyLink,
			Relation: &pkgNotion.RelationCondition{IsEmpty: true},
		},
	}
	if !opt.EditedSince.IsZero() {
		conditions = append(conditions, pkgNotion.Filter{
			Timestamp: "last_edited_time",
			LastEditedTime: &pkgNotion.DateCondition{
				OnOrAfter: opt.EditedSince.UTC().Format(time.RFC3339),
			},
		})
	}

	req := pkgNotion.QueryDatabaseRequest{
		Filter:   &pkgNotion.Filter{And: conditions},
		PageSize: pageSize,
	}

	var tasks []model.Task
	for {
		resp, err := r.client.QueryDatabase(ctx, r.cfg.TasksDatabaseID, req)
		if err != nil {
			return nil, fmt.Errorf("failed to list unlinked tasks: %w", err)
		}

		for _, page := range resp.Results {
			tasks = append(tasks, r.pageToTask(page))
		}

		if !resp.HasMore {
			break
		}
		req.StartCursor = resp.NextCursor
	}

	return tasks, nil
}

func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	page, err := r.client.GetPage(ctx, id)
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to get task %s: %w", id, err)
	}
	return r.pageToTask(*page), nil
}

func (r *implRepository) SetLinks(ctx context.Context, taskID string, opt repository.SetLinksOptions) error {
	if opt.IsEmpty() {
		return nil
	}

	props := make(map[string]pkgNotion.PropertyValue, 2)
	if opt.WeeklyPageID != "" {
		props[r.props.WeeklyLink] = pkgNotion.NewRelation(opt.WeeklyPageID)
	}
	if opt.MonthlyPageID != "" {
		props[r.props.MonthlyLink] = pkgNotion.NewRelation(opt.MonthlyPageID)
	}

	if _, err := r.client.UpdatePage(ctx, taskID, pkgNotion.UpdatePageRequest{Properties: props}); err != nil {
		return fmt.Errorf("failed to set links on task %s: %w", taskID, err)
	}
	return nil
}

// pageToTask maps a Notion page to the internal task model. Missing or
// differently typed properties yield zero values rather than errors; the
// use case decides what is skippable.
func (r *implRepository) pageToTask(page pkgNotion.Page) model.Task {
	task := model.Task{
		ID:             page.ID,
		URL:            page.URL,
		LastEditedTime: page.LastEditedTime,
	}

	if prop, ok := page.Properties[r.props.TaskTitle]; ok {
		task.Title = prop.PlainText()
	}
	if prop, ok := page.Properties[r.props.WeekNumber]; ok {
		task.WeekLabel = prop.FormulaString()
	}
	if prop, ok := page.Properties[r.props.Month]; ok {
		task.MonthLabel = prop.FormulaString()
	}
	if prop, ok := page.Properties[r.props.DueDate]; ok && prop.Date != nil {
		if due, err := prop.Date.StartTime(); err == nil {
			task.DueDate = due
		}
	}
	if prop, ok := page.Properties[r.props.WeeklyLink]; ok {
		task.HasWeeklyLink = len(prop.Relation) > 0
	}
	if prop, ok := page.Properties[r.props.MonthlyLink]; ok {
		task.HasMonthlyLink = len(prop.Relation) > 0
	}

	return task
}
