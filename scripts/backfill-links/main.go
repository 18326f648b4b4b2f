package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"notion-progress-linker/config"
	"notion-progress-linker/internal/linker"
	notionRepo "notion-progress-linker/internal/linker/repository/notion"
	"notion-progress-linker/internal/model"
	"notion-progress-linker/pkg/log"
	"notion-progress-linker/pkg/notion"
	"notion-progress-linker/pkg/period"
)

// One-shot backfill: links every unlinked task in the Tasks database,
// ignoring edit time. Run this once after setting up the integration.
func main() {
	_ = godotenv.Load()

	if len(os.Args) > 1 {
		os.Setenv("CONFIG_PATH", os.Args[1])
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	notionClient := notion.NewClient(cfg.Notion.BaseURL, cfg.Notion.APIKey)
	repo := notionRepo.New(notionClient, notionRepo.Config{
		TasksDatabaseID:   cfg.Notion.TasksDatabaseID,
		WeeklyDatabaseID:  cfg.Notion.WeeklyDatabaseID,
		MonthlyDatabaseID: cfg.Notion.MonthlyDatabaseID,
		Properties: notionRepo.PropertyNames{
			TaskTitle:    cfg.Notion.Properties.TaskTitle,
			DueDate:      cfg.Notion.Properties.DueDate,
			WeeklyLink:   cfg.Notion.Properties.WeeklyLink,
			MonthlyLink:  cfg.Notion.Properties.MonthlyLink,
			WeekNumber:   cfg.Notion.Properties.WeekNumber,
			Month:        cfg.Notion.Properties.Month,
			WeeklyTitle:  cfg.Notion.Properties.WeeklyTitle,
			MonthlyTitle: cfg.Notion.Properties.MonthlyTitle,
		},
	}, logger)

	periods, err := period.NewCalculator(cfg.Linker.Timezone)
	if err != nil {
		logger.Fatalf(ctx, "Invalid timezone %q: %v", cfg.Linker.Timezone, err)
	}

	uc := linker.New(repo, periods, 0, logger)

	logger.Info(ctx, "Starting backfill over all unlinked tasks...")

	report, err := uc.Backfill(ctx)
	if err != nil {
		logger.Fatalf(ctx, "Backfill failed: %v", err)
	}

	logger.Infof(ctx, "Backfill complete! examined=%d linked=%d skipped=%d failed=%d in %s",
		report.TasksExamined, report.TasksLinked, report.TasksSkipped, report.TasksFailed,
		report.Duration().Round(time.Millisecond))

	for _, link := range report.Links {
		if link.Outcome != model.OutcomeLinked {
			logger.Infof(ctx, "  %s task %s (%q): %s", link.Outcome, link.TaskID, link.TaskTitle, link.Reason)
		}
	}
}
