package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"notion-progress-linker/config"
	"notion-progress-linker/internal/httpserver"
	"notion-progress-linker/internal/linker"
	linkerHTTP "notion-progress-linker/internal/linker/delivery/http"
	notionRepo "notion-progress-linker/internal/linker/repository/notion"
	"notion-progress-linker/internal/runlog"
	"notion-progress-linker/internal/scheduler"
	"notion-progress-linker/internal/trigger"
	"notion-progress-linker/pkg/log"
	"notion-progress-linker/pkg/notion"
	"notion-progress-linker/pkg/period"
)

func main() {
	// .env is for local development; deployments use real env vars.
	_ = godotenv.Load()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Notion progress linker...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Notion client and repository
	notionClient := notion.NewClient(cfg.Notion.BaseURL, cfg.Notion.APIKey)
	repo := notionRepo.New(notionClient, notionRepo.Config{
		TasksDatabaseID:   cfg.Notion.TasksDatabaseID,
		WeeklyDatabaseID:  cfg.Notion.WeeklyDatabaseID,
		MonthlyDatabaseID: cfg.Notion.MonthlyDatabaseID,
		Properties:        propertyNames(cfg.Notion.Properties),
	}, logger)

	// 4. Linker use case
	periods, err := period.NewCalculator(cfg.Linker.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Linker.Timezone, err)
		periods, _ = period.NewCalculator("UTC")
	}

	linkerUC := linker.New(repo, periods, time.Duration(cfg.Linker.LookbackMinutes)*time.Minute, logger)
	runs := runlog.New(cfg.Linker.RunLogSize)

	// 5. Scheduler
	sched := scheduler.New(linkerUC, runs, scheduler.Config{
		Interval:   time.Duration(cfg.Scheduler.IntervalMinutes) * time.Minute,
		RunTimeout: time.Duration(cfg.Scheduler.RunTimeoutMinutes) * time.Minute,
	}, logger)

	if cfg.Scheduler.Enabled {
		if err := sched.Start(); err != nil {
			logger.Error(ctx, "Failed to start scheduler: ", err)
			os.Exit(1)
		}
		defer sched.Stop()
	} else {
		logger.Warn(ctx, "Scheduler disabled; runs must be triggered manually")
	}

	// 6. HTTP Server
	srvCfg := httpserver.Config{
		Logger:        logger,
		Port:          cfg.HTTPServer.Port,
		Mode:          cfg.HTTPServer.Mode,
		Environment:   cfg.Environment.Name,
		APIKey:        cfg.HTTPServer.APIKey,
		LinkerHandler: linkerHTTP.New(logger, linkerUC, sched, runs),
	}

	if cfg.Webhook.Enabled {
		if cfg.Webhook.Secret == "" {
			logger.Warn(ctx, "Webhook enabled but WEBHOOK_SECRET is missing, skipping webhook route")
		} else {
			srvCfg.TriggerHandler = trigger.New(sched, trigger.SecurityConfig{
				Secret:          cfg.Webhook.Secret,
				AllowedIPs:      cfg.Webhook.AllowedIPs,
				RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
			}, logger)
		}
	}

	httpServer, err := httpserver.New(logger, srvCfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func propertyNames(p config.NotionProperties) notionRepo.PropertyNames {
	return notionRepo.PropertyNames{
		TaskTitle:    p.TaskTitle,
		DueDate:      p.DueDate,
		WeeklyLink:   p.WeeklyLink,
		MonthlyLink:  p.MonthlyLink,
		WeekNumber:   p.WeekNumber,
		Month:        p.Month,
		WeeklyTitle:  p.WeeklyTitle,
		MonthlyTitle: p.MonthlyTitle,
	}
}
