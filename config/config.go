package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Linking
	Notion    NotionConfig
	Linker    LinkerConfig
	Scheduler SchedulerConfig
	Webhook   WebhookConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port   int
	Mode   string
	APIKey string // Protects the /api/v1 routes; empty disables auth
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// NotionConfig identifies the integration and the three databases.
type NotionConfig struct {
	APIKey            string
	BaseURL           string // Empty selects the public API endpoint
	TasksDatabaseID   string
	WeeklyDatabaseID  string
	MonthlyDatabaseID string
	Properties        NotionProperties
}

// NotionProperties are the case-sensitive property names of the databases.
// Empty fields fall back to the template defaults.
type NotionProperties struct {
	TaskTitle    string
	DueDate      string
	WeeklyLink   string
	MonthlyLink  string
	WeekNumber   string
	Month        string
	WeeklyTitle  string
	MonthlyTitle string
}

type LinkerConfig struct {
	LookbackMinutes int
	Timezone        string
	RunLogSize      int
}

type SchedulerConfig struct {
	Enabled           bool
	IntervalMinutes   int
	RunTimeoutMinutes int
}

type WebhookConfig struct {
	Enabled         bool
	Secret          string
	AllowedIPs      []string
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/;
// CONFIG_PATH overrides the search with an explicit file.
func Load() (*Config, error) {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./config")
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/app/")
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.APIKey = viper.GetString("http_server.api_key")
	if apiKey := viper.GetString("api_key"); apiKey != "" {
		cfg.HTTPServer.APIKey = apiKey
	}
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Notion — flat env aliases match the names used by the original
	// GitHub Actions secrets.
	cfg.Notion.APIKey = viper.GetString("notion.api_key")
	cfg.Notion.BaseURL = viper.GetString("notion.base_url")
	cfg.Notion.TasksDatabaseID = viper.GetString("notion.tasks_database_id")
	cfg.Notion.WeeklyDatabaseID = viper.GetString("notion.weekly_database_id")
	cfg.Notion.MonthlyDatabaseID = viper.GetString("notion.monthly_database_id")
	if key := viper.GetString("notion_api_key"); key != "" {
		cfg.Notion.APIKey = key
	}
	if id := viper.GetString("tasks_db_id"); id != "" {
		cfg.Notion.TasksDatabaseID = id
	}
	if id := viper.GetString("weekly_db_id"); id != "" {
		cfg.Notion.WeeklyDatabaseID = id
	}
	if id := viper.GetString("monthly_db_id"); id != "" {
		cfg.Notion.MonthlyDatabaseID = id
	}

	cfg.Notion.Properties = NotionProperties{
		TaskTitle:    viper.GetString("notion.properties.task_title"),
		DueDate:      viper.GetString("notion.properties.due_date"),
		WeeklyLink:   viper.GetString("notion.properties.weekly_link"),
		MonthlyLink:  viper.GetString("notion.properties.monthly_link"),
		WeekNumber:   viper.GetString("notion.properties.week_number"),
		Month:        viper.GetString("notion.properties.month"),
		WeeklyTitle:  viper.GetString("notion.properties.weekly_title"),
		MonthlyTitle: viper.GetString("notion.properties.monthly_title"),
	}

	// Linker
	cfg.Linker.LookbackMinutes = viper.GetInt("linker.lookback_minutes")
	cfg.Linker.Timezone = viper.GetString("linker.timezone")
	cfg.Linker.RunLogSize = viper.GetInt("linker.run_log_size")

	// Scheduler
	cfg.Scheduler.Enabled = viper.GetBool("scheduler.enabled")
	cfg.Scheduler.IntervalMinutes = viper.GetInt("scheduler.interval_minutes")
	cfg.Scheduler.RunTimeoutMinutes = viper.GetInt("scheduler.run_timeout_minutes")

	// Webhook
	cfg.Webhook.Enabled = viper.GetBool("webhook.enabled")
	cfg.Webhook.Secret = viper.GetString("webhook.secret")
	if secret := viper.GetString("webhook_secret"); secret != "" {
		cfg.Webhook.Secret = secret
	}
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")

	// allowed_ips is a YAML list in the config file but a comma-separated
	// string when set through the environment; accept both.
	var ips []string
	for _, entry := range viper.GetStringSlice("webhook.allowed_ips") {
		for _, ip := range strings.Split(entry, ",") {
			ip = strings.TrimSpace(ip)
			if ip != "" {
				ips = append(ips, ip)
			}
		}
	}
	cfg.Webhook.AllowedIPs = ips

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	var missing []string
	if c.Notion.APIKey == "" {
		missing = append(missing, "NOTION_API_KEY")
	}
	if c.Notion.TasksDatabaseID == "" {
		missing = append(missing, "TASKS_DB_ID")
	}
	if c.Notion.WeeklyDatabaseID == "" {
		missing = append(missing, "WEEKLY_DB_ID")
	}
	if c.Notion.MonthlyDatabaseID == "" {
		missing = append(missing, "MONTHLY_DB_ID")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("linker.lookback_minutes", 65)
	viper.SetDefault("linker.timezone", "UTC")
	viper.SetDefault("linker.run_log_size", 50)
	viper.SetDefault("scheduler.enabled", true)
	viper.SetDefault("scheduler.interval_minutes", 60)
	viper.SetDefault("scheduler.run_timeout_minutes", 10)
	viper.SetDefault("webhook.enabled", false)
	viper.SetDefault("webhook.rate_limit_per_min", 30)
}
