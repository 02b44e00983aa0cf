package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	ReviewPreserve = "preserve"
	ReviewReset    = "reset"
)

type Config struct {
	// Supabase
	SupabaseURL           string `mapstructure:"supabase_url"`
	SupabaseServiceKey    string `mapstructure:"supabase_service_key"`
	SupabaseJWTSecret     string `mapstructure:"supabase_jwt_secret"`
	SupabaseStorageBucket string `mapstructure:"supabase_storage_bucket"`

	// Database
	DatabaseDriver string `mapstructure:"database_driver"`
	DatabaseURL    string `mapstructure:"database_url"`

	// Daily logs
	Timezone          string        `mapstructure:"timezone"`
	UploadTimeout     time.Duration `mapstructure:"upload_timeout"`
	UploadMaxAttempts int           `mapstructure:"upload_max_attempts"`
	UploadConcurrency int           `mapstructure:"upload_concurrency"`
	MaxUploadBytes    int64         `mapstructure:"max_upload_bytes"`
	ReviewOnResubmit  string        `mapstructure:"review_on_resubmit"`
	FeedPageSize      int           `mapstructure:"feed_page_size"`

	// Scheduler
	MissingReportSweepCron string `mapstructure:"missing_report_sweep_cron"`

	// Logging
	LogLevel  string `mapstructure:"log_level"`
	LogOutput string `mapstructure:"log_output"`
	LogFile   string `mapstructure:"log_file"`

	// Server
	Port        string `mapstructure:"port"`
	Environment string `mapstructure:"environment"`
	BaseURL     string `mapstructure:"base_url"`

	location *time.Location
}

var defaults = map[string]interface{}{
	"supabase_url":              "",
	"supabase_service_key":      "",
	"supabase_jwt_secret":       "",
	"supabase_storage_bucket":   "daily-logs",
	"database_driver":           DriverPostgres,
	"database_url":              "",
	"timezone":                  "UTC",
	"upload_timeout":            "30s",
	"upload_max_attempts":       3,
	"upload_concurrency":        4,
	"max_upload_bytes":          50 << 20,
	"review_on_resubmit":        ReviewPreserve,
	"feed_page_size":            20,
	"missing_report_sweep_cron": "0 18 * * *",
	"log_level":                 "info",
	"log_output":                "stdout",
	"log_file":                  "logs/sitelog.log",
	"port":                      "8080",
	"environment":               "development",
	"base_url":                  "http://localhost:8080",
}

// Load reads configuration from defaults, an optional config.yaml and the
// environment, in increasing order of precedence.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/sitelog")

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.SupabaseURL == "" {
		return fmt.Errorf("SUPABASE_URL is required")
	}
	if c.SupabaseServiceKey == "" {
		return fmt.Errorf("SUPABASE_SERVICE_KEY is required")
	}
	if c.SupabaseJWTSecret == "" {
		return fmt.Errorf("SUPABASE_JWT_SECRET is required")
	}
	if c.DatabaseDriver != DriverPostgres && c.DatabaseDriver != DriverSQLite {
		return fmt.Errorf("DATABASE_DRIVER must be %q or %q, got %q", DriverPostgres, DriverSQLite, c.DatabaseDriver)
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.ReviewOnResubmit != ReviewPreserve && c.ReviewOnResubmit != ReviewReset {
		return fmt.Errorf("REVIEW_ON_RESUBMIT must be %q or %q, got %q", ReviewPreserve, ReviewReset, c.ReviewOnResubmit)
	}
	if c.UploadMaxAttempts < 1 {
		return fmt.Errorf("UPLOAD_MAX_ATTEMPTS must be at least 1")
	}
	if c.UploadConcurrency < 1 {
		return fmt.Errorf("UPLOAD_CONCURRENCY must be at least 1")
	}
	if c.FeedPageSize < 1 {
		return fmt.Errorf("FEED_PAGE_SIZE must be at least 1")
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return fmt.Errorf("TIMEZONE %q: %w", c.Timezone, err)
	}
	c.location = loc

	return nil
}

// Location is the time zone that defines calendar-day boundaries.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

// ResetReviewOnResubmit reports whether a resubmitted execution report clears
// any previous review decision.
func (c *Config) ResetReviewOnResubmit() bool {
	return c.ReviewOnResubmit == ReviewReset
}
