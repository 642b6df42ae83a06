package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration. Credentials and the event id
// come from the command line, everything else from environment variables or an
// optional .env file.
type Config struct {
	App    AppConfig
	API    APIConfig
	Import ImportConfig
	OTel   OTelConfig
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Debug       bool
	Version     string
}

// APIConfig holds Weezevent API client settings.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// ImportConfig holds import pipeline settings.
type ImportConfig struct {
	// BatchSize caps participants per submission call.
	BatchSize int
	// ChannelID is the distribution channel imported rates are created under.
	ChannelID int
	// FallbackTier is used for rows without a tarif column.
	FallbackTier string
}

// OTelConfig holds OpenTelemetry settings.
type OTelConfig struct {
	Enabled       bool
	ServiceName   string
	CollectorAddr string
	SampleRatio   float64
}

// Load loads configuration from environment variables and an optional .env
// file.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	// The .env file is optional; env vars alone are fine.
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := &Config{}
	bindConfig(v, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("APP_NAME", "weezimport")
	v.SetDefault("APP_ENVIRONMENT", "development")
	v.SetDefault("APP_DEBUG", false)
	v.SetDefault("APP_VERSION", "1.0.0")

	// API defaults
	v.SetDefault("WEEZ_API_BASE_URL", "https://api.weezevent.com")
	v.SetDefault("WEEZ_API_TIMEOUT", "30s")

	// Import defaults
	v.SetDefault("IMPORT_BATCH_SIZE", 500)
	v.SetDefault("IMPORT_CHANNEL_ID", 2179)
	v.SetDefault("IMPORT_FALLBACK_TIER", "WEEZ XLSX IMPORT")

	// OTel defaults (off for CLI runs unless a collector is configured)
	v.SetDefault("OTEL_ENABLED", false)
	v.SetDefault("OTEL_SERVICE_NAME", "weezimport")
	v.SetDefault("OTEL_COLLECTOR_ADDR", "localhost:4317")
	v.SetDefault("OTEL_SAMPLE_RATIO", 1.0)
}

func bindConfig(v *viper.Viper, cfg *Config) {
	// App
	cfg.App.Name = v.GetString("APP_NAME")
	cfg.App.Environment = v.GetString("APP_ENVIRONMENT")
	cfg.App.Debug = v.GetBool("APP_DEBUG")
	cfg.App.Version = v.GetString("APP_VERSION")

	// API
	cfg.API.BaseURL = v.GetString("WEEZ_API_BASE_URL")
	cfg.API.Timeout = v.GetDuration("WEEZ_API_TIMEOUT")

	// Import
	cfg.Import.BatchSize = v.GetInt("IMPORT_BATCH_SIZE")
	cfg.Import.ChannelID = v.GetInt("IMPORT_CHANNEL_ID")
	cfg.Import.FallbackTier = v.GetString("IMPORT_FALLBACK_TIER")

	// OTel
	cfg.OTel.Enabled = v.GetBool("OTEL_ENABLED")
	cfg.OTel.ServiceName = v.GetString("OTEL_SERVICE_NAME")
	cfg.OTel.CollectorAddr = v.GetString("OTEL_COLLECTOR_ADDR")
	cfg.OTel.SampleRatio = v.GetFloat64("OTEL_SAMPLE_RATIO")
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("API base URL is required")
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("invalid API timeout: %s", c.API.Timeout)
	}
	if c.Import.BatchSize <= 0 {
		return fmt.Errorf("invalid batch size: %d", c.Import.BatchSize)
	}
	if c.Import.ChannelID <= 0 {
		return fmt.Errorf("invalid channel id: %d", c.Import.ChannelID)
	}
	return nil
}

// IsDevelopment returns true if running in development environment.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}
