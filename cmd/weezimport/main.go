package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/weeztools/weezimport/internal/di"
	"github.com/weeztools/weezimport/internal/spreadsheet"
	"github.com/weeztools/weezimport/internal/weezevent"
	"github.com/weeztools/weezimport/pkg/config"
	"github.com/weeztools/weezimport/pkg/logger"
	"github.com/weeztools/weezimport/pkg/telemetry"
	"go.uber.org/zap"
)

const usage = `Usage: weezimport <file> <api_key> <api_username> <api_password> <event_id>

Imports participants from an .xlsx file into a Weezevent event through the
legacy API. Rates and registration forms are created on demand.`

func main() {
	if len(os.Args) != 6 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	file, apiKey, username, password, eventID :=
		os.Args[1], os.Args[2], os.Args[3], os.Args[4], os.Args[5]

	if _, err := os.Stat(file); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s not found.\n", file)
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logCfg := &logger.Config{
		Level:       "info",
		ServiceName: cfg.App.Name,
		Development: cfg.IsDevelopment(),
	}
	if cfg.App.Debug {
		logCfg.Level = "debug"
	}
	if err := logger.Init(logCfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	appLog := logger.Get()
	ctx := context.Background()

	// Initialize OpenTelemetry
	telemetryCfg := &telemetry.Config{
		Enabled:        cfg.OTel.Enabled,
		ServiceName:    cfg.OTel.ServiceName,
		ServiceVersion: cfg.App.Version,
		Environment:    cfg.App.Environment,
		CollectorAddr:  cfg.OTel.CollectorAddr,
		SampleRatio:    cfg.OTel.SampleRatio,
	}
	if _, err := telemetry.Init(ctx, telemetryCfg); err != nil {
		appLog.Warn(fmt.Sprintf("Failed to initialize telemetry: %v", err))
	}
	defer telemetry.Shutdown(ctx)

	// Read the file
	rows, err := spreadsheet.Read(file)
	if err != nil {
		appLog.Fatal("Failed to read spreadsheet", zap.Error(err))
	}

	// Prepare the API (authenticate, load rate and form caches)
	client := weezevent.NewClient(&weezevent.ClientConfig{
		BaseURL: cfg.API.BaseURL,
		APIKey:  apiKey,
		Timeout: cfg.API.Timeout,
		Logger:  appLog,
	})
	if err := client.Authenticate(ctx, username, password); err != nil {
		appLog.Fatal("Authentication failed", zap.Error(err))
	}

	container, err := di.NewContainer(ctx, &di.ContainerConfig{
		Config:  cfg,
		Gateway: client,
		EventID: eventID,
	})
	if err != nil {
		appLog.Fatal("Failed to prepare event configuration", zap.Error(err))
	}

	// Process the file and push to the API
	summary, err := container.Importer.Run(ctx, rows)
	if err != nil {
		appLog.Fatal("Import failed", zap.Error(err))
	}

	fmt.Println(summary)
}
