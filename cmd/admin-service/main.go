package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/craftline/website-be/internal/admin/session"
	"github.com/craftline/website-be/internal/admin/store"
	"github.com/craftline/website-be/internal/admin/view"
	"github.com/craftline/website-be/internal/config"
	"github.com/craftline/website-be/shared/kvstore"
	"github.com/craftline/website-be/shared/logger"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or flags")
	}

	defaultConfigPath := os.Getenv("ADMIN_SERVICE_CONFIG_PATH")
	if defaultConfigPath == "" {
		defaultConfigPath = "configs/admin-service/config.yaml"
	}
	configPath := flag.String("config", defaultConfigPath, "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.ValidateAdminConfig(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	appLogger, err := initLogger(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger.Info("Starting admin panel",
		slog.String("app", cfg.App.Name),
		slog.String("data_dir", cfg.Admin.DataDir),
	)

	kv, err := kvstore.NewFileStore(cfg.Admin.DataDir, appLogger.Logger)
	if err != nil {
		return fmt.Errorf("failed to open data directory: %w", err)
	}

	jobStore := store.NewJobStore(kv, cfg.Admin.StoreKey, appLogger.Logger)
	sess := session.New(kv, cfg.Admin.SessionKey, cfg.Admin.Password, appLogger.Logger)

	renderer := newTerminalRenderer(os.Stdout)
	panel := view.New(jobStore, sess, renderer, appLogger.Logger)

	return runPanel(panel, renderer, os.Stdin)
}

// initLogger initializes and configures the application logger
func initLogger(cfg *config.LoggingConfig) (*logger.Logger, error) {
	loggerCfg := &logger.Config{
		Level:        cfg.Level,
		Format:       cfg.Format,
		Output:       cfg.Output,
		EnableSource: cfg.EnableCaller,
		TimeFormat:   time.RFC3339,
	}

	return logger.New(loggerCfg)
}
