package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/media-extractor/internal/api"
	"github.com/jonesrussell/media-extractor/internal/config"
	"github.com/jonesrussell/media-extractor/internal/credentials"
	"github.com/jonesrussell/media-extractor/internal/handler"
	"github.com/jonesrussell/media-extractor/internal/httpx"
	"github.com/jonesrussell/media-extractor/internal/logger"
	"github.com/jonesrussell/media-extractor/internal/service"
	"github.com/jonesrussell/media-extractor/internal/telemetry"
	"github.com/jonesrussell/media-extractor/internal/ytdlp"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Load configuration
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	// Initialize logger
	log, err := createLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	return runServer(cfg, log)
}

// loadConfig loads and validates configuration.
func loadConfig() (*config.Config, error) {
	configPath := config.GetConfigPath("config.yml")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if validationErr := cfg.Validate(); validationErr != nil {
		return nil, fmt.Errorf("validate config: %w", validationErr)
	}
	return cfg, nil
}

// createLogger creates a logger instance from configuration.
func createLogger(cfg *config.Config) (logger.Logger, error) {
	log, err := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		Development: cfg.Service.Debug,
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log.With(logger.String("service", cfg.Service.Name)), nil
}

// runServer creates all dependencies and starts the HTTP server.
func runServer(cfg *config.Config, log logger.Logger) int {
	// Credential store and acquirer
	store := credentials.NewStore(cfg.Extractor.CookieDir)
	acquirer := credentials.NewHTTPAcquirer(
		httpx.NewDefaultClient(),
		store,
		cfg.Extractor.UserAgent,
		log,
	)

	// Extraction engine
	engine := ytdlp.NewClient(cfg.Extractor.BinPath, cfg.Extractor.Timeout)

	// Telemetry
	provider := telemetry.NewProvider()

	// Core service
	extractor := service.NewExtractor(
		engine,
		acquirer,
		store,
		cfg.Extractor.UserAgent,
		provider.Metrics,
		log,
	)

	// Handlers
	extractHandler := handler.NewExtractHandler(extractor, log)
	healthHandler := handler.NewHealthHandler(cfg.Service.Version)

	// Create and run server
	server := api.NewServer(&api.Config{
		Port:           cfg.Service.Port,
		Debug:          cfg.Service.Debug,
		ServiceName:    cfg.Service.Name,
		ServiceVersion: cfg.Service.Version,
	}, log, func(router *gin.Engine) {
		api.SetupRoutes(router, extractHandler, healthHandler, provider.Handler())
	})

	log.Info("Media extractor starting",
		logger.Int("port", cfg.Service.Port),
		logger.String("engine", cfg.Extractor.BinPath),
		logger.String("cookie_dir", cfg.Extractor.CookieDir),
	)

	if err := server.Run(); err != nil {
		log.Error("Server error", logger.Error(err))
		return 1
	}

	log.Info("Media extractor exited cleanly")
	return 0
}
