package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bobmcallan/folio/internal/clients/legacyapi"
	"github.com/bobmcallan/folio/internal/clients/primaryapi"
	"github.com/bobmcallan/folio/internal/common"
	"github.com/bobmcallan/folio/internal/interfaces"
	"github.com/bobmcallan/folio/internal/services/holdings"
	"github.com/bobmcallan/folio/internal/services/portfolio"
	"github.com/bobmcallan/folio/internal/sources"
	"github.com/bobmcallan/folio/internal/storage/surrealdb"
)

// App holds all initialized services, clients and storage.
// It is the shared core used by cmd/folio-server.
type App struct {
	Config           *common.Config
	Logger           *common.Logger
	Storage          interfaces.StorageManager
	PrimaryClient    *primaryapi.Client
	LegacyClient     *legacyapi.Client
	Selector         *sources.Selector
	PortfolioService interfaces.PortfolioService
	HoldingsService  interfaces.HoldingsService
	StartupTime      time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes storage, source clients and services.
// configPath may be empty, in which case the default resolution logic is used.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	// Load configuration - check provided path, FOLIO_CONFIG, then binary dir, then fallback
	if configPath == "" {
		configPath = os.Getenv("FOLIO_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(getBinaryDir(), "folio.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/folio.toml" // fallback for development
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	logger := common.NewLoggerFromConfig(config.Logging)

	// Initialize storage
	storageManager, err := surrealdb.NewManager(logger, config)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	checkSchemaVersion(context.Background(), storageManager.InternalStore(), logger)

	// Source clients in priority order. The document store is the tertiary
	// fallback, so a dashboard still reflects stored holdings when both
	// upstream APIs are down.
	primaryClient := primaryapi.NewClient(
		config.Sources.Primary.BaseURL,
		config.Sources.Primary.APIKey,
		primaryapi.WithLogger(logger),
		primaryapi.WithRateLimit(config.Sources.Primary.RateLimit),
	)
	legacyClient := legacyapi.NewClient(
		config.Sources.Legacy.BaseURL,
		config.Sources.Legacy.APIKey,
		legacyapi.WithLogger(logger),
		legacyapi.WithRateLimit(config.Sources.Legacy.RateLimit),
	)

	selector := sources.NewSelector(logger,
		[]interfaces.HoldingsSource{
			primaryClient,
			legacyClient,
			sources.NewStoreSource(storageManager.HoldingStore()),
		},
		sources.WithAttemptTimeout(config.Sources.GetAttemptTimeout()),
	)

	// Initialize services
	portfolioService := portfolio.NewService(selector, logger)
	holdingsService := holdings.NewService(storageManager.HoldingStore(), logger)

	a := &App{
		Config:           config,
		Logger:           logger,
		Storage:          storageManager,
		PrimaryClient:    primaryClient,
		LegacyClient:     legacyClient,
		Selector:         selector,
		PortfolioService: portfolioService,
		HoldingsService:  holdingsService,
		StartupTime:      startupStart,
	}

	logger.Info().Dur("startup", time.Since(startupStart)).Msg("App initialized")

	return a, nil
}

// Close releases all resources held by the App.
func (a *App) Close() {
	if a.Storage != nil {
		a.Storage.Close()
		a.Storage = nil
	}
}
