// cmd/tonban-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/lllpei/tonban/internal/api/rest/v1"
	"github.com/lllpei/tonban/internal/app"
	"github.com/lllpei/tonban/internal/domain/tariff"
	"github.com/lllpei/tonban/internal/infrastructure/metrics"
	"github.com/lllpei/tonban/internal/infrastructure/persistence"
	"github.com/lllpei/tonban/internal/pkg/config"
	"github.com/lllpei/tonban/internal/pkg/logger"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/api.yaml"
	}

	apiConfig, err := config.InitializeAPIConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&apiConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(apiConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(apiConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db            *gorm.DB
	lookupService tariff.TariffLookupService
	searchService tariff.TariffSearchService
	collector     *metrics.Collector
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.APIConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := persistence.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	if err := persistence.EnsureIndexes(db); err != nil {
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	exportLineRepo, err := persistence.NewGormExportLineRepository(db, cfg.Import.BatchSize, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create export line repository: %w", err)
	}

	importLineRepo, err := persistence.NewGormImportLineRepository(db, cfg.Import.BatchSize, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create import line repository: %w", err)
	}

	// Initialize services
	lookupService, err := app.NewTariffLookupService(exportLineRepo, importLineRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create lookup service: %w", err)
	}

	searchService, err := app.NewTariffSearchService(exportLineRepo, importLineRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create search service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appDependencies{
		db:            db,
		lookupService: lookupService,
		searchService: searchService,
		collector:     metrics.NewCollector(),
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.APIConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Record request metrics for every route
	r.Use(metrics.Middleware(deps.collector))

	// Setup API routes
	v1.SetupRoutes(r, deps.lookupService, deps.searchService, databasePinger(deps.db))

	// Expose Prometheus metrics
	r.GET("/metrics", metrics.Handler())

	// Create HTTP server
	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           r,
		ReadHeaderTimeout: time.Duration(cfg.Server.ReadHeaderTimeoutSec) * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeoutSec)*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	if err := persistence.CloseDB(deps.db); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// databasePinger adapts the gorm connection to the health check contract
func databasePinger(db *gorm.DB) v1.Pinger {
	return func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}
