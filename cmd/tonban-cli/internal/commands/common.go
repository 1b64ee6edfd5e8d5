package commands

import (
	"fmt"

	"github.com/lllpei/tonban/internal/app"
	"github.com/lllpei/tonban/internal/domain/dataset"
	"github.com/lllpei/tonban/internal/infrastructure/metrics"
	"github.com/lllpei/tonban/internal/infrastructure/persistence"
	"github.com/lllpei/tonban/internal/pkg/config"
	"github.com/lllpei/tonban/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// commandContext bundles the components a CLI command needs at run time.
// It is built per invocation because the configuration path comes from
// the --config flag.
type commandContext struct {
	cfg           *config.CLIConfig
	db            *gorm.DB
	importService dataset.DatasetImportService
	logger        logger.Logger
}

func setupContext(cmd *cobra.Command) (*commandContext, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("invalid config flag: %w", err)
	}

	cfg, err := config.InitializeCLIConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := persistence.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	classificationRepo, err := persistence.NewGormClassificationRepository(db, cfg.Import.BatchSize, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create classification repository: %w", err)
	}

	exportLineRepo, err := persistence.NewGormExportLineRepository(db, cfg.Import.BatchSize, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create export line repository: %w", err)
	}

	importLineRepo, err := persistence.NewGormImportLineRepository(db, cfg.Import.BatchSize, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create import line repository: %w", err)
	}

	importService, err := app.NewDatasetImportService(
		classificationRepo, exportLineRepo, importLineRepo,
		metrics.NewCollector(), cfg.Import.Workers, loggerInstance,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create import service: %w", err)
	}

	return &commandContext{
		cfg:           cfg,
		db:            db,
		importService: importService,
		logger:        loggerInstance,
	}, nil
}

func (c *commandContext) close() {
	if err := persistence.CloseDB(c.db); err != nil {
		c.logger.Error("failed to close database ", err)
	}
}
