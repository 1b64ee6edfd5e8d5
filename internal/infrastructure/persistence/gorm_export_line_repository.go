package persistence

import (
	"context"
	"fmt"

	"github.com/lllpei/tonban/internal/domain/tariff"
	"github.com/lllpei/tonban/internal/infrastructure/persistence/models"
	"github.com/lllpei/tonban/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormExportLineRepository struct {
	db        *gorm.DB
	batchSize int
	logger    logger.Logger
}

// NewGormExportLineRepository creates a new GORM-based ExportLineRepository implementation
func NewGormExportLineRepository(db *gorm.DB, batchSize int, logger logger.Logger) (tariff.ExportLineRepository, error) {
	if batchSize < 1 {
		return nil, fmt.Errorf("batch size must be positive, got %d", batchSize)
	}
	return &gormExportLineRepository{
		db:        db,
		batchSize: batchSize,
		logger:    logger,
	}, nil
}

func (r *gormExportLineRepository) GetByCode(ctx context.Context, code string) (*tariff.Record, error) {
	var rows []*models.RecordRow
	err := joinedLines(r.db.WithContext(ctx), models.ExportLineModel{}.TableName()).
		Select(selectRecordColumns).
		Where("te.code = ?", code).
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch export line: %w", err)
	}
	if len(rows) == 0 {
		return nil, tariff.ErrCodeNotFound
	}

	return rows[0].ToDomain(), nil
}

func (r *gormExportLineRepository) Search(ctx context.Context, query *tariff.SearchQuery) ([]*tariff.Record, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}
	query.Normalize()

	var rows []*models.RecordRow
	dbQuery := joinedLines(r.db.WithContext(ctx), models.ExportLineModel{}.TableName()).
		Select(selectRecordColumns)
	dbQuery = keywordClause(dbQuery, query.Keyword).
		Order("te.code").
		Limit(query.Limit)

	if err := dbQuery.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to search export lines: %w", err)
	}

	records := make([]*tariff.Record, len(rows))
	for i, row := range rows {
		records[i] = row.ToDomain()
	}

	r.logger.Debug("Export search for ", query.Keyword, " returned ", len(records), " records")
	return records, nil
}

func (r *gormExportLineRepository) BulkInsert(ctx context.Context, lines []*tariff.ExportLine) error {
	modelList, err := exportLineModels(lines)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).CreateInBatches(modelList, r.batchSize).Error; err != nil {
		return fmt.Errorf("failed to bulk insert export lines: %w", err)
	}

	r.logger.Info("Inserted ", len(modelList), " export lines")
	return nil
}

func (r *gormExportLineRepository) ReplaceAll(ctx context.Context, lines []*tariff.ExportLine) error {
	modelList, err := exportLineModels(lines)
	if err != nil {
		return err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM " + models.ExportLineModel{}.TableName()).Error; err != nil {
			return fmt.Errorf("failed to clear export lines: %w", err)
		}
		if len(modelList) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(modelList, r.batchSize).Error; err != nil {
			return fmt.Errorf("failed to bulk insert export lines: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Replaced export lines with ", len(modelList), " rows")
	return nil
}

func (r *gormExportLineRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ExportLineModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count export lines: %w", err)
	}
	return count, nil
}

func exportLineModels(lines []*tariff.ExportLine) ([]*models.ExportLineModel, error) {
	modelList := make([]*models.ExportLineModel, len(lines))
	for i, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, fmt.Errorf("validation error at row %d: %w", i+1, err)
		}
		model := &models.ExportLineModel{}
		model.FromDomain(line)
		modelList[i] = model
	}
	return modelList, nil
}
