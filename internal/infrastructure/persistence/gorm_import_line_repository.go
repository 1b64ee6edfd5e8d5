package persistence

import (
	"context"
	"fmt"

	"github.com/lllpei/tonban/internal/domain/tariff"
	"github.com/lllpei/tonban/internal/infrastructure/persistence/models"
	"github.com/lllpei/tonban/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormImportLineRepository struct {
	db        *gorm.DB
	batchSize int
	logger    logger.Logger
}

// NewGormImportLineRepository creates a new GORM-based ImportLineRepository implementation
func NewGormImportLineRepository(db *gorm.DB, batchSize int, logger logger.Logger) (tariff.ImportLineRepository, error) {
	if batchSize < 1 {
		return nil, fmt.Errorf("batch size must be positive, got %d", batchSize)
	}
	return &gormImportLineRepository{
		db:        db,
		batchSize: batchSize,
		logger:    logger,
	}, nil
}

func (r *gormImportLineRepository) GetByCode(ctx context.Context, code string) (*tariff.ImportRecord, error) {
	var rows []*models.ImportRecordRow
	err := joinedLines(r.db.WithContext(ctx), models.ImportLineModel{}.TableName()).
		Select(selectRecordColumns + selectDutyRateColumns).
		Where("te.code = ?", code).
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch import line: %w", err)
	}
	if len(rows) == 0 {
		return nil, tariff.ErrCodeNotFound
	}

	return rows[0].ToDomain(), nil
}

func (r *gormImportLineRepository) Search(ctx context.Context, query *tariff.SearchQuery) ([]*tariff.ImportRecord, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}
	query.Normalize()

	var rows []*models.ImportRecordRow
	dbQuery := joinedLines(r.db.WithContext(ctx), models.ImportLineModel{}.TableName()).
		Select(selectRecordColumns + selectDutyRateColumns)
	dbQuery = keywordClause(dbQuery, query.Keyword).
		Order("te.code").
		Limit(query.Limit)

	if err := dbQuery.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to search import lines: %w", err)
	}

	records := make([]*tariff.ImportRecord, len(rows))
	for i, row := range rows {
		records[i] = row.ToDomain()
	}

	r.logger.Debug("Import search for ", query.Keyword, " returned ", len(records), " records")
	return records, nil
}

func (r *gormImportLineRepository) BulkInsert(ctx context.Context, lines []*tariff.ImportLine) error {
	modelList, err := importLineModels(lines)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).CreateInBatches(modelList, r.batchSize).Error; err != nil {
		return fmt.Errorf("failed to bulk insert import lines: %w", err)
	}

	r.logger.Info("Inserted ", len(modelList), " import lines")
	return nil
}

func (r *gormImportLineRepository) ReplaceAll(ctx context.Context, lines []*tariff.ImportLine) error {
	modelList, err := importLineModels(lines)
	if err != nil {
		return err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM " + models.ImportLineModel{}.TableName()).Error; err != nil {
			return fmt.Errorf("failed to clear import lines: %w", err)
		}
		if len(modelList) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(modelList, r.batchSize).Error; err != nil {
			return fmt.Errorf("failed to bulk insert import lines: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Replaced import lines with ", len(modelList), " rows")
	return nil
}

func (r *gormImportLineRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ImportLineModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count import lines: %w", err)
	}
	return count, nil
}

func importLineModels(lines []*tariff.ImportLine) ([]*models.ImportLineModel, error) {
	modelList := make([]*models.ImportLineModel, len(lines))
	for i, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, fmt.Errorf("validation error at row %d: %w", i+1, err)
		}
		model := &models.ImportLineModel{}
		model.FromDomain(line)
		modelList[i] = model
	}
	return modelList, nil
}
