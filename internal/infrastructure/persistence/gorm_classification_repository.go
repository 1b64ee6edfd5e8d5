package persistence

import (
	"context"
	"fmt"

	"github.com/lllpei/tonban/internal/domain/tariff"
	"github.com/lllpei/tonban/internal/infrastructure/persistence/models"
	"github.com/lllpei/tonban/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormClassificationRepository struct {
	db        *gorm.DB
	batchSize int
	logger    logger.Logger
}

// NewGormClassificationRepository creates a new GORM-based ClassificationRepository implementation
func NewGormClassificationRepository(db *gorm.DB, batchSize int, logger logger.Logger) (tariff.ClassificationRepository, error) {
	if batchSize < 1 {
		return nil, fmt.Errorf("batch size must be positive, got %d", batchSize)
	}
	return &gormClassificationRepository{
		db:        db,
		batchSize: batchSize,
		logger:    logger,
	}, nil
}

func (r *gormClassificationRepository) ReplaceSections(ctx context.Context, sections []*tariff.Section) error {
	modelList := make([]*models.SectionModel, len(sections))
	for i, section := range sections {
		if err := section.Validate(); err != nil {
			return fmt.Errorf("validation error at row %d: %w", i+1, err)
		}
		model := &models.SectionModel{}
		model.FromDomain(section)
		modelList[i] = model
	}

	return r.replaceTable(ctx, models.SectionModel{}.TableName(), len(modelList), func(tx *gorm.DB) error {
		return tx.CreateInBatches(modelList, r.batchSize).Error
	})
}

func (r *gormClassificationRepository) ReplaceChapters(ctx context.Context, chapters []*tariff.Chapter) error {
	modelList := make([]*models.ChapterModel, len(chapters))
	for i, chapter := range chapters {
		if err := chapter.Validate(); err != nil {
			return fmt.Errorf("validation error at row %d: %w", i+1, err)
		}
		model := &models.ChapterModel{}
		model.FromDomain(chapter)
		modelList[i] = model
	}

	return r.replaceTable(ctx, models.ChapterModel{}.TableName(), len(modelList), func(tx *gorm.DB) error {
		return tx.CreateInBatches(modelList, r.batchSize).Error
	})
}

func (r *gormClassificationRepository) ReplaceHeadings(ctx context.Context, headings []*tariff.Heading) error {
	modelList := make([]*models.HeadingModel, len(headings))
	for i, heading := range headings {
		if err := heading.Validate(); err != nil {
			return fmt.Errorf("validation error at row %d: %w", i+1, err)
		}
		model := &models.HeadingModel{}
		model.FromDomain(heading)
		modelList[i] = model
	}

	return r.replaceTable(ctx, models.HeadingModel{}.TableName(), len(modelList), func(tx *gorm.DB) error {
		return tx.CreateInBatches(modelList, r.batchSize).Error
	})
}

func (r *gormClassificationRepository) ReplaceSubheadings(ctx context.Context, subheadings []*tariff.Subheading) error {
	modelList := make([]*models.SubheadingModel, len(subheadings))
	for i, subheading := range subheadings {
		if err := subheading.Validate(); err != nil {
			return fmt.Errorf("validation error at row %d: %w", i+1, err)
		}
		model := &models.SubheadingModel{}
		model.FromDomain(subheading)
		modelList[i] = model
	}

	return r.replaceTable(ctx, models.SubheadingModel{}.TableName(), len(modelList), func(tx *gorm.DB) error {
		return tx.CreateInBatches(modelList, r.batchSize).Error
	})
}

func (r *gormClassificationRepository) Counts(ctx context.Context) (sections, chapters, headings, subheadings int64, err error) {
	db := r.db.WithContext(ctx)

	if err = db.Model(&models.SectionModel{}).Count(&sections).Error; err != nil {
		return 0, 0, 0, 0, fmt.Errorf("failed to count sections: %w", err)
	}
	if err = db.Model(&models.ChapterModel{}).Count(&chapters).Error; err != nil {
		return 0, 0, 0, 0, fmt.Errorf("failed to count chapters: %w", err)
	}
	if err = db.Model(&models.HeadingModel{}).Count(&headings).Error; err != nil {
		return 0, 0, 0, 0, fmt.Errorf("failed to count headings: %w", err)
	}
	if err = db.Model(&models.SubheadingModel{}).Count(&subheadings).Error; err != nil {
		return 0, 0, 0, 0, fmt.Errorf("failed to count subheadings: %w", err)
	}

	return sections, chapters, headings, subheadings, nil
}

// replaceTable clears a table and refills it inside a single transaction.
func (r *gormClassificationRepository) replaceTable(ctx context.Context, table string, rows int, insert func(tx *gorm.DB) error) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
		if rows == 0 {
			return nil
		}
		if err := insert(tx); err != nil {
			return fmt.Errorf("failed to bulk insert into %s: %w", table, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Replaced ", table, " with ", rows, " rows")
	return nil
}
