package persistence

import (
	"fmt"

	"github.com/lllpei/tonban/internal/infrastructure/persistence/models"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for all tariff tables.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.SectionModel{},
		&models.ChapterModel{},
		&models.HeadingModel{},
		&models.SubheadingModel{},
		&models.ExportLineModel{},
		&models.ImportLineModel{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// EnsureIndexes creates the lookup indexes if they do not exist. The code
// columns are primary keys and already indexed; the item name columns need
// explicit indexes for keyword search.
func EnsureIndexes(db *gorm.DB) error {
	stmts := []string{
		"CREATE INDEX IF NOT EXISTS idx_export_lines_item_name ON export_lines(item_name)",
		"CREATE INDEX IF NOT EXISTS idx_import_lines_item_name ON import_lines(item_name)",
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}
