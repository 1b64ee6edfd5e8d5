//go:build integration
// +build integration

package persistence

import (
	"context"
	"strings"
	"testing"

	"github.com/lllpei/tonban/internal/domain/tariff"
	"github.com/lllpei/tonban/internal/pkg/config"
	"github.com/lllpei/tonban/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Test batch size kept small so batching is exercised by modest fixtures
const TestBatchSize = 2

// TestContext holds test database and repositories
type TestContext struct {
	DB                 *gorm.DB
	ExportLineRepo     tariff.ExportLineRepository
	ImportLineRepo     tariff.ImportLineRepository
	ClassificationRepo tariff.ClassificationRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")
	require.NoError(t, EnsureIndexes(db), "Failed to create indexes")

	log := testutil.SetupTestLogger(t)

	exportRepo, err := NewGormExportLineRepository(db, TestBatchSize, log)
	require.NoError(t, err, "Failed to create export line repository")

	importRepo, err := NewGormImportLineRepository(db, TestBatchSize, log)
	require.NoError(t, err, "Failed to create import line repository")

	classificationRepo, err := NewGormClassificationRepository(db, TestBatchSize, log)
	require.NoError(t, err, "Failed to create classification repository")

	return &TestContext{
		DB:                 db,
		ExportLineRepo:     exportRepo,
		ImportLineRepo:     importRepo,
		ClassificationRepo: classificationRepo,
	}
}

// SeedClassification loads a small classification tree:
// section 16 > chapter 84 > heading 8407 > subheadings 8407.21 and 8407.29.
func SeedClassification(t *testing.T, ctx *TestContext) {
	t.Helper()

	require.NoError(t, ctx.ClassificationRepo.ReplaceSections(context.Background(), []*tariff.Section{
		{Code: "16", Title: "機械類及び電気機器", Notes: "部注1"},
	}))
	require.NoError(t, ctx.ClassificationRepo.ReplaceChapters(context.Background(), []*tariff.Chapter{
		{Code: "84", SectionCode: "16", Title: "原子炉、ボイラー及び機械類", Notes: "類注1"},
	}))
	require.NoError(t, ctx.ClassificationRepo.ReplaceHeadings(context.Background(), []*tariff.Heading{
		{Code: "8407", ChapterCode: "84", Title: "ピストン式火花点火内燃機関"},
	}))
	require.NoError(t, ctx.ClassificationRepo.ReplaceSubheadings(context.Background(), []*tariff.Subheading{
		{Code: "8407.21", HeadingCode: "8407", Title: "船外機"},
		{Code: "8407.29", HeadingCode: "8407", Title: "その他のもの"},
	}))
}

// CreateTestExportLine creates an export line under subheading 8407.21
func CreateTestExportLine(t *testing.T, code, itemName string) *tariff.ExportLine {
	t.Helper()

	return &tariff.ExportLine{
		Code:      code,
		ItemName:  itemName,
		Unit1:     "NO",
		Unit2:     "KG",
		OtherLaws: "",
	}
}

// CreateTestImportLine creates an import line with representative duty rates
func CreateTestImportLine(t *testing.T, code, itemName string) *tariff.ImportLine {
	t.Helper()

	return &tariff.ImportLine{
		Code:      code,
		ItemName:  itemName,
		Unit1:     "NO",
		Unit2:     "KG",
		OtherLaws: "",
		Rates: tariff.DutyRates{
			Basic:    "無税",
			WTO:      "無税",
			EPACPTPP: "無税",
		},
	}
}
