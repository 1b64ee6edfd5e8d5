//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/lllpei/tonban/internal/domain/tariff"
	"github.com/lllpei/tonban/internal/infrastructure/persistence"
	"github.com/lllpei/tonban/internal/pkg/config"
	"github.com/lllpei/tonban/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// ServiceTestContext holds the services under test and their repositories
type ServiceTestContext struct {
	DB             *persistence.TestContext
	LookupService  tariff.TariffLookupService
	SearchService  tariff.TariffSearchService
	ExportLineRepo tariff.ExportLineRepository
	ImportLineRepo tariff.ImportLineRepository
}

// SetupServices builds the application services on an in-memory database
func SetupServices(t *testing.T) *ServiceTestContext {
	t.Helper()

	dbCtx := persistence.SetupTestDB(t, config.SqliteDbType)
	log := testutil.SetupTestLogger(t)

	lookupService, err := NewTariffLookupService(dbCtx.ExportLineRepo, dbCtx.ImportLineRepo, log)
	require.NoError(t, err)

	searchService, err := NewTariffSearchService(dbCtx.ExportLineRepo, dbCtx.ImportLineRepo, log)
	require.NoError(t, err)

	return &ServiceTestContext{
		DB:             dbCtx,
		LookupService:  lookupService,
		SearchService:  searchService,
		ExportLineRepo: dbCtx.ExportLineRepo,
		ImportLineRepo: dbCtx.ImportLineRepo,
	}
}

// SeedLines loads the shared classification tree plus one export and one
// import line.
func SeedLines(t *testing.T, ctx *ServiceTestContext) {
	t.Helper()

	persistence.SeedClassification(t, ctx.DB)

	exportLine := persistence.CreateTestExportLine(t, "8407.2100", "船外機（火花点火式）")
	require.NoError(t, ctx.ExportLineRepo.BulkInsert(context.Background(), []*tariff.ExportLine{exportLine}))

	importLine := persistence.CreateTestImportLine(t, "8407.2100", "船外機（火花点火式）")
	require.NoError(t, ctx.ImportLineRepo.BulkInsert(context.Background(), []*tariff.ImportLine{importLine}))
}
