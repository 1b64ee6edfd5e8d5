//go:build integration
// +build integration

package app

import (
	"context"
	"errors"
	"testing"

	"github.com/lllpei/tonban/internal/domain/tariff"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupService_GetExportByCode(t *testing.T) {
	ctx := SetupServices(t)
	SeedLines(t, ctx)

	record, err := ctx.LookupService.GetExportByCode(context.Background(), "8407.2100")
	require.NoError(t, err)
	assert.Equal(t, "8407.2100", record.Code)
	assert.Equal(t, "船外機", record.SubheadingTitle)
}

func TestLookupService_GetExportByCode_TrimsWhitespace(t *testing.T) {
	ctx := SetupServices(t)
	SeedLines(t, ctx)

	record, err := ctx.LookupService.GetExportByCode(context.Background(), "  8407.2100  ")
	require.NoError(t, err)
	assert.Equal(t, "8407.2100", record.Code)
}

func TestLookupService_GetExportByCode_Empty(t *testing.T) {
	ctx := SetupServices(t)

	_, err := ctx.LookupService.GetExportByCode(context.Background(), "   ")
	require.Error(t, err)
}

func TestLookupService_GetImportByCode_NotFound(t *testing.T) {
	ctx := SetupServices(t)
	SeedLines(t, ctx)

	_, err := ctx.LookupService.GetImportByCode(context.Background(), "9999.9999")
	require.Error(t, err)
	assert.True(t, errors.Is(err, tariff.ErrCodeNotFound))
}

func TestSearchService_SearchExport(t *testing.T) {
	ctx := SetupServices(t)
	SeedLines(t, ctx)

	query := &tariff.SearchQuery{Keyword: "船外機", Limit: 100}
	records, err := ctx.SearchService.SearchExport(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "8407.2100", records[0].Code)
}

func TestSearchService_SearchImport_IncludesRates(t *testing.T) {
	ctx := SetupServices(t)
	SeedLines(t, ctx)

	query := &tariff.SearchQuery{Keyword: "船外機", Limit: 100}
	records, err := ctx.SearchService.SearchImport(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "無税", records[0].Rates.Basic)
}

func TestSearchService_ClampsLimit(t *testing.T) {
	ctx := SetupServices(t)
	SeedLines(t, ctx)

	query := &tariff.SearchQuery{Keyword: "船外機", Limit: 5000}
	_, err := ctx.SearchService.SearchExport(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, tariff.MaxLimit, query.Limit)
}

func TestSearchService_RejectsShortKeyword(t *testing.T) {
	ctx := SetupServices(t)

	query := &tariff.SearchQuery{Keyword: "船", Limit: 100}
	_, err := ctx.SearchService.SearchExport(context.Background(), query)
	require.Error(t, err)
}
