//go:build integration
// +build integration

package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/lllpei/tonban/internal/domain/tariff"
	"github.com/lllpei/tonban/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportLineSqliteRepository_GetByCode(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	SeedClassification(t, ctx)

	line := CreateTestExportLine(t, "8407.2100", "船外機（火花点火式）")
	require.NoError(t, ctx.ExportLineRepo.BulkInsert(context.Background(), []*tariff.ExportLine{line}))

	record, err := ctx.ExportLineRepo.GetByCode(context.Background(), "8407.2100")
	require.NoError(t, err)
	assert.Equal(t, "8407.2100", record.Code)
	assert.Equal(t, "8407.21", record.SubheadingCode)
	assert.Equal(t, "8407", record.HeadingCode)
	assert.Equal(t, "84", record.ChapterCode)
	assert.Equal(t, "16", record.SectionCode)
	assert.Equal(t, "船外機", record.SubheadingTitle)
	assert.Equal(t, "類注1", record.ChapterNotes)
	assert.Equal(t, "NO", record.Unit1)
}

func TestExportLineSqliteRepository_GetByCode_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	SeedClassification(t, ctx)

	_, err := ctx.ExportLineRepo.GetByCode(context.Background(), "0000.0000")
	require.Error(t, err)
	assert.True(t, errors.Is(err, tariff.ErrCodeNotFound))
}

func TestExportLineSqliteRepository_Search_ByItemName(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	SeedClassification(t, ctx)

	lines := []*tariff.ExportLine{
		CreateTestExportLine(t, "8407.2900", "その他の船舶推進用エンジン"),
		CreateTestExportLine(t, "8407.2100", "船外機（火花点火式）"),
	}
	require.NoError(t, ctx.ExportLineRepo.BulkInsert(context.Background(), lines))

	query := &tariff.SearchQuery{Keyword: "船外機", Limit: 100}
	records, err := ctx.ExportLineRepo.Search(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "8407.2100", records[0].Code)
}

func TestExportLineSqliteRepository_Search_ByClassificationTitle(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	SeedClassification(t, ctx)

	lines := []*tariff.ExportLine{
		CreateTestExportLine(t, "8407.2900", "その他の船舶推進用エンジン"),
		CreateTestExportLine(t, "8407.2100", "船外機（火花点火式）"),
	}
	require.NoError(t, ctx.ExportLineRepo.BulkInsert(context.Background(), lines))

	// "機械類" matches through the section title, so every line under the
	// section comes back, ordered by code.
	query := &tariff.SearchQuery{Keyword: "機械類", Limit: 100}
	records, err := ctx.ExportLineRepo.Search(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "8407.2100", records[0].Code)
	assert.Equal(t, "8407.2900", records[1].Code)
}

func TestExportLineSqliteRepository_Search_RespectsLimit(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	SeedClassification(t, ctx)

	lines := []*tariff.ExportLine{
		CreateTestExportLine(t, "8407.2100", "船外機（火花点火式）"),
		CreateTestExportLine(t, "8407.2900", "その他の船舶推進用エンジン"),
		CreateTestExportLine(t, "8407.2910", "水上オートバイ用エンジン"),
	}
	require.NoError(t, ctx.ExportLineRepo.BulkInsert(context.Background(), lines))

	query := &tariff.SearchQuery{Keyword: "エンジン", Limit: 1}
	records, err := ctx.ExportLineRepo.Search(context.Background(), query)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestExportLineSqliteRepository_Search_RejectsShortKeyword(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	query := &tariff.SearchQuery{Keyword: "船", Limit: 100}
	_, err := ctx.ExportLineRepo.Search(context.Background(), query)
	require.Error(t, err)
}

func TestExportLineSqliteRepository_ReplaceAll(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	SeedClassification(t, ctx)

	first := []*tariff.ExportLine{
		CreateTestExportLine(t, "8407.2100", "船外機（火花点火式）"),
		CreateTestExportLine(t, "8407.2900", "その他の船舶推進用エンジン"),
	}
	require.NoError(t, ctx.ExportLineRepo.ReplaceAll(context.Background(), first))

	second := []*tariff.ExportLine{
		CreateTestExportLine(t, "8407.2910", "水上オートバイ用エンジン"),
	}
	require.NoError(t, ctx.ExportLineRepo.ReplaceAll(context.Background(), second))

	count, err := ctx.ExportLineRepo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	_, err = ctx.ExportLineRepo.GetByCode(context.Background(), "8407.2100")
	assert.True(t, errors.Is(err, tariff.ErrCodeNotFound))
}

func TestExportLineSqliteRepository_BulkInsert_RejectsInvalidLine(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	SeedClassification(t, ctx)

	lines := []*tariff.ExportLine{
		CreateTestExportLine(t, "8407.2100", "船外機（火花点火式）"),
		{Code: "bad", ItemName: "不正な統番"},
	}
	err := ctx.ExportLineRepo.BulkInsert(context.Background(), lines)
	require.Error(t, err)

	// Nothing may be written when validation fails
	count, countErr := ctx.ExportLineRepo.Count(context.Background())
	require.NoError(t, countErr)
	assert.Equal(t, int64(0), count)
}
