package app

import (
	"context"
	"fmt"

	"github.com/lllpei/tonban/internal/domain/tariff"
	"github.com/lllpei/tonban/internal/pkg/logger"
)

// searchService implements the TariffSearchService interface
type searchService struct {
	exportLineRepo tariff.ExportLineRepository
	importLineRepo tariff.ImportLineRepository
	logger         logger.Logger
}

// NewTariffSearchService creates a new searchService instance
func NewTariffSearchService(
	exportLineRepo tariff.ExportLineRepository,
	importLineRepo tariff.ImportLineRepository,
	logger logger.Logger,
) (tariff.TariffSearchService, error) {
	return &searchService{
		exportLineRepo: exportLineRepo,
		importLineRepo: importLineRepo,
		logger:         logger,
	}, nil
}

// SearchExport returns export records matching the query, ordered by
// statistical code.
func (s *searchService) SearchExport(ctx context.Context, query *tariff.SearchQuery) ([]*tariff.Record, error) {
	if query == nil {
		return nil, fmt.Errorf("query must not be nil")
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}
	query.Normalize()

	return s.exportLineRepo.Search(ctx, query)
}

// SearchImport returns import records matching the query, ordered by
// statistical code.
func (s *searchService) SearchImport(ctx context.Context, query *tariff.SearchQuery) ([]*tariff.ImportRecord, error) {
	if query == nil {
		return nil, fmt.Errorf("query must not be nil")
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}
	query.Normalize()

	return s.importLineRepo.Search(ctx, query)
}
