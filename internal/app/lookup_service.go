// Package app wires the domain contracts to their implementations: code
// lookup, keyword search and dataset import services.
package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/lllpei/tonban/internal/domain/tariff"
	"github.com/lllpei/tonban/internal/pkg/logger"
)

// lookupService implements the TariffLookupService interface
type lookupService struct {
	exportLineRepo tariff.ExportLineRepository
	importLineRepo tariff.ImportLineRepository
	logger         logger.Logger
}

// NewTariffLookupService creates a new lookupService instance
func NewTariffLookupService(
	exportLineRepo tariff.ExportLineRepository,
	importLineRepo tariff.ImportLineRepository,
	logger logger.Logger,
) (tariff.TariffLookupService, error) {
	return &lookupService{
		exportLineRepo: exportLineRepo,
		importLineRepo: importLineRepo,
		logger:         logger,
	}, nil
}

// GetExportByCode retrieves the export record for a statistical code.
// It returns ErrCodeNotFound when the code is unknown.
func (s *lookupService) GetExportByCode(ctx context.Context, code string) (*tariff.Record, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("code must not be empty")
	}

	record, err := s.exportLineRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Export lookup for ", code)
	return record, nil
}

// GetImportByCode retrieves the import record, including duty rates, for a
// statistical code. It returns ErrCodeNotFound when the code is unknown.
func (s *lookupService) GetImportByCode(ctx context.Context, code string) (*tariff.ImportRecord, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("code must not be empty")
	}

	record, err := s.importLineRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Import lookup for ", code)
	return record, nil
}
