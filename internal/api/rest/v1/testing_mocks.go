//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/lllpei/tonban/internal/domain/tariff"

	"github.com/stretchr/testify/mock"
)

// MockTariffLookupService is a mock implementation of TariffLookupService
type MockTariffLookupService struct {
	mock.Mock
}

func (m *MockTariffLookupService) GetExportByCode(ctx context.Context, code string) (*tariff.Record, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tariff.Record), args.Error(1)
}

func (m *MockTariffLookupService) GetImportByCode(ctx context.Context, code string) (*tariff.ImportRecord, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tariff.ImportRecord), args.Error(1)
}

// MockTariffSearchService is a mock implementation of TariffSearchService
type MockTariffSearchService struct {
	mock.Mock
}

func (m *MockTariffSearchService) SearchExport(ctx context.Context, query *tariff.SearchQuery) ([]*tariff.Record, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tariff.Record), args.Error(1)
}

func (m *MockTariffSearchService) SearchImport(ctx context.Context, query *tariff.SearchQuery) ([]*tariff.ImportRecord, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tariff.ImportRecord), args.Error(1)
}
