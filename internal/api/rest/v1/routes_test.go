//go:build unit
// +build unit

package v1

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTestRouter(ping Pinger) (*gin.Engine, *MockTariffLookupService, *MockTariffSearchService) {
	gin.SetMode(gin.TestMode)

	mockLookupService := new(MockTariffLookupService)
	mockSearchService := new(MockTariffSearchService)

	r := gin.New()
	SetupRoutes(r, mockLookupService, mockSearchService, ping)
	return r, mockLookupService, mockSearchService
}

func TestSetupRoutes_RegistersAllRoutes(t *testing.T) {
	r, mockLookupService, mockSearchService := setupTestRouter(func(ctx context.Context) error { return nil })

	mockLookupService.On("GetExportByCode", mock.Anything, mock.Anything).Return(testExportRecord(), nil)
	mockLookupService.On("GetImportByCode", mock.Anything, mock.Anything).Return(testImportRecord(), nil)
	mockSearchService.On("SearchExport", mock.Anything, mock.Anything).Return(nil, nil)
	mockSearchService.On("SearchImport", mock.Anything, mock.Anything).Return(nil, nil)

	routes := []string{
		"/tonban/export?code=8407.2100",
		"/tonban/export/search?q=船外機",
		"/tonban/import?code=8407.2100",
		"/tonban/import/search?q=船外機",
		"/tonban/healthz",
	}

	for _, route := range routes {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", route, nil)
		r.ServeHTTP(w, req)

		assert.NotEqual(t, http.StatusNotFound, w.Code, "route %s should be registered", route)
	}
}

func TestSetupRoutes_HealthzHealthy(t *testing.T) {
	r, _, _ := setupTestRouter(func(ctx context.Context) error { return nil })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/tonban/healthz", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestSetupRoutes_HealthzUnhealthy(t *testing.T) {
	r, _, _ := setupTestRouter(func(ctx context.Context) error { return errors.New("connection refused") })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/tonban/healthz", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "connection refused")
}
