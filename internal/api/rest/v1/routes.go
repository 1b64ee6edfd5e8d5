package v1

import (
	"github.com/lllpei/tonban/internal/domain/tariff"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes.
func SetupRoutes(r *gin.Engine,
	lookupService tariff.TariffLookupService,
	searchService tariff.TariffSearchService,
	ping Pinger) {

	tonban := r.Group(BasePath) // lookup in version file

	// Export routes
	exportHandler := NewExportHandler(lookupService, searchService)
	tonban.GET("/export", exportHandler.GetByCode)
	tonban.GET("/export/search", exportHandler.Search)

	// Import routes
	importHandler := NewImportHandler(lookupService, searchService)
	tonban.GET("/import", importHandler.GetByCode)
	tonban.GET("/import/search", importHandler.Search)

	// Health route
	healthHandler := NewHealthHandler(ping)
	tonban.GET("/healthz", healthHandler.Check)
}
