package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/lllpei/tonban/internal/domain/tariff"

	"github.com/gin-gonic/gin"
)

// ImportHandler defines the interface for handling import table requests
type ImportHandler interface {
	GetByCode(ctx *gin.Context)
	Search(ctx *gin.Context)
}

type importHandler struct {
	lookupService tariff.TariffLookupService
	searchService tariff.TariffSearchService
}

// NewImportHandler creates a new ImportHandler
func NewImportHandler(lookupService tariff.TariffLookupService, searchService tariff.TariffSearchService) ImportHandler {
	return &importHandler{
		lookupService: lookupService,
		searchService: searchService,
	}
}

// GetByCode handles the GET request to retrieve a single import record
// @Summary Retrieve an import record by statistical code
// @Description Fetch the import statistical code line, including duty rates, joined with its classification hierarchy.
// @Tags Import
// @Accept json
// @Produce json
// @Param code query string true "Statistical code"
// @Success 200 {object} APIResponse
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /tonban/import [get]
func (handler *importHandler) GetByCode(ctx *gin.Context) {
	code := strings.TrimSpace(ctx.Query("code"))
	if code == "" {
		ctx.JSON(http.StatusBadRequest, errorResponse("code parameter is required"))
		return
	}

	record, err := handler.lookupService.GetImportByCode(ctx, code)
	if err != nil {
		if errors.Is(err, tariff.ErrCodeNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(fmt.Sprintf("statistical code %s not found", code)))
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse("failed to fetch import record"))
		return
	}

	ctx.JSON(http.StatusOK, successResponse([]ImportRecordResponse{importRecordResponseFrom(record)}))
}

// Search handles the GET request to search import records by keyword
// @Summary Search import records by keyword
// @Description Search item names and classification titles, ordered by statistical code. Records include duty rates.
// @Tags Import
// @Accept json
// @Produce json
// @Param q query string true "Keyword (at least 2 characters)"
// @Param limit query int false "Maximum number of results (1-1000, default 100)"
// @Success 200 {object} APIResponse
// @Failure 400 {object} APIResponse
// @Router /tonban/import/search [get]
func (handler *importHandler) Search(ctx *gin.Context) {
	query, ok := bindSearchQuery(ctx)
	if !ok {
		return
	}

	records, err := handler.searchService.SearchImport(ctx, query)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse("search failed"))
		return
	}

	listResponse := []ImportRecordResponse{}
	for _, record := range records {
		listResponse = append(listResponse, importRecordResponseFrom(record))
	}

	ctx.JSON(http.StatusOK, successResponse(listResponse))
}
