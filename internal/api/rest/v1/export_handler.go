package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/lllpei/tonban/internal/domain/tariff"

	"github.com/gin-gonic/gin"
)

// ExportHandler defines the interface for handling export table requests
type ExportHandler interface {
	GetByCode(ctx *gin.Context)
	Search(ctx *gin.Context)
}

type exportHandler struct {
	lookupService tariff.TariffLookupService
	searchService tariff.TariffSearchService
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(lookupService tariff.TariffLookupService, searchService tariff.TariffSearchService) ExportHandler {
	return &exportHandler{
		lookupService: lookupService,
		searchService: searchService,
	}
}

// GetByCode handles the GET request to retrieve a single export record
// @Summary Retrieve an export record by statistical code
// @Description Fetch the export statistical code line joined with its classification hierarchy.
// @Tags Export
// @Accept json
// @Produce json
// @Param code query string true "Statistical code"
// @Success 200 {object} APIResponse
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /tonban/export [get]
func (handler *exportHandler) GetByCode(ctx *gin.Context) {
	code := strings.TrimSpace(ctx.Query("code"))
	if code == "" {
		ctx.JSON(http.StatusBadRequest, errorResponse("code parameter is required"))
		return
	}

	record, err := handler.lookupService.GetExportByCode(ctx, code)
	if err != nil {
		if errors.Is(err, tariff.ErrCodeNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(fmt.Sprintf("statistical code %s not found", code)))
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse("failed to fetch export record"))
		return
	}

	ctx.JSON(http.StatusOK, successResponse([]RecordResponse{recordResponseFrom(record)}))
}

// Search handles the GET request to search export records by keyword
// @Summary Search export records by keyword
// @Description Search item names and classification titles, ordered by statistical code.
// @Tags Export
// @Accept json
// @Produce json
// @Param q query string true "Keyword (at least 2 characters)"
// @Param limit query int false "Maximum number of results (1-1000, default 100)"
// @Success 200 {object} APIResponse
// @Failure 400 {object} APIResponse
// @Router /tonban/export/search [get]
func (handler *exportHandler) Search(ctx *gin.Context) {
	query, ok := bindSearchQuery(ctx)
	if !ok {
		return
	}

	records, err := handler.searchService.SearchExport(ctx, query)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse("search failed"))
		return
	}

	listResponse := []RecordResponse{}
	for _, record := range records {
		listResponse = append(listResponse, recordResponseFrom(record))
	}

	ctx.JSON(http.StatusOK, successResponse(listResponse))
}

// bindSearchQuery extracts and validates the common q/limit parameters,
// writing the error response itself when they are invalid.
func bindSearchQuery(ctx *gin.Context) (*tariff.SearchQuery, bool) {
	query := tariff.NewSearchQuery()
	query.Keyword = strings.TrimSpace(ctx.Query("q"))

	if limit, ok := ctx.GetQuery("limit"); ok {
		n, err := strconv.Atoi(limit)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, errorResponse("limit parameter must be an integer"))
			return nil, false
		}
		query.Limit = n
	}

	if err := query.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(fmt.Sprintf("q parameter must be at least %d characters", tariff.MinKeywordLength)))
		return nil, false
	}

	return query, true
}
