//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lllpei/tonban/internal/domain/tariff"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testExportRecord() *tariff.Record {
	return &tariff.Record{
		SectionCode:     "16",
		ChapterCode:     "84",
		HeadingCode:     "8407",
		SubheadingCode:  "8407.21",
		Code:            "8407.2100",
		SectionTitle:    "機械類及び電気機器",
		ChapterTitle:    "原子炉、ボイラー及び機械類",
		HeadingTitle:    "ピストン式火花点火内燃機関",
		SubheadingTitle: "船外機",
		ItemName:        "船外機（火花点火式）",
		Unit1:           "NO",
		Unit2:           "KG",
	}
}

func performRequest(t *testing.T, url string) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", url, nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return w, c
}

func TestExportHandler_GetByCode_Success(t *testing.T) {
	mockLookupService := new(MockTariffLookupService)
	mockSearchService := new(MockTariffSearchService)

	handler := NewExportHandler(mockLookupService, mockSearchService)

	mockLookupService.
		On("GetExportByCode", mock.Anything, "8407.2100").
		Return(testExportRecord(), nil)

	w, c := performRequest(t, "/tonban/export?code=8407.2100")
	handler.GetByCode(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"resultCd":true`)
	assert.Contains(t, w.Body.String(), "8407.2100")
	assert.Contains(t, w.Body.String(), "船外機")
	mockLookupService.AssertExpectations(t)
}

func TestExportHandler_GetByCode_MissingCode(t *testing.T) {
	mockLookupService := new(MockTariffLookupService)
	mockSearchService := new(MockTariffSearchService)

	handler := NewExportHandler(mockLookupService, mockSearchService)

	w, c := performRequest(t, "/tonban/export")
	handler.GetByCode(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"resultCd":false`)
	mockLookupService.AssertNotCalled(t, "GetExportByCode")
}

func TestExportHandler_GetByCode_NotFound(t *testing.T) {
	mockLookupService := new(MockTariffLookupService)
	mockSearchService := new(MockTariffSearchService)

	handler := NewExportHandler(mockLookupService, mockSearchService)

	mockLookupService.
		On("GetExportByCode", mock.Anything, "0000.0000").
		Return(nil, tariff.ErrCodeNotFound)

	w, c := performRequest(t, "/tonban/export?code=0000.0000")
	handler.GetByCode(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"resultCd":false`)
	assert.Contains(t, w.Body.String(), "not found")
}

func TestExportHandler_Search_Success(t *testing.T) {
	mockLookupService := new(MockTariffLookupService)
	mockSearchService := new(MockTariffSearchService)

	handler := NewExportHandler(mockLookupService, mockSearchService)

	mockSearchService.
		On("SearchExport", mock.Anything, mock.Anything).
		Return([]*tariff.Record{testExportRecord()}, nil)

	w, c := performRequest(t, "/tonban/export/search?q=船外機")
	handler.Search(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"resultCd":true`)
	assert.Contains(t, w.Body.String(), "8407.2100")
	mockSearchService.AssertExpectations(t)
}

func TestExportHandler_Search_EmptyResultIsArray(t *testing.T) {
	mockLookupService := new(MockTariffLookupService)
	mockSearchService := new(MockTariffSearchService)

	handler := NewExportHandler(mockLookupService, mockSearchService)

	mockSearchService.
		On("SearchExport", mock.Anything, mock.Anything).
		Return([]*tariff.Record{}, nil)

	w, c := performRequest(t, "/tonban/export/search?q=存在しない品名")
	handler.Search(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestExportHandler_Search_ShortKeyword(t *testing.T) {
	mockLookupService := new(MockTariffLookupService)
	mockSearchService := new(MockTariffSearchService)

	handler := NewExportHandler(mockLookupService, mockSearchService)

	w, c := performRequest(t, "/tonban/export/search?q=船")
	handler.Search(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"resultCd":false`)
	mockSearchService.AssertNotCalled(t, "SearchExport")
}

func TestExportHandler_Search_InvalidLimit(t *testing.T) {
	mockLookupService := new(MockTariffLookupService)
	mockSearchService := new(MockTariffSearchService)

	handler := NewExportHandler(mockLookupService, mockSearchService)

	w, c := performRequest(t, "/tonban/export/search?q=船外機&limit=abc")
	handler.Search(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "integer")
	mockSearchService.AssertNotCalled(t, "SearchExport")
}

func TestExportHandler_Search_EmptyLimit(t *testing.T) {
	mockLookupService := new(MockTariffLookupService)
	mockSearchService := new(MockTariffSearchService)

	handler := NewExportHandler(mockLookupService, mockSearchService)

	w, c := performRequest(t, "/tonban/export/search?q=船外機&limit=")
	handler.Search(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "integer")
	mockSearchService.AssertNotCalled(t, "SearchExport")
}

func TestExportHandler_Search_PassesLimit(t *testing.T) {
	mockLookupService := new(MockTariffLookupService)
	mockSearchService := new(MockTariffSearchService)

	handler := NewExportHandler(mockLookupService, mockSearchService)

	mockSearchService.
		On("SearchExport", mock.Anything, mock.MatchedBy(func(q *tariff.SearchQuery) bool {
			return q.Limit == 5 && q.Keyword == "船外機"
		})).
		Return([]*tariff.Record{}, nil)

	w, c := performRequest(t, "/tonban/export/search?q=船外機&limit=5")
	handler.Search(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSearchService.AssertExpectations(t)
}
