package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/location-search/app/models"
	"github.com/location-search/app/responses"
	"github.com/location-search/app/services"
	"github.com/location-search/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSearcher struct {
	result *services.SearchResult
	err    error
	got    search.Query
}

func (s *stubSearcher) Search(ctx context.Context, q search.Query) (*services.SearchResult, error) {
	s.got = q
	return s.result, s.err
}

func newSearchRouter(s Searcher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	sc := NewSearchController(s, zap.NewNop())
	r.GET("/v1/locations/search", sc.SearchLocations)
	r.GET("/v1/health", sc.HealthCheck)
	return r
}

func TestSearchLocations_OK(t *testing.T) {
	avg, count := 4.5, 2
	stub := &stubSearcher{result: &services.SearchResult{
		Items: []models.Location{{
			Name: "Quán Hải Sản Mỹ Khê", Category: "Ẩm thực", Province: "Đà Nẵng",
			Status: models.LocationStatusApproved, RatingAvg: &avg, RatingCount: &count,
		}},
		Pagination: search.Pagination{Page: 1, PageSize: 12, Total: 1, TotalPages: 1},
	}}
	r := newSearchRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/locations/search?freeText=hai+san+o+da+nang&ratingMin=abc&includeRatings=true&sort=rating&pageSize=1000", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hai san o da nang", stub.got.FreeText)
	assert.True(t, stub.got.Rating.IsZero())
	assert.True(t, stub.got.IncludeRatings)
	assert.Equal(t, search.SortRating, stub.got.Sort)
	assert.Equal(t, 100, stub.got.PageSize)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	items := body["items"].([]interface{})
	require.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assert.Equal(t, "Ẩm thực", item["category"])
	assert.Equal(t, 4.5, item["ratingAvg"])
	assert.NotContains(t, item, "status")

	pagination := body["pagination"].(map[string]interface{})
	assert.Equal(t, float64(1), pagination["totalPages"])
}

func TestSearchLocations_EmptyItemsIsArray(t *testing.T) {
	r := newSearchRouter(&stubSearcher{result: &services.SearchResult{
		Items:      []models.Location{},
		Pagination: search.Pagination{Page: 3, PageSize: 12, Total: 5, TotalPages: 1},
	}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/locations/search?page=3", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"items":[]`)
}

func TestSearchLocations_UpstreamFailure(t *testing.T) {
	r := newSearchRouter(&stubSearcher{err: services.ErrUpstreamFailure})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/locations/search?freeText=cafe", nil))

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp responses.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "UPSTREAM_UNAVAILABLE", resp.Error)
}

func TestSearchLocations_UnexpectedError(t *testing.T) {
	r := newSearchRouter(&stubSearcher{err: fmt.Errorf("mongo: socket closed")})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/locations/search", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "socket closed")
}

func TestHealthCheck(t *testing.T) {
	r := newSearchRouter(&stubSearcher{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp responses.HealthCheckResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
}
