package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/location-search/app/config"
	"github.com/location-search/app/requests"
	"github.com/location-search/app/responses"
	"github.com/location-search/app/services"
	"github.com/location-search/internal/search"
	"go.uber.org/zap"
)

// RequestIDKey key trong gin.Context do middleware request ID gán
const RequestIDKey = "request_id"

// Searcher thực hiện một lượt tìm kiếm
type Searcher interface {
	Search(ctx context.Context, q search.Query) (*services.SearchResult, error)
}

// SearchController controller tìm kiếm địa điểm công khai
type SearchController struct {
	searcher  Searcher
	logger    *zap.Logger
	startTime time.Time
}

// NewSearchController tạo mới SearchController
func NewSearchController(searcher Searcher, logger *zap.Logger) *SearchController {
	return &SearchController{
		searcher:  searcher,
		logger:    logger,
		startTime: time.Now(),
	}
}

// SearchLocations GET /v1/locations/search
func (sc *SearchController) SearchLocations(c *gin.Context) {
	var req requests.SearchLocationsRequest
	// mọi field là string nên bind query không lỗi
	_ = c.ShouldBindQuery(&req)

	q := req.ToQuery(config.C.Search.DefaultPageSize, config.C.Search.MaxPageSize)

	ctx, cancel := context.WithTimeout(c.Request.Context(), config.RequestTimeout())
	defer cancel()

	result, err := sc.searcher.Search(ctx, q)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, responses.SearchLocationsResponse{
		Items:      result.Items,
		Pagination: result.Pagination,
	})
}

// HealthCheck kiểm tra sức khỏe service
func (sc *SearchController) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, responses.HealthCheckResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Uptime:    time.Since(sc.startTime).Round(time.Second).String(),
		Version:   "1.0.0",
		Services: map[string]string{
			"search":           "healthy",
			"dictionary_cache": config.C.DictionaryCache.Backend,
		},
	})
}

// writeError lỗi upstream trả 503 với thông báo chung, nguyên nhân đã được service ghi log
func writeError(c *gin.Context, err error) {
	status, code := http.StatusInternalServerError, "INTERNAL_ERROR"
	message := "Lỗi hệ thống"
	if errors.Is(err, services.ErrUpstreamFailure) {
		status, code = http.StatusServiceUnavailable, "UPSTREAM_UNAVAILABLE"
		message = "Dịch vụ tạm thời không khả dụng, vui lòng thử lại"
	}
	c.JSON(status, responses.ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now().Format(time.RFC3339),
		RequestID: c.GetString(RequestIDKey),
	})
}
