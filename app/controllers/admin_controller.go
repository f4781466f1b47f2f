package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/location-search/app/responses"
	"github.com/location-search/app/services"
	"go.uber.org/zap"
)

// AdminOperations thao tác quản trị
type AdminOperations interface {
	InvalidateDictionaries(ctx context.Context) error
	GetSystemStats(ctx context.Context) (*services.SystemStats, error)
}

// AdminController controller quản trị
type AdminController struct {
	adminService AdminOperations
	logger       *zap.Logger
}

// NewAdminController tạo mới AdminController
func NewAdminController(adminService AdminOperations, logger *zap.Logger) *AdminController {
	return &AdminController{
		adminService: adminService,
		logger:       logger,
	}
}

// InvalidateDictionaries POST /v1/admin/dictionaries/invalidate
func (ac *AdminController) InvalidateDictionaries(c *gin.Context) {
	startTime := time.Now()

	if err := ac.adminService.InvalidateDictionaries(c.Request.Context()); err != nil {
		writeError(c, err)
		return
	}

	processingTime := time.Since(startTime)
	ac.logger.Info("Invalidate cache từ điển thành công", zap.Duration("duration", processingTime))

	c.JSON(http.StatusOK, responses.SuccessResponse{
		Success: true,
		Message: "Invalidate cache từ điển thành công",
		Data: map[string]interface{}{
			"processing_time_ms": processingTime.Milliseconds(),
		},
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// GetStats GET /v1/admin/stats
func (ac *AdminController) GetStats(c *gin.Context) {
	stats, err := ac.adminService.GetSystemStats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, responses.SuccessResponse{
		Success:   true,
		Message:   "Lấy thống kê thành công",
		Data:      stats,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}
