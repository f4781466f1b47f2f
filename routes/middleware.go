package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/location-search/app/controllers"
	"github.com/location-search/app/responses"
	"github.com/location-search/helpers/utils"
	"github.com/location-search/internal/metrics"
	"golang.org/x/time/rate"
)

const requestIDHeader = "X-Request-ID"

// RequestID giữ request ID hợp lệ từ client, nếu không thì sinh mới
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if !utils.IsValidRequestID(id) {
			id = utils.GenerateUUID()
		}
		c.Set(controllers.RequestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// RateLimit token bucket dùng chung cho cả process; rps <= 0 là tắt
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	if rps <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, responses.ErrorResponse{
				Error:     "RATE_LIMITED",
				Message:   "Quá nhiều request, vui lòng thử lại sau",
				Timestamp: time.Now().Format(time.RFC3339),
				RequestID: c.GetString(controllers.RequestIDKey),
			})
			return
		}
		c.Next()
	}
}

// Metrics ghi số request và latency theo route template
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveHTTP(route, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
