package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/location-search/app/config"
	"github.com/location-search/app/controllers"
	"github.com/location-search/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// SetupAPIRoutes thiết lập tất cả API routes
func SetupAPIRoutes(router *gin.Engine, searchController *controllers.SearchController, adminController *controllers.AdminController) {
	v1 := router.Group("/v1")
	{
		locations := v1.Group("/locations")
		{
			locations.GET("/search", searchController.SearchLocations)
		}

		// Admin routes (chưa có auth)
		admin := v1.Group("/admin")
		{
			admin.POST("/dictionaries/invalidate", adminController.InvalidateDictionaries)
			admin.GET("/stats", adminController.GetStats)
		}

		v1.GET("/health", searchController.HealthCheck)
	}
}

// SetupHealthRoutes thiết lập health check routes
func SetupHealthRoutes(router *gin.Engine, searchController *controllers.SearchController) {
	router.GET("/health", searchController.HealthCheck)
	router.GET("/ready", searchController.HealthCheck)
	router.GET("/live", searchController.HealthCheck)
}

// SetupMetricsRoutes endpoint cho Prometheus
func SetupMetricsRoutes(router *gin.Engine, reg *prometheus.Registry) {
	router.GET("/metrics", gin.WrapH(metrics.Handler(reg)))
}

// SetupAllRoutes thiết lập tất cả routes
func SetupAllRoutes(router *gin.Engine, searchController *controllers.SearchController, adminController *controllers.AdminController, reg *prometheus.Registry) {
	setupMiddleware(router)

	SetupWebRoutes(router)
	SetupHealthRoutes(router, searchController)
	SetupAPIRoutes(router, searchController, adminController)
	SetupMetricsRoutes(router, reg)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":  "Route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})
}

// setupMiddleware thứ tự: recovery, request ID, metrics, rồi mới rate limit để request bị chặn vẫn được đếm
func setupMiddleware(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(RequestID())
	router.Use(Metrics())
	router.Use(RateLimit(config.C.HTTP.RateLimitRPS, config.C.HTTP.RateLimitBurst))
}
