package routes

import (
	"github.com/gin-gonic/gin"
)

// SetupWebRoutes thiết lập web routes
func SetupWebRoutes(router *gin.Engine) {
	web := router.Group("/")
	{
		web.GET("/", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"message": "Location Search Service",
				"version": "1.0.0",
				"docs":    "/docs",
			})
		})

		web.GET("/docs", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"api": "Location Search API v1",
				"endpoints": map[string]string{
					"search":                  "GET /v1/locations/search?freeText=&province=&category=&ratingMin=&ratingMax=&includeRatings=&sort=&page=&pageSize=",
					"health":                  "GET /v1/health",
					"invalidate_dictionaries": "POST /v1/admin/dictionaries/invalidate",
					"stats":                   "GET /v1/admin/stats",
					"metrics":                 "GET /metrics",
				},
			})
		})
	}
}
