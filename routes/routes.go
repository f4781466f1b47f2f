package routes

// Routes package cung cấp tất cả routing functions cho Location Search Service
//
// Cấu trúc:
// - api.go: API routes (/v1/*), health, metrics
// - web.go: Web routes (/, /docs)
// - middleware.go: request ID, rate limit, metrics
//
// Sử dụng:
// routes.SetupAllRoutes(router, searchController, adminController, registry)
