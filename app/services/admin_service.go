package services

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/location-search/app/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// AdminService thống kê hệ thống và quản lý cache từ điển
type AdminService struct {
	db           *mongo.Database
	dictionaries *DictionaryService
	logger       *zap.Logger
	startTime    time.Time
}

// SystemStats thống kê hệ thống
type SystemStats struct {
	Uptime          string                 `json:"uptime"`
	MemoryUsage     map[string]interface{} `json:"memory_usage"`
	DatabaseStats   DatabaseStats          `json:"database_stats"`
	DictionaryCache *CacheStats            `json:"dictionary_cache,omitempty"`
}

// DatabaseStats số bản ghi theo collection
type DatabaseStats struct {
	Locations         int64            `json:"locations"`
	LocationsByStatus map[string]int64 `json:"locations_by_status"`
	Provinces         int64            `json:"provinces"`
	ActiveProvinces   int64            `json:"active_provinces"`
	Categories        int64            `json:"categories"`
	ActiveCategories  int64            `json:"active_categories"`
	Reviews           int64            `json:"reviews"`
}

// NewAdminService tạo mới AdminService
func NewAdminService(db *mongo.Database, dictionaries *DictionaryService, logger *zap.Logger) *AdminService {
	return &AdminService{
		db:           db,
		dictionaries: dictionaries,
		logger:       logger,
		startTime:    time.Now(),
	}
}

// InvalidateDictionaries gọi sau khi tỉnh/danh mục thay đổi
func (as *AdminService) InvalidateDictionaries(ctx context.Context) error {
	if err := as.dictionaries.Invalidate(ctx); err != nil {
		as.logger.Error("Lỗi invalidate cache từ điển", zap.Error(err))
		return ErrUpstreamFailure
	}
	as.logger.Info("Dictionary cache invalidated")
	return nil
}

// GetSystemStats lấy thống kê hệ thống
func (as *AdminService) GetSystemStats(ctx context.Context) (*SystemStats, error) {
	dbStats, err := as.getDatabaseStats(ctx)
	if err != nil {
		as.logger.Error("Lỗi lấy database stats", zap.Error(err))
		return nil, ErrUpstreamFailure
	}

	cacheStats, err := as.dictionaries.CacheStats(ctx)
	if err != nil {
		// cache lỗi không làm hỏng thống kê
		as.logger.Warn("Không lấy được cache stats", zap.Error(err))
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return &SystemStats{
		Uptime: time.Since(as.startTime).Round(time.Second).String(),
		MemoryUsage: map[string]interface{}{
			"alloc_mb":       bToMb(m.Alloc),
			"total_alloc_mb": bToMb(m.TotalAlloc),
			"sys_mb":         bToMb(m.Sys),
			"num_gc":         m.NumGC,
		},
		DatabaseStats:   *dbStats,
		DictionaryCache: cacheStats,
	}, nil
}

// getDatabaseStats các lệnh đếm chạy song song
func (as *AdminService) getDatabaseStats(ctx context.Context) (*DatabaseStats, error) {
	stats := &DatabaseStats{}
	count := func(collection string, filter bson.M, out *int64) func() error {
		return func() error {
			n, err := as.db.Collection(collection).CountDocuments(ctx, filter)
			if err != nil {
				return fmt.Errorf("lỗi đếm %s: %w", collection, err)
			}
			*out = n
			return nil
		}
	}

	var g errgroup.Group
	g.Go(count(models.CollectionLocations, bson.M{}, &stats.Locations))
	g.Go(count(models.CollectionProvinces, bson.M{}, &stats.Provinces))
	g.Go(count(models.CollectionProvinces, bson.M{"status": models.StatusActive}, &stats.ActiveProvinces))
	g.Go(count(models.CollectionCategories, bson.M{}, &stats.Categories))
	g.Go(count(models.CollectionCategories, bson.M{"status": models.StatusActive}, &stats.ActiveCategories))
	g.Go(count(models.CollectionReviews, bson.M{}, &stats.Reviews))

	byStatus := make(map[string]int64)
	g.Go(func() error {
		pipeline := []bson.M{{"$group": bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}}}
		cursor, err := as.db.Collection(models.CollectionLocations).Aggregate(ctx, pipeline)
		if err != nil {
			return fmt.Errorf("lỗi thống kê status: %w", err)
		}
		defer cursor.Close(ctx)

		var rows []struct {
			Status string `bson:"_id"`
			Count  int64  `bson:"count"`
		}
		if err := cursor.All(ctx, &rows); err != nil {
			return err
		}
		for _, r := range rows {
			byStatus[r.Status] = r.Count
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	stats.LocationsByStatus = byStatus
	return stats, nil
}

func bToMb(b uint64) uint64 {
	return b / 1024 / 1024
}
