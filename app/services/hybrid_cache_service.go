package services

import (
	"context"
	"fmt"

	"github.com/location-search/internal/parser"
	"go.uber.org/zap"
)

// HybridCacheService cache hai tầng: memory (L1) + Redis (L2)
type HybridCacheService struct {
	memoryCache *MemoryCacheService // L1 - trong process
	redisCache  *RedisCacheService  // L2 - dùng chung giữa các replica
	logger      *zap.Logger
}

// NewHybridCacheService tạo mới hybrid cache service
func NewHybridCacheService(memoryCache *MemoryCacheService, redisCache *RedisCacheService, logger *zap.Logger) *HybridCacheService {
	return &HybridCacheService{
		memoryCache: memoryCache,
		redisCache:  redisCache,
		logger:      logger,
	}
}

// Get lấy từ memory trước, Redis sau; hit ở L2 được nạp lại lên L1
func (hcs *HybridCacheService) Get(ctx context.Context) (*parser.Dictionaries, bool, error) {
	if dict, found, _ := hcs.memoryCache.Get(ctx); found {
		return dict, true, nil
	}

	dict, found, err := hcs.redisCache.Get(ctx)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}

	_ = hcs.memoryCache.Set(ctx, dict)
	hcs.logger.Debug("L2 cache hit (Redis)")
	return dict, true, nil
}

// Set ghi L2 trước để replica khác thấy ảnh chụp mới ngay
func (hcs *HybridCacheService) Set(ctx context.Context, dict *parser.Dictionaries) error {
	if err := hcs.redisCache.Set(ctx, dict); err != nil {
		hcs.logger.Warn("Lỗi lưu vào Redis", zap.Error(err))
		return err
	}
	return hcs.memoryCache.Set(ctx, dict)
}

// Invalidate xóa cả hai tầng. Replica khác chỉ bỏ L1 khi hết TTL.
func (hcs *HybridCacheService) Invalidate(ctx context.Context) error {
	_ = hcs.memoryCache.Invalidate(ctx)
	if err := hcs.redisCache.Invalidate(ctx); err != nil {
		return fmt.Errorf("lỗi invalidate Redis: %w", err)
	}
	hcs.logger.Info("Đã invalidate hybrid cache (memory + Redis)")
	return nil
}

// GetStats cộng gộp thống kê hai tầng
func (hcs *HybridCacheService) GetStats(ctx context.Context) (*CacheStats, error) {
	memStats, _ := hcs.memoryCache.GetStats(ctx)
	redisStats, err := hcs.redisCache.GetStats(ctx)
	if err != nil {
		hcs.logger.Warn("Không lấy được Redis stats", zap.Error(err))
		memStats.Backend = "hybrid"
		return memStats, nil
	}

	// miss ở L1 rồi hit ở L2 vẫn tính là hit
	hits := memStats.TotalHits + redisStats.TotalHits
	misses := redisStats.TotalMiss
	return &CacheStats{
		Backend:    "hybrid",
		HitRate:    hitRate(hits, misses),
		TotalHits:  hits,
		TotalMiss:  misses,
		TotalItems: memStats.TotalItems + redisStats.TotalItems,
	}, nil
}

func (hcs *HybridCacheService) Close() error {
	return hcs.redisCache.Close()
}
