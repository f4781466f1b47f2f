package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/location-search/internal/metrics"
	"github.com/location-search/internal/parser"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisCacheService cache dùng chung giữa các replica
type RedisCacheService struct {
	client *redis.Client
	logger *zap.Logger
	prefix string
	ttl    time.Duration

	hits   atomic.Int64
	misses atomic.Int64
}

// NewRedisCacheService tạo mới Redis cache service
func NewRedisCacheService(redisURL string, ttl time.Duration, logger *zap.Logger) (*RedisCacheService, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("lỗi parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("không thể kết nối Redis: %w", err)
	}

	return &RedisCacheService{
		client: client,
		logger: logger,
		prefix: "location_search:",
		ttl:    ttl,
	}, nil
}

// Get lấy ảnh chụp từ điển từ Redis
func (rcs *RedisCacheService) Get(ctx context.Context) (*parser.Dictionaries, bool, error) {
	cacheKey := rcs.prefix + dictionaryKey

	val, err := rcs.client.Get(ctx, cacheKey).Bytes()
	if errors.Is(err, redis.Nil) {
		rcs.misses.Add(1)
		metrics.ObserveCache("redis", "miss")
		return nil, false, nil
	}
	if err != nil {
		rcs.logger.Error("Lỗi get từ Redis", zap.Error(err), zap.String("key", cacheKey))
		return nil, false, err
	}

	var dict parser.Dictionaries
	if err := json.Unmarshal(val, &dict); err != nil {
		rcs.logger.Error("Lỗi unmarshal cache data", zap.Error(err))
		return nil, false, err
	}

	rcs.hits.Add(1)
	metrics.ObserveCache("redis", "hit")
	return &dict, true, nil
}

// Set lưu ảnh chụp với TTL của service
func (rcs *RedisCacheService) Set(ctx context.Context, dict *parser.Dictionaries) error {
	cacheKey := rcs.prefix + dictionaryKey

	data, err := json.Marshal(dict)
	if err != nil {
		return fmt.Errorf("lỗi marshal cache data: %w", err)
	}

	if err := rcs.client.Set(ctx, cacheKey, data, rcs.ttl).Err(); err != nil {
		rcs.logger.Error("Lỗi set vào Redis", zap.Error(err), zap.String("key", cacheKey))
		return err
	}
	metrics.ObserveCache("redis", "set")
	return nil
}

// Invalidate xóa key ảnh chụp
func (rcs *RedisCacheService) Invalidate(ctx context.Context) error {
	cacheKey := rcs.prefix + dictionaryKey
	if err := rcs.client.Del(ctx, cacheKey).Err(); err != nil {
		rcs.logger.Error("Lỗi delete từ Redis", zap.Error(err), zap.String("key", cacheKey))
		return err
	}
	metrics.ObserveCache("redis", "del")
	rcs.logger.Info("Đã invalidate cache từ điển trên Redis")
	return nil
}

// GetStats lấy thống kê cache
func (rcs *RedisCacheService) GetStats(ctx context.Context) (*CacheStats, error) {
	exists, err := rcs.client.Exists(ctx, rcs.prefix+dictionaryKey).Result()
	if err != nil {
		return nil, fmt.Errorf("lỗi kiểm tra key Redis: %w", err)
	}

	hits, misses := rcs.hits.Load(), rcs.misses.Load()
	return &CacheStats{
		Backend:    "redis",
		HitRate:    hitRate(hits, misses),
		TotalHits:  hits,
		TotalMiss:  misses,
		TotalItems: exists,
	}, nil
}

// Close đóng kết nối Redis
func (rcs *RedisCacheService) Close() error {
	return rcs.client.Close()
}
