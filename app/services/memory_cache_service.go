package services

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/location-search/internal/metrics"
	"github.com/location-search/internal/parser"
)

// MemoryCacheService cache in-process dùng expirable LRU
type MemoryCacheService struct {
	cache *expirable.LRU[string, *parser.Dictionaries]

	hits   atomic.Int64
	misses atomic.Int64
}

// NewMemoryCacheService tạo cache với TTL cho ảnh chụp
func NewMemoryCacheService(ttl time.Duration) *MemoryCacheService {
	return &MemoryCacheService{
		cache: expirable.NewLRU[string, *parser.Dictionaries](1, nil, ttl),
	}
}

// Get trả về bản sao để caller không sửa được dữ liệu đang cache
func (mcs *MemoryCacheService) Get(ctx context.Context) (*parser.Dictionaries, bool, error) {
	dict, ok := mcs.cache.Get(dictionaryKey)
	if !ok {
		mcs.misses.Add(1)
		metrics.ObserveCache("memory", "miss")
		return nil, false, nil
	}
	mcs.hits.Add(1)
	metrics.ObserveCache("memory", "hit")
	return cloneDictionaries(dict), true, nil
}

func (mcs *MemoryCacheService) Set(ctx context.Context, dict *parser.Dictionaries) error {
	mcs.cache.Add(dictionaryKey, cloneDictionaries(dict))
	metrics.ObserveCache("memory", "set")
	return nil
}

func (mcs *MemoryCacheService) Invalidate(ctx context.Context) error {
	mcs.cache.Remove(dictionaryKey)
	metrics.ObserveCache("memory", "del")
	return nil
}

func (mcs *MemoryCacheService) GetStats(ctx context.Context) (*CacheStats, error) {
	hits, misses := mcs.hits.Load(), mcs.misses.Load()
	return &CacheStats{
		Backend:    "memory",
		HitRate:    hitRate(hits, misses),
		TotalHits:  hits,
		TotalMiss:  misses,
		TotalItems: int64(mcs.cache.Len()),
	}, nil
}

// Close không cần thiết cho in-memory cache
func (mcs *MemoryCacheService) Close() error {
	return nil
}

func cloneDictionaries(d *parser.Dictionaries) *parser.Dictionaries {
	if d == nil {
		return nil
	}
	return &parser.Dictionaries{
		Provinces:  append([]string(nil), d.Provinces...),
		Categories: append([]string(nil), d.Categories...),
	}
}
